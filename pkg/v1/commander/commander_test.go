package commander_test

import (
	"context"
	"testing"

	"github.com/quantumspectra/shopify-sync/pkg/v1/commander"
	"github.com/quantumspectra/shopify-sync/pkg/v1/commander/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUniSendSyncCommand(t *testing.T) {
	tests := map[string]struct {
		full        bool
		wantBody    []byte
		senderError error
		wantErr     error
	}{
		"incremental": {
			wantBody: []byte(`{"full":false}`),
		},
		"full": {
			full:     true,
			wantBody: []byte(`{"full":true}`),
		},
		"sender error": {
			wantBody:    []byte(`{"full":false}`),
			senderError: assert.AnError,
			wantErr:     assert.AnError,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			sender := mocks.NewSender(t)
			sender.On("Send", mock.Anything, tt.wantBody).Return(tt.senderError)

			cmndr := commander.NewSyncCommander(sender)
			err := cmndr.SendSyncCommand(context.TODO(), tt.full)

			require.ErrorIs(t, err, tt.wantErr, "should return correct error")
		})
	}
}
