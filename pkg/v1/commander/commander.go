package commander

import (
	"context"
	"encoding/json"
	"fmt"
)

//go:generate mockery --name Sender --filename sender.go

// Sender sends messages.
type Sender interface {
	Send(context.Context, []byte) error
}

// SyncCommand triggers one sync. With Full set stored watermarks are ignored
// and complete collections are fetched.
type SyncCommand struct {
	Full bool `json:"full"`
}

// SyncCommander sends sync commands.
type SyncCommander struct {
	sender Sender
}

// NewSyncCommander returns new SyncCommander using provided sender for sending messages.
func NewSyncCommander(sender Sender) SyncCommander {
	return SyncCommander{
		sender: sender,
	}
}

// SendSyncCommand sends sync command.
func (c SyncCommander) SendSyncCommand(ctx context.Context, full bool) error {
	cmd := SyncCommand{
		Full: full,
	}

	cmdMsg, err := json.Marshal(cmd)
	if err != nil {
		return fmt.Errorf("can't marshal sync command: %w", err)
	}

	return c.sender.Send(ctx, cmdMsg)
}
