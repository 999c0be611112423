package platform

import (
	"errors"
)

// ErrAlreadyRunning is an error returned when a sync can't be started because previous run is not finished yet.
var ErrAlreadyRunning = errors.New("sync already running")
