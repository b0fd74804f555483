package main

import (
	"context"
	"errors"

	"github.com/thesavant42/rickdex/internal/api"
	"github.com/thesavant42/rickdex/internal/ui"
)

// Process exit codes, one per error kind
const (
	exitOK        = 0
	exitGeneric   = 1
	exitTransport = 2
	exitStatus    = 3
	exitDecode    = 4
	exitCancelled = 130
)

// exitCode maps an error returned by a command to the process exit code
func exitCode(err error) int {
	if err == nil {
		return exitOK
	}

	var (
		transportErr *api.TransportError
		statusErr    *api.StatusError
		decodeErr    *api.DecodeError
	)
	switch {
	case errors.Is(err, ui.ErrCancelled), errors.Is(err, context.Canceled):
		return exitCancelled
	case errors.As(err, &decodeErr):
		return exitDecode
	case errors.As(err, &statusErr):
		return exitStatus
	case errors.As(err, &transportErr):
		return exitTransport
	}
	return exitGeneric
}
