package types

import (
	"fmt"
	"strings"

	errorsmod "cosmossdk.io/errors"
)

// Codespace is the error codespace of the wrapper.
const Codespace = "osmocli"

var (
	ErrNotFound      = errorsmod.Register(Codespace, 2, "contract not found in registry")
	ErrParse         = errorsmod.Register(Codespace, 3, "unable to parse daemon output")
	ErrEmptyMessages = errorsmod.Register(Codespace, 4, "transaction has no messages")
	ErrCommand       = errorsmod.Register(Codespace, 5, "daemon command failed")
	ErrEmptyLogs     = errorsmod.Register(Codespace, 6, "transaction has no logs")
	ErrInvalidInput  = errorsmod.Register(Codespace, 7, "invalid input")
	ErrInvalidConfig = errorsmod.Register(Codespace, 8, "invalid config")
)

// CommandError is returned when the daemon could not be run or exited non-zero.
// Stderr is kept verbatim so it can be shown to the user as is.
type CommandError struct {
	Command  string
	ExitCode int
	Stderr   string
}

func (e *CommandError) Error() string {
	stderr := strings.TrimSpace(e.Stderr)
	if stderr == "" {
		return fmt.Sprintf("%s: %s exited with code %d", ErrCommand, e.Command, e.ExitCode)
	}
	return fmt.Sprintf("%s: %s", ErrCommand, stderr)
}

// Is lets errors.Is(err, ErrCommand) match a *CommandError.
func (e *CommandError) Is(target error) bool {
	return target == ErrCommand
}
