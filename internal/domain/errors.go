package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidLinkName = errors.New("invalid link name")
	ErrMalformed       = errors.New("malformed data")
	ErrNotSymlink      = errors.New("not a symlink, refusing to remove")
	ErrProfileNotFound = errors.New("profile not found")
	ErrProjectNotFound = errors.New("project not found")
	ErrRealDirectory   = errors.New("cannot replace real directory")
	ErrSecretNotFound  = errors.New("secret not found")
	ErrServerNotFound  = errors.New("remote server not found")
	ErrSlotOccupied    = errors.New("link slot occupied by a regular file")
)

// AuthMethodKind identifies how a server session authenticates
type AuthMethodKind string

const (
	AuthAgent    AuthMethodKind = "Agent"
	AuthKey      AuthMethodKind = "Key"
	AuthPassword AuthMethodKind = "Password"
)

// AuthError reports an authentication failure for one method
type AuthError struct {
	Err    error
	Method AuthMethodKind
	Reason string
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("SSH %s authentication failed: %s: %v", e.Method, e.Reason, e.Err)
	}
	return fmt.Sprintf("SSH %s authentication failed: %s", e.Method, e.Reason)
}

func (e *AuthError) Unwrap() error { return e.Err }

// ConnectionError reports a transport-level failure talking to a server
type ConnectionError struct {
	Err    error
	Op     string
	Server string
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("SSH connection to %s failed (%s): %v", e.Server, e.Op, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// CommandError is a non-zero exit that came with diagnostic output.
// Stderr is kept verbatim (trimmed) for display.
type CommandError struct {
	ExitCode int
	Stderr   string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command failed (exit %d): %s", e.ExitCode, e.Stderr)
}

// LinkError reports a failure on one link slot
type LinkError struct {
	Err  error
	Name string
	Op   LinkOp
	Path string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("%s %s (%s): %v", e.Op, e.Name, e.Path, e.Err)
}

func (e *LinkError) Unwrap() error { return e.Err }
