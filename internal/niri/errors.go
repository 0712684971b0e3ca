package niri

import (
	"errors"
	"fmt"
)

// ErrSocketNotSet is returned by DialEnv when NIRI_SOCKET is missing.
var ErrSocketNotSet = errors.New("NIRI_SOCKET environment variable not set")

// ProtocolError is a transport or encoding failure on the IPC stream:
// connect, write, the blocking read (including premature stream closure),
// or JSON encode/decode. The stream is unusable afterwards.
type ProtocolError struct {
	Op  string
	Err error
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("niri ipc %s: %v", e.Op, e.Err)
}

func (e *ProtocolError) Unwrap() error { return e.Err }

// ReplyError is a well-formed reply that is semantically wrong: either the
// compositor reported a failure, or the payload tag does not match the
// request that was sent.
type ReplyError struct {
	Request string
	Message string
}

func (e *ReplyError) Error() string {
	return fmt.Sprintf("niri %s request failed: %s", e.Request, e.Message)
}
