package niri

import (
	"bufio"
	"encoding/json"
	"io"
	"net"
	"os"
)

// Client owns a single duplex stream to the compositor. Calls are strictly
// synchronous: one request line out, one reply line back, no pipelining.
// A Client is not safe for concurrent use.
type Client struct {
	conn io.ReadWriteCloser
	r    *bufio.Reader
}

// NewClient wraps an already-open stream. Used by tests; normal callers
// use Dial or DialEnv.
func NewClient(conn io.ReadWriteCloser) *Client {
	return &Client{conn: conn, r: bufio.NewReader(conn)}
}

// Dial connects to the compositor socket at the given path.
func Dial(path string) (*Client, error) {
	conn, err := net.Dial("unix", path)
	if err != nil {
		return nil, &ProtocolError{Op: "connect", Err: err}
	}
	return NewClient(conn), nil
}

// DialEnv connects to the socket named by NIRI_SOCKET.
func DialEnv() (*Client, error) {
	path := os.Getenv("NIRI_SOCKET")
	if path == "" {
		return nil, ErrSocketNotSet
	}
	return Dial(path)
}

// Close releases the stream.
func (c *Client) Close() error {
	return c.conn.Close()
}

// Do sends one request and blocks until its reply line arrives. An Err
// reply is returned as a *ReplyError; stream and encoding failures as a
// *ProtocolError.
func (c *Client) Do(req Request) (*Response, error) {
	line, err := json.Marshal(req)
	if err != nil {
		return nil, &ProtocolError{Op: "encode", Err: err}
	}
	if _, err := c.conn.Write(append(line, '\n')); err != nil {
		return nil, &ProtocolError{Op: "write", Err: err}
	}

	replyLine, err := c.r.ReadBytes('\n')
	if err != nil {
		return nil, &ProtocolError{Op: "read", Err: err}
	}

	var reply Reply
	if err := json.Unmarshal(replyLine, &reply); err != nil {
		return nil, &ProtocolError{Op: "decode", Err: err}
	}
	if reply.Err != nil {
		return nil, &ReplyError{Request: requestName(req), Message: *reply.Err}
	}
	if reply.Ok == nil {
		return nil, &ReplyError{Request: requestName(req), Message: "reply carries neither Ok nor Err"}
	}
	return reply.Ok, nil
}

// Windows queries all windows. A reply that is not a window list is a
// *ReplyError, never silently coerced.
func (c *Client) Windows() ([]Window, error) {
	resp, err := c.Do(Request{Windows: true})
	if err != nil {
		return nil, err
	}
	if resp.Kind != ResponseWindows {
		return nil, &ReplyError{Request: "Windows", Message: "unexpected reply payload " + resp.Kind.String()}
	}
	return resp.Windows, nil
}

// Workspaces queries all workspaces.
func (c *Client) Workspaces() ([]Workspace, error) {
	resp, err := c.Do(Request{Workspaces: true})
	if err != nil {
		return nil, err
	}
	if resp.Kind != ResponseWorkspaces {
		return nil, &ReplyError{Request: "Workspaces", Message: "unexpected reply payload " + resp.Kind.String()}
	}
	return resp.Workspaces, nil
}

// Action issues one compositor action. Callers decide whether a failure
// is fatal; the layout planner treats action failures as best-effort.
func (c *Client) Action(a Action) error {
	resp, err := c.Do(Request{Action: &a})
	if err != nil {
		return err
	}
	if resp.Kind != ResponseHandled {
		return &ReplyError{Request: "Action", Message: "unexpected reply payload " + resp.Kind.String()}
	}
	return nil
}

func requestName(req Request) string {
	switch {
	case req.Windows:
		return "Windows"
	case req.Workspaces:
		return "Workspaces"
	case req.Action != nil:
		return "Action"
	default:
		return "unknown"
	}
}
