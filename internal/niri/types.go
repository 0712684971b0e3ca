// Package niri speaks the niri compositor's IPC protocol: newline-delimited
// JSON over a unix stream socket, strict one-request/one-reply alternation.
//
// Request, Action, Response and Reply mirror the compositor's tagged unions.
// Unit variants encode as bare JSON strings ("Windows", "Handled"); variants
// with a payload encode as a single-key object ({"Action": {...}}), so the
// union types here carry one pointer per variant and custom marshalers where
// the string/object split requires them.
package niri

import (
	"encoding/json"
	"fmt"
)

// Window is a toplevel window as reported by the compositor.
type Window struct {
	ID          uint64  `json:"id"                yaml:"id"`
	Title       *string `json:"title"             yaml:"title,omitempty"`
	AppID       *string `json:"app_id"            yaml:"app_id,omitempty"`
	PID         *int32  `json:"pid"               yaml:"pid,omitempty"`
	WorkspaceID *uint64 `json:"workspace_id"      yaml:"workspace_id,omitempty"`
	IsFocused   bool    `json:"is_focused"        yaml:"is_focused"`
	IsFloating  bool    `json:"is_floating"       yaml:"is_floating"`
	IsUrgent    bool    `json:"is_urgent"         yaml:"is_urgent"`
}

// Workspace is a workspace as reported by the compositor. Exactly one
// workspace across all outputs has IsFocused set.
type Workspace struct {
	ID             uint64  `json:"id"               yaml:"id"`
	Index          uint8   `json:"idx"              yaml:"idx"`
	Name           *string `json:"name"             yaml:"name,omitempty"`
	Output         *string `json:"output"           yaml:"output,omitempty"`
	IsUrgent       bool    `json:"is_urgent"        yaml:"is_urgent"`
	IsActive       bool    `json:"is_active"        yaml:"is_active"`
	IsFocused      bool    `json:"is_focused"       yaml:"is_focused"`
	ActiveWindowID *uint64 `json:"active_window_id" yaml:"active_window_id,omitempty"`
}

// ColumnDisplay is how a column presents its windows.
type ColumnDisplay string

const (
	DisplayNormal ColumnDisplay = "normal"
	DisplayTabbed ColumnDisplay = "tabbed"
)

// ParseColumnDisplay converts a flag value to a ColumnDisplay.
func ParseColumnDisplay(s string) (ColumnDisplay, error) {
	switch s {
	case "normal":
		return DisplayNormal, nil
	case "tabbed":
		return DisplayTabbed, nil
	default:
		return DisplayNormal, fmt.Errorf("unknown column display: %q (expected normal or tabbed)", s)
	}
}

// SizeChange is a width/height change spec. Exactly one field is set.
type SizeChange struct {
	SetFixed         *int     `json:"SetFixed,omitempty"`
	SetProportion    *float64 `json:"SetProportion,omitempty"`
	AdjustFixed      *int     `json:"AdjustFixed,omitempty"`
	AdjustProportion *float64 `json:"AdjustProportion,omitempty"`
}

// SetProportion returns a SizeChange meaning "set to this percentage of the
// available space".
func SetProportion(percent float64) SizeChange {
	return SizeChange{SetProportion: &percent}
}

// Empty is the payload of action variants that carry no fields.
type Empty struct{}

// FocusWindow focuses the window with the given id.
type FocusWindow struct {
	ID uint64 `json:"id"`
}

// FocusColumn focuses the column at the given 1-based index.
type FocusColumn struct {
	Index int `json:"index"`
}

// SetColumnDisplay sets the display mode of the focused column.
type SetColumnDisplay struct {
	Display ColumnDisplay `json:"display"`
}

// SetWindowWidth resizes a window (the focused one when ID is nil), which
// for tiled windows resizes its column.
type SetWindowWidth struct {
	ID     *uint64    `json:"id"`
	Change SizeChange `json:"change"`
}

// Action is a compositor operation. Exactly one variant is set; the JSON
// encoding is the externally tagged single-key object the compositor
// expects, which the standard marshaler produces from the omitempty
// pointers below.
type Action struct {
	FocusWindow             *FocusWindow      `json:"FocusWindow,omitempty"`
	ExpelWindowFromColumn   *Empty            `json:"ExpelWindowFromColumn,omitempty"`
	FocusColumn             *FocusColumn      `json:"FocusColumn,omitempty"`
	SetColumnDisplay        *SetColumnDisplay `json:"SetColumnDisplay,omitempty"`
	SetWindowWidth          *SetWindowWidth   `json:"SetWindowWidth,omitempty"`
	ConsumeWindowIntoColumn *Empty            `json:"ConsumeWindowIntoColumn,omitempty"`
	FocusColumnFirst        *Empty            `json:"FocusColumnFirst,omitempty"`
}

// Request is a message to the compositor. Exactly one variant is set.
type Request struct {
	Windows    bool
	Workspaces bool
	Action     *Action
}

// MarshalJSON encodes the request in the compositor's wire form: bare
// strings for the query variants, {"Action": ...} for commands.
func (r Request) MarshalJSON() ([]byte, error) {
	switch {
	case r.Action != nil:
		return json.Marshal(struct {
			Action *Action `json:"Action"`
		}{r.Action})
	case r.Windows:
		return json.Marshal("Windows")
	case r.Workspaces:
		return json.Marshal("Workspaces")
	default:
		return nil, fmt.Errorf("empty request")
	}
}

// UnmarshalJSON decodes either a bare query string or an {"Action": ...}
// object.
func (r *Request) UnmarshalJSON(data []byte) error {
	*r = Request{}
	if len(data) > 0 && data[0] == '"' {
		var tag string
		if err := json.Unmarshal(data, &tag); err != nil {
			return err
		}
		switch tag {
		case "Windows":
			r.Windows = true
		case "Workspaces":
			r.Workspaces = true
		default:
			return fmt.Errorf("unknown request %q", tag)
		}
		return nil
	}
	var wrapper struct {
		Action *Action `json:"Action"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return err
	}
	if wrapper.Action == nil {
		return fmt.Errorf("unknown request %s", data)
	}
	r.Action = wrapper.Action
	return nil
}

// ResponseKind tags the successful reply payload.
type ResponseKind int

const (
	// ResponseHandled is the empty acknowledgement for actions.
	ResponseHandled ResponseKind = iota
	// ResponseWindows carries a window list.
	ResponseWindows
	// ResponseWorkspaces carries a workspace list.
	ResponseWorkspaces
)

func (k ResponseKind) String() string {
	switch k {
	case ResponseHandled:
		return "Handled"
	case ResponseWindows:
		return "Windows"
	case ResponseWorkspaces:
		return "Workspaces"
	default:
		return fmt.Sprintf("ResponseKind(%d)", int(k))
	}
}

// Response is a successful reply payload.
type Response struct {
	Kind       ResponseKind
	Windows    []Window
	Workspaces []Workspace
}

// MarshalJSON encodes the response as "Handled" or a single-key object.
func (r Response) MarshalJSON() ([]byte, error) {
	switch r.Kind {
	case ResponseHandled:
		return json.Marshal("Handled")
	case ResponseWindows:
		windows := r.Windows
		if windows == nil {
			windows = []Window{}
		}
		return json.Marshal(struct {
			Windows []Window `json:"Windows"`
		}{windows})
	case ResponseWorkspaces:
		workspaces := r.Workspaces
		if workspaces == nil {
			workspaces = []Workspace{}
		}
		return json.Marshal(struct {
			Workspaces []Workspace `json:"Workspaces"`
		}{workspaces})
	default:
		return nil, fmt.Errorf("unknown response kind %v", r.Kind)
	}
}

// UnmarshalJSON decodes "Handled" or a single-key payload object.
func (r *Response) UnmarshalJSON(data []byte) error {
	*r = Response{}
	if len(data) > 0 && data[0] == '"' {
		var tag string
		if err := json.Unmarshal(data, &tag); err != nil {
			return err
		}
		if tag != "Handled" {
			return fmt.Errorf("unknown response %q", tag)
		}
		r.Kind = ResponseHandled
		return nil
	}
	var wrapper struct {
		Windows    *[]Window    `json:"Windows"`
		Workspaces *[]Workspace `json:"Workspaces"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return err
	}
	switch {
	case wrapper.Windows != nil:
		r.Kind = ResponseWindows
		r.Windows = *wrapper.Windows
	case wrapper.Workspaces != nil:
		r.Kind = ResponseWorkspaces
		r.Workspaces = *wrapper.Workspaces
	default:
		return fmt.Errorf("unknown response %s", data)
	}
	return nil
}

// Reply is the result of one request: a successful payload in Ok or an
// opaque failure message in Err.
type Reply struct {
	Ok  *Response `json:"Ok,omitempty"`
	Err *string   `json:"Err,omitempty"`
}
