package layout

import (
	"errors"
	"fmt"
	"testing"

	"niri-balance/internal/niri"
)

// recordingActor captures the issued action sequence as short descriptions.
type recordingActor struct {
	actions []string
	err     error
}

func (r *recordingActor) Action(a niri.Action) error {
	r.actions = append(r.actions, describe(a))
	return r.err
}

func describe(a niri.Action) string {
	switch {
	case a.FocusWindow != nil:
		return fmt.Sprintf("focus-window %d", a.FocusWindow.ID)
	case a.ExpelWindowFromColumn != nil:
		return "expel"
	case a.FocusColumn != nil:
		return fmt.Sprintf("focus-column %d", a.FocusColumn.Index)
	case a.SetColumnDisplay != nil:
		return fmt.Sprintf("display %s", a.SetColumnDisplay.Display)
	case a.SetWindowWidth != nil:
		return fmt.Sprintf("width %g", *a.SetWindowWidth.Change.SetProportion)
	case a.ConsumeWindowIntoColumn != nil:
		return "consume"
	case a.FocusColumnFirst != nil:
		return "focus-first"
	default:
		return "unknown"
	}
}

func TestApplyFiveWindows(t *testing.T) {
	actor := &recordingActor{}
	ids := []uint64{10, 11, 12, 13, 14}
	p := NewPlan(5) // 3 columns, up to 2 windows each

	Apply(actor, ids, p, niri.DisplayNormal, nil)

	want := []string{
		// flatten: every window in query order
		"focus-window 10", "expel",
		"focus-window 11", "expel",
		"focus-window 12", "expel",
		"focus-window 13", "expel",
		"focus-window 14", "expel",
		// column 1: two windows
		"focus-column 1", "display normal", "width 33.333333333333336", "consume",
		// column 2: two windows
		"focus-column 2", "display normal", "width 33.333333333333336", "consume",
		// column 3: one window, nothing to consume
		"focus-column 3", "display normal", "width 33.333333333333336",
		// cursor reset
		"focus-first",
	}
	if len(actor.actions) != len(want) {
		t.Fatalf("got %d actions, want %d:\n%v", len(actor.actions), len(want), actor.actions)
	}
	for i := range want {
		if actor.actions[i] != want[i] {
			t.Fatalf("action %d: got %q, want %q", i, actor.actions[i], want[i])
		}
	}
}

func TestApplySingleWindow(t *testing.T) {
	actor := &recordingActor{}
	Apply(actor, []uint64{7}, NewPlan(1), niri.DisplayNormal, nil)

	want := []string{
		"focus-window 7", "expel",
		"focus-column 1", "display normal", "width 100",
		"focus-first",
	}
	if len(actor.actions) != len(want) {
		t.Fatalf("got %d actions, want %d:\n%v", len(actor.actions), len(want), actor.actions)
	}
	for i := range want {
		if actor.actions[i] != want[i] {
			t.Fatalf("action %d: got %q, want %q", i, actor.actions[i], want[i])
		}
	}
}

func TestApplyTabbedDisplay(t *testing.T) {
	actor := &recordingActor{}
	Apply(actor, []uint64{1, 2}, NewPlan(2), niri.DisplayTabbed, nil)

	for _, a := range actor.actions {
		if a == "display tabbed" {
			return
		}
	}
	t.Fatalf("no tabbed display action in %v", actor.actions)
}

func TestApplyIgnoresActionFailures(t *testing.T) {
	// The compositor rejecting individual actions must not cut the
	// sequence short.
	actor := &recordingActor{err: errors.New("rejected")}
	Apply(actor, []uint64{1, 2, 3, 4}, NewPlan(4), niri.DisplayNormal, nil)

	// 4 windows * (focus + expel) + 2 columns * (focus + display + width +
	// consume) + focus-first
	if len(actor.actions) != 17 {
		t.Fatalf("got %d actions, want 17:\n%v", len(actor.actions), actor.actions)
	}
}

func TestApplyProgress(t *testing.T) {
	actor := &recordingActor{}
	var lines []string
	logf := func(format string, args ...any) {
		lines = append(lines, fmt.Sprintf(format, args...))
	}

	Apply(actor, []uint64{1, 2, 3, 4, 5}, NewPlan(5), niri.DisplayNormal, logf)

	want := []string{
		"building column 1/3 with 2 windows",
		"building column 2/3 with 2 windows",
		"building column 3/3 with 1 windows",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d progress lines, want %d: %v", len(lines), len(want), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d: got %q, want %q", i, lines[i], want[i])
		}
	}
}
