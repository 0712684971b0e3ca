package layout

import "niri-balance/internal/niri"

// Actor issues one compositor action. *niri.Client implements it; tests
// substitute a recorder.
type Actor interface {
	Action(a niri.Action) error
}

// Apply executes a plan against the compositor in two strictly ordered
// phases. Flatten: focus and expel every window in query order, so each
// ends up in its own single-window column. Build: for each target column,
// focus it, set its display mode and proportional width, then consume one
// extra window per slot beyond the first. Finishes by focusing the first
// column.
//
// Individual action failures are swallowed: the compositor may reject
// some operations mid-sequence and a best-effort arrangement beats an
// aborted one. There is no rollback.
func Apply(actor Actor, ids []uint64, p Plan, display niri.ColumnDisplay, logf func(format string, args ...any)) {
	if logf == nil {
		logf = func(string, ...any) {}
	}

	for _, id := range ids {
		_ = actor.Action(niri.Action{FocusWindow: &niri.FocusWindow{ID: id}})
		_ = actor.Action(niri.Action{ExpelWindowFromColumn: &niri.Empty{}})
	}

	n := len(ids)
	for i := 0; i < p.Columns; i++ {
		start := i * p.PerColumn
		if start >= n {
			break
		}
		end := start + p.PerColumn
		if end > n {
			end = n
		}
		logf("building column %d/%d with %d windows", i+1, len(p.Counts), end-start)

		_ = actor.Action(niri.Action{FocusColumn: &niri.FocusColumn{Index: i + 1}})
		_ = actor.Action(niri.Action{SetColumnDisplay: &niri.SetColumnDisplay{Display: display}})
		_ = actor.Action(niri.Action{SetWindowWidth: &niri.SetWindowWidth{Change: niri.SetProportion(p.WidthPct)}})

		for j := 0; j < end-start-1; j++ {
			_ = actor.Action(niri.Action{ConsumeWindowIntoColumn: &niri.Empty{}})
		}
	}

	_ = actor.Action(niri.Action{FocusColumnFirst: &niri.Empty{}})
}
