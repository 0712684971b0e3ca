package cmd

import (
	"fmt"
	"os"

	"niri-balance/internal/layout"
	"niri-balance/internal/niri"
	"niri-balance/internal/output"

	"github.com/spf13/cobra"
)

var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Rearrange the focused workspace into balanced columns",
	Long: `Query the compositor for the windows on the focused workspace, compute a
column arrangement (column count = ceil(sqrt(windows)), capped at one column
per window), then rebuild the workspace: every window is expelled into its
own column, and columns are refilled left to right with equal widths.

Action failures during the rebuild are tolerated: the arrangement is
best-effort and never rolled back.

Examples:
  niri-balance balance
  niri-balance balance --columns 2
  niri-balance balance --display tabbed
  niri-balance balance --dry-run --format json`,
	RunE: runBalance,
}

func init() {
	rootCmd.AddCommand(balanceCmd)
	balanceCmd.Flags().Int("columns", 0, "Column count override (0 = automatic sqrt rule)")
	balanceCmd.Flags().String("display", "normal", "Column display mode: normal, tabbed")
	balanceCmd.Flags().Bool("dry-run", false, "Print the computed plan without issuing any actions")
	balanceCmd.Flags().Bool("pretty", false, "Pretty-print JSON output (dry-run only)")
}

// balanceOptions configures one balance run.
type balanceOptions struct {
	Columns int
	Display niri.ColumnDisplay
	DryRun  bool
}

// balanceReport is the structured result of one balance run.
type balanceReport struct {
	Workspace uint64   `yaml:"workspace"          json:"workspace"`
	Windows   int      `yaml:"windows"            json:"windows"`
	WindowIDs []uint64 `yaml:"window_ids"         json:"window_ids"`
	Columns   int      `yaml:"columns"            json:"columns"`
	PerColumn int      `yaml:"per_column"         json:"per_column"`
	Counts    []int    `yaml:"counts"             json:"counts"`
	WidthPct  float64  `yaml:"width_pct"          json:"width_pct"`
	DryRun    bool     `yaml:"dry_run,omitempty"  json:"dry_run,omitempty"`
}

func runBalance(cmd *cobra.Command, args []string) error {
	columns, _ := cmd.Flags().GetInt("columns")
	displayFlag, _ := cmd.Flags().GetString("display")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	display, err := niri.ParseColumnDisplay(displayFlag)
	if err != nil {
		return err
	}

	client, err := dialCompositor()
	if err != nil {
		return err
	}
	defer client.Close()

	opts := balanceOptions{Columns: columns, Display: display, DryRun: dryRun}
	report, err := balanceFocusedWorkspace(client, opts, func(format string, a ...any) {
		fmt.Printf(format+"\n", a...)
	})
	if err != nil {
		return err
	}

	if report.Windows == 0 {
		fmt.Println("No windows on the focused workspace")
		return nil
	}
	if dryRun {
		return output.Print(report)
	}
	fmt.Printf("Arranged %d windows into %d columns\n", report.Windows, report.Columns)
	return nil
}

// balanceFocusedWorkspace runs the whole operation against an open client:
// snapshot state, pick the focused workspace, compute the plan, and (unless
// dry-running) drive the flatten/build phases. The two state queries are
// fatal on failure; individual actions during the rebuild are not.
func balanceFocusedWorkspace(client *niri.Client, opts balanceOptions, logf func(format string, args ...any)) (*balanceReport, error) {
	if logf == nil {
		logf = func(string, ...any) {}
	}

	windows, err := client.Windows()
	if err != nil {
		return nil, err
	}
	workspaces, err := client.Workspaces()
	if err != nil {
		return nil, err
	}

	focused, err := focusedWorkspace(workspaces)
	if err != nil {
		return nil, err
	}

	ids := windowIDsOn(focused.ID, windows)
	report := &balanceReport{
		Workspace: focused.ID,
		Windows:   len(ids),
		WindowIDs: ids,
		DryRun:    opts.DryRun,
	}
	if len(ids) == 0 {
		return report, nil
	}

	plan := layout.NewPlanWithColumns(len(ids), opts.Columns)
	report.Columns = plan.Columns
	report.PerColumn = plan.PerColumn
	report.Counts = plan.Counts
	report.WidthPct = plan.WidthPct

	logf("Found %d windows on workspace %d", len(ids), focused.ID)
	logf("Arranging into %d columns with up to %d windows each", plan.Columns, plan.PerColumn)

	if opts.DryRun {
		return report, nil
	}

	layout.Apply(client, ids, plan, opts.Display, func(format string, a ...any) {
		logf("  "+format, a...)
	})
	return report, nil
}

// focusedWorkspace returns the focused workspace. None is fatal: without a
// target there is nothing to lay out. The compositor guarantees at most
// one focused workspace; if a buggy peer ever reports several we warn and
// take the first rather than refusing to work.
func focusedWorkspace(workspaces []niri.Workspace) (*niri.Workspace, error) {
	var found *niri.Workspace
	for i := range workspaces {
		if !workspaces[i].IsFocused {
			continue
		}
		if found != nil {
			fmt.Fprintf(os.Stderr, "warning: multiple focused workspaces reported, using workspace %d\n", found.ID)
			break
		}
		found = &workspaces[i]
	}
	if found == nil {
		return nil, fmt.Errorf("no focused workspace found")
	}
	return found, nil
}

// windowIDsOn returns the ids of the windows on the given workspace, in
// query order. Windows not mapped to any workspace are skipped.
func windowIDsOn(workspaceID uint64, windows []niri.Window) []uint64 {
	var ids []uint64
	for _, w := range windows {
		if w.WorkspaceID != nil && *w.WorkspaceID == workspaceID {
			ids = append(ids, w.ID)
		}
	}
	return ids
}
