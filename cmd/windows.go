package cmd

import (
	"niri-balance/internal/niri"
	"niri-balance/internal/output"

	"github.com/spf13/cobra"
)

var windowsCmd = &cobra.Command{
	Use:   "windows",
	Short: "List windows known to the compositor",
	RunE:  runWindows,
}

func init() {
	rootCmd.AddCommand(windowsCmd)
	windowsCmd.Flags().Bool("focused", false, "Only windows on the focused workspace")
	windowsCmd.Flags().Bool("pretty", false, "Pretty-print JSON output")
}

func runWindows(cmd *cobra.Command, args []string) error {
	client, err := dialCompositor()
	if err != nil {
		return err
	}
	defer client.Close()

	windows, err := client.Windows()
	if err != nil {
		return err
	}

	if focused, _ := cmd.Flags().GetBool("focused"); focused {
		workspaces, err := client.Workspaces()
		if err != nil {
			return err
		}
		ws, err := focusedWorkspace(workspaces)
		if err != nil {
			return err
		}
		var filtered []niri.Window
		for _, w := range windows {
			if w.WorkspaceID != nil && *w.WorkspaceID == ws.ID {
				filtered = append(filtered, w)
			}
		}
		windows = filtered
	}

	if windows == nil {
		windows = []niri.Window{}
	}
	return output.Print(windows)
}
