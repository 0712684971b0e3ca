package cmd

import (
	"niri-balance/internal/niri"
	"niri-balance/internal/output"

	"github.com/spf13/cobra"
)

var workspacesCmd = &cobra.Command{
	Use:   "workspaces",
	Short: "List workspaces known to the compositor",
	RunE:  runWorkspaces,
}

func init() {
	rootCmd.AddCommand(workspacesCmd)
	workspacesCmd.Flags().Bool("pretty", false, "Pretty-print JSON output")
}

func runWorkspaces(cmd *cobra.Command, args []string) error {
	client, err := dialCompositor()
	if err != nil {
		return err
	}
	defer client.Close()

	workspaces, err := client.Workspaces()
	if err != nil {
		return err
	}
	if workspaces == nil {
		workspaces = []niri.Workspace{}
	}
	return output.Print(workspaces)
}
