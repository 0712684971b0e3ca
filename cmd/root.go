package cmd

import (
	"fmt"
	"os"

	"niri-balance/internal/niri"
	"niri-balance/internal/output"
	"niri-balance/internal/version"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "niri-balance",
	Short: "Balance windows on the focused niri workspace into even columns",
	Long: "A one-shot tool for the niri compositor: it inspects the windows on the\n" +
		"currently focused workspace and rearranges them into side-by-side columns,\n" +
		"balancing the window count per column.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "", "Output format: yaml, json")
	rootCmd.PersistentFlags().String("socket", "", "Compositor socket path (default: $NIRI_SOCKET)")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		format, _ := rootCmd.PersistentFlags().GetString("format")

		// Smart default: terminal output (human) → yaml, piped output
		// (another program) → json.
		if format == "" {
			if output.IsOutputPiped() {
				format = "json"
			} else {
				format = "yaml"
			}
		}

		switch format {
		case "yaml":
			output.OutputFormat = output.FormatYAML
		case "json":
			output.OutputFormat = output.FormatJSON
		default:
			return fmt.Errorf("unsupported format: %s (use yaml or json)", format)
		}
		if prettyFlag := cmd.Flags().Lookup("pretty"); prettyFlag != nil {
			if pretty, err := cmd.Flags().GetBool("pretty"); err == nil && pretty {
				output.PrettyOutput = true
			}
		}
		return nil
	}
}

// dialCompositor opens the IPC stream, preferring the --socket override
// over the NIRI_SOCKET environment variable. Each invocation dials fresh;
// there is no connection reuse across runs.
func dialCompositor() (*niri.Client, error) {
	socket, _ := rootCmd.PersistentFlags().GetString("socket")
	if socket != "" {
		return niri.Dial(socket)
	}
	return niri.DialEnv()
}
