package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-drift/disclosure/cmd/overlaysim/internal/scenario"
)

var runCmd = &cobra.Command{
	Use:   "run <scenario.yaml>...",
	Short: "Replay scenarios",
	Long:  "Replay each scenario file against a fresh widget and print its notifications with the simulated time.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runScenarios,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runScenarios(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	for i, path := range args {
		s, err := scenario.Load(path)
		if err != nil {
			return err
		}
		if i > 0 {
			fmt.Fprintln(out)
		}
		name := s.Name
		if name == "" {
			name = path
		}
		fmt.Fprintf(out, "# %s (%s)\n", name, s.Widget)

		r, err := scenario.NewRunner(s, resolved, out, nil)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		r.Run(s.Steps)
	}
	return nil
}
