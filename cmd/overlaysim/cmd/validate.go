package cmd

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/go-drift/disclosure/cmd/overlaysim/internal/scenario"
)

var validateCmd = &cobra.Command{
	Use:   "validate [scenario.yaml]...",
	Short: "Check the configuration and scenario files",
	Long:  "Resolve disclosure.yaml, print the widget presets, and parse any scenario files given.",
	RunE:  validate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func validate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "log level %s, format %s, animation fallback %s\n", resolved.Level, resolved.Format, resolved.Fallback)

	kinds := make([]string, 0, len(resolved.Presets))
	for kind := range resolved.Presets {
		kinds = append(kinds, kind)
	}
	slices.Sort(kinds)
	for _, kind := range kinds {
		p := resolved.Presets[kind]
		fmt.Fprintf(out, "%-9s trigger=%s placement=%s enter=%s leave=%s backdrop=%t animation=%t\n",
			kind, p.Trigger, strings.Join(p.Placement, ","), p.MouseEnterDelay, p.MouseLeaveDelay,
			p.Backdrop, !p.NoAnimation)
	}

	for _, path := range args {
		s, err := scenario.Load(path)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s: %s with %d steps\n", path, s.Widget, len(s.Steps))
	}
	return nil
}
