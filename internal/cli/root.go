// Package cli provides the stacksheet command-line interface.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for stacksheet.
func NewRootCmd(version, commit, buildDate string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "stacksheet",
		Short: "A stacked overlay sheet engine",
		Long:  `Stacked overlay sheets for terminal and embedded UIs: a stack state machine, snap-point math, and a drag-to-dismiss gesture recognizer, with an interactive demo.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("stacksheet %s\n", version)
			fmt.Printf("commit: %s\n", commit)
			fmt.Printf("built: %s\n", buildDate)
		},
	}

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(NewDemoCmd())
	rootCmd.AddCommand(NewConfigCmd())

	return rootCmd
}
