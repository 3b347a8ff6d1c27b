// SteelNest — material nesting and cutting-stock optimization for
// structural-steel estimating.
//
// Build:
//
//	go build -o steelnest ./cmd/steelnest
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version info set via ldflags at build time.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "steelnest",
		Short: "SteelNest — material nesting for structural steel",
		Long:  "SteelNest packs estimating line items into stock bar lengths, recommends the best stock length, and exports cutting lists.",
	}

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newNestCmd())
	cmd.AddCommand(newLabelsCmd())
	cmd.AddCommand(newCatalogCmd())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "steelnest %s (commit: %s, built: %s)\n", Version, Commit, Date)
		},
	}
}

func execute(cmd *cobra.Command) int {
	if err := cmd.Execute(); err != nil {
		return 1
	}
	return 0
}

func main() {
	os.Exit(execute(newRootCmd()))
}
