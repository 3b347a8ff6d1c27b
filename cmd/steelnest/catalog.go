package main

import (
	"fmt"

	"github.com/Cesliva/steelnest/internal/project"
	"github.com/spf13/cobra"
)

func newCatalogCmd() *cobra.Command {
	var importPath string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Show or update the shape catalog",
		Long: "Lists the saved shape presets (weight per foot lookups) and stock lengths. " +
			"Use --import to merge presets from another catalog JSON file.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalog(cmd, importPath)
		},
	}

	cmd.Flags().StringVar(&importPath, "import", "", "merge presets from this catalog JSON file")
	return cmd
}

func runCatalog(cmd *cobra.Command, importPath string) error {
	out := cmd.OutOrStdout()

	cat, path, err := project.LoadOrCreateCatalog()
	if err != nil {
		return err
	}

	if importPath != "" {
		merged, err := project.ImportCatalog(importPath, cat)
		if err != nil {
			return err
		}
		if err := project.SaveCatalog(path, merged); err != nil {
			return err
		}
		cat = merged
		fmt.Fprintf(out, "Catalog updated from %s\n", importPath)
	}

	fmt.Fprintln(out, "Shapes:")
	for _, s := range cat.Shapes {
		fmt.Fprintf(out, "  %-4s %-14s %-6s %7.2f lbs/ft\n", s.ShapeType, s.SizeDesignation, s.Grade, s.WeightPerFoot)
	}
	fmt.Fprintln(out, "Stock lengths:")
	for _, l := range cat.StockLengths {
		fmt.Fprintf(out, "  %-20s %4.0f ft\n", l.Name, l.LengthFt)
	}
	return nil
}
