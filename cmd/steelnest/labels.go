package main

import (
	"fmt"

	"github.com/Cesliva/steelnest/internal/export"
	"github.com/Cesliva/steelnest/internal/project"
	"github.com/spf13/cobra"
)

func newLabelsCmd() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "labels <project.json>",
		Short: "Generate QR-coded piece labels from a saved project",
		Long: "Reads a saved project containing a nesting result and writes a PDF of " +
			"QR-coded piece labels on an Avery 5160 label sheet layout.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLabels(cmd, args[0], outputPath)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "labels.pdf", "label PDF output path")
	return cmd
}

func runLabels(cmd *cobra.Command, projectPath, outputPath string) error {
	p, err := project.LoadProject(projectPath)
	if err != nil {
		return err
	}
	if p.Result == nil {
		return fmt.Errorf("project %s has no nesting result; run 'steelnest nest' with --save-project first", projectPath)
	}

	if err := export.ExportLabels(outputPath, *p.Result); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Labels written to %s\n", outputPath)
	return nil
}
