package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Cesliva/steelnest/internal/engine"
	"github.com/Cesliva/steelnest/internal/export"
	"github.com/Cesliva/steelnest/internal/importer"
	"github.com/Cesliva/steelnest/internal/model"
	"github.com/Cesliva/steelnest/internal/project"
	"github.com/spf13/cobra"
)

func newNestCmd() *cobra.Command {
	var (
		outputPath  string
		excelPath   string
		pdfPath     string
		projectPath string
		stockLength float64
		kerf        float64
		increment   float64
		optimize    bool
	)

	cmd := &cobra.Command{
		Use:   "nest <input>",
		Short: "Nest estimating lines into stock bars",
		Long: "Reads estimating line items from a CSV, Excel, or project JSON file, packs them " +
			"into stock bar lengths, and writes the cutting list. With optimization enabled " +
			"(the default) the best stock length is chosen from the candidate set.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNest(cmd, args[0], nestOptions{
				outputPath:  outputPath,
				excelPath:   excelPath,
				pdfPath:     pdfPath,
				projectPath: projectPath,
				stockLength: stockLength,
				kerf:        kerf,
				increment:   increment,
				optimize:    optimize,
			})
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "write cutting list CSV to this path")
	cmd.Flags().StringVar(&excelPath, "excel", "", "write cutting list workbook to this path")
	cmd.Flags().StringVar(&pdfPath, "pdf", "", "write cut report PDF to this path")
	cmd.Flags().StringVar(&projectPath, "save-project", "", "save lines, settings, and result as a project JSON")
	cmd.Flags().Float64Var(&stockLength, "stock-length", model.DefaultStockLengthFt, "desired stock length in feet")
	cmd.Flags().Float64Var(&kerf, "kerf", model.DefaultKerfWidth, "kerf allowance per cut in inches")
	cmd.Flags().Float64Var(&increment, "increment", model.DefaultStockRoundingIncrement, "stock rounding increment in inches")
	cmd.Flags().BoolVar(&optimize, "optimize", true, "evaluate candidate stock lengths and recommend the best")
	return cmd
}

type nestOptions struct {
	outputPath  string
	excelPath   string
	pdfPath     string
	projectPath string
	stockLength float64
	kerf        float64
	increment   float64
	optimize    bool
}

func runNest(cmd *cobra.Command, inputPath string, opts nestOptions) error {
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	lines, err := loadLines(cmd, inputPath)
	if err != nil {
		return err
	}

	configPath := project.DefaultConfigPath()
	config, err := project.LoadAppConfig(configPath)
	if err != nil {
		fmt.Fprintf(errOut, "warning: cannot read app config: %v\n", err)
		config = model.DefaultAppConfig()
	}

	settings := model.DefaultSettings()
	config.ApplyToSettings(&settings)

	var catalog *model.Catalog
	if cat, catalogPath, err := project.LoadOrCreateCatalog(); err != nil {
		fmt.Fprintf(errOut, "warning: cannot load catalog %s: %v\n", catalogPath, err)
	} else {
		catalog = &cat
		if lengths := cat.StockLengthsFt(); len(lengths) > 0 {
			settings.CandidateStockLengthsFt = lengths
		}
	}

	// Explicit flags override the saved defaults.
	flags := cmd.Flags()
	if flags.Changed("stock-length") {
		settings.DesiredStockLengthFt = opts.stockLength
	}
	if flags.Changed("kerf") {
		settings.KerfWidth = opts.kerf
	}
	if flags.Changed("increment") {
		settings.StockRoundingIncrement = opts.increment
	}
	if flags.Changed("optimize") {
		settings.RunOptimization = opts.optimize
	}

	nester := engine.New(settings)
	nester.Catalog = catalog

	result, err := nester.Nest(lines)
	if err != nil {
		return err
	}

	printSummary(cmd, result)

	if opts.outputPath != "" {
		if err := export.ExportCSV(opts.outputPath, result); err != nil {
			return err
		}
		fmt.Fprintf(out, "Cutting list written to %s\n", opts.outputPath)
	}
	if opts.excelPath != "" {
		if err := export.ExportExcel(opts.excelPath, result); err != nil {
			return err
		}
		fmt.Fprintf(out, "Workbook written to %s\n", opts.excelPath)
	}
	if opts.pdfPath != "" {
		if err := export.ExportPDF(opts.pdfPath, result, settings); err != nil {
			return err
		}
		fmt.Fprintf(out, "Cut report written to %s\n", opts.pdfPath)
	}
	if opts.projectPath != "" {
		p := model.Project{
			Name:     strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath)),
			Lines:    lines,
			Settings: settings,
			Result:   &result,
		}
		if err := project.SaveProject(opts.projectPath, p); err != nil {
			return err
		}
		fmt.Fprintf(out, "Project saved to %s\n", opts.projectPath)

		config.AddRecentProject(opts.projectPath)
		if err := project.SaveAppConfig(configPath, config); err != nil {
			fmt.Fprintf(errOut, "warning: cannot save app config: %v\n", err)
		}
	}
	return nil
}

// loadLines reads estimating lines from a CSV, Excel, or project JSON file,
// dispatching on the file extension.
func loadLines(cmd *cobra.Command, path string) ([]model.LineItem, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		p, err := project.LoadProject(path)
		if err != nil {
			return nil, err
		}
		return p.Lines, nil
	case ".xlsx":
		return linesFromImport(cmd, importer.ImportExcel(path))
	default:
		return linesFromImport(cmd, importer.ImportCSV(path))
	}
}

// linesFromImport reports import warnings and errors, failing when nothing
// usable was imported.
func linesFromImport(cmd *cobra.Command, res importer.ImportResult) ([]model.LineItem, error) {
	errOut := cmd.ErrOrStderr()
	for _, w := range res.Warnings {
		fmt.Fprintf(errOut, "warning: %s\n", w)
	}
	for _, e := range res.Errors {
		fmt.Fprintf(errOut, "error: %s\n", e)
	}
	if len(res.Lines) == 0 {
		return nil, fmt.Errorf("no usable lines imported")
	}
	return res.Lines, nil
}

// printSummary writes the nesting totals and recommendation to stdout.
func printSummary(cmd *cobra.Command, result model.NestingResult) {
	out := cmd.OutOrStdout()

	if len(result.Groups) == 0 {
		fmt.Fprintln(out, "No nestable pieces found.")
		return
	}

	fmt.Fprintf(out, "Stock length: %.0f ft\n", result.StockLengthFt)
	for _, g := range result.Groups {
		fmt.Fprintf(out, "  %-24s %3d bars  %4d pieces  waste %5.1f%%  %8.0f lbs\n",
			g.Key.ShapeType+" "+g.Key.SizeDesignation, len(g.Bars), g.PieceCount(),
			g.WastePercentage(), g.TotalWeight())
	}
	fmt.Fprintf(out, "Total: %d bars, %d pieces, %.0f lbs, %.1f%% waste\n",
		result.TotalStockBars(), result.TotalPieces(), result.TotalWeight(), result.TotalWastePercentage())

	if rec := result.Recommendation; rec != nil {
		fmt.Fprintf(out, "Recommended stock: %d x %.0f ft (waste %.2f%%, efficiency %.2f%%)\n",
			rec.Quantity, rec.StockLengthFt, rec.WastePercentage, rec.Efficiency)
		for _, alt := range rec.Alternatives {
			fmt.Fprintf(out, "  alternative: %d x %.0f ft (waste %.2f%%)\n",
				alt.Quantity, alt.StockLengthFt, alt.WastePercentage)
		}
	}
}
