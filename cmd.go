package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var supportedFormats = map[string]bool{"html": true, "svg": true, "png": true, "jpg": true, "jpeg": true}

type renderOptions struct {
	format       string
	outputFile   string
	outDir       string
	templatePath string
	day          int
	strict       bool
	timeout      time.Duration
}

// newRootCmd builds the eldlog command tree.
func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "eldlog",
		Short:         "Render driver's daily log charts from a trip plan",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetFlags(0)
			log.SetPrefix("eldlog: ")
			if verbose {
				log.SetOutput(cmd.ErrOrStderr())
			} else {
				log.SetOutput(io.Discard)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log progress to stderr")

	root.AddCommand(newRenderCmd(), newCheckCmd())
	return root
}

func newRenderCmd() *cobra.Command {
	opts := renderOptions{}

	cmd := &cobra.Command{
		Use:   "render <plan.json>",
		Short: "Render log sheets as svg, html, png or jpg",
		Long: `Render every day of a trip plan.

The input is the planning service response ({"log_sheets": [...]}) or a bare
array of log sheets; "-" reads stdin. html puts all days on one page
(index.html under --out-dir); the other formats produce one file per day, so
several days need --out-dir.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.Context(), args[0], opts, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.format, "format", "f", "svg", "Output format (svg, html, png, jpg/jpeg)")
	f.StringVarP(&opts.outputFile, "output", "o", "", "Output file path (default: stdout)")
	f.StringVar(&opts.outDir, "out-dir", "", "Write one file per day as day-<N>.<format> (html: index.html) into this directory")
	f.StringVarP(&opts.templatePath, "template", "t", "", "Chart template file, YAML or JSON (default: $"+templateEnv+")")
	f.IntVarP(&opts.day, "day", "d", 0, "Render only this day number")
	f.BoolVar(&opts.strict, "strict", false, "Exit non-zero when any day has warnings")
	f.DurationVar(&opts.timeout, "timeout", 30*time.Second, "Time limit for png/jpg rasterization")
	return cmd
}

func newCheckCmd() *cobra.Command {
	var strict bool
	var templatePath string

	cmd := &cobra.Command{
		Use:   "check <plan.json>",
		Short: "Validate log sheets and print a per-day summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, cfg, _, err := loadInputs(args[0], templatePath, cmd.InOrStdin())
			if err != nil {
				return err
			}
			results := RenderAll(plan.LogSheets, cfg)
			fmt.Fprint(cmd.OutOrStdout(), renderSummary(results, plan.Summary))
			return outcomeError(results, strict)
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "Exit non-zero when any day has warnings")
	cmd.Flags().StringVarP(&templatePath, "template", "t", "", "Chart template file, YAML or JSON (default: $"+templateEnv+")")
	return cmd
}

// loadInputs reads the trip plan and the chart template.
func loadInputs(dataFile, templatePath string, stdin io.Reader) (TripPlan, GridConfig, Template, error) {
	if templatePath == "" {
		templatePath = os.Getenv(templateEnv)
	}
	if templatePath != "" {
		log.Printf("Reading template file: %s", templatePath)
	}
	template, err := loadTemplate(templatePath)
	if err != nil {
		return TripPlan{}, GridConfig{}, Template{}, fmt.Errorf("template '%s': %w", templatePath, err)
	}
	cfg, err := initializeGridConfig(template)
	if err != nil {
		return TripPlan{}, GridConfig{}, Template{}, fmt.Errorf("template '%s': %w", templatePath, err)
	}

	log.Printf("Reading data file: %s", dataFile)
	var data []byte
	if dataFile == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(dataFile)
	}
	if err != nil {
		return TripPlan{}, GridConfig{}, Template{}, fmt.Errorf("error reading data file '%s': %w", dataFile, err)
	}
	plan, err := parseTripPlan(data)
	if err != nil {
		return TripPlan{}, GridConfig{}, Template{}, fmt.Errorf("data file '%s': %w", dataFile, err)
	}
	if len(plan.LogSheets) == 0 {
		return TripPlan{}, GridConfig{}, Template{}, fmt.Errorf("data file '%s': no log sheets found", dataFile)
	}
	log.Printf("Parsed %d log sheet(s).", len(plan.LogSheets))
	return plan, cfg, template, nil
}

func runRender(ctx context.Context, dataFile string, opts renderOptions, stdin io.Reader, stdout, stderr io.Writer) error {
	format := strings.ToLower(opts.format)
	if !supportedFormats[format] {
		return fmt.Errorf("unsupported export format '%s'. Supported formats: html, svg, png, jpg/jpeg", opts.format)
	}
	if opts.outputFile != "" && opts.outDir != "" {
		return fmt.Errorf("--output and --out-dir are mutually exclusive")
	}

	plan, cfg, template, err := loadInputs(dataFile, opts.templatePath, stdin)
	if err != nil {
		return err
	}

	sheets := plan.LogSheets
	if opts.day != 0 {
		sheets = selectDay(sheets, opts.day)
		if len(sheets) == 0 {
			return fmt.Errorf("day %d not found in '%s'", opts.day, dataFile)
		}
	}

	log.Printf("Rendering %d day(s)...", len(sheets))
	results := RenderAll(sheets, cfg)
	for _, res := range results {
		switch {
		case res.Err != nil:
			fmt.Fprintf(stderr, "error: %v\n", res.Err)
		case res.Chart != nil:
			for _, w := range res.Chart.Warnings {
				fmt.Fprintf(stderr, "warning: %s\n", w)
			}
		}
	}

	if format == "html" {
		page, err := generateHTML(results, template.Header)
		if err != nil {
			return fmt.Errorf("HTML generation failed: %w", err)
		}
		path := opts.outputFile
		if opts.outDir != "" {
			if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
				return fmt.Errorf("creating output directory: %w", err)
			}
			path = filepath.Join(opts.outDir, "index.html")
		}
		if err := writeOutput(path, stdout, func(w io.Writer) error {
			_, err := io.WriteString(w, page)
			return err
		}); err != nil {
			return err
		}
		return outcomeError(results, opts.strict)
	}

	var charts []*Chart
	for _, res := range results {
		if res.Chart != nil {
			charts = append(charts, res.Chart)
		}
	}

	switch {
	case opts.outDir != "":
		if err := checkUniqueDays(charts); err != nil {
			return err
		}
		if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
		for _, chart := range charts {
			path := filepath.Join(opts.outDir, fmt.Sprintf("day-%d.%s", chart.DayNumber, format))
			if err := writeOutput(path, stdout, chartWriter(ctx, chart, format, opts.timeout)); err != nil {
				return err
			}
		}
	case len(results) > 1:
		return fmt.Errorf("%d days selected; %s output holds one day, use --out-dir or --day", len(results), format)
	case len(charts) == 1:
		if opts.outputFile == "" && format != "svg" {
			if f, ok := stdout.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
				return fmt.Errorf("refusing to write %s data to a terminal; use --output", format)
			}
		}
		if err := writeOutput(opts.outputFile, stdout, chartWriter(ctx, charts[0], format, opts.timeout)); err != nil {
			return err
		}
	}

	return outcomeError(results, opts.strict)
}

func selectDay(sheets []LogSheet, day int) []LogSheet {
	for _, s := range sheets {
		if s.DayNumber == day {
			return []LogSheet{s}
		}
	}
	return nil
}

// checkUniqueDays guards --out-dir, where files are named by day number.
func checkUniqueDays(charts []*Chart) error {
	seen := make(map[int]bool, len(charts))
	for _, chart := range charts {
		if seen[chart.DayNumber] {
			return fmt.Errorf("day %d appears more than once; day-%d files would overwrite each other", chart.DayNumber, chart.DayNumber)
		}
		seen[chart.DayNumber] = true
	}
	return nil
}

func chartWriter(ctx context.Context, chart *Chart, format string, timeout time.Duration) func(io.Writer) error {
	return func(w io.Writer) error {
		if format == "svg" {
			if err := WriteSVG(w, chart); err != nil {
				return fmt.Errorf("SVG generation failed: %w", err)
			}
			return nil
		}
		if ctx == nil {
			ctx = context.Background()
		}
		imgCtx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		return generateImage(imgCtx, chart, format, w)
	}
}

// writeOutput writes to path, or to stdout when path is empty. A file left
// incomplete by a failed write is removed.
func writeOutput(path string, stdout io.Writer, write func(io.Writer) error) (err error) {
	if path == "" {
		return write(stdout)
	}

	log.Printf("Output directed to file: %s", path)
	outFile, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating output file '%s': %w", path, err)
	}
	defer func() {
		if closeErr := outFile.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("error closing output file '%s': %w", path, closeErr)
		}
		if err != nil {
			if removeErr := os.Remove(path); removeErr != nil {
				log.Printf("Warning: Could not remove output file '%s' after error: %v", path, removeErr)
			}
		}
	}()
	return write(outFile)
}

// outcomeError turns rejected days, and warnings under strict mode, into
// the command's exit error.
func outcomeError(results []DayResult, strict bool) error {
	var rejected, warned int
	for _, res := range results {
		if res.Err != nil {
			rejected++
		} else if len(res.Chart.Warnings) > 0 {
			warned++
		}
	}
	if rejected > 0 {
		return fmt.Errorf("%d of %d day(s) rejected", rejected, len(results))
	}
	if strict && warned > 0 {
		return fmt.Errorf("%d of %d day(s) have warnings", warned, len(results))
	}
	return nil
}
