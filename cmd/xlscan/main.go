// Package main provides the CLI entry point for xlscan.
package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ukaji3/xlscan/internal/config"
	"github.com/ukaji3/xlscan/pkg/xlscan"
	"github.com/ukaji3/xlscan/pkg/xlscan/models"
	"github.com/ukaji3/xlscan/pkg/xlscan/output"
)

// Exit codes.
const (
	exitFailure           = 1
	exitSourceUnavailable = 2
)

type flags struct {
	outputPath string
	format     string
	pretty     bool
	mode       string
	keywords   []string
	sheets     []string
	configPath string
	sheetsDir  string
	verbose    bool
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the command and returns the process exit code.
func execute(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		if errors.Is(err, xlscan.ErrSourceUnavailable) {
			return exitSourceUnavailable
		}
		return exitFailure
	}
	return 0
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	fl := &flags{}
	rootCmd := &cobra.Command{
		Use:   "xlscan [input.xlsx]",
		Short: "Report formula cells and keyword-labelled values in Excel files",
		Long: `xlscan walks every sheet of an Excel workbook, separates formula cells
from literal values, and prints the cells whose text matches a set of
engineering keywords together with every formula and its cached value.`,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, fl, args[0], stdout, stderr)
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	f := rootCmd.Flags()
	f.StringVarP(&fl.outputPath, "output", "o", "", "Output file path (default: stdout)")
	f.StringVarP(&fl.format, "format", "f", "text", "Output format: text, json, yaml")
	f.BoolVar(&fl.pretty, "pretty", false, "Pretty-print JSON output")
	f.StringVar(&fl.mode, "mode", string(xlscan.ModeStandard), "Scan mode: light, standard, verbose")
	f.StringArrayVarP(&fl.keywords, "keyword", "k", nil, `Keyword to match (repeatable, replaces the default set; -k "" disables matching)`)
	f.StringArrayVar(&fl.sheets, "sheet", nil, "Sheet to scan (repeatable, default: all sheets)")
	f.StringVarP(&fl.configPath, "config", "c", "", "YAML config file")
	f.StringVar(&fl.sheetsDir, "sheets-dir", "", "Directory for per-sheet JSON files")
	f.BoolVarP(&fl.verbose, "verbose", "v", false, "Debug logging on stderr")

	return rootCmd
}

func run(cmd *cobra.Command, fl *flags, inputPath string, stdout, stderr io.Writer) error {
	level := slog.LevelWarn
	if fl.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	opts, err := resolveOptions(cmd, fl)
	if err != nil {
		return err
	}
	opts.Logger = logger

	switch fl.format {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("invalid format: %s (must be text, json, or yaml)", fl.format)
	}

	report, err := xlscan.Scan(inputPath, opts)
	if err != nil {
		return err
	}

	data, err := render(report, fl.format, fl.pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	// Prepare per-sheet files first so a failure leaves no report behind.
	var sheetFiles map[string][]byte
	if fl.sheetsDir != "" {
		sheetFiles, err = prepareSheetFiles(report, fl.sheetsDir, fl.pretty)
		if err != nil {
			return fmt.Errorf("failed to write sheet files: %w", err)
		}
	}
	for filename, sheetData := range sheetFiles {
		if err := os.WriteFile(filename, sheetData, 0644); err != nil {
			return fmt.Errorf("failed to write sheet files: %w", err)
		}
	}

	// Write output
	if fl.outputPath != "" {
		if err := os.WriteFile(fl.outputPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else if _, err := stdout.Write(data); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}

// resolveOptions merges the config file with flags; flags win.
func resolveOptions(cmd *cobra.Command, fl *flags) (xlscan.Options, error) {
	cfg := config.DefaultConfig()
	if fl.configPath != "" {
		loaded, err := config.LoadConfig(fl.configPath)
		if err != nil {
			return xlscan.Options{}, err
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("mode") {
		cfg.Mode = fl.mode
	}
	// -k "" alone disables keyword matching.
	if cmd.Flags().Changed("keyword") {
		cfg.Keywords = make([]string, 0, len(fl.keywords))
		for _, kw := range fl.keywords {
			if strings.TrimSpace(kw) != "" {
				cfg.Keywords = append(cfg.Keywords, kw)
			}
		}
	}
	if len(fl.sheets) > 0 {
		cfg.Sheets = fl.sheets
	}
	if err := cfg.Validate(); err != nil {
		return xlscan.Options{}, err
	}
	return cfg.Options(), nil
}

func render(report *models.Report, format string, pretty bool) ([]byte, error) {
	switch format {
	case "json":
		data, err := output.ToJSON(report, pretty)
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case "yaml":
		return output.ToYAML(report)
	default:
		var buf bytes.Buffer
		if err := output.WriteText(&buf, report); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
}

// prepareSheetFiles creates dir and renders one JSON document per sheet,
// keyed by destination file.
func prepareSheetFiles(report *models.Report, dir string, pretty bool) (map[string][]byte, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	files := make(map[string][]byte, len(report.Sheets))
	for i := range report.Sheets {
		sheet := &report.Sheets[i]
		jsonData, err := output.SheetToJSON(sheet, pretty)
		if err != nil {
			return nil, err
		}
		files[filepath.Join(dir, sheet.Name+".json")] = jsonData
	}

	return files, nil
}
