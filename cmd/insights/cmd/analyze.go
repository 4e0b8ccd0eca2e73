package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dimityrivanov/transaction-insights/internal/analyzer"
	"github.com/dimityrivanov/transaction-insights/internal/reporter"
	apperrors "github.com/dimityrivanov/transaction-insights/pkg/errors"
	"github.com/dimityrivanov/transaction-insights/pkg/logger"

	"github.com/spf13/cobra"
)

// Flags for the analyze command
var (
	inputFile    string
	outputFormat string
	outputFile   string
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a statement export file",
	Long: `Analyze reads an open-banking statement export (JSON with
transactions.booked and transactions.pending lists) and prints the
financial-behavior report.

Examples:
  # Human-readable report on stdout
  insights analyze --input statement.json

  # Machine-readable report to a file
  insights analyze --input statement.json --output-format json --output-file report.json`,

	PreRunE: validateAnalyzeFlags,
	RunE:    runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVarP(&inputFile, "input", "i", "", "path to statement export JSON file (required)")
	analyzeCmd.Flags().StringVarP(&outputFormat, "output-format", "f", "console", "output format: console, json")
	analyzeCmd.Flags().StringVarP(&outputFile, "output-file", "o", "", "output file path (default: stdout)")
}

func validateAnalyzeFlags(cmd *cobra.Command, args []string) error {
	if inputFile == "" {
		return apperrors.InputError(apperrors.CodeMissingInput, "an input file is required", nil)
	}
	if outputFormat != "console" && outputFormat != "json" {
		return apperrors.ConfigurationError("output-format", outputFormat, nil)
	}
	return nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	log := logger.GetGlobalLogger().WithComponent("cli")

	tree, err := readInputTree(inputFile)
	if err != nil {
		return err
	}

	report := analyzer.New(log).Analyze(tree)

	out := os.Stdout
	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			return apperrors.FileError(apperrors.CodeFileWrite, outputFile, err)
		}
		defer f.Close()
		out = f
	}

	switch outputFormat {
	case "json":
		body, err := reporter.EncodeJSONIndent(report)
		if err != nil {
			return apperrors.InternalError("report serialization", err)
		}
		if _, err := fmt.Fprintln(out, string(body)); err != nil {
			return apperrors.FileError(apperrors.CodeFileWrite, outputFile, err)
		}
	default:
		if err := reporter.WriteConsoleReport(out, report); err != nil {
			return apperrors.FileError(apperrors.CodeFileWrite, outputFile, err)
		}
	}

	return nil
}

// readInputTree loads and decodes the statement export file.
func readInputTree(path string) (map[string]interface{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.FileError(apperrors.CodeFileNotFound, path, err)
		}
		if os.IsPermission(err) {
			return nil, apperrors.FileError(apperrors.CodeFilePermission, path, err)
		}
		return nil, apperrors.FileError("", path, err)
	}

	var tree map[string]interface{}
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, apperrors.InputError(apperrors.CodeInvalidJSON, path, err)
	}
	return tree, nil
}
