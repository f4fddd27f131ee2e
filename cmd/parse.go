package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lavepeguesucesso-png/Lave1/internal/extractor"
	"github.com/lavepeguesucesso-png/Lave1/internal/models"
	"github.com/lavepeguesucesso-png/Lave1/internal/parser"
	"github.com/lavepeguesucesso-png/Lave1/internal/report"
	"github.com/lavepeguesucesso-png/Lave1/internal/writer"
)

var (
	parseOutput   string
	parseSlot     string
	parseSummary  bool
	parseMetadata bool
)

var parseCmd = &cobra.Command{
	Use:   "parse <file> [file...]",
	Short: "Normalize report exports into CSV",
	Long: `Parse one or more report exports (.csv, .txt, .xlsx or .pdf),
normalize their transactions and write them back out as CSV. The source
format is detected automatically; --slot flags a file whose detected
format does not match the one you expected.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringVarP(&parseOutput, "output", "o", "", "output CSV path (single input only; defaults to <input>.normalized.csv)")
	parseCmd.Flags().StringVar(&parseSlot, "slot", "", "expected format: selfservice or attendant")
	parseCmd.Flags().BoolVar(&parseSummary, "summary", false, "print a revenue summary per file")
	parseCmd.Flags().BoolVar(&parseMetadata, "metadata", true, "include unit/period metadata rows in the output CSV")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	if parseOutput != "" && len(args) > 1 {
		return fmt.Errorf("--output can only be used with a single input file")
	}

	for _, path := range args {
		if err := parseFile(path); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	return nil
}

func parseFile(path string) error {
	fmt.Printf("Processing: %s\n", path)

	text, err := extractor.ReadFile(path)
	if err != nil {
		return err
	}

	result := parser.ParseDocument(text)

	if expected := expectedReportType(parseSlot); expected != "" && expected != result.Metadata.ReportType {
		result.Advisories = append(result.Advisories, models.Advisory{
			Code: parser.AdvisorySlotMismatch,
			Message: fmt.Sprintf("file detected as %s but expected %s",
				result.Metadata.ReportType, expected),
		})
	}

	fmt.Printf("  Format: %s\n", result.Metadata.ReportType)
	fmt.Printf("  Unit: %s\n", result.Metadata.UnitName)
	fmt.Printf("  Period: %s\n", result.Metadata.Period)
	fmt.Printf("  Found %d transaction(s)\n", len(result.Transactions))
	for _, advisory := range result.Advisories {
		fmt.Printf("  Warning: %s\n", advisory.Message)
	}

	outPath := parseOutput
	if outPath == "" {
		base := strings.TrimSuffix(path, filepath.Ext(path))
		outPath = base + ".normalized.csv"
	}

	w := &writer.CSVWriter{IncludeMetadata: parseMetadata}
	if err := w.WriteToFile(outPath, result); err != nil {
		return err
	}
	fmt.Printf("  Output: %s\n", outPath)

	if parseSummary {
		printSummary(report.Summarize(result.Transactions))
	}

	fmt.Println("  Done.")
	return nil
}

func printSummary(s *report.Summary) {
	fmt.Printf("  Revenue: R$ %.2f (%d transactions, avg R$ %.2f)\n",
		s.TotalRevenue, s.TransactionCount, s.AverageTicket)
	fmt.Printf("  Wash: %d (R$ %.2f)  Dry: %d (R$ %.2f)  Other: %d (R$ %.2f)\n",
		s.WashCount, s.WashRevenue, s.DryCount, s.DryRevenue, s.UnknownCount, s.UnknownRevenue)
	for i, m := range s.ByMachine {
		if i >= 5 {
			break
		}
		fmt.Printf("    %d. %s: %d cycles, R$ %.2f\n", i+1, m.Machine, m.Count, m.Revenue)
	}
}

func expectedReportType(slot string) models.ReportType {
	switch slot {
	case "selfservice", "self-service", "autoatendimento":
		return models.ReportSelfService
	case "attendant", "balcao", "balcão":
		return models.ReportAttendant
	default:
		return ""
	}
}
