package writer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/lavepeguesucesso-png/Lave1/internal/models"
)

// CSVWriter writes normalized transactions back out as CSV.
type CSVWriter struct {
	IncludeMetadata bool
}

// WriteToFile writes the result to a CSV file at the given path.
func (w *CSVWriter) WriteToFile(path string, result *models.ParseResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %q: %w", path, err)
	}
	defer f.Close()

	return w.Write(f, result)
}

// Write writes the result in CSV format to the given writer.
func (w *CSVWriter) Write(out io.Writer, result *models.ParseResult) error {
	writer := csv.NewWriter(out)
	defer writer.Flush()

	if w.IncludeMetadata {
		writer.Write([]string{"# Unidade", result.Metadata.UnitName})
		writer.Write([]string{"# Período", result.Metadata.Period})
		writer.Write([]string{"# Relatório", string(result.Metadata.ReportType)})
	}

	header := []string{"Data", "Hora", "Máquina", "Ciclo", "Pagamento", "Valor"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, txn := range result.Transactions {
		row := []string{
			txn.RawDate,
			txn.RawTime,
			txn.Machine,
			string(txn.CycleType),
			txn.PaymentMethod,
			strconv.FormatFloat(txn.Amount, 'f', 2, 64),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	return writer.Error()
}
