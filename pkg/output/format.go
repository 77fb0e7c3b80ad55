package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// PrettyFormat writes a human-readable rather than machine-readable table.
func PrettyFormat(w io.Writer, report Report) {
	f := report.Format()
	if report.Result == nil {
		_, _ = fmt.Fprintf(w, "⚠️  %s\n", f.Message)
		return
	}

	_, _ = fmt.Fprintf(w, "%s Inflation Result for %s (%d-%d)\n", f.Icon, report.Country, report.StartYear, report.EndYear)
	rows := [][2]string{
		{"Original amount", f.OriginalAmount},
		{"Adjusted amount", f.AdjustedAmount},
		{"Cumulative inflation", f.CumulativeRate},
		{"Average annual inflation", f.AverageRate},
		{"Inflation health", f.Health},
	}
	for _, row := range rows {
		_, _ = fmt.Fprintf(w, "%-26s | %s\n", row[0], row[1])
	}
}

// CsvFormat writes the report in comma-separated value format.
func CsvFormat(w io.Writer, report Report) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{
		"country", "currency", "startYear", "endYear", "amount",
		"adjustedAmount", "cumulativeRate", "averageRate", "health",
	}); err != nil {
		return err
	}

	row := []string{
		report.Country,
		report.Currency,
		strconv.Itoa(report.StartYear),
		strconv.Itoa(report.EndYear),
		formatDecimal(report.Amount),
		"", "", "", "",
	}
	if r := report.Result; r != nil {
		row[5] = formatDecimal(r.AdjustedAmount)
		row[6] = formatDecimal(r.CumulativeRate)
		row[7] = formatDecimal(r.AverageRate)
		row[8] = string(r.Health)
	}
	if err := writer.Write(row); err != nil {
		return err
	}

	writer.Flush()
	return writer.Error()
}

// CsvString returns the CSV rendering of a report as a string.
func CsvString(report Report) string {
	var sb strings.Builder
	if err := CsvFormat(&sb, report); err != nil {
		return ""
	}
	return sb.String()
}

// JSONFormat writes the report and its display strings as indented JSON.
func JSONFormat(w io.Writer, report Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(NewDocument(report))
}

func formatDecimal(value float64) string {
	return strconv.FormatFloat(value, 'f', 2, 64)
}
