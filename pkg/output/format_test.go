package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/iwvelando/inflation-calculator/pkg/inflation"
)

func sampleReport() Report {
	series := inflation.Series{2019: inflation.RateOf(2), 2020: inflation.RateOf(5)}
	result, ok := inflation.Calculate(series, 2019, 2021, 1000)
	return NewReport("United States", "USD", 2019, 2021, 1000, result, ok)
}

func emptyReport() Report {
	result, ok := inflation.Calculate(inflation.Series{2019: nil}, 2019, 2020, 100)
	return NewReport("Atlantis", "USD", 2019, 2020, 100, result, ok)
}

func TestNewReport(t *testing.T) {
	report := sampleReport()
	if report.Result == nil {
		t.Fatal("expected result")
	}
	if report.Result.AdjustedAmount != 1071 {
		t.Errorf("AdjustedAmount = %v", report.Result.AdjustedAmount)
	}

	if emptyReport().Result != nil {
		t.Error("expected nil result")
	}
}

func TestReportFormat(t *testing.T) {
	f := sampleReport().Format()

	expected := Formatted{
		Locale:         "en-US",
		OriginalAmount: "$1,000.00",
		AdjustedAmount: "$1,071.00",
		CumulativeRate: "7.00%",
		AverageRate:    "3.50%",
		Health:         "moderate",
		Icon:           "🟠",
	}
	if f != expected {
		t.Errorf("Format() = %+v, expected %+v", f, expected)
	}

	empty := emptyReport().Format()
	if empty.Message != "No data available for Atlantis or year range." {
		t.Errorf("Message = %q", empty.Message)
	}
	if empty.AdjustedAmount != "" || empty.Health != "" {
		t.Errorf("expected no result fields, got %+v", empty)
	}
}

func TestHealthIcon(t *testing.T) {
	tests := map[inflation.Health]string{
		inflation.HealthDeflation: "🟢",
		inflation.HealthLow:       "🟡",
		inflation.HealthModerate:  "🟠",
		inflation.HealthHigh:      "🔴",
	}
	for health, icon := range tests {
		if got := HealthIcon(health); got != icon {
			t.Errorf("HealthIcon(%s) = %s, expected %s", health, got, icon)
		}
	}
}

func TestPrettyFormat(t *testing.T) {
	var buf bytes.Buffer
	PrettyFormat(&buf, sampleReport())
	output := buf.String()

	for _, want := range []string{
		"🟠 Inflation Result for United States (2019-2021)",
		"Original amount",
		"$1,000.00",
		"Adjusted amount",
		"$1,071.00",
		"Cumulative inflation",
		"7.00%",
		"Average annual inflation",
		"3.50%",
		"Inflation health",
		"moderate",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("PrettyFormat output missing %q:\n%s", want, output)
		}
	}
}

func TestPrettyFormatNoData(t *testing.T) {
	var buf bytes.Buffer
	PrettyFormat(&buf, emptyReport())

	if !strings.Contains(buf.String(), "No data available for Atlantis or year range.") {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestCsvFormat(t *testing.T) {
	expected := "country,currency,startYear,endYear,amount,adjustedAmount,cumulativeRate,averageRate,health\n" +
		"United States,USD,2019,2021,1000.00,1071.00,7.00,3.50,moderate\n"
	if got := CsvString(sampleReport()); got != expected {
		t.Errorf("CsvString() = %q, expected %q", got, expected)
	}

	empty := CsvString(emptyReport())
	if !strings.HasSuffix(empty, "Atlantis,USD,2019,2020,100.00,,,,\n") {
		t.Errorf("unexpected CSV for empty report %q", empty)
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := JSONFormat(&buf, sampleReport()); err != nil {
		t.Fatalf("JSONFormat() error = %v", err)
	}

	var decoded struct {
		Country   string            `json:"country"`
		Result    *inflation.Result `json:"result"`
		Formatted Formatted         `json:"formatted"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode JSON: %v", err)
	}
	if decoded.Country != "United States" {
		t.Errorf("Country = %q", decoded.Country)
	}
	if decoded.Result == nil || decoded.Result.Health != inflation.HealthModerate {
		t.Errorf("unexpected result %+v", decoded.Result)
	}
	if decoded.Formatted.AdjustedAmount != "$1,071.00" {
		t.Errorf("Formatted.AdjustedAmount = %q", decoded.Formatted.AdjustedAmount)
	}

	buf.Reset()
	if err := JSONFormat(&buf, emptyReport()); err != nil {
		t.Fatalf("JSONFormat() error = %v", err)
	}
	if !strings.Contains(buf.String(), `"result": null`) {
		t.Errorf("expected null result, got %s", buf.String())
	}
}
