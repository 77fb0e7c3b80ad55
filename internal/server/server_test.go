package server

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iwvelando/inflation-calculator/internal/config"
	"github.com/iwvelando/inflation-calculator/internal/dataset"
	"github.com/iwvelando/inflation-calculator/pkg/constants"
	"github.com/iwvelando/inflation-calculator/pkg/inflation"
	"github.com/iwvelando/inflation-calculator/pkg/output"
	"github.com/iwvelando/inflation-calculator/pkg/testutil"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()

	d, err := dataset.Load(zap.NewNop(), testutil.DataPaths(filepath.Join("..", "..", "test", "data")))
	if err != nil {
		t.Fatalf("failed to load test dataset: %v", err)
	}

	defaults := config.Defaults{
		Country:          "Viet Nam",
		Currency:         "VND",
		FallbackCurrency: "USD",
		Amount:           1000,
	}
	return NewHandler(zap.NewNop(), dataset.NewStore(d), defaults, constants.DefaultMaxRequestSizeBytes, "1.2.3")
}

func performJSON(t *testing.T, handler http.Handler, method, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	if payload != nil {
		if err := json.NewEncoder(&body).Encode(payload); err != nil {
			t.Fatalf("failed to encode payload: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

type documentResponse struct {
	Country   string            `json:"country"`
	Currency  string            `json:"currency"`
	StartYear int               `json:"startYear"`
	EndYear   int               `json:"endYear"`
	Amount    float64           `json:"amount"`
	Result    *inflation.Result `json:"result"`
	Formatted output.Formatted  `json:"formatted"`
}

type detailResponse struct {
	Name       string           `json:"name"`
	Code       string           `json:"code"`
	Currencies []string         `json:"currencies"`
	FirstYear  *int             `json:"firstYear"`
	LastYear   *int             `json:"lastYear"`
	Years      []int            `json:"years"`
	Selection  selection        `json:"selection"`
	Report     documentResponse `json:"report"`
}

func TestHandleCalculateSuccess(t *testing.T) {
	handler := newTestHandler(t)

	amount := 1000.0
	rr := performJSON(t, handler, http.MethodPost, "/api/calculate", calculateRequest{
		Country:   "USA",
		Currency:  "USD",
		StartYear: 2019,
		EndYear:   2021,
		Amount:    &amount,
	})

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp documentResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Result == nil {
		t.Fatal("expected result in response")
	}
	if resp.Result.AdjustedAmount != 1071 || resp.Result.CumulativeRate != 7 || resp.Result.AverageRate != 3.5 {
		t.Errorf("unexpected result %+v", resp.Result)
	}
	if resp.Result.Health != inflation.HealthModerate {
		t.Errorf("expected moderate health, got %s", resp.Result.Health)
	}
	if resp.Country != "United States" {
		t.Errorf("expected country name, got %q", resp.Country)
	}
	if resp.Formatted.AdjustedAmount != "$1,071.00" {
		t.Errorf("unexpected formatted amount %q", resp.Formatted.AdjustedAmount)
	}
	if resp.Formatted.Locale != "en-US" {
		t.Errorf("unexpected locale %q", resp.Formatted.Locale)
	}
}

func TestHandleCalculateNoData(t *testing.T) {
	handler := newTestHandler(t)

	tests := []struct {
		name string
		req  calculateRequest
	}{
		{"Null year in range", calculateRequest{Country: "Japan", StartYear: 2019, EndYear: 2023}},
		{"Inverted range", calculateRequest{Country: "Japan", StartYear: 2022, EndYear: 2019}},
		{"Country without data", calculateRequest{Country: "Atlantis", StartYear: 2019, EndYear: 2020}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := performJSON(t, handler, http.MethodPost, "/api/calculate", tt.req)
			if rr.Code != http.StatusOK {
				t.Fatalf("expected status 200, got %d: %s", rr.Code, rr.Body.String())
			}

			var resp documentResponse
			if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp.Result != nil {
				t.Fatalf("expected null result, got %+v", resp.Result)
			}
			if !strings.HasPrefix(resp.Formatted.Message, "No data available for ") {
				t.Errorf("unexpected message %q", resp.Formatted.Message)
			}
		})
	}
}

func TestHandleCalculateDefaultsCurrencyAndAmount(t *testing.T) {
	handler := newTestHandler(t)

	rr := performJSON(t, handler, http.MethodPost, "/api/calculate", map[string]interface{}{
		"country":   "Japan",
		"startYear": 2019,
		"endYear":   2021,
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp documentResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Currency != "JPY" {
		t.Errorf("expected JPY default currency, got %q", resp.Currency)
	}
	if resp.Amount != 1000 {
		t.Errorf("expected default amount, got %v", resp.Amount)
	}
	if resp.Result == nil || resp.Result.Health != inflation.HealthDeflation {
		t.Errorf("expected deflation result, got %+v", resp.Result)
	}
}

func TestHandleCalculateZeroAmount(t *testing.T) {
	handler := newTestHandler(t)

	rr := performJSON(t, handler, http.MethodPost, "/api/calculate", map[string]interface{}{
		"country":   "USA",
		"startYear": 2019,
		"endYear":   2020,
		"amount":    0,
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp documentResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Amount != 0 || resp.Result == nil || resp.Result.AdjustedAmount != 0 {
		t.Errorf("expected zero amount to be honoured, got %+v", resp)
	}
}

func TestHandleCalculateErrors(t *testing.T) {
	handler := newTestHandler(t)

	tests := []struct {
		name     string
		payload  interface{}
		expected int
	}{
		{
			name:     "Negative amount",
			payload:  map[string]interface{}{"country": "USA", "startYear": 2019, "endYear": 2020, "amount": -5},
			expected: http.StatusBadRequest,
		},
		{
			name:     "Unknown country",
			payload:  map[string]interface{}{"country": "Narnia", "startYear": 2019, "endYear": 2020},
			expected: http.StatusNotFound,
		},
		{
			name:     "Unknown currency",
			payload:  map[string]interface{}{"country": "USA", "currency": "XYZ", "startYear": 2019, "endYear": 2020},
			expected: http.StatusBadRequest,
		},
		{
			name:     "Wrong field type",
			payload:  map[string]interface{}{"country": "USA", "startYear": "2019"},
			expected: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := performJSON(t, handler, http.MethodPost, "/api/calculate", tt.payload)
			if rr.Code != tt.expected {
				t.Fatalf("expected status %d, got %d: %s", tt.expected, rr.Code, rr.Body.String())
			}

			var resp map[string]string
			if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp["error"] == "" {
				t.Fatal("expected error message in response")
			}
		})
	}
}

func TestHandleCalculateOverflowingAmount(t *testing.T) {
	history := map[string]dataset.Country{
		"Testland": {
			Name: "Testland",
			Code: "TST",
			Data: inflation.Series{2019: inflation.RateOf(50)},
		},
	}
	d := dataset.New(history, map[string][]string{"TST": {"USD"}}, []string{"USD"})
	handler := NewHandler(zap.NewNop(), dataset.NewStore(d), config.Defaults{FallbackCurrency: "USD"}, 0, "")

	rr := performJSON(t, handler, http.MethodPost, "/api/calculate", map[string]interface{}{
		"country":   "TST",
		"startYear": 2019,
		"endYear":   2020,
		"amount":    1.5e308,
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp documentResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response %q: %v", rr.Body.String(), err)
	}
	if resp.Result != nil {
		t.Fatalf("expected null result, got %+v", resp.Result)
	}
	if resp.Formatted.Message != "No data available for Testland or year range." {
		t.Errorf("unexpected message %q", resp.Formatted.Message)
	}
}

func TestWriteJSONEncodingFailure(t *testing.T) {
	h := &handler{logger: zap.NewNop()}

	rr := httptest.NewRecorder()
	h.writeJSON(rr, http.StatusOK, map[string]float64{"value": math.Inf(1)})

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rr.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response %q: %v", rr.Body.String(), err)
	}
	if resp["error"] == "" {
		t.Fatal("expected error message in response")
	}
}

func TestHandleCalculateRequestTooLarge(t *testing.T) {
	d := dataset.New(nil, nil, nil)
	handler := NewHandler(zap.NewNop(), dataset.NewStore(d), config.Defaults{}, 16, "")

	body := strings.NewReader(`{"country": "` + strings.Repeat("x", 64) + `"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/calculate", body)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected status 413, got %d: %s", rr.Code, rr.Body.String())
	}
}

func TestHandleCalculateMethodNotAllowed(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/calculate", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status 405, got %d", rr.Code)
	}
}

func TestHandleCountries(t *testing.T) {
	handler := newTestHandler(t)

	rr := performJSON(t, handler, http.MethodGet, "/api/countries", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}

	var resp struct {
		Countries []countrySummary `json:"countries"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Countries) != 4 {
		t.Fatalf("expected 4 countries, got %d", len(resp.Countries))
	}
	if resp.Countries[0].Name != "Atlantis" || resp.Countries[3].Name != "Viet Nam" {
		t.Errorf("expected countries sorted by name, got %+v", resp.Countries)
	}
	if resp.Countries[0].FirstYear != nil {
		t.Errorf("expected no year bounds for Atlantis")
	}
	usa := resp.Countries[2]
	if usa.FirstYear == nil || *usa.FirstYear != 2019 || *usa.LastYear != 2022 {
		t.Errorf("unexpected bounds for %s", usa.Name)
	}
	if len(usa.Currencies) != 2 || usa.Currencies[0] != "USD" {
		t.Errorf("unexpected currencies %v", usa.Currencies)
	}
}

func TestHandleCountry(t *testing.T) {
	handler := newTestHandler(t)

	rr := performJSON(t, handler, http.MethodGet, "/api/countries/JPN", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp detailResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Name != "Japan" || resp.Code != "JPN" {
		t.Errorf("unexpected country %s/%s", resp.Name, resp.Code)
	}
	if len(resp.Years) != 3 {
		t.Errorf("expected 3 years with data, got %v", resp.Years)
	}
	if resp.Selection.Currency != "JPY" || resp.Selection.StartYear != 2019 || resp.Selection.EndYear != 2022 {
		t.Errorf("unexpected selection %+v", resp.Selection)
	}
	// 2021 has no rate, so the default range yields no result.
	if resp.Report.Result != nil {
		t.Errorf("expected no default result, got %+v", resp.Report.Result)
	}
}

func TestHandleCountryFallbackCurrency(t *testing.T) {
	handler := newTestHandler(t)

	rr := performJSON(t, handler, http.MethodGet, "/api/countries/Atlantis", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp detailResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Selection.Currency != "USD" {
		t.Errorf("expected fallback currency USD, got %q", resp.Selection.Currency)
	}
	if resp.Report.Formatted.Message != "No data available for Atlantis or year range." {
		t.Errorf("unexpected message %q", resp.Report.Formatted.Message)
	}
}

func TestHandleCountryNotFound(t *testing.T) {
	handler := newTestHandler(t)

	rr := performJSON(t, handler, http.MethodGet, "/api/countries/Narnia", nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rr.Code)
	}
}

func TestHandleDefaults(t *testing.T) {
	handler := newTestHandler(t)

	rr := performJSON(t, handler, http.MethodGet, "/api/defaults", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp detailResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Name != "Viet Nam" {
		t.Errorf("expected Viet Nam, got %q", resp.Name)
	}
	if resp.Selection.Currency != "VND" || resp.Selection.Amount != 1000 {
		t.Errorf("unexpected selection %+v", resp.Selection)
	}
	if resp.Report.Result == nil {
		t.Fatal("expected default result")
	}
	if resp.Report.Result.Years != 3 {
		t.Errorf("expected 3 compounded years, got %d", resp.Report.Result.Years)
	}
	if resp.Report.Formatted.Locale != "vi-VN" {
		t.Errorf("expected vi-VN locale, got %q", resp.Report.Formatted.Locale)
	}
}

func TestHandleCurrencies(t *testing.T) {
	handler := newTestHandler(t)

	rr := performJSON(t, handler, http.MethodGet, "/api/currencies", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}

	var resp map[string][]string
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp["currencies"]) != 5 {
		t.Errorf("unexpected currencies %v", resp["currencies"])
	}
}

func TestHandleVersion(t *testing.T) {
	handler := newTestHandler(t)

	rr := performJSON(t, handler, http.MethodGet, "/api/version", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp["version"] != "1.2.3" {
		t.Fatalf("expected version 1.2.3, got %q", resp["version"])
	}

	dev := NewHandler(nil, dataset.NewStore(dataset.New(nil, nil, nil)), config.Defaults{}, 0, "  ")
	rr = performJSON(t, dev, http.MethodGet, "/api/version", nil)
	if !strings.Contains(rr.Body.String(), `"dev"`) {
		t.Fatalf("expected dev version, got %s", rr.Body.String())
	}
}

func TestStaticIndex(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Inflation Calculator") {
		t.Fatal("expected embedded index page")
	}
}

func TestStoreSwapIsVisible(t *testing.T) {
	store := dataset.NewStore(dataset.New(nil, nil, []string{"USD"}))
	handler := NewHandler(zap.NewNop(), store, config.Defaults{}, 0, "")

	store.Set(dataset.New(nil, nil, []string{"EUR", "GBP"}))

	rr := performJSON(t, handler, http.MethodGet, "/api/currencies", nil)
	var resp map[string][]string
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp["currencies"]) != 2 || resp["currencies"][0] != "EUR" {
		t.Fatalf("expected swapped dataset, got %v", resp["currencies"])
	}
}
