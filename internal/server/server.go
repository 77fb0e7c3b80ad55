// Package server exposes the inflation calculator over HTTP and serves the
// embedded web UI.
package server

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/iwvelando/inflation-calculator/internal/config"
	"github.com/iwvelando/inflation-calculator/internal/dataset"
	"github.com/iwvelando/inflation-calculator/pkg/constants"
	"github.com/iwvelando/inflation-calculator/pkg/inflation"
	"github.com/iwvelando/inflation-calculator/pkg/output"
	"github.com/iwvelando/inflation-calculator/pkg/validation"
	"go.uber.org/zap"
)

//go:embed static/*
var staticFiles embed.FS

type handler struct {
	logger         *zap.Logger
	store          *dataset.Store
	calculator     *inflation.Calculator
	defaults       config.Defaults
	maxRequestSize int64
	version        string
}

// NewHandler constructs the HTTP handler that serves the web UI and calculator API.
func NewHandler(logger *zap.Logger, store *dataset.Store, defaults config.Defaults, maxRequestSize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxRequestSize <= 0 {
		maxRequestSize = constants.DefaultMaxRequestSizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{
		logger:         logger,
		store:          store,
		calculator:     inflation.NewCalculator(logger),
		defaults:       defaults,
		maxRequestSize: maxRequestSize,
		version:        trimmedVersion,
	}

	mux := http.NewServeMux()

	// Reference data
	mux.HandleFunc("/api/countries", h.handleCountries)
	mux.HandleFunc("/api/countries/", h.handleCountry)
	mux.HandleFunc("/api/currencies", h.handleCurrencies)

	// Initial page state
	mux.HandleFunc("/api/defaults", h.handleDefaults)

	// Calculation endpoint
	mux.HandleFunc("/api/calculate", h.handleCalculate)

	// Version endpoint for UI metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	// Static assets (web UI)
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("failed to prepare embedded static files: %v", err))
	}
	fileServer := http.FileServer(http.FS(sub))
	mux.Handle("/", fileServer)

	return mux
}

type countrySummary struct {
	Name       string   `json:"name"`
	Code       string   `json:"code"`
	Currencies []string `json:"currencies"`
	FirstYear  *int     `json:"firstYear,omitempty"`
	LastYear   *int     `json:"lastYear,omitempty"`
}

type countryDetail struct {
	countrySummary
	IndicatorName string          `json:"indicatorName"`
	IndicatorCode string          `json:"indicatorCode"`
	Years         []int           `json:"years"`
	Selection     selection       `json:"selection"`
	Report        output.Document `json:"report"`
}

type selection struct {
	Currency  string  `json:"currency"`
	StartYear int     `json:"startYear"`
	EndYear   int     `json:"endYear"`
	Amount    float64 `json:"amount"`
}

type calculateRequest struct {
	Country   string   `json:"country"`
	Currency  string   `json:"currency"`
	StartYear int      `json:"startYear"`
	EndYear   int      `json:"endYear"`
	Amount    *float64 `json:"amount"`
}

func (h *handler) handleCountries(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	d := h.store.Get()
	countries := d.Countries()
	summaries := make([]countrySummary, 0, len(countries))
	for _, country := range countries {
		summaries = append(summaries, summarize(d, country))
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"countries": summaries,
	})
}

func (h *handler) handleCountry(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	key := strings.TrimPrefix(r.URL.Path, "/api/countries/")
	if key == "" {
		h.respondErrorWithOp(w, http.StatusBadRequest, "missing country", "server.handleCountry")
		return
	}

	h.writeCountryDetail(w, key, h.defaults.FallbackCurrency, "server.handleCountry")
}

func (h *handler) handleDefaults(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeCountryDetail(w, h.defaults.Country, h.defaults.Currency, "server.handleDefaults")
}

func (h *handler) writeCountryDetail(w http.ResponseWriter, key, fallbackCurrency, op string) {
	d := h.store.Get()
	sel, err := d.DefaultSelection(key, fallbackCurrency, h.defaultAmount())
	if err != nil {
		h.respondLookupError(w, err, op)
		return
	}

	result, ok := h.calculator.Calculate(inflation.Request{
		Series:    sel.Country.Data,
		StartYear: sel.StartYear,
		EndYear:   sel.EndYear,
		Amount:    sel.Amount,
	})
	report := output.NewReport(sel.Country.Name, sel.Currency, sel.StartYear, sel.EndYear, sel.Amount, result, ok)

	h.writeJSON(w, http.StatusOK, countryDetail{
		countrySummary: summarize(d, sel.Country),
		IndicatorName:  sel.Country.IndicatorName,
		IndicatorCode:  sel.Country.IndicatorCode,
		Years:          dataset.AvailableYears(sel.Country),
		Selection: selection{
			Currency:  sel.Currency,
			StartYear: sel.StartYear,
			EndYear:   sel.EndYear,
			Amount:    sel.Amount,
		},
		Report: output.NewDocument(report),
	})
}

func (h *handler) handleCurrencies(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"currencies": h.store.Get().Currencies(),
	})
}

func (h *handler) handleCalculate(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleCalculate"

	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	r.Body = http.MaxBytesReader(w, r.Body, h.maxRequestSize)

	var req calculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondErrorWithOp(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxRequestSize), op)
			return
		}
		h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), op)
		return
	}

	amount := h.defaultAmount()
	if req.Amount != nil {
		amount = *req.Amount
	}
	if err := validation.ValidateAmount(amount); err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	d := h.store.Get()
	country, err := d.Country(req.Country)
	if err != nil {
		h.respondLookupError(w, err, op)
		return
	}

	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if currency == "" {
		currency = d.DefaultCurrency(country.Code, h.defaults.FallbackCurrency)
	} else if err := validation.ValidateCurrency(currency, d.Currencies()); err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	calcReq := inflation.Request{
		Series:    country.Data,
		StartYear: req.StartYear,
		EndYear:   req.EndYear,
		Amount:    amount,
	}
	result, ok := h.calculator.Calculate(calcReq)
	report := output.NewReport(country.Name, currency, req.StartYear, req.EndYear, amount, result, ok)

	fields := []zap.Field{
		zap.String("op", op),
		zap.String("country", country.Code),
		zap.Int("startYear", req.StartYear),
		zap.Int("endYear", req.EndYear),
		zap.Bool("result", ok),
		zap.Duration("duration", time.Since(start)),
	}
	if !ok {
		fields = append(fields, zap.NamedError("reason", h.calculator.Explain(calcReq)))
	}
	h.logger.Info("inflation calculated", fields...)

	h.writeJSON(w, http.StatusOK, output.NewDocument(report))
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) defaultAmount() float64 {
	if h.defaults.Amount < 0 {
		return constants.DefaultAmount
	}
	return h.defaults.Amount
}

func summarize(d *dataset.Dataset, country dataset.Country) countrySummary {
	summary := countrySummary{
		Name:       country.Name,
		Code:       country.Code,
		Currencies: d.CurrenciesFor(country.Code),
	}
	if first, last, ok := country.Data.Bounds(); ok {
		summary.FirstYear = &first
		summary.LastYear = &last
	}
	return summary
}

func (h *handler) respondLookupError(w http.ResponseWriter, err error, op string) {
	if errors.Is(err, dataset.ErrUnknownCountry) {
		h.respondErrorWithOp(w, http.StatusNotFound, err.Error(), op)
		return
	}
	h.respondErrorWithOp(w, http.StatusInternalServerError, err.Error(), op)
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		h.logger.Error("failed to encode JSON response",
			zap.String("op", "server.writeJSON"),
			zap.Error(err),
		)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"failed to encode response"}` + "\n"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.logger.Error("failed to write JSON response",
			zap.String("op", "server.writeJSON"),
			zap.Error(err),
		)
	}
}
