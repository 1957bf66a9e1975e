package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Lutefd/currency-widget/internal/commons"
	"github.com/Lutefd/currency-widget/internal/metrics"
	api_middleware "github.com/Lutefd/currency-widget/internal/middleware"
	"github.com/Lutefd/currency-widget/internal/model"
	"github.com/Lutefd/currency-widget/internal/service"
	"github.com/Lutefd/currency-widget/internal/storage"
	"github.com/Lutefd/currency-widget/internal/widget"
)

type APIHandler struct {
	catalog   widget.CatalogLoader
	converter widget.RateConverter
	store     storage.Store
	metrics   *metrics.Metrics
}

func NewAPIHandler(catalog widget.CatalogLoader, converter widget.RateConverter, store storage.Store, m *metrics.Metrics) *APIHandler {
	return &APIHandler{
		catalog:   catalog,
		converter: converter,
		store:     store,
		metrics:   m,
	}
}

type currencyResponse struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Label string `json:"label"`
}

type conversionResponse struct {
	From            string   `json:"from"`
	To              string   `json:"to"`
	Amount          float64  `json:"amount"`
	Rate            float64  `json:"rate"`
	ConvertedAmount float64  `json:"convertedAmount"`
	UnitRate        *float64 `json:"unitRate,omitempty"`
	AsOfDate        string   `json:"asOfDate"`
}

func (h *APIHandler) ListCurrencies(w http.ResponseWriter, r *http.Request) {
	currencies := h.catalog.Currencies(r.Context())
	resp := make([]currencyResponse, 0, len(currencies))
	for _, c := range currencies {
		resp = append(resp, currencyResponse{Code: c.Code, Name: c.Name, Label: c.Label()})
	}
	commons.RespondWithJSON(w, http.StatusOK, resp)
}

func (h *APIHandler) Convert(w http.ResponseWriter, r *http.Request) {
	from := strings.ToUpper(r.URL.Query().Get("from"))
	to := strings.ToUpper(r.URL.Query().Get("to"))
	amountStr := r.URL.Query().Get("amount")

	if from == "" || to == "" || amountStr == "" {
		commons.RespondWithError(w, http.StatusBadRequest, "Missing required parameters")
		return
	}
	if len(from) != commons.CurrencyCodeLength || len(to) != commons.CurrencyCodeLength {
		commons.RespondWithError(w, http.StatusBadRequest, "Invalid currency code, must be 3 characters long following ISO 4217")
		return
	}
	amount, err := widget.ParseAmount(amountStr)
	if err != nil {
		commons.RespondWithError(w, http.StatusBadRequest, "Invalid amount")
		return
	}

	result, err := h.converter.Convert(r.Context(), amount, from, to)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrRateUnavailable):
			commons.RespondWithError(w, http.StatusBadGateway, "Rate unavailable")
		default:
			commons.RespondWithError(w, http.StatusBadGateway, "Conversion failed")
		}
		return
	}

	h.preferences(r).Save(r.Context(), from, to)

	resp := conversionResponse{
		From:            from,
		To:              to,
		Amount:          result.RequestedAmount,
		Rate:            result.Rate,
		ConvertedAmount: result.ConvertedAmount,
		AsOfDate:        result.AsOfDate,
	}
	if unit, ok := result.UnitRate(); ok {
		resp.UnitRate = &unit
	}
	commons.RespondWithJSON(w, http.StatusOK, resp)
}

func (h *APIHandler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	commons.RespondWithJSON(w, http.StatusOK, h.preferences(r).Load(r.Context()))
}

func (h *APIHandler) SwapPreferences(w http.ResponseWriter, r *http.Request) {
	prefs := h.preferences(r)
	pair := prefs.Load(r.Context()).Swapped()
	prefs.Save(r.Context(), pair.From, pair.To)
	commons.RespondWithJSON(w, http.StatusOK, pair)
}

func (h *APIHandler) preferences(r *http.Request) *service.PreferenceService {
	return service.NewPreferenceService(h.store, api_middleware.VisitorID(r.Context()), h.metrics)
}
