package handler

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"net/http"
	"strings"

	"github.com/Lutefd/currency-widget/internal/commons"
	"github.com/Lutefd/currency-widget/internal/format"
	"github.com/Lutefd/currency-widget/internal/logger"
	"github.com/Lutefd/currency-widget/internal/metrics"
	api_middleware "github.com/Lutefd/currency-widget/internal/middleware"
	"github.com/Lutefd/currency-widget/internal/model"
	"github.com/Lutefd/currency-widget/internal/service"
	"github.com/Lutefd/currency-widget/internal/storage"
	"github.com/Lutefd/currency-widget/internal/widget"
)

//go:embed templates/widget.html
var templateFS embed.FS

var widgetTemplate = template.Must(template.ParseFS(templateFS, "templates/widget.html"))

// WidgetHandler serves the converter form. Each request drives its own
// widget, bound to the visitor's stored preferences.
type WidgetHandler struct {
	catalog   widget.CatalogLoader
	converter widget.RateConverter
	store     storage.Store
	formatter format.NumberFormatter
	metrics   *metrics.Metrics
}

func NewWidgetHandler(catalog widget.CatalogLoader, converter widget.RateConverter, store storage.Store, formatter format.NumberFormatter, m *metrics.Metrics) *WidgetHandler {
	return &WidgetHandler{
		catalog:   catalog,
		converter: converter,
		store:     store,
		formatter: formatter,
		metrics:   m,
	}
}

func (h *WidgetHandler) Index(w http.ResponseWriter, r *http.Request) {
	wg, ok := h.startWidget(w, r, &widget.Surface{})
	if !ok {
		return
	}
	h.render(w, http.StatusOK, wg.Snapshot())
}

func (h *WidgetHandler) Convert(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	wg, ok := h.startWidget(w, r, &widget.Surface{})
	if !ok {
		return
	}

	from, to := formPair(r, wg.Snapshot())
	status := http.StatusOK
	if err := wg.Submit(r.Context(), r.PostForm.Get("amount"), from, to); err != nil {
		switch {
		case errors.Is(err, model.ErrValidation):
			status = http.StatusUnprocessableEntity
		default:
			status = http.StatusBadGateway
		}
	}
	h.render(w, status, wg.Snapshot())
}

func (h *WidgetHandler) Swap(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	wg, ok := h.startWidget(w, r, &widget.Surface{Amount: r.PostForm.Get("amount")})
	if !ok {
		return
	}

	from, to := formPair(r, wg.Snapshot())
	wg.Select(from, to)
	wg.Swap(r.Context())
	h.render(w, http.StatusOK, wg.Snapshot())
}

func (h *WidgetHandler) startWidget(w http.ResponseWriter, r *http.Request, surface *widget.Surface) (*widget.Widget, bool) {
	prefs := service.NewPreferenceService(h.store, api_middleware.VisitorID(r.Context()), h.metrics)
	wg := widget.New(widget.Dependencies{
		Catalog:     h.catalog,
		Converter:   h.converter,
		Preferences: prefs,
		Formatter:   h.formatter,
	}, surface)

	ctx, cancel := context.WithTimeout(r.Context(), commons.WidgetStartTimeout)
	defer cancel()
	select {
	case <-wg.Start(ctx):
		return wg, true
	case <-ctx.Done():
		logger.Errorf(model.LogSourceHTTP, "widget did not become ready: %v", ctx.Err())
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
		return nil, false
	}
}

// formPair reads the submitted selections, keeping the restored ones for
// any field that is missing or not in the catalog.
func formPair(r *http.Request, current widget.Surface) (string, string) {
	from := strings.ToUpper(strings.TrimSpace(r.PostForm.Get("from")))
	to := strings.ToUpper(strings.TrimSpace(r.PostForm.Get("to")))
	if !model.ContainsCurrency(current.Options, from) {
		from = current.From
	}
	if !model.ContainsCurrency(current.Options, to) {
		to = current.To
	}
	return from, to
}

type pageData struct {
	widget.Surface
	Lang string
}

func (h *WidgetHandler) render(w http.ResponseWriter, status int, surface widget.Surface) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := widgetTemplate.Execute(w, pageData{Surface: surface, Lang: h.formatter.Locale()}); err != nil {
		logger.Errorf(model.LogSourceHTTP, "failed to render widget: %v", err)
	}
}
