package widget

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Lutefd/currency-widget/internal/format"
	"github.com/Lutefd/currency-widget/internal/logger"
	"github.com/Lutefd/currency-widget/internal/model"
)

type State string

const (
	StateIdle       State = "idle"
	StateLoading    State = "loading"
	StateReady      State = "ready"
	StateConverting State = "converting"
	StateError      State = "error"
)

var (
	ErrNotReady    = errors.New("widget is not ready")
	ErrStaleResult = errors.New("conversion superseded by a newer submission")
)

type CatalogLoader interface {
	Currencies(ctx context.Context) []model.Currency
}

type RateConverter interface {
	Convert(ctx context.Context, amount float64, from, to string) (model.ConversionResult, error)
}

type PreferenceStore interface {
	Load(ctx context.Context) model.PreferencePair
	Save(ctx context.Context, from, to string)
}

type Dependencies struct {
	Catalog     CatalogLoader
	Converter   RateConverter
	Preferences PreferenceStore
	Formatter   format.NumberFormatter
}

// Surface is everything the widget displays. A widget owns its surface for
// its whole lifetime; read it through Snapshot.
type Surface struct {
	State    State
	Amount   string
	From     string
	To       string
	Options  []model.Currency
	Status   string
	Result   string
	UnitRate string
	Meta     string
	Busy     bool
}

func (s Surface) ResultText() string {
	if s.Result == "" {
		return ResultPlaceholder
	}
	return s.Result
}

type Widget struct {
	deps Dependencies

	mu      sync.Mutex
	surface *Surface
	seq     uint64
	started chan struct{}
}

func New(deps Dependencies, surface *Surface) *Widget {
	if surface == nil {
		surface = &Surface{}
	}
	surface.State = StateIdle
	return &Widget{deps: deps, surface: surface}
}

// Start loads the catalog and restores the saved pair. The returned channel
// is closed once the widget is ready; later calls return the same channel.
func (w *Widget) Start(ctx context.Context) <-chan struct{} {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.started != nil {
		return w.started
	}

	done := make(chan struct{})
	w.started = done
	w.surface.State = StateLoading
	w.surface.Status = StatusLoading

	go func() {
		defer close(done)

		currencies := w.deps.Catalog.Currencies(ctx)
		pair := w.deps.Preferences.Load(ctx)

		w.mu.Lock()
		defer w.mu.Unlock()
		w.surface.Options = currencies
		w.surface.From = pickCurrency(currencies, pair.From)
		w.surface.To = pickCurrency(currencies, pair.To)
		w.surface.State = StateReady
		w.surface.Status = StatusReady
	}()

	return done
}

func pickCurrency(options []model.Currency, code string) string {
	if model.ContainsCurrency(options, code) {
		return code
	}
	if len(options) > 0 {
		return options[0].Code
	}
	return ""
}

// Select changes the current selections without persisting them.
func (w *Widget) Select(from, to string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.surface.From = from
	w.surface.To = to
}

// Swap exchanges the selections and persists the new pair right away.
func (w *Widget) Swap(ctx context.Context) model.PreferencePair {
	w.mu.Lock()
	w.surface.From, w.surface.To = w.surface.To, w.surface.From
	pair := model.PreferencePair{From: w.surface.From, To: w.surface.To}
	w.mu.Unlock()

	w.deps.Preferences.Save(ctx, pair.From, pair.To)
	return pair
}

// Submit validates rawAmount and converts it. Only the latest submission may
// update the surface; an older one that resolves later gets ErrStaleResult.
func (w *Widget) Submit(ctx context.Context, rawAmount, from, to string) error {
	w.mu.Lock()
	if w.surface.State == StateIdle || w.surface.State == StateLoading {
		w.mu.Unlock()
		return ErrNotReady
	}
	w.surface.Amount = rawAmount
	w.surface.From = from
	w.surface.To = to

	amount, err := ParseAmount(rawAmount)
	if err != nil {
		w.surface.Status = StatusInvalidAmount
		w.mu.Unlock()
		return err
	}

	w.seq++
	seq := w.seq
	w.surface.State = StateConverting
	w.surface.Status = StatusConverting
	w.surface.Busy = true
	w.mu.Unlock()

	result, err := w.deps.Converter.Convert(ctx, amount, from, to)

	w.mu.Lock()
	if seq != w.seq {
		w.mu.Unlock()
		logger.Infof(model.LogSourceWidget, "discarding conversion %s->%s #%d", from, to, seq)
		return ErrStaleResult
	}
	w.surface.Busy = false

	if err != nil {
		w.surface.State = StateError
		w.surface.Status = StatusFailed
		w.mu.Unlock()
		logger.Errorf(model.LogSourceWidget, "conversion %s->%s failed: %v", from, to, err)
		return err
	}

	w.render(result, from, to)
	w.surface.State = StateReady
	w.surface.Status = ""
	w.mu.Unlock()

	w.deps.Preferences.Save(ctx, from, to)
	return nil
}

func (w *Widget) render(result model.ConversionResult, from, to string) {
	unit, ok := result.UnitRate()
	if !ok && from == to {
		unit, ok = 1, true
	}

	w.surface.Result = fmt.Sprintf("%s %s", w.deps.Formatter.Format(result.ConvertedAmount), to)
	if ok {
		w.surface.UnitRate = fmt.Sprintf(unitRateFormat, from, w.deps.Formatter.Format(unit), to, result.AsOfDate)
	} else {
		w.surface.UnitRate = ""
	}
	w.surface.Meta = fmt.Sprintf(metaFormat, result.AsOfDate)
}

func (w *Widget) Snapshot() Surface {
	w.mu.Lock()
	defer w.mu.Unlock()
	return *w.surface
}
