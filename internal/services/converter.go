package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

//go:generate mockgen -source=converter.go -destination=converter_mock.go -package=services

// RateTableReader fetches the latest rate table for a source currency.
type RateTableReader interface {
	GetRateTable(ctx context.Context, source string) (models.RateTable, error)
}

// Alerter shows a modal notice to the user.
type Alerter interface {
	Alert(ctx context.Context, alert models.Alert)
}

// ConversionPublisher receives every applied conversion result.
type ConversionPublisher interface {
	PublishConversion(ctx context.Context, result models.ConversionResult) error
}

// Recorder observes conversion outcomes and provider latency.
type Recorder interface {
	ObserveConversion(outcome string)
	ObserveProviderLatency(d time.Duration)
}

// Conversion outcomes reported to the Recorder.
const (
	OutcomeSuccess      = "success"
	OutcomeInvalid      = "invalid"
	OutcomeRateNotFound = "rate_not_found"
	OutcomeNetwork      = "network_error"
	OutcomeSuperseded   = "superseded"
)

var (
	// ErrValidation is the parent of all input validation failures.
	ErrValidation = errors.New("validation error")
	// ErrInvalidAmount is returned when the amount is empty, non-numeric or negative.
	ErrInvalidAmount = fmt.Errorf("%w: invalid amount", ErrValidation)
	// ErrUnsupportedCurrency is returned for codes outside the supported set.
	ErrUnsupportedCurrency = fmt.Errorf("%w: unsupported currency", ErrValidation)
	// ErrRateNotFound is returned when the target is missing from the rate table.
	ErrRateNotFound = errors.New("conversion rate not found")
	// ErrNetwork is returned when the rate table could not be fetched.
	ErrNetwork = errors.New("network error")
	// ErrSuperseded is returned when a newer conversion was dispatched before this one finished.
	ErrSuperseded = errors.New("conversion superseded by a newer request")
)

// Converter owns the converter screen state and runs conversions.
type Converter struct {
	rates     RateTableReader
	alerter   Alerter
	publisher ConversionPublisher
	recorder  Recorder
	validate  *validator.Validate
	now       func() time.Time

	mu     sync.Mutex
	state  models.ViewState
	seq    uint64 // last dispatched request
	active uint64 // request currently holding the loading flag, 0 when none
}

// ConverterOption configures optional Converter collaborators.
type ConverterOption func(*Converter)

// WithPublisher publishes every applied result.
func WithPublisher(p ConversionPublisher) ConverterOption {
	return func(c *Converter) { c.publisher = p }
}

// WithRecorder reports outcomes to r.
func WithRecorder(r Recorder) ConverterOption {
	return func(c *Converter) { c.recorder = r }
}

// WithClock overrides the time source used for ConvertedAt.
func WithClock(now func() time.Time) ConverterOption {
	return func(c *Converter) { c.now = now }
}

// NewConverter creates a converter in the start-up state.
func NewConverter(rates RateTableReader, alerter Alerter, opts ...ConverterOption) *Converter {
	c := &Converter{
		rates:    rates,
		alerter:  alerter,
		validate: newValidator(),
		now:      time.Now,
		state:    models.NewViewState(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("amount", func(fl validator.FieldLevel) bool {
		_, err := models.ParseAmount(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("currency", func(fl validator.FieldLevel) bool {
		return models.IsSupportedCurrency(fl.Field().String())
	})
	return v
}

// State returns a snapshot of the screen state.
func (c *Converter) State() models.ViewState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Clone()
}

// Start runs the initial conversion with the default inputs.
func (c *Converter) Start(ctx context.Context) error {
	_, err := c.Convert(ctx, models.NewViewState().Request())
	return err
}

// SetAmount stores the amount text. It never triggers a conversion.
func (c *Converter) SetAmount(amount string) {
	c.mu.Lock()
	c.state.Amount = amount
	c.mu.Unlock()
}

// Refresh converts the current inputs, as the Convert button does.
func (c *Converter) Refresh(ctx context.Context) error {
	_, err := c.convert(ctx, func() (models.ConversionRequest, bool) {
		return c.state.Request(), true
	})
	return err
}

// SelectSourceCurrency changes the source selector and reconverts when the value changed.
func (c *Converter) SelectSourceCurrency(ctx context.Context, code string) error {
	return c.selectCurrency(ctx, code, func(s *models.ViewState) *string { return &s.SourceCurrency })
}

// SelectTargetCurrency changes the target selector and reconverts when the value changed.
func (c *Converter) SelectTargetCurrency(ctx context.Context, code string) error {
	return c.selectCurrency(ctx, code, func(s *models.ViewState) *string { return &s.TargetCurrency })
}

func (c *Converter) selectCurrency(ctx context.Context, code string, field func(*models.ViewState) *string) error {
	if !models.IsSupportedCurrency(code) {
		logger.Log.Warnw("rejected unsupported currency selection", "currency", code)
		return fmt.Errorf("%w: %q", ErrUnsupportedCurrency, code)
	}

	_, err := c.convert(ctx, func() (models.ConversionRequest, bool) {
		target := field(&c.state)
		if *target == code {
			return models.ConversionRequest{}, false
		}
		*target = code
		return c.state.Request(), true
	})
	return err
}

// Convert validates req, fetches the rate table for its source currency and
// applies amount × rate to the screen state. Invalid input never reaches the
// network and leaves the state untouched apart from the recorded alert.
// Responses older than the latest dispatched request are discarded with ErrSuperseded.
func (c *Converter) Convert(ctx context.Context, req models.ConversionRequest) (*models.ConversionResult, error) {
	return c.convert(ctx, func() (models.ConversionRequest, bool) { return req, true })
}

// convert calls prepare and numbers the request it returns under one hold of
// c.mu, so sequence numbers follow the order in which inputs were set.
// prepare returning false skips the conversion.
func (c *Converter) convert(ctx context.Context, prepare func() (models.ConversionRequest, bool)) (*models.ConversionResult, error) {
	c.mu.Lock()
	req, ok := prepare()
	if !ok {
		c.mu.Unlock()
		return nil, nil
	}
	amount, seq, err := c.dispatch(req)
	c.mu.Unlock()

	if err != nil {
		logger.Log.Warnw("conversion rejected", "amount", req.Amount,
			"source", req.SourceCurrency, "target", req.TargetCurrency, "error", err)
		c.alerter.Alert(ctx, alertFor(err))
		c.observe(OutcomeInvalid)
		return nil, err
	}
	return c.execute(ctx, req, amount, seq)
}

// dispatch validates req and either records the validation alert or enters
// the loading state under a new sequence number. Callers must hold c.mu.
func (c *Converter) dispatch(req models.ConversionRequest) (float64, uint64, error) {
	amount, err := c.validateRequest(req)
	if err != nil {
		alert := alertFor(err)
		c.state.Alert = &alert
		return 0, 0, err
	}
	return amount, c.startLoading(), nil
}

func alertFor(err error) models.Alert {
	if errors.Is(err, ErrUnsupportedCurrency) {
		return models.AlertInvalidCurrency
	}
	return models.AlertInvalidAmount
}

// execute fetches the rate table for a dispatched request and applies the outcome.
func (c *Converter) execute(ctx context.Context, req models.ConversionRequest, amount float64, seq uint64) (*models.ConversionResult, error) {
	requestID := uuid.NewString()
	logger.Log.Infow("conversion started", "request_id", requestID, "seq", seq,
		"amount", amount, "source", req.SourceCurrency, "target", req.TargetCurrency)

	started := c.now()
	table, err := c.rates.GetRateTable(ctx, req.SourceCurrency)
	if c.recorder != nil {
		c.recorder.ObserveProviderLatency(c.now().Sub(started))
	}
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrNetwork, err)
		return nil, c.fail(ctx, seq, requestID, err, models.AlertNetwork, OutcomeNetwork)
	}

	rate, ok := table[req.TargetCurrency]
	if !ok || rate <= 0 {
		err = fmt.Errorf("%w: %s -> %s", ErrRateNotFound, req.SourceCurrency, req.TargetCurrency)
		return nil, c.fail(ctx, seq, requestID, err, models.AlertRateNotFound, OutcomeRateNotFound)
	}

	result := models.ConversionResult{
		Amount:          amount,
		SourceCurrency:  req.SourceCurrency,
		TargetCurrency:  req.TargetCurrency,
		Rate:            rate,
		ConvertedAmount: amount * rate,
		ConvertedAt:     c.now(),
	}

	if !c.applyResult(seq, result) {
		logger.Log.Infow("discarded stale conversion result", "request_id", requestID, "seq", seq)
		c.observe(OutcomeSuperseded)
		return &result, ErrSuperseded
	}

	logger.Log.Infow("conversion completed", "request_id", requestID, "seq", seq,
		"rate", rate, "converted_amount", result.ConvertedAmount)
	c.observe(OutcomeSuccess)
	c.publish(ctx, result)

	return &result, nil
}

func (c *Converter) validateRequest(req models.ConversionRequest) (float64, error) {
	if err := c.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				if fe.Tag() == "currency" {
					return 0, fmt.Errorf("%w: %s=%q", ErrUnsupportedCurrency, fe.Field(), fe.Value())
				}
			}
		}
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, req.Amount)
	}

	amount, err := models.ParseAmount(req.Amount)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidAmount, err)
	}
	return amount, nil
}

func (c *Converter) fail(ctx context.Context, seq uint64, requestID string, err error, alert models.Alert, outcome string) error {
	if !c.applyError(seq, err, alert) {
		logger.Log.Infow("discarded stale conversion failure", "request_id", requestID, "seq", seq, "error", err)
		c.observe(OutcomeSuperseded)
		return ErrSuperseded
	}

	logger.Log.Errorw("conversion failed", "request_id", requestID, "seq", seq, "error", err)
	c.alerter.Alert(ctx, alert)
	c.observe(outcome)
	return err
}

// startLoading enters the loading state and returns the new request's sequence number.
// Callers must hold c.mu.
func (c *Converter) startLoading() uint64 {
	c.seq++
	c.active = c.seq
	c.state.Loading = true
	c.state.Status = models.StatusLoading
	return c.seq
}

// applyResult stores result and releases loading if seq is still the latest request.
func (c *Converter) applyResult(seq uint64, result models.ConversionResult) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.release(seq) {
		return false
	}
	c.state.Status = models.StatusResult
	c.state.Result = &result
	c.state.Error = ""
	c.state.Alert = nil
	return true
}

// applyError clears the result and releases loading if seq is still the latest request.
func (c *Converter) applyError(seq uint64, err error, alert models.Alert) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.release(seq) {
		return false
	}
	c.state.Status = models.StatusError
	c.state.Result = nil
	c.state.Error = models.ErrorDisplay
	c.state.Alert = &alert
	return true
}

// release clears the loading flag exactly once, for the latest request only.
// Callers must hold c.mu.
func (c *Converter) release(seq uint64) bool {
	if seq != c.active {
		return false
	}
	c.active = 0
	c.state.Loading = false
	return true
}

func (c *Converter) observe(outcome string) {
	if c.recorder != nil {
		c.recorder.ObserveConversion(outcome)
	}
}

func (c *Converter) publish(ctx context.Context, result models.ConversionResult) {
	if c.publisher == nil {
		return
	}
	if err := c.publisher.PublishConversion(ctx, result); err != nil {
		logger.Log.Errorw("failed to publish conversion", "source", result.SourceCurrency,
			"target", result.TargetCurrency, "error", err)
	}
}
