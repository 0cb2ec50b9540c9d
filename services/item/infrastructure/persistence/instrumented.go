// Package persistence holds cross-cutting wrappers shared by the item store
// implementations in its subpackages.
package persistence

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/ghuser/itemservice/services/item/domain/models"
	"github.com/ghuser/itemservice/services/item/domain/repositories"
)

const instrumentationName = "github.com/ghuser/itemservice/services/item/infrastructure/persistence"

// Option configures an InstrumentedRepository.
type Option func(*options)

type options struct {
	tp trace.TracerProvider
	mp metric.MeterProvider
}

// WithTracerProvider overrides the global tracer provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *options) { o.tp = tp }
}

// WithMeterProvider overrides the global meter provider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *options) { o.mp = mp }
}

// InstrumentedRepository wraps an ItemRepository with a span, an operation
// counter and a latency histogram per call. Results pass through unchanged.
type InstrumentedRepository struct {
	next     repositories.ItemRepository
	store    attribute.KeyValue
	tracer   trace.Tracer
	calls    metric.Int64Counter
	duration metric.Float64Histogram
}

var _ repositories.ItemRepository = (*InstrumentedRepository)(nil)

// NewInstrumentedRepository wraps next. store names the implementation
// (memory, positional, named, generated) on every span and data point.
func NewInstrumentedRepository(next repositories.ItemRepository, store string, opts ...Option) (*InstrumentedRepository, error) {
	o := options{tp: otel.GetTracerProvider(), mp: otel.GetMeterProvider()}
	for _, opt := range opts {
		opt(&o)
	}

	meter := o.mp.Meter(instrumentationName)
	calls, err := meter.Int64Counter("item_store.operations",
		metric.WithDescription("Item store calls by operation and outcome"),
		metric.WithUnit("{call}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create operations counter: %w", err)
	}
	duration, err := meter.Float64Histogram("item_store.operation.duration",
		metric.WithDescription("Item store call latency"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("create duration histogram: %w", err)
	}

	return &InstrumentedRepository{
		next:     next,
		store:    attribute.String("item_store", store),
		tracer:   o.tp.Tracer(instrumentationName),
		calls:    calls,
		duration: duration,
	}, nil
}

func (r *InstrumentedRepository) Save(ctx context.Context, item *models.Item) (*models.Item, error) {
	var saved *models.Item
	err := r.observe(ctx, "save", func(ctx context.Context) error {
		var err error
		saved, err = r.next.Save(ctx, item)
		return err
	})
	return saved, err
}

func (r *InstrumentedRepository) Update(ctx context.Context, id int64, fields models.UpdateFields) error {
	return r.observe(ctx, "update", func(ctx context.Context) error {
		return r.next.Update(ctx, id, fields)
	}, attribute.Int64("item.id", id))
}

func (r *InstrumentedRepository) FindByID(ctx context.Context, id int64) (*models.Item, bool, error) {
	var (
		item  *models.Item
		found bool
	)
	err := r.observe(ctx, "find_by_id", func(ctx context.Context) error {
		var err error
		item, found, err = r.next.FindByID(ctx, id)
		return err
	}, attribute.Int64("item.id", id))
	return item, found, err
}

func (r *InstrumentedRepository) FindAll(ctx context.Context, cond models.SearchCondition) ([]*models.Item, error) {
	var items []*models.Item
	err := r.observe(ctx, "find_all", func(ctx context.Context) error {
		var err error
		items, err = r.next.FindAll(ctx, cond)
		return err
	}, attribute.Bool("filter.name", cond.HasName()), attribute.Bool("filter.max_price", cond.HasMaxPrice()))
	return items, err
}

func (r *InstrumentedRepository) observe(ctx context.Context, op string, fn func(context.Context) error, attrs ...attribute.KeyValue) error {
	ctx, span := r.tracer.Start(ctx, "item_store."+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(append(attrs, r.store)...),
	)
	defer span.End()

	start := time.Now()
	err := fn(ctx)
	elapsed := time.Since(start).Seconds()

	outcome := "ok"
	if err != nil {
		outcome = "error"
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	set := metric.WithAttributes(r.store, attribute.String("operation", op), attribute.String("outcome", outcome))
	r.calls.Add(ctx, 1, set)
	r.duration.Record(ctx, elapsed, set)
	return err
}
