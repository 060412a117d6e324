package knot

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
)

// StepResult is the outcome of one call to [Step].
type StepResult struct {
	// Intersections found this step, in scan order.
	Intersections []Intersection
	Match         MatchResult
	// Active is the active set for the next step. If Match.Found, the
	// matched range has been removed from it.
	Active []int
}

// Step scans the active set for intersections, matches them with m, and
// removes a matched range from the active set. It doesn't modify active.
func Step(active []int, segs []Segment, p ScanParams, m Matcher) StepResult {
	xs := Scan(active, segs, p)
	res := StepResult{
		Intersections: xs,
		Match:         m.Match(xs),
		Active:        active,
	}
	if res.Match.Found {
		res.Active = Partition(active, res.Match.Begin, res.Match.End)
	}
	return res
}

// Option configures a [Detector].
type Option func(*Detector)

// WithLogger sets the detector's logger. The default is [slog.Default].
func WithLogger(l *slog.Logger) Option {
	return func(d *Detector) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithMetrics makes the detector record metrics in m.
func WithMetrics(m *Metrics) Option {
	return func(d *Detector) { d.metrics = m }
}

// WithSink adds a sink that is notified of every confirmed knot.
func WithSink(s EventSink) Option {
	return func(d *Detector) {
		if s != nil {
			d.sinks = append(d.sinks, s)
		}
	}
}

// Detector finds knots in a rope, one simulation step at a time.
//
// The active set starts out as every segment of the first non-empty step and
// shrinks as knots are confirmed. Confirmed knots are kept in the detector's
// [Registry] until [Detector.Reset] is called.
//
// A Detector is not safe for concurrent use.
type Detector struct {
	cfg      Config
	params   ScanParams
	matcher  Matcher
	active   []int
	attached bool
	registry Registry

	logger  *slog.Logger
	metrics *Metrics
	sinks   []EventSink
}

// New returns a detector for the given configuration.
func New(cfg Config, opts ...Option) (*Detector, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("knot: %w", err)
	}
	m, err := MatcherFor(cfg.Kind)
	if err != nil {
		return nil, fmt.Errorf("knot: %w", err)
	}
	d := &Detector{
		cfg:     cfg,
		params:  cfg.Params(),
		matcher: m,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Advance runs one step of detection on the current segment positions and
// returns the events for knots confirmed in this step. Sinks are notified
// before Advance returns.
//
// An empty segs is a no-op.
func (d *Detector) Advance(segs []Segment) []Event {
	if len(segs) == 0 {
		return nil
	}
	if !d.attached {
		d.active = make([]int, len(segs))
		for i := range d.active {
			d.active[i] = i
		}
		d.attached = true
	}

	res := Step(d.active, segs, d.params, d.matcher)
	d.active = res.Active
	d.metrics.observeStep(len(res.Intersections), len(d.active))
	d.logger.Debug("knot: scanned step",
		slog.Int("intersections", len(res.Intersections)),
		slog.Int("active", len(d.active)))

	if !res.Match.Found {
		d.diagnose(res.Intersections)
		return nil
	}

	kind := d.matcher.Kind()
	rec := d.registry.add(kind, res.Intersections, res.Match)
	ev := Event{
		KnotID: rec.ID,
		UID:    rec.UID,
		Kind:   kind,
		Begin:  rec.Begin,
		End:    rec.End,
	}
	d.metrics.observeDetection(kind)
	d.logger.Info("knot: detected",
		slog.Int("id", rec.ID),
		slog.String("uid", rec.UID.String()),
		slog.String("kind", kind.String()),
		slog.Int("begin", rec.Begin),
		slog.Int("end", rec.End))
	for _, s := range d.sinks {
		s.KnotDetected(ev)
	}
	return []Event{ev}
}

func (d *Detector) diagnose(xs []Intersection) {
	if len(xs) == 0 || !d.logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	switch m := d.matcher.(type) {
	case Trefoil:
		_, why := m.Check(xs)
		d.logger.Debug("knot: trefoil rejected", slog.String("reason", why.String()))
	case FigureEight:
		d.logger.Debug("knot: figure-eight check", slog.Bool("consistent", m.Consistent(xs)))
	}
}

// Active returns a copy of the active set.
func (d *Detector) Active() []int {
	return slices.Clone(d.active)
}

// Registry returns the detector's knot registry.
func (d *Detector) Registry() *Registry {
	return &d.registry
}

// Params returns the scan parameters derived from the detector's
// configuration.
func (d *Detector) Params() ScanParams {
	return d.params
}

func (d *Detector) Config() Config {
	return d.cfg
}

func (d *Detector) Kind() Kind {
	return d.matcher.Kind()
}

// Reset forgets all confirmed knots. The next call to Advance starts with
// every segment active again.
func (d *Detector) Reset() {
	d.active = nil
	d.attached = false
	d.registry.Reset()
}
