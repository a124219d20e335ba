package docstore

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/exp/slog"
)

type Mode int

const (
	ModeEmulated Mode = iota
	ModeDriver
)

func (m Mode) String() string {
	switch m {
	case ModeDriver:
		return "driver"
	default:
		return "emulated"
	}
}

// Prober reports whether the real database is currently reachable. It must be
// cheap: implementations read cached state, they do not round-trip.
type Prober interface {
	Connected() bool
}

// StaticProber is a Prober with a fixed answer.
type StaticProber bool

func (p StaticProber) Connected() bool {
	return bool(p)
}

// Factory selects which backend serves the application's collections. The
// choice is made once, when the factory is built, and changes only through
// Reconfigure. Handles returned by Model follow the current choice.
type Factory struct {
	emulated Backend
	driver   Backend
	probe    Prober
	log      *slog.Logger

	mu   sync.RWMutex
	mode Mode
}

// NewFactory builds a factory over the emulated store and an optional driver
// backend. driver and probe may be nil, which pins the emulated mode.
func NewFactory(emulated Backend, driver Backend, probe Prober, log *slog.Logger) *Factory {
	f := &Factory{
		emulated: emulated,
		driver:   driver,
		probe:    probe,
		log:      log.With("component", "store_factory"),
	}
	f.mode = f.decide()
	f.log.Info("document store mode selected", "mode", f.mode.String())
	return f
}

func (f *Factory) decide() Mode {
	if f.driver != nil && f.probe != nil && f.probe.Connected() {
		return ModeDriver
	}
	return ModeEmulated
}

func (f *Factory) Mode() Mode {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.mode
}

// Reconfigure re-reads the probe and switches backends if the answer changed.
// The two backends hold different data; run Copy first when switching must
// not hide records.
func (f *Factory) Reconfigure() Mode {
	next := f.decide()

	f.mu.Lock()
	prev := f.mode
	f.mode = next
	f.mu.Unlock()

	if prev != next {
		f.log.Warn("document store mode changed", "from", prev.String(), "to", next.String())
	}
	return next
}

// Backend returns the backend for mode, or nil when no driver is configured.
func (f *Factory) Backend(mode Mode) Backend {
	if mode == ModeDriver {
		return f.driver
	}
	return f.emulated
}

// Collection resolves name against the current backend.
func (f *Factory) Collection(name string) (Collection, error) {
	if !Known(name) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCollection, name)
	}
	return f.Backend(f.Mode()).Collection(name)
}

// Model returns a stable handle on name that resolves the backend per call.
func (f *Factory) Model(name string) (*Model, error) {
	if !Known(name) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCollection, name)
	}
	return &Model{name: name, factory: f}, nil
}

// MustModel is Model for the fixed collection names wired at startup.
func (f *Factory) MustModel(name string) *Model {
	m, err := f.Model(name)
	if err != nil {
		panic(err)
	}
	return m
}

// Model is a Collection that delegates to whatever backend the factory
// currently selects.
type Model struct {
	name    string
	factory *Factory
}

func (m *Model) Name() string {
	return m.name
}

func (m *Model) collection() (Collection, error) {
	return m.factory.Collection(m.name)
}

func (m *Model) Find(ctx context.Context, f Filter) ([]Record, error) {
	c, err := m.collection()
	if err != nil {
		return nil, err
	}
	return c.Find(ctx, f)
}

func (m *Model) FindOne(ctx context.Context, f Filter) (Record, error) {
	c, err := m.collection()
	if err != nil {
		return nil, err
	}
	return c.FindOne(ctx, f)
}

func (m *Model) FindByID(ctx context.Context, id any) (Record, error) {
	c, err := m.collection()
	if err != nil {
		return nil, err
	}
	return c.FindByID(ctx, id)
}

func (m *Model) Count(ctx context.Context, f Filter) (int, error) {
	c, err := m.collection()
	if err != nil {
		return 0, err
	}
	return c.Count(ctx, f)
}

func (m *Model) Create(ctx context.Context, fields Record) (Record, error) {
	c, err := m.collection()
	if err != nil {
		return nil, err
	}
	return c.Create(ctx, fields)
}

func (m *Model) UpdateOne(ctx context.Context, f Filter, patch Patch, opts UpdateOptions) (Record, error) {
	c, err := m.collection()
	if err != nil {
		return nil, err
	}
	return c.UpdateOne(ctx, f, patch, opts)
}

func (m *Model) UpdateByID(ctx context.Context, id any, patch Patch, opts UpdateOptions) (Record, error) {
	c, err := m.collection()
	if err != nil {
		return nil, err
	}
	return c.UpdateByID(ctx, id, patch, opts)
}

func (m *Model) DeleteOne(ctx context.Context, f Filter) (Record, error) {
	c, err := m.collection()
	if err != nil {
		return nil, err
	}
	return c.DeleteOne(ctx, f)
}

func (m *Model) DeleteByID(ctx context.Context, id any) (Record, error) {
	c, err := m.collection()
	if err != nil {
		return nil, err
	}
	return c.DeleteByID(ctx, id)
}

func (m *Model) DeleteMany(ctx context.Context, f Filter) (int, error) {
	c, err := m.collection()
	if err != nil {
		return 0, err
	}
	return c.DeleteMany(ctx, f)
}
