package vec

import (
	"go.uber.org/zap"
)

// Observer receives storage events from a container. The metrics package
// provides a Prometheus-backed implementation.
type Observer interface {
	// Grew is called after the backing store was replaced; moved is the
	// number of elements relocated into the new store.
	Grew(oldCap, newCap, moved int)
	// CursorOpened is called each time Iter hands out a cursor.
	CursorOpened()
	// Rejected is called when a mutation is refused because of a live cursor.
	Rejected(op string)
}

type nopObserver struct{}

func (nopObserver) Grew(int, int, int) {}
func (nopObserver) CursorOpened()      {}
func (nopObserver) Rejected(string)    {}

type options struct {
	logger   *zap.Logger
	observer Observer
}

// Option configures a Vec
type Option func(*options)

// WithLogger sets the logger used for growth and violation events
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithObserver sets the observer notified of storage events
func WithObserver(observer Observer) Option {
	return func(o *options) {
		if observer != nil {
			o.observer = observer
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{
		logger:   zap.NewNop(),
		observer: nopObserver{},
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
