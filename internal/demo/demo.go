// internal/demo/demo.go
package demo

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/FairForge/toyvec/internal/config"
	"github.com/FairForge/toyvec/internal/vec"
)

// ErrNoValues is returned when there is nothing to read through the cursor
var ErrNoValues = errors.New("demo: at least one value is required")

// ErrNotRejected means the container accepted a push while a cursor was alive
var ErrNotRejected = errors.New("demo: push while borrowed was accepted")

// Report summarizes a demo run
type Report struct {
	First    string
	Rejected error
	Contents []string
	Len      int
	Cap      int
}

// Runner drives the borrow/release scenario against a string container
type Runner struct {
	logger   *zap.Logger
	observer vec.Observer
	out      io.Writer
}

// NewRunner creates a runner. observer may be nil.
func NewRunner(logger *zap.Logger, observer vec.Observer, out io.Writer) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	if out == nil {
		out = io.Discard
	}
	return &Runner{logger: logger, observer: observer, out: out}
}

// Run pushes the configured values, takes a cursor and reads one element,
// checks that a push is refused while the cursor is alive, releases it and
// pushes the remaining values.
func (r *Runner) Run(cfg config.DemoConfig) (*Report, error) {
	// An empty cursor is exhausted on its first read and gives up its lease.
	if len(cfg.Values) == 0 {
		return nil, ErrNoValues
	}

	opts := []vec.Option{vec.WithLogger(r.logger.Named("vec"))}
	if r.observer != nil {
		opts = append(opts, vec.WithObserver(r.observer))
	}
	v := vec.WithCapacity[string](cfg.InitialCapacity, opts...)

	if err := r.pushAll(v, cfg.Values); err != nil {
		return nil, err
	}

	report := &Report{}
	cur := v.Iter()
	first, _ := cur.Next()
	report.First = first
	r.printf("cursor %s read %q\n", cur.ID(), first)

	err := v.Push(cfg.Blocked)
	if err == nil {
		cur.Release()
		return nil, ErrNotRejected
	}
	if !vec.IsBorrowed(err) {
		cur.Release()
		return nil, fmt.Errorf("demo: push %q: %w", cfg.Blocked, err)
	}
	report.Rejected = err
	r.printf("push %q rejected while cursor is alive\n", cfg.Blocked)
	r.logger.Info("push rejected as expected", zap.String("value", cfg.Blocked))

	cur.Release()

	if err := r.pushAll(v, cfg.Late); err != nil {
		return nil, err
	}

	for i, s := range v.All() {
		report.Contents = append(report.Contents, s)
		r.printf("[%d] %s\n", i, s)
	}
	report.Len = v.Len()
	report.Cap = v.Cap()
	r.printf("len=%d cap=%d\n", report.Len, report.Cap)

	return report, nil
}

func (r *Runner) pushAll(v *vec.Vec[string], values []string) error {
	for _, s := range values {
		if err := v.Push(s); err != nil {
			return fmt.Errorf("demo: push %q: %w", s, err)
		}
		r.printf("pushed %q (len=%d cap=%d)\n", s, v.Len(), v.Cap())
	}
	return nil
}

func (r *Runner) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(r.out, format, args...)
}
