package demo

import (
	"bytes"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/FairForge/toyvec/internal/config"
	"github.com/FairForge/toyvec/internal/metrics"
	"github.com/FairForge/toyvec/internal/vec"
)

func TestRunner_Run(t *testing.T) {
	t.Run("default scenario", func(t *testing.T) {
		// Arrange
		var out bytes.Buffer
		runner := NewRunner(zap.NewNop(), nil, &out)

		// Act
		report, err := runner.Run(config.Default().Demo)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "Java Finch", report.First)
		assert.True(t, vec.IsBorrowed(report.Rejected))
		assert.Equal(t, []string{"Java Finch", "Budgerigar", "Canary"}, report.Contents)
		assert.Equal(t, 3, report.Len)
		assert.Equal(t, 4, report.Cap)
		assert.Contains(t, out.String(), `push "Hill Myna" rejected`)
		assert.Contains(t, out.String(), "[2] Canary")
	})

	t.Run("presized container does not grow", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		collector, err := metrics.NewCollector("demo", reg)
		require.NoError(t, err)
		runner := NewRunner(nil, collector, nil)

		report, err := runner.Run(config.DemoConfig{
			InitialCapacity: 8,
			Values:          []string{"A", "B"},
			Late:            []string{"C"},
			Blocked:         "X",
		})

		require.NoError(t, err)
		assert.Equal(t, 8, report.Cap)

		var buf bytes.Buffer
		require.NoError(t, metrics.WriteText(&buf, reg))
		assert.Contains(t, buf.String(), "demo_growths_total 0")
		assert.Contains(t, buf.String(), `demo_borrow_rejections_total{op="push"} 1`)
	})

	t.Run("requires values", func(t *testing.T) {
		runner := NewRunner(nil, nil, nil)

		_, err := runner.Run(config.DemoConfig{Blocked: "X", Late: []string{"Y"}})

		assert.ErrorIs(t, err, ErrNoValues)
	})
}
