package progress_test

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"

	"github.com/AnacletoLAB/ensmallen-sub009/internal/progress"
)

func TestSpan_LogsElapsedAtDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	span := progress.Start(logger, "tarjan", "nodes", 10)
	elapsed := span.Done("components", 3)

	assert.GreaterOrEqual(t, elapsed.Nanoseconds(), int64(0))
	out := buf.String()
	assert.Contains(t, out, "tarjan")
	assert.Contains(t, out, "elapsed=")
	assert.Contains(t, out, "components=3")
}

func TestSpan_SilentAboveDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.InfoLevel})

	progress.Start(logger, "quiet").Done()
	assert.Zero(t, buf.Len())

	progress.Info(logger, "shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestSpan_NilLogger(t *testing.T) {
	assert.NotPanics(t, func() {
		progress.Start(nil, "nothing").Done()
		progress.Info(nil, "nothing")
		progress.Warn(nil, "nothing")
	})
}
