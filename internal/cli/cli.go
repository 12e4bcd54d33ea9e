// Package cli implements the ensmallen command-line interface.
//
// Graphs are generated from the [graph] section of a TOML run file; the
// commands then run one algorithm over the graph and print one record per
// line on stdout. Logs go to stderr and carry a per-run identifier.
//
// # Commands
//
//   - info: summary, cached properties and diameter
//   - walks: complete or random walks
//   - components: spanning arborescence and connected components
//   - scc: strongly connected components
//   - paths: shortest path between two nodes
//   - centrality: node scores
package cli

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/AnacletoLAB/ensmallen-sub009/core"
)

// Log levels accepted by New and SetLogLevel.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// Exit codes by error kind.
const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitOutOfRange  = 3
	ExitMissing     = 4
	ExitMalformed   = 5
	ExitNoConverge  = 6
	ExitInterrupted = 130
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Out    io.Writer

	config Config
	run    uuid.UUID
}

// New creates a CLI writing results to out and logs to logs.
func New(out, logs io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(logs, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
		Out:    out,
		config: DefaultConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// ExitCode maps err to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if errors.Is(err, context.Canceled) {
		return ExitInterrupted
	}
	switch core.KindOf(err) {
	case core.KindOutOfRange:
		return ExitOutOfRange
	case core.KindMissingFeature:
		return ExitMissing
	case core.KindMalformedInput:
		return ExitMalformed
	case core.KindNonConvergence:
		return ExitNoConverge
	default:
		return ExitFailure
	}
}
