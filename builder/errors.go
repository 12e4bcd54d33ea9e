// SPDX-License-Identifier: MIT
package builder

import (
	"errors"
	"fmt"

	"github.com/AnacletoLAB/ensmallen-sub009/core"
)

// ErrTooFewVertices indicates a generator size below its minimum.
var ErrTooFewVertices = fmt.Errorf("builder: parameter too small: %w", core.ErrInvalidParameter)

// ErrInvalidProbability indicates a probability outside [0, 1].
var ErrInvalidProbability = fmt.Errorf("builder: probability out of range: %w", core.ErrInvalidParameter)

// ErrOptionViolation indicates that a WithX option received an invalid value.
var ErrOptionViolation = fmt.Errorf("builder: invalid option value: %w", core.ErrInvalidParameter)

// ErrMissingWeight indicates an unweighted record in a weighted stream.
var ErrMissingWeight = errors.New("builder: record without weight in a weighted stream")

// lineErrorf prefixes an error with the record line that caused it.
func lineErrorf(line int, format string, args ...any) error {
	return fmt.Errorf("builder: line %d: %w", line, fmt.Errorf(format, args...))
}
