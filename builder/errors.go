// SPDX-License-Identifier: MIT

package builder

import (
	"errors"
	"fmt"

	"github.com/Mearman/Academic-Explorer-sub005/core"
)

// Sentinel errors. Each wraps core.ErrInvalidInput.
var (
	// ErrTooFewVertices reports a size parameter below the constructor minimum.
	ErrTooFewVertices = fmt.Errorf("builder: parameter too small: %w", core.ErrInvalidInput)

	// ErrInvalidProbability reports a probability outside [0, 1].
	ErrInvalidProbability = fmt.Errorf("builder: probability out of range: %w", core.ErrInvalidInput)

	// ErrNeedRandSource reports a stochastic constructor run without WithSeed
	// or WithRand.
	ErrNeedRandSource = fmt.Errorf("builder: rng is required: %w", core.ErrInvalidInput)

	// ErrConstructFailed reports a nil constructor or a graph rejecting an
	// emitted vertex or edge.
	ErrConstructFailed = errors.New("builder: construction failed")
)
