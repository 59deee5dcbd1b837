// SPDX-License-Identifier: MIT

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter is below the constructor's
// minimum, or that the target graph has fewer vertices than the constructor needs.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrInvalidCode indicates an edge code with bits beyond PairCount(n), or n too
// large for a 64-bit code.
var ErrInvalidCode = errors.New("builder: invalid edge code")

// ErrConstructFailed indicates a nil constructor or a rejected edge.
var ErrConstructFailed = errors.New("builder: construction failed")
