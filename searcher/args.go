package searcher

import "math"

// Hyperparameters for child sampling

const WIDE_BRANCHING = 20 // Children from which the wide stride applies
const WIDE_STRIDE = 3

const MEDIUM_BRANCHING = 10 // Children from which the medium stride applies
const MEDIUM_STRIDE = 2

// Bounds for the backed-up values, beyond any heuristic score
const MAX_VALUE = math.MaxInt
const MIN_VALUE = math.MinInt
