// Package calc holds the error taxonomy shared by the calculation
// packages underneath it.
package calc

import "errors"

// ErrDegenerateGeometry is returned when a solve would divide by a vanished
// geometric quantity (zero MCT, zero metacentric lever, zero buoyancy sum)
// instead of letting an Inf or NaN propagate into the results.
var ErrDegenerateGeometry = errors.New("calc: degenerate geometry")

// ErrMissingTable is returned when no reference table at all is available
// for a lookup, after the documented fallbacks have been tried.
var ErrMissingTable = errors.New("calc: reference table not available")
