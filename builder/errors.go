// SPDX-License-Identifier: MIT
// Package: jigsaw/builder
//
// errors.go — sentinel errors for the builder package.
//
// Callers branch with errors.Is; context is attached with %w at call sites.

package builder

import "errors"

// ErrTooFewPieces indicates a rows or cols parameter below the minimum of 1.
var ErrTooFewPieces = errors.New("builder: parameter too small")
