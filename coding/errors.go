// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrCheckDigit is returned when a check digit supplied with the data
// does not match the computed one.
var ErrCheckDigit = errors.New("ean: check digit mismatch")

// LengthError represents data whose length in characters is outside
// the range [Min, Max).
type LengthError struct {
	Min, Max int // accepted range, Max excluded
	Len      int // length of the rejected data
}

func (e LengthError) Error() string {
	return fmt.Sprintf("ean: data does not fit within range of %d-%d",
		e.Min, e.Max-1)
}

// CharError represents the first character not accepted by a
// symbology.
type CharError struct {
	Char rune // offending character
	Pos  int  // its index in characters
}

func (e CharError) Error() string {
	return fmt.Sprintf("ean: invalid character: %c", e.Char)
}

// VariantError represents a supplemental digit count other than 2 or 5.
type VariantError int

func (e VariantError) Error() string {
	return fmt.Sprintf("ean: invalid supplemental length: %d", int(e))
}
