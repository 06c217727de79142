// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"strings"
	"unicode/utf8"
)

// A Parser declares the input a symbology accepts.
type Parser interface {
	// ValidChars returns the characters accepted in the data.
	ValidChars() string
	// ValidLen returns the accepted data length in characters,
	// from min up to but not including max.
	ValidLen() (min, max int)
}

// An inclusiveParser also accepts data of max characters.  Its length
// errors still report max-1 as the upper bound.
type inclusiveParser interface {
	Parser
	inclusiveLen()
}

// Parse checks data against p.  It returns a LengthError if the
// length of data is out of range, or a CharError for the first
// character not accepted by p.  Otherwise data is returned unchanged.
func Parse(p Parser, data string) (string, error) {
	min, max := p.ValidLen()
	limit := max
	if _, ok := p.(inclusiveParser); ok {
		limit++
	}
	if n := utf8.RuneCountInString(data); n < min || n >= limit {
		return "", LengthError{Min: min, Max: max, Len: n}
	}
	chars := p.ValidChars()
	pos := 0
	for _, r := range data {
		if !strings.ContainsRune(chars, r) {
			return "", CharError{Char: r, Pos: pos}
		}
		pos++
	}
	return data, nil
}

const decimal = "0123456789"

// digits converts parsed decimal data into digit values.
// Data must have been accepted by Parse with decimal characters.
func digits(dst []byte, data string) {
	if len(data) != len(dst) {
		panic("ean: unreachable: digit count " + data)
	}
	for i := 0; i < len(data); i++ {
		c := data[i]
		if c < '0' || c > '9' {
			panic("ean: unreachable: non-digit in " + data)
		}
		dst[i] = c - '0'
	}
}

// modulo10 computes the EAN/UPC check digit of d.  Digits in the same
// position parity as the last one have weight 3, the others weight 1.
func modulo10(d []byte) byte {
	var sum int
	for i, v := range d {
		if (len(d)-1-i)&1 == 0 {
			sum += 3 * int(v)
		} else {
			sum += int(v)
		}
	}
	return byte((10 - sum%10) % 10)
}
