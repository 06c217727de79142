// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "strings"

// code39Chars lists Code 39 data characters in order of their value.
const code39Chars = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ-. $/+%"

// code39Widths holds the nine elements of each character, bars and
// spaces alternating from the first bar, most significant bit first.
// A set bit is a wide element.
var code39Widths = [len(code39Chars)]uint16{
	0x034, 0x121, 0x061, 0x160, 0x031, 0x130, 0x070, 0x025, 0x124, 0x064,
	0x109, 0x049, 0x148, 0x019, 0x118, 0x058, 0x00d, 0x10c, 0x04c, 0x01c,
	0x103, 0x043, 0x142, 0x013, 0x112, 0x052, 0x007, 0x106, 0x046, 0x016,
	0x181, 0x0c1, 0x1c0, 0x091, 0x190, 0x0d0, 0x085, 0x184, 0x0c4, 0x0a8,
	0x0a2, 0x08a, 0x02a,
}

// code39Guard is the start/stop character '*'.
const code39Guard = 0x094

// Code39Width is the number of modules in a Code 39 character.
const Code39Width = 12

// Code39 is a Code 39 barcode.
type Code39 struct {
	data  string
	check bool
}

// NewCode39 returns a Code 39 barcode of data.
func NewCode39(data string) (Code39, error) {
	s, err := Parse(Code39{}, data)
	if err != nil {
		return Code39{}, err
	}
	return Code39{data: s}, nil
}

// NewCode39Checksum returns a Code 39 barcode of data followed by
// a modulo 43 check character.
func NewCode39Checksum(data string) (Code39, error) {
	c, err := NewCode39(data)
	c.check = err == nil
	return c, err
}

func (Code39) ValidChars() string { return code39Chars }

func (Code39) ValidLen() (min, max int) { return 1, 256 }

// RawData returns the data passed to the constructor.
func (c Code39) RawData() string { return c.data }

// HasChecksum reports whether c carries a check character.
func (c Code39) HasChecksum() bool { return c.check }

// Checksum returns the modulo 43 check character of the data.
func (c Code39) Checksum() byte {
	sum := 0
	for i := 0; i < len(c.data); i++ {
		sum += code39Value(c.data[i])
	}
	return code39Chars[sum%len(code39Chars)]
}

func code39Value(c byte) int {
	v := strings.IndexByte(code39Chars, c)
	if v < 0 {
		panic("ean: unreachable: Code 39 character " + string(c))
	}
	return v
}

// appendCode39 appends the modules of the character with element
// widths w to b.
func appendCode39(b []byte, w uint16) []byte {
	for i := 8; i >= 0; i-- {
		bar := byte(^i & 1) // elements 8, 6, ... are bars
		b = append(b, bar)
		if w>>uint(i)&1 != 0 {
			b = append(b, bar)
		}
	}
	return b
}

// Encode returns the modules of c: start character, data, optional
// check character and stop character, separated by narrow spaces.
func (c Code39) Encode() Bits {
	n := len(c.data) + 2
	if c.check {
		n++
	}
	b := make(Bits, 0, n*(Code39Width+1)-1)
	b = appendCode39(b, code39Guard)
	for i := 0; i < len(c.data); i++ {
		b = append(b, 0)
		b = appendCode39(b, code39Widths[code39Value(c.data[i])])
	}
	if c.check {
		b = append(b, 0)
		b = appendCode39(b, code39Widths[code39Value(c.Checksum())])
	}
	b = append(b, 0)
	return appendCode39(b, code39Guard)
}
