// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// Bits is an encoded barcode: one element per module, 1 is a bar,
// 0 is a space.
type Bits []byte

// String returns b as a string of '0' and '1'.
func (b Bits) String() string {
	s := make([]byte, len(b))
	for i, v := range b {
		s[i] = '0' + v
	}
	return string(s)
}

// Join concatenates seqs in order.
func Join(seqs ...[]byte) Bits {
	n := 0
	for _, s := range seqs {
		n += len(s)
	}
	b := make(Bits, 0, n)
	for _, s := range seqs {
		b = append(b, s...)
	}
	return b
}
