// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// EAN13 is an EAN-13 barcode.
type EAN13 struct {
	data [12]byte
}

// NewEAN13 returns an EAN-13 barcode of 12 decimal digits.  If
// a 13th digit is given, it must be the check digit, or ErrCheckDigit
// is returned.
func NewEAN13(data string) (EAN13, error) {
	var e EAN13
	s, err := Parse(e, data)
	if err != nil {
		return EAN13{}, err
	}
	if len(s) == 13 {
		var check [1]byte
		digits(check[:], s[12:])
		digits(e.data[:], s[:12])
		if e.Checksum() != check[0] {
			return EAN13{}, ErrCheckDigit
		}
		return e, nil
	}
	digits(e.data[:], s)
	return e, nil
}

func (EAN13) ValidChars() string { return decimal }

func (EAN13) ValidLen() (min, max int) { return 12, 14 }

// RawData returns the 12 data digits, without the check digit.
func (e EAN13) RawData() []byte {
	d := e.data
	return d[:]
}

// Checksum returns the check digit.
func (e EAN13) Checksum() byte { return modulo10(e.data[:]) }

// Encode returns the modules of e.  The first digit is not encoded
// directly, it selects the sides of the six left hand digits.
func (e EAN13) Encode() Bits {
	d := e.data
	return Join(leftGuard[:],
		encodeDigits(nil, d[1:7], ean13Parity[d[0]][:]),
		middleGuard[:],
		encodeSide(nil, Right, d[7:]...),
		encodeSide(nil, Right, e.Checksum()),
		rightGuard[:])
}
