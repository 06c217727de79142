// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// EAN8 is an EAN-8 barcode, used on small packages.
type EAN8 struct {
	data [7]byte
}

// NewEAN8 returns an EAN-8 barcode of 7 decimal digits.  The check
// digit is computed.
func NewEAN8(data string) (EAN8, error) {
	var e EAN8
	s, err := Parse(e, data)
	if err != nil {
		return EAN8{}, err
	}
	digits(e.data[:], s)
	return e, nil
}

func (EAN8) ValidChars() string { return decimal }

func (EAN8) ValidLen() (min, max int) { return 7, 8 }

// RawData returns the digits passed to NewEAN8.
func (e EAN8) RawData() []byte {
	d := e.data
	return d[:]
}

// Checksum returns the check digit.
func (e EAN8) Checksum() byte { return modulo10(e.data[:]) }

// Encode returns the modules of e: left guard, number system and two
// left digits, middle guard, three right digits and the check digit,
// right guard.
func (e EAN8) Encode() Bits {
	d := e.data
	return Join(leftGuard[:],
		encodeSide(nil, Odd, d[:2]...),
		encodeSide(nil, Odd, d[2:4]...),
		middleGuard[:],
		encodeSide(nil, Right, d[4:]...),
		encodeSide(nil, Right, e.Checksum()),
		rightGuard[:])
}
