// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// A Supplemental is a 2 or 5 digit add-on barcode, printed to the right
// of a main barcode.  EAN-2 is used on magazines for the issue number,
// EAN-5 on books for the suggested retail price.
//
// Supplemental is implemented by EAN2 and EAN5 only.
type Supplemental interface {
	Parser
	// RawData returns the data digits.
	RawData() []byte
	// Checksum returns the weighted modulo 10 checksum.
	// Only EAN-5 uses it, to select parity.
	Checksum() byte
	// Encode returns the modules of the barcode.
	Encode() Bits

	parity() [5]byte
}

// EAN2 is a 2 digit supplemental barcode.
type EAN2 struct {
	supp
	data [2]byte
}

// EAN5 is a 5 digit supplemental barcode.
type EAN5 struct {
	supp
	data [5]byte
}

// supp carries the input declaration common to EAN2 and EAN5.
// Both 2 and 5 digits fit in one range, reported as 2-4.
type supp struct{}

func (supp) ValidChars() string { return decimal }

func (supp) ValidLen() (min, max int) { return 2, 5 }

func (supp) inclusiveLen() {}

// parseSupp parses data for a supplemental and returns its digits.
// Lengths 3 and 4 pass Parse and are rejected here.
func parseSupp(data string) ([]byte, error) {
	s, err := Parse(supp{}, data)
	if err != nil {
		return nil, err
	}
	if n := len(s); n != 2 && n != 5 {
		return nil, VariantError(n)
	}
	d := make([]byte, len(s))
	digits(d, s)
	return d, nil
}

// NewSupplemental returns an EAN2 or EAN5 depending on the number
// of digits in data.
func NewSupplemental(data string) (Supplemental, error) {
	d, err := parseSupp(data)
	if err != nil {
		return nil, err
	}
	if len(d) == 2 {
		var e EAN2
		copy(e.data[:], d)
		return e, nil
	}
	var e EAN5
	copy(e.data[:], d)
	return e, nil
}

// NewEAN2 returns an EAN-2 barcode of 2 decimal digits.
func NewEAN2(data string) (EAN2, error) {
	d, err := parseSupp(data)
	if err != nil {
		return EAN2{}, err
	}
	if len(d) != 2 {
		return EAN2{}, VariantError(len(d))
	}
	var e EAN2
	copy(e.data[:], d)
	return e, nil
}

// NewEAN5 returns an EAN-5 barcode of 5 decimal digits.
func NewEAN5(data string) (EAN5, error) {
	d, err := parseSupp(data)
	if err != nil {
		return EAN5{}, err
	}
	if len(d) != 5 {
		return EAN5{}, VariantError(len(d))
	}
	var e EAN5
	copy(e.data[:], d)
	return e, nil
}

func (e EAN2) RawData() []byte {
	d := e.data
	return d[:]
}

func (e EAN5) RawData() []byte {
	d := e.data
	return d[:]
}

func (e EAN2) Checksum() byte { return suppChecksum(e.data[:]) }

func (e EAN5) Checksum() byte { return suppChecksum(e.data[:]) }

func (e EAN2) parity() [5]byte {
	return ean2Parity[(e.data[0]*10+e.data[1])%4]
}

func (e EAN5) parity() [5]byte { return ean5Parity[e.Checksum()] }

func (e EAN2) Encode() Bits { return suppEncode(e.data[:], e.parity()) }

func (e EAN5) Encode() Bits { return suppEncode(e.data[:], e.parity()) }

// suppChecksum weighs odd positions (counting from 1) by 3 and even
// positions by 9.
func suppChecksum(d []byte) byte {
	var odds, evens int
	for i, v := range d {
		if i&1 == 0 {
			odds += int(v)
		} else {
			evens += int(v)
		}
	}
	return byte((odds*3 + evens*9) % 10)
}

func suppEncode(d []byte, parity [5]byte) Bits {
	b := make(Bits, 0, len(suppGuard)+len(d)*9-len(suppSeparator))
	b = append(b, suppGuard[:]...)
	for i, v := range d {
		if i > 0 {
			b = append(b, suppSeparator[:]...)
		}
		b = append(b, encodings[parity[i]][v][:]...)
	}
	return b
}
