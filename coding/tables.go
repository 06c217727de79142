// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// Sides of the EAN encoding tables.
const (
	Odd   = iota // left hand, odd parity (set A, "L")
	Even         // left hand, even parity (set B, "G")
	Right        // right hand (set C, "R")
)

// encodings maps side and digit to the 7 modules of the digit.
var encodings = [3][10][7]byte{
	Odd: {
		{0, 0, 0, 1, 1, 0, 1},
		{0, 0, 1, 1, 0, 0, 1},
		{0, 0, 1, 0, 0, 1, 1},
		{0, 1, 1, 1, 1, 0, 1},
		{0, 1, 0, 0, 0, 1, 1},
		{0, 1, 1, 0, 0, 0, 1},
		{0, 1, 0, 1, 1, 1, 1},
		{0, 1, 1, 1, 0, 1, 1},
		{0, 1, 1, 0, 1, 1, 1},
		{0, 0, 0, 1, 0, 1, 1},
	},
	Even: {
		{0, 1, 0, 0, 1, 1, 1},
		{0, 1, 1, 0, 0, 1, 1},
		{0, 0, 1, 1, 0, 1, 1},
		{0, 1, 0, 0, 0, 0, 1},
		{0, 0, 1, 1, 1, 0, 1},
		{0, 1, 1, 1, 0, 0, 1},
		{0, 0, 0, 0, 1, 0, 1},
		{0, 0, 1, 0, 0, 0, 1},
		{0, 0, 0, 1, 0, 0, 1},
		{0, 0, 1, 0, 1, 1, 1},
	},
	Right: {
		{1, 1, 1, 0, 0, 1, 0},
		{1, 1, 0, 0, 1, 1, 0},
		{1, 1, 0, 1, 1, 0, 0},
		{1, 0, 0, 0, 0, 1, 0},
		{1, 0, 1, 1, 1, 0, 0},
		{1, 0, 0, 1, 1, 1, 0},
		{1, 0, 1, 0, 0, 0, 0},
		{1, 0, 0, 0, 1, 0, 0},
		{1, 0, 0, 1, 0, 0, 0},
		{1, 1, 1, 0, 1, 0, 0},
	},
}

// Guard patterns.
var (
	leftGuard     = [3]byte{1, 0, 1}
	middleGuard   = [5]byte{0, 1, 0, 1, 0}
	rightGuard    = [3]byte{1, 0, 1}
	suppGuard     = [4]byte{1, 0, 1, 1}
	suppSeparator = [2]byte{0, 1}
)

// Encoding returns the modules of digit d on the given side.
func Encoding(side int, d byte) [7]byte { return encodings[side][d] }

// Guards returns the left, middle and right guard patterns.
func Guards() (left [3]byte, middle [5]byte, right [3]byte) {
	return leftGuard, middleGuard, rightGuard
}

// SuppGuards returns the supplemental left guard and the separator
// between supplemental digits.
func SuppGuards() (left [4]byte, sep [2]byte) {
	return suppGuard, suppSeparator
}

// ean13Parity maps the leading EAN-13 digit to the sides of the six
// left hand digits.
var ean13Parity = [10][6]byte{
	{Odd, Odd, Odd, Odd, Odd, Odd},
	{Odd, Odd, Even, Odd, Even, Even},
	{Odd, Odd, Even, Even, Odd, Even},
	{Odd, Odd, Even, Even, Even, Odd},
	{Odd, Even, Odd, Odd, Even, Even},
	{Odd, Even, Even, Odd, Odd, Even},
	{Odd, Even, Even, Even, Odd, Odd},
	{Odd, Even, Odd, Even, Odd, Even},
	{Odd, Even, Odd, Even, Even, Odd},
	{Odd, Even, Even, Odd, Even, Odd},
}

// ean5Parity maps the EAN-5 checksum to the sides of its digits.
var ean5Parity = [10][5]byte{
	{1, 1, 0, 0, 0}, // GGLLL, as published; not LLGGG
	{1, 0, 1, 0, 0},
	{1, 0, 0, 1, 0},
	{1, 0, 0, 0, 1},
	{0, 1, 1, 0, 0},
	{0, 0, 1, 1, 0},
	{0, 0, 0, 1, 1},
	{0, 1, 0, 1, 0},
	{0, 1, 0, 0, 1},
	{0, 0, 1, 0, 1},
}

// ean2Parity maps the EAN-2 value modulo 4 to the sides of its digits.
// Only the first two slots are used.
var ean2Parity = [4][5]byte{
	{0, 0, 0, 0, 0},
	{0, 1, 0, 0, 0},
	{1, 0, 0, 0, 0},
	{1, 1, 0, 0, 0},
}

// encodeDigits appends the encodings of d to b, each on the side given
// by the corresponding element of sides.
func encodeDigits(b []byte, d, sides []byte) []byte {
	for i, v := range d {
		b = append(b, encodings[sides[i]][v][:]...)
	}
	return b
}

// encodeSide appends the encodings of d on one side to b.
func encodeSide(b []byte, side byte, d ...byte) []byte {
	for _, v := range d {
		b = append(b, encodings[side][v][:]...)
	}
	return b
}
