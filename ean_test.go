// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ean

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unixdj/ean/coding"
)

func TestKind(t *testing.T) {
	for k := EAN13; k < kinds; k++ {
		p, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, p)
	}
	for s, want := range map[string]Kind{"ean2": EAN2, "ean5": EAN5} {
		k, err := ParseKind(s)
		require.NoError(t, err)
		assert.Equal(t, want, k)
	}
	_, err := ParseKind("upca")
	assert.Equal(t, ErrKind, errors.Cause(err))
	assert.Equal(t, "42", Kind(42).String())
}

func TestDetect(t *testing.T) {
	for s, k := range map[string]Kind{
		"400638133393":  EAN13,
		"4006381333931": EAN13,
		"1234567":       EAN8,
		"12":            Supplemental,
		"12345":         Supplemental,
		"123":           Code39,
		"12345678":      Code39,
		"CODE39":        Code39,
		"12A":           Code39,
		"":              Code39,
	} {
		assert.Equal(t, k, Detect(s), "%q", s)
	}
}

func TestEncode(t *testing.T) {
	for _, tt := range []struct {
		text  string
		kind  Kind
		out   string
		check string
		len   int
	}{
		{"5512345", EAN8, "55123457", "7", 67},
		{"400638133393", EAN13, "4006381333931", "1", 95},
		{"4006381333931", EAN13, "4006381333931", "1", 95},
		{"34", Supplemental, "34", "", 20},
		{"51234", Supplemental, "51234", "", 47},
		{"34", EAN2, "34", "", 20},
		{"51234", EAN5, "51234", "", 47},
		{"CODE39", Code39, "CODE39", "", 8*13 - 1},
		{"CODE39", Code39Checksum, "CODE39W", "W", 9*13 - 1},
	} {
		c, err := Encode(tt.text, tt.kind)
		require.NoError(t, err, tt.text)
		assert.Equal(t, tt.kind, c.Kind)
		assert.Equal(t, tt.out, c.Text)
		assert.Equal(t, tt.check, c.Check)
		assert.Equal(t, tt.len, c.Len())
		assert.Equal(t, c.Bits.String(), c.String())
	}
}

func TestEncodeVectors(t *testing.T) {
	c, err := Encode("5512345", EAN8)
	require.NoError(t, err)
	assert.Equal(t,
		"1010110001011000100110010010011010101000010101110010011101000100101",
		c.String())

	c, err = Encode("34", Supplemental)
	require.NoError(t, err)
	assert.Equal(t, "10110100001010100011", c.String())
}

func TestEncodeErrors(t *testing.T) {
	_, err := Encode("1111112222222333333", EAN8)
	var le coding.LengthError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, 19, le.Len)
	assert.Contains(t, err.Error(), "ean8")

	_, err = Encode("1234e12", EAN8)
	var ce coding.CharError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, 'e', ce.Char)

	_, err = Encode("123", Supplemental)
	assert.Equal(t, coding.VariantError(3), errors.Cause(err))

	_, err = Encode("12", EAN5)
	assert.Equal(t, coding.VariantError(2), errors.Cause(err))
	assert.Contains(t, err.Error(), "ean5")

	_, err = Encode("51234", EAN2)
	assert.Equal(t, coding.VariantError(5), errors.Cause(err))

	_, err = Encode("5901234123458", EAN13)
	assert.Equal(t, coding.ErrCheckDigit, errors.Cause(err))

	_, err = Encode("1234567", Kind(-1))
	assert.Equal(t, ErrKind, errors.Cause(err))
}
