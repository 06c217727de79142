// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"errors"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEAN13(t *testing.T) {
	e, err := NewEAN13("400638133393")
	require.NoError(t, err)
	assert.Equal(t, []byte{4, 0, 0, 6, 3, 8, 1, 3, 3, 3, 9, 3}, e.RawData())
	assert.Equal(t, byte(1), e.Checksum())

	e2, err := NewEAN13("4006381333931")
	require.NoError(t, err)
	assert.Equal(t, e, e2)
}

func TestNewEAN13Errors(t *testing.T) {
	_, err := NewEAN13("5901234123458")
	assert.True(t, errors.Is(err, ErrCheckDigit))

	var le LengthError
	for _, s := range []string{"59012341234", "59012341234570"} {
		_, err = NewEAN13(s)
		assert.True(t, errors.As(err, &le), s)
	}
	_, err = NewEAN13("59012341234O")
	assert.Equal(t, CharError{'O', 11}, err)
}

func TestEAN13Encode(t *testing.T) {
	e, err := NewEAN13("5901234123457")
	require.NoError(t, err)
	want := "101" +
		"0001011" + "0100111" + "0110011" + // 9 0 1, LGG
		"0010011" + "0111101" + "0011101" + // 2 3 4, LLG
		"01010" +
		"1100110" + "1101100" + "1000010" +
		"1011100" + "1001110" + "1000100" +
		"101"
	assert.Equal(t, want, e.Encode().String())
}

func TestEAN13Properties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("EAN-13 encodes 95 modules", prop.ForAll(
		func(r []rune) bool {
			e, err := NewEAN13(string(r))
			return err == nil && len(e.Encode()) == 95
		},
		gen.SliceOfN(12, gen.NumChar()),
	))

	properties.Property("EAN-13 accepts its own check digit", prop.ForAll(
		func(r []rune) bool {
			e, err := NewEAN13(string(r))
			if err != nil {
				return false
			}
			e2, err := NewEAN13(string(r) + string('0'+rune(e.Checksum())))
			return err == nil && e == e2 && e.Encode().String() == e2.Encode().String()
		},
		gen.SliceOfN(12, gen.NumChar()),
	))

	properties.Property("EAN-13 rejects a wrong check digit", prop.ForAll(
		func(r []rune, delta int) bool {
			e, err := NewEAN13(string(r))
			if err != nil {
				return false
			}
			c := (int(e.Checksum()) + delta) % 10
			_, err = NewEAN13(string(r) + string(rune('0'+c)))
			return errors.Is(err, ErrCheckDigit)
		},
		gen.SliceOfN(12, gen.NumChar()),
		gen.IntRange(1, 9),
	))

	properties.Property("first digit is encoded in left hand parity",
		prop.ForAll(
			func(r []rune) bool {
				e, err := NewEAN13(string(r))
				if err != nil {
					return false
				}
				b := e.Encode()
				for i, side := range ean13Parity[e.RawData()[0]] {
					n := ones([7]byte(b[3+i*7 : 10+i*7]))
					if side == Odd && n&1 == 0 || side == Even && n&1 != 0 {
						return false
					}
				}
				return true
			},
			gen.SliceOfN(12, gen.NumChar()),
		))

	properties.TestingRun(t)
}
