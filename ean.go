// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package ean encodes EAN-13, EAN-8, EAN-2/EAN-5 supplemental and Code 39
barcodes into bars and spaces.

The result of Encode is a sequence of modules, one element per
narrowest bar or space; drawing them is left to the caller.
*/
package ean // import "github.com/unixdj/ean"

import (
	"strconv"

	"github.com/pkg/errors"

	"github.com/unixdj/ean/coding"
)

// ErrKind is returned for an unknown Kind.
var ErrKind = errors.New("ean: invalid kind")

// A Kind denotes a symbology.
type Kind int

const (
	EAN13          Kind = iota // EAN-13, 12 digits and check digit
	EAN8                       // EAN-8, 7 digits and check digit
	Supplemental               // EAN-2 or EAN-5 add-on
	EAN2                       // EAN-2 add-on only
	EAN5                       // EAN-5 add-on only
	Code39                     // Code 39
	Code39Checksum             // Code 39 with modulo 43 check character
	kinds                      // number of kinds
)

var kindNames = [kinds]string{
	"ean13", "ean8", "supp", "ean2", "ean5", "code39", "code39c",
}

func (k Kind) String() string {
	if 0 <= k && k < kinds {
		return kindNames[k]
	}
	return strconv.Itoa(int(k))
}

// ParseKind returns the Kind named name.
func ParseKind(name string) (Kind, error) {
	for i, v := range kindNames {
		if v == name {
			return Kind(i), nil
		}
	}
	return 0, errors.Wrapf(ErrKind, "%q", name)
}

// Detect returns the Kind suitable for text: EAN-13 for 12 or 13
// digits, EAN-8 for 7, Supplemental for 2 or 5, otherwise Code 39.
func Detect(text string) Kind {
	for i := 0; i < len(text); i++ {
		if text[i] < '0' || text[i] > '9' {
			return Code39
		}
	}
	switch len(text) {
	case 12, 13:
		return EAN13
	case 7:
		return EAN8
	case 2, 5:
		return Supplemental
	}
	return Code39
}

// A symbol is an encodable barcode.
type symbol interface {
	Encode() coding.Bits
}

// A Code is an encoded barcode.
type Code struct {
	Kind  Kind        // symbology
	Text  string      // encoded data, including any check character
	Check string      // check character, or "" if none
	Bits  coding.Bits // modules, 1 is a bar, 0 is a space
}

// String returns the modules of c as a string of '0' and '1'.
func (c *Code) String() string { return c.Bits.String() }

// Len returns the number of modules in c.
func (c *Code) Len() int { return len(c.Bits) }

// Encode returns an encoding of text as a barcode of the given kind.
func Encode(text string, kind Kind) (*Code, error) {
	var (
		sym   symbol
		check byte
		err   error
	)
	switch kind {
	case EAN13:
		var e coding.EAN13
		if e, err = coding.NewEAN13(text); err == nil {
			sym, check = e, '0'+e.Checksum()
			text = digitString(e.RawData())
		}
	case EAN8:
		var e coding.EAN8
		if e, err = coding.NewEAN8(text); err == nil {
			sym, check = e, '0'+e.Checksum()
		}
	case Supplemental:
		var e coding.Supplemental
		if e, err = coding.NewSupplemental(text); err == nil {
			sym = e
		}
	case EAN2:
		var e coding.EAN2
		if e, err = coding.NewEAN2(text); err == nil {
			sym = e
		}
	case EAN5:
		var e coding.EAN5
		if e, err = coding.NewEAN5(text); err == nil {
			sym = e
		}
	case Code39:
		var e coding.Code39
		if e, err = coding.NewCode39(text); err == nil {
			sym = e
		}
	case Code39Checksum:
		var e coding.Code39
		if e, err = coding.NewCode39Checksum(text); err == nil {
			sym, check = e, e.Checksum()
		}
	default:
		return nil, errors.Wrapf(ErrKind, "%d", int(kind))
	}
	if err != nil {
		return nil, errors.Wrapf(err, "%s %q", kind, text)
	}
	c := &Code{Kind: kind, Text: text, Bits: sym.Encode()}
	if check != 0 {
		c.Check = string(check)
		c.Text += c.Check
	}
	return c, nil
}

func digitString(d []byte) string {
	b := make([]byte, len(d))
	for i, v := range d {
		b[i] = '0' + v
	}
	return string(b)
}
