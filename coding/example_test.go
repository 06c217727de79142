// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding_test

import (
	"fmt"
	"log"

	"github.com/unixdj/ean/coding"
)

func ExampleNewEAN8() {
	e, err := coding.NewEAN8("4575678")
	if err != nil {
		log.Fatalln(err)
	}
	fmt.Println(e.RawData(), e.Checksum(), len(e.Encode()))
	// Output:
	// [4 5 7 5 6 7 8] 8 67
}

func ExampleParse() {
	_, err := coding.Parse(coding.EAN8{}, "1234e67")
	fmt.Println(err)
	_, err = coding.NewSupplemental("123")
	fmt.Println(err)
	// Output:
	// ean: invalid character: e
	// ean: invalid supplemental length: 3
}

func ExampleNewSupplemental() {
	s, err := coding.NewSupplemental("51234")
	if err != nil {
		log.Fatalln(err)
	}
	fmt.Println(s.Checksum(), s.Encode())
	// Output:
	// 9 10110110001010011001010011011010111101010011101
}
