// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"syscall"

	"github.com/unixdj/ean"

	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"
	"github.com/pkg/errors"
	"golang.org/x/text/width"
)

var g = struct {
	kind   ean.Kind // symbology
	auto   bool     // detect symbology from input
	check  bool     // Code 39 check character
	upper  bool     // uppercase
	fn     string   // filename
	format int      // output format
	rev    bool     // reverse colours
	border int      // quiet zone
	height int      // rows of text output
}{
	auto: true,
}

func printUsage(w io.Writer) {
	cl := getopt.CommandLine
	fmt.Fprint(w, "EAN and Code 39 barcode generator\nUsage: ",
		cl.Program(), " ", cl.UsageLine(), ` [string ...]
If no string is given, data is read from standard input and the final
newline is stripped.  Full width characters are converted to ASCII.

`)
	var b bytes.Buffer
	cl.PrintOptions(&b)
	w.Write(b.Bytes())
}

type opt func()

func (opt) String() string                    { return "" }
func (o opt) Set(string, getopt.Option) error { o(); return nil }

func usage() {
	printUsage(os.Stderr)
	os.Exit(2)
}

func help() {
	printUsage(os.Stdout)
	os.Exit(0)
}

func version() {
	fmt.Println(`ean version 0.1.0
Copyright (c) 2024 Vadim Vygonets`)
	os.Exit(0)
}

var formats = []string{"bits", "bitsi", "utf8", "utf8i", "ascii", "asciii"}

var encoders = [...]func(*ean.Code, io.Writer) error{
	bits,
	utf8,
	ascii,
}

var kinds = []string{"auto", "ean13", "ean8", "ean2", "ean5", "supp",
	"code39"}

func parseFlags() {
	getopt.SetUsage(usage)
	getopt.Flag(opt(help), 'h', "show this help").SetFlag()
	getopt.Flag(opt(version), 'V', "print version and copyright").SetFlag()
	kind := getopt.Enum('t', kinds, "auto", `barcode type; "auto" `+
		`chooses by input: 12 or 13 digits ean13, 7 ean8, `+
		`2 or 5 supp, otherwise code39`, "type")
	getopt.Flag(&g.check, 'c', "append Code 39 check character")
	getopt.Flag(&g.upper, 'i', "ignore case, convert input to uppercase")
	getopt.Flag(&g.border, 'm', "quiet zone modules [10]", "margin")
	getopt.Flag(&g.height, 'H', "rows of text output [4]", "rows")
	fno := getopt.Flag(&g.fn, 'o', `output file, or "-" for `+
		`standard output`, "file")
	ff := getopt.Enum('T', formats, "", `output format, one of: `+
		strings.Join(formats, ", ")+
		`; types with "i" appended have colours inverted; `+
		`"bits" prints one 0 or 1 per module; `+
		`if no -o is given and standard output is a TTY, `+
		`default is utf8, otherwise bits`, "format")

	getopt.Parse()
	if *kind != "auto" {
		k, err := ean.ParseKind(*kind)
		if err != nil {
			log.Fatalln(err)
		}
		g.kind, g.auto = k, false
	}
	if g.check && !g.auto && g.kind != ean.Code39 {
		fmt.Fprintln(os.Stderr, "-c is only valid for code39")
		usage()
	}
	if !getopt.IsSet('m') {
		g.border = 10
	}
	if !getopt.IsSet('H') {
		g.height = 4
	}
	if g.border < 0 || g.height < 1 {
		usage()
	}
	if *ff == "" {
		if !fno.Seen() && isatty.IsTerminal(uintptr(syscall.Stdout)) {
			*ff = "utf8"
		} else {
			*ff = "bits"
		}
	}
	for i, v := range formats {
		if *ff == v {
			g.format = i >> 1
			g.rev = i&1 != 0
			break
		}
	}
	if g.fn == "-" {
		g.fn = ""
	}
}

// normalize folds full width characters to ASCII and strips
// surrounding spaces.
func normalize(s string) string {
	s = width.Fold.String(s)
	if g.upper {
		s = strings.ToUpper(s)
	}
	return strings.TrimSpace(s)
}

func main() {
	log.SetFlags(0)
	parseFlags()

	var s string
	if args := getopt.Args(); len(args) != 0 {
		s = strings.Join(args, " ")
	} else {
		var b strings.Builder
		if _, err := io.Copy(&b, os.Stdin); err != nil {
			log.Fatalln(err)
		}
		s, _ = strings.CutSuffix(
			strings.ReplaceAll(b.String(), "\r\n", "\n"), "\n")
	}
	s = normalize(s)

	kind, err := chooseKind(s)
	if err != nil {
		log.Fatalln(err)
	}
	c, err := ean.Encode(s, kind)
	if err != nil {
		log.Fatalln(err)
	}
	write(c)
}

// chooseKind returns the symbology for s from -t and -c.
func chooseKind(s string) (ean.Kind, error) {
	kind := g.kind
	if g.auto {
		kind = ean.Detect(s)
	}
	if g.check {
		if kind != ean.Code39 {
			return 0, errors.Errorf("-c is only valid for code39, "+
				"input %q is %s", s, kind)
		}
		kind = ean.Code39Checksum
	}
	return kind, nil
}

func write(c *ean.Code) {
	var w = os.Stdout
	open := g.fn != ""
	if open {
		var err error
		if w, err = os.OpenFile(g.fn, os.O_WRONLY|os.O_CREATE|os.O_TRUNC,
			0666); err != nil {
			log.Fatalln(err)
		}
	}
	err := encoders[g.format](c, w)
	if open && err == nil {
		err = w.Close()
	}
	if err != nil {
		log.Fatalln(err)
	}
}

// row returns a line of text of c with quiet zones of border modules,
// using bar and space for the modules.
func row(c *ean.Code, bar, space string, border int) string {
	if g.rev {
		bar, space = space, bar
	}
	var b strings.Builder
	quiet := strings.Repeat(space, border)
	b.WriteString(quiet)
	for _, v := range c.Bits {
		if v != 0 {
			b.WriteString(bar)
		} else {
			b.WriteString(space)
		}
	}
	b.WriteString(quiet)
	b.WriteByte('\n')
	return b.String()
}

func bits(c *ean.Code, w io.Writer) error {
	_, err := io.WriteString(w, row(c, "1", "0", 0))
	return err
}

func utf8(c *ean.Code, w io.Writer) error {
	_, err := io.WriteString(w, strings.Repeat(row(c, "█", " ", g.border), g.height)+
		c.Text+"\n")
	return err
}

func ascii(c *ean.Code, w io.Writer) error {
	_, err := io.WriteString(w, strings.Repeat(row(c, "#", " ", g.border), g.height)+
		c.Text+"\n")
	return err
}
