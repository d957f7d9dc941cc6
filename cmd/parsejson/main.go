// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command parsejson parses a JSON document with the jsontree grammar and
// prints either a one-line summary or a positioned error report.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"

	"code.hybscloud.com/parse/jsontree"
	"code.hybscloud.com/parse/simple"
)

var cli struct {
	File    string `arg:"" optional:"" type:"existingfile" help:"JSON file to parse; stdin when omitted."`
	NoColor bool   `help:"Disable colors in the error report."`
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Name("parsejson"),
		kong.Description("Parse a JSON document and report positioned errors."),
	)

	source, err := readSource()
	kctx.FatalIfErrorf(err)

	value, err := jsontree.Parse(source)
	if err != nil {
		var perr *simple.ParseError
		if errors.As(err, &perr) {
			fmt.Fprint(os.Stderr, perr.Report(!cli.NoColor && !color.NoColor))
			os.Exit(1)
		}
		kctx.FatalIfErrorf(err)
	}
	fmt.Println(describe(value))
}

func readSource() (string, error) {
	if cli.File == "" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(cli.File)
	return string(data), err
}

func describe(v jsontree.Value) string {
	switch v.Kind {
	case jsontree.KindNull:
		return "null"
	case jsontree.KindBool:
		return fmt.Sprintf("bool %v", v.Bool)
	case jsontree.KindNumber:
		return fmt.Sprintf("number %v", v.Number)
	case jsontree.KindString:
		return fmt.Sprintf("string of %d code points", len([]rune(v.Str)))
	case jsontree.KindArray:
		return fmt.Sprintf("array of %d items", len(v.Items))
	case jsontree.KindObject:
		return fmt.Sprintf("object with %d fields", len(v.Fields))
	}
	return "unknown value"
}
