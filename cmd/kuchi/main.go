/*
Command kuchi typesets kuchi-shōka notation files.

Usage:

	kuchi file …

Every file is converted into a score next to it, with the file's extension
replaced. The conversion is configured by an optional TOML file kuchi.toml
in the working directory (keys font, backend, scale and trace), or the file
named by KUCHI_CONFIG. Environment variables take precedence:

	KUCHI_FONT      font name or font file (default: a Japanese system font)
	KUCHI_BACKEND   pdf (default), png or log
	KUCHI_SCALE     pixels per big point for png output (default: 2)
	KUCHI_TRACE     trace level [Debug|Info|Error] (default: Error)

kuchi exits with status 1 if any file could not be converted.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/kuchi/core"
	"github.com/npillmayer/kuchi/engine/convert"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

func main() {
	initDisplay()
	if len(os.Args) < 2 {
		pterm.Error.Println("usage: kuchi file …")
		os.Exit(2)
	}
	file, err := loadConfigFile(configFilePath(os.LookupEnv))
	if err != nil {
		core.UserError(os.Stderr, err)
		os.Exit(1)
	}
	conf := configure(file, os.LookupEnv)
	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	//
	converter, err := convert.New(conf)
	if err != nil {
		core.UserError(os.Stderr, err)
		os.Exit(1)
	}
	failed := 0
	for _, r := range converter.ConvertAll(os.Args[1:]) {
		switch {
		case r.Err != nil:
			failed++
			pterm.Error.Printfln("%s: %v", r.Input, r.Err)
		case r.Output == "":
			pterm.Warning.Printfln("%s: no cells, nothing written", r.Input)
		default:
			pterm.Success.Printfln("%s → %s", r.Input, r.Output)
		}
	}
	if failed > 0 {
		os.Exit(1)
	}
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}
