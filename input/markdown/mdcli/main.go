/*
Command mdcli parses a Markdown file and writes it back, re-rendered.

	mdcli -in README.md -out clean.md
	mdcli -in README.md -dump -dot tree.dot
	mdcli -repl

With -repl, mdcli starts an interactive session: lines of Markdown are
collected, and commands starting with a colon inspect them (`:help` lists
all commands). Commands may be abbreviated to any unique prefix.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/npillmayer/mdtree/core"
	"github.com/npillmayer/mdtree/input/markdown"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'mdtree.cli'
func tracer() tracing.Trace {
	return tracing.Select("mdtree.cli")
}

func main() {
	initDisplay()

	// command line flags
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	in := flag.String("in", "", "Markdown file to read")
	out := flag.String("out", "", "File to write rendered markdown to (default: stdout)")
	fence := flag.String("fence", "flush", "Unterminated code fences [flush|drop]")
	nfc := flag.Bool("nfc", false, "Normalize input to Unicode NFC")
	marker := flag.String("marker", "-", "List item marker [-|*]")
	dump := flag.Bool("dump", false, "Print the document tree")
	dot := flag.String("dot", "", "Write the document tree in Graphviz DOT format to file")
	interactive := flag.Bool("repl", false, "Start an interactive session")
	flag.Parse()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	traceConf := testconfig.Conf{
		"tracing.adapter":       "go",
		"trace.mdtree.cli":      *tlevel,
		"trace.mdtree.markdown": *tlevel,
		"trace.mdtree.debug":    *tlevel,
	}
	if err := trace2go.ConfigureRoot(traceConf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	tracer().Infof("Trace level is %s", *tlevel)

	// configure parser and renderer
	conf := testconfig.Conf{
		markdown.ConfFence:      *fence,
		markdown.ConfListMarker: *marker,
	}
	if *nfc {
		conf[markdown.ConfNormalize] = "nfc"
	}
	parser, renderer, err := setup(conf)
	if err != nil {
		exit(err)
	}

	if *interactive {
		intp, err := NewIntp(parser, renderer)
		if err != nil {
			exit(err)
		}
		pterm.Info.Println("Welcome to the Markdown REPL")
		pterm.Info.Println("Quit with <ctrl>D or :quit")
		intp.REPL()
		return
	}
	job := &Job{
		Input:  *in,
		Output: *out,
		Dump:   *dump,
		Dot:    *dot,
	}
	if err := job.Run(parser, renderer); err != nil {
		exit(err)
	}
}

// setup creates parser and renderer from a configuration.
func setup(conf testconfig.Conf) (*markdown.Parser, *markdown.Renderer, error) {
	popts, err := markdown.OptionsFromConfig(conf)
	if err != nil {
		return nil, nil, err
	}
	ropts, err := markdown.RenderOptionsFromConfig(conf)
	if err != nil {
		return nil, nil, err
	}
	return markdown.NewParser(popts...), markdown.NewRenderer(ropts...), nil
}

func exit(err error) {
	pterm.Error.Println(core.UserMessage(err))
	tracer().Errorf(err.Error())
	os.Exit(core.Code(err))
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
