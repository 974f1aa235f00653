package main

import (
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/npillmayer/mdtree/core"
	"github.com/npillmayer/mdtree/input/markdown"
	"github.com/npillmayer/mdtree/input/markdown/mddebug"
	"github.com/pkg/errors"
	"github.com/pterm/pterm"
)

// Job is a non-interactive conversion of a Markdown file.
type Job struct {
	Input  string // path of input file
	Output string // path of output file, stdout if empty
	Dump   bool   // print the document tree to stdout
	Dot    string // path of a DOT file to write the tree to, if not empty

	stdout io.Writer                                 // defaults to os.Stdout
	create func(path string) (io.WriteCloser, error) // defaults to os.Create
}

// Run reads, parses and renders the job's input.
func (job *Job) Run(parser *markdown.Parser, renderer *markdown.Renderer) error {
	if job.Input == "" {
		return core.Error(core.EINVALID, "no input file given, use -in")
	}
	stdout := job.stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	doc, err := job.read(parser)
	if err != nil {
		return err
	}
	if job.Dump {
		if err := mddebug.Dump(stdout, doc, 60); err != nil {
			return core.WrapError(err, core.EIO, "cannot print document tree")
		}
	}
	if job.Dot != "" {
		if err := job.writeDot(doc); err != nil {
			return err
		}
	}
	if job.Output == "" {
		_, err = renderer.Write(stdout, doc)
		return err
	}
	n, err := job.writeOutput(renderer, doc)
	if err != nil {
		return err
	}
	pterm.Success.Printf("wrote %s to %s\n", humanize.Bytes(uint64(n)), job.Output)
	return nil
}

// writeOutput renders doc into the output file. The file is closed before
// returning, a failing close is reported.
func (job *Job) writeOutput(renderer *markdown.Renderer, doc *markdown.Document) (n int64, err error) {
	create := job.create
	if create == nil {
		create = func(path string) (io.WriteCloser, error) {
			return os.Create(path)
		}
	}
	f, err := create(job.Output)
	if err != nil {
		return 0, core.WrapError(errors.Wrap(err, "create output"), core.EIO,
			"cannot create output file %s", job.Output)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = core.WrapError(errors.Wrap(cerr, "close output"), core.EIO,
				"cannot write output file %s", job.Output)
		}
	}()
	return renderer.Write(f, doc)
}

func (job *Job) read(parser *markdown.Parser) (*markdown.Document, error) {
	f, err := os.Open(job.Input)
	if err != nil {
		code := core.EIO
		if os.IsNotExist(err) {
			code = core.EMISSING
		}
		return nil, core.WrapError(errors.Wrap(err, "open input"), code,
			"cannot open input file %s", job.Input)
	}
	defer f.Close()
	fi, err := f.Stat()
	if err == nil {
		tracer().Infof("reading %s (%s)", job.Input, humanize.Bytes(uint64(fi.Size())))
	}
	src, err := io.ReadAll(f)
	if err != nil {
		return nil, core.WrapError(errors.Wrap(err, "read input"), core.EIO,
			"cannot read input file %s", job.Input)
	}
	return parser.Parse(string(src)), nil
}

func (job *Job) writeDot(doc *markdown.Document) (err error) {
	f, err := os.Create(job.Dot)
	if err != nil {
		return core.WrapError(errors.Wrap(err, "create dot file"), core.EIO,
			"cannot create DOT file %s", job.Dot)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = core.WrapError(errors.Wrap(cerr, "close dot file"), core.EIO,
				"cannot write DOT file %s", job.Dot)
		}
	}()
	if err := mddebug.ToGraphViz(doc, f); err != nil {
		return core.WrapError(err, core.EIO, "cannot write DOT file %s", job.Dot)
	}
	return nil
}
