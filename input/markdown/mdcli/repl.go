package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/chzyer/readline"
	"github.com/derekparker/trie"
	"github.com/npillmayer/mdtree/core"
	"github.com/npillmayer/mdtree/input/markdown"
	"github.com/npillmayer/mdtree/input/markdown/mddebug"
	"github.com/pterm/pterm"
)

// Op is an interpreter command.
type Op int

// Commands of the interpreter
const (
	QUIT Op = iota
	HELP
	PARSE
	RENDER
	DUMP
	PRETTY
	DOT
	CLEAR
)

var commands = map[string]struct {
	op   Op
	help string
}{
	"quit":   {QUIT, "leave the session"},
	"help":   {HELP, "list commands"},
	"parse":  {PARSE, "print the document tree of the collected input"},
	"render": {RENDER, "render the collected input back to markdown"},
	"dump":   {DUMP, "print the document tree, one node per line"},
	"pp":     {PRETTY, "pretty-print the document's Go values"},
	"dot":    {DOT, "print the document tree in Graphviz DOT format"},
	"clear":  {CLEAR, "discard the collected input"},
}

// Intp is our interpreter object.
type Intp struct {
	parser   *markdown.Parser
	renderer *markdown.Renderer
	repl     *readline.Instance
	cmds     *trie.Trie
	input    strings.Builder
	out      io.Writer
}

// NewIntp creates an interpreter with a readline prompt.
func NewIntp(parser *markdown.Parser, renderer *markdown.Renderer) (*Intp, error) {
	repl, err := readline.New("md > ")
	if err != nil {
		return nil, core.WrapError(err, core.EINTERNAL, "cannot set up interactive mode")
	}
	intp := newIntp(parser, renderer, os.Stdout)
	intp.repl = repl
	return intp, nil
}

func newIntp(parser *markdown.Parser, renderer *markdown.Renderer, out io.Writer) *Intp {
	cmds := trie.New()
	for name, c := range commands {
		cmds.Add(name, c.op)
	}
	return &Intp{
		parser:   parser,
		renderer: renderer,
		cmds:     cmds,
		out:      out,
	}
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	defer intp.repl.Close()
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		quit, err := intp.Execute(line)
		if err != nil {
			pterm.Error.Println(core.UserMessage(err))
			tracer().Errorf(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

// Execute interprets a line of input. Lines starting with ':' are
// commands, all other lines are collected as Markdown input.
func (intp *Intp) Execute(line string) (quit bool, err error) {
	if !strings.HasPrefix(line, ":") {
		intp.input.WriteString(line)
		intp.input.WriteByte('\n')
		return false, nil
	}
	word := strings.TrimSpace(line[1:])
	op, err := intp.lookup(word)
	if err != nil {
		return false, err
	}
	tracer().Debugf("command %q resolves to op %d", word, op)
	return intp.execute(op)
}

// lookup resolves a command name or a unique prefix of one.
func (intp *Intp) lookup(word string) (Op, error) {
	if word == "" {
		return HELP, nil
	}
	if node, ok := intp.cmds.Find(word); ok {
		return node.Meta().(Op), nil
	}
	matches := intp.cmds.PrefixSearch(word)
	switch len(matches) {
	case 0:
		return HELP, core.Error(core.EINVALID, "unknown command :%s", word)
	case 1:
		node, _ := intp.cmds.Find(matches[0])
		return node.Meta().(Op), nil
	}
	sort.Strings(matches)
	return HELP, core.Error(core.EINVALID, "ambiguous command :%s, may be any of %s",
		word, strings.Join(matches, ", "))
}

func (intp *Intp) execute(op Op) (bool, error) {
	switch op {
	case QUIT:
		return true, nil
	case HELP:
		intp.help()
		return false, nil
	case CLEAR:
		intp.input.Reset()
		return false, nil
	}
	doc := intp.parser.Parse(intp.input.String())
	var err error
	switch op {
	case PARSE:
		_, err = fmt.Fprintln(intp.out, doc.String())
	case RENDER:
		_, err = intp.renderer.Write(intp.out, doc)
	case DUMP:
		err = mddebug.Dump(intp.out, doc, 60)
	case PRETTY:
		_, err = fmt.Fprintln(intp.out, mddebug.Pretty(doc))
	case DOT:
		err = mddebug.ToGraphViz(doc, intp.out)
	}
	if err != nil {
		return false, core.WrapError(err, core.EIO, "cannot print result")
	}
	return false, nil
}

func (intp *Intp) help() {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(intp.out, "  :%-8s %s\n", name, commands[name].help)
	}
}
