package mddebug

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/k0kubun/pp/v3"
	"github.com/npillmayer/mdtree/input/markdown"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax11"
)

type entry struct {
	node  markdown.Node
	depth int
}

// Dump writes doc to w, one node per line, indented by tree depth.
// Text longer than maxWidth display cells is shortened; maxWidth <= 0 turns
// shortening off.
func Dump(w io.Writer, doc *markdown.Document, maxWidth int) error {
	if doc == nil {
		_, err := io.WriteString(w, "<no document>\n")
		return err
	}
	stack := arraystack.New()
	for i := len(doc.Blocks) - 1; i >= 0; i-- {
		stack.Push(entry{doc.Blocks[i], 0})
	}
	for !stack.Empty() {
		top, _ := stack.Pop()
		e := top.(entry)
		line := strings.Repeat("  ", e.depth) + Label(e.node, maxWidth) + "\n"
		if _, err := io.WriteString(w, line); err != nil {
			return err
		}
		ch := markdown.Children(e.node)
		for i := len(ch) - 1; i >= 0; i-- {
			stack.Push(entry{ch[i], e.depth + 1})
		}
	}
	return nil
}

// Label is a one-line description of a node, without its children.
func Label(n markdown.Node, maxWidth int) string {
	switch n := n.(type) {
	case *markdown.Paragraph:
		return fmt.Sprintf("Paragraph (%d)", len(n.Children))
	case *markdown.List:
		return fmt.Sprintf("List (%d)", len(n.Items))
	case *markdown.Header:
		return fmt.Sprintf("Header h%d", n.Level)
	case *markdown.Code:
		return "Code " + strconv.Quote(Shorten(n.Raw, maxWidth))
	case markdown.Span:
		return n.Type().String() + " " + strconv.Quote(Shorten(n.Literal(), maxWidth))
	}
	return "?"
}

var graphemesOnce sync.Once

// Shorten cuts s to at most maxWidth display cells, appending an ellipsis
// if something was cut. Grapheme clusters are never split.
func Shorten(s string, maxWidth int) string {
	if maxWidth <= 0 || len(s) <= maxWidth {
		// a string of n bytes never needs more than n cells
		return s
	}
	graphemesOnce.Do(grapheme.SetupGraphemeClasses)
	seg := segment.NewSegmenter(grapheme.NewBreaker(1))
	seg.Init(strings.NewReader(s))
	var b strings.Builder
	width := 0
	for seg.Next() {
		g := seg.Bytes()
		gw := uax11.Width(g, uax11.LatinContext)
		if width+gw > maxWidth-1 {
			tracer().Debugf("shortened text after %d cells", width)
			b.WriteString("…")
			return b.String()
		}
		b.Write(g)
		width += gw
	}
	return b.String()
}

// Pretty returns a colorless pretty-print of doc's Go values.
// It is safe for concurrent use.
func Pretty(doc *markdown.Document) string {
	printer := pp.New()
	printer.SetColoringEnabled(false)
	return printer.Sprint(doc)
}
