package markdown

import (
	"io"
	"strings"

	"github.com/npillmayer/cords"
	"github.com/npillmayer/mdtree/core"
)

// Renderer serializes document trees to Markdown text.
//
// Rendering is an approximate inverse of parsing. For documents made of
// paragraphs not starting with '>', headers, lists with one level of
// nesting, and closed code fences, parsing the rendered text yields a tree
// equal to the original one. Line breaks inside blocks are kept, white
// space lines between blocks are not.
type Renderer struct {
	marker byte
}

// RenderOption configures a Renderer.
type RenderOption func(*Renderer)

// WithListMarker sets the marker for list items, '-' (default) or '*'.
// Other values are ignored.
func WithListMarker(m byte) RenderOption {
	return func(r *Renderer) {
		if isMarker(m) {
			r.marker = m
		}
	}
}

// NewRenderer creates a renderer.
func NewRenderer(opts ...RenderOption) *Renderer {
	r := &Renderer{marker: '-'}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var defaultRenderer = NewRenderer()

// Render renders doc with a default renderer.
func Render(doc *Document) string {
	return defaultRenderer.Render(doc)
}

// Render renders doc to a string.
func (r *Renderer) Render(doc *Document) string {
	c := r.Fragments(doc)
	if c.IsVoid() {
		return ""
	}
	return c.String()
}

// Write renders doc to w and returns the number of bytes written.
func (r *Renderer) Write(w io.Writer, doc *Document) (int64, error) {
	n, err := io.WriteString(w, r.Render(doc))
	if err != nil {
		return int64(n), core.WrapError(err, core.EIO, "cannot write rendered markdown")
	}
	return int64(n), nil
}

// WriteTo renders the document with a default renderer.
// It implements io.WriterTo.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	return defaultRenderer.Write(w, d)
}

// MarshalMarkdown renders the document with a default renderer.
func (d *Document) MarshalMarkdown() ([]byte, error) {
	return []byte(Render(d)), nil
}

// Fragments renders doc into a cord. Every leaf of the cord is a text
// fragment emitted for a single node, in depth-first order.
func (r *Renderer) Fragments(doc *Document) cords.Cord {
	e := &emitter{b: cords.NewBuilder()}
	if doc == nil {
		return e.b.Cord()
	}
	for _, block := range doc.Blocks {
		r.node(e, block, 0, 0)
		e.emit(block.Type(), "\n")
	}
	tracer().Debugf("rendered %d blocks into %d bytes", len(doc.Blocks), e.n)
	return e.b.Cord()
}

// node renders n. depth is the tree depth of n, indent the nesting level
// of the list n is part of.
func (r *Renderer) node(e *emitter, n Node, depth, indent int) {
	switch n := n.(type) {
	case *Paragraph:
		var prev Node
		for _, ch := range n.Children {
			if _, ok := ch.(*Header); ok && isInline(prev) {
				e.emit(HeaderNode, "\n")
			}
			r.node(e, ch, depth+1, indent)
			prev = ch
		}
		switch prev.(type) {
		case *Paragraph, *List, *Header:
		default: // last line is still open
			e.emit(ParagraphNode, "\n")
		}
	case *List:
		for _, item := range n.Items {
			e.emit(ListNode, strings.Repeat(" ", indent)+string(r.marker)+" ")
			r.node(e, item, depth+1, indent+1)
		}
	case *Header:
		e.emit(HeaderNode, strings.Repeat("#", n.Level)+" ")
		for _, span := range n.Spans {
			r.node(e, span, depth+1, indent)
		}
		e.emit(HeaderNode, "\n")
	case *Code:
		if e.n > 0 {
			e.emit(CodeNode, "\n")
		}
		e.emit(CodeNode, n.Raw)
	case Text:
		s := string(n)
		if strings.HasPrefix(s, ">") && e.n > 0 {
			e.emit(TextNode, "\n")
		}
		e.emit(TextNode, s)
		if depth == 1 && (strings.HasSuffix(s, "\n---") || strings.HasSuffix(s, "\n"+fence)) {
			e.emit(TextNode, "\n\n")
		}
	case Emphasis:
		e.emit(EmphasisNode, "*"+string(n)+"*")
	case Bold:
		e.emit(BoldNode, "**"+string(n)+"**")
	}
}

func isInline(n Node) bool {
	_, ok := n.(Span)
	return ok
}

// --- Fragments -------------------------------------------------------------

type emitter struct {
	b *cords.Builder
	n int // bytes emitted so far
}

func (e *emitter) emit(nt NodeType, s string) {
	if s == "" {
		return
	}
	e.b.Append(Fragment{Node: nt, Text: s})
	e.n += len(s)
}

// Fragment is a cord leaf holding output text for a node of type Node.
type Fragment struct {
	Node NodeType
	Text string
}

// Weight of a fragment is its length in bytes.
func (f Fragment) Weight() uint64 {
	return uint64(len(f.Text))
}

func (f Fragment) String() string {
	return f.Text
}

// Split splits a fragment at byte position i.
func (f Fragment) Split(i uint64) (cords.Leaf, cords.Leaf) {
	return Fragment{Node: f.Node, Text: f.Text[:i]}, Fragment{Node: f.Node, Text: f.Text[i:]}
}

// Substring returns a byte segment of the fragment's text.
func (f Fragment) Substring(i, j uint64) []byte {
	return []byte(f.Text[i:j])
}

var _ cords.Leaf = Fragment{}
