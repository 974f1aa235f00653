package markdown

import (
	"fmt"
	"strconv"
	"strings"
)

// NodeType denotes the variant of a node of a document tree.
type NodeType int8

// Node types
const (
	UnknownNode NodeType = iota
	ParagraphNode
	ListNode
	HeaderNode
	CodeNode
	TextNode
	EmphasisNode
	BoldNode
)

func (nt NodeType) String() string {
	switch nt {
	case ParagraphNode:
		return "Paragraph"
	case ListNode:
		return "List"
	case HeaderNode:
		return "Header"
	case CodeNode:
		return "Code"
	case TextNode:
		return "Text"
	case EmphasisNode:
		return "Emphasis"
	case BoldNode:
		return "Bold"
	}
	return "Unknown"
}

// Node is a node of a document tree. The set of node types is closed:
// *Paragraph, *List, *Header, *Code, Text, Emphasis and Bold.
type Node interface {
	Type() NodeType
	String() string
	isNode()
}

// Block is a node which may appear at the top level of a document,
// i.e. a *Paragraph or a *List.
type Block interface {
	Node
	isBlock()
}

// Span is an inline node: Text, Emphasis or Bold.
type Span interface {
	Node
	Literal() string // content without markers
	isSpan()
}

// --- Blocks ----------------------------------------------------------------

// Paragraph is an ordered sequence of child nodes. Depending on where it
// occurs, children are spans, headers, a code leaf, or – for list items
// carrying a nested list – a paragraph followed by a list.
type Paragraph struct {
	Children []Node
}

// List is a list of items. Every item is paragraph-shaped.
type List struct {
	Items []*Paragraph
}

// Header is a header of level 1…6 with inline content.
type Header struct {
	Level int
	Spans Spans
}

// Code holds the verbatim text of a fenced code region, fences included.
type Code struct {
	Raw string
}

func (p *Paragraph) Type() NodeType { return ParagraphNode }
func (l *List) Type() NodeType      { return ListNode }
func (h *Header) Type() NodeType    { return HeaderNode }
func (c *Code) Type() NodeType      { return CodeNode }

func (p *Paragraph) isNode() {}
func (l *List) isNode()      {}
func (h *Header) isNode()    {}
func (c *Code) isNode()      {}

func (p *Paragraph) isBlock() {}
func (l *List) isBlock()      {}

func (p *Paragraph) String() string {
	return "Paragraph(" + listString(len(p.Children), func(i int) Node { return p.Children[i] }) + ")"
}

func (l *List) String() string {
	return "List(" + listString(len(l.Items), func(i int) Node { return l.Items[i] }) + ")"
}

func (h *Header) String() string {
	return fmt.Sprintf("Header(%d,%s)", h.Level, h.Spans.String())
}

func (c *Code) String() string {
	return "Code(" + strconv.Quote(c.Raw) + ")"
}

// --- Spans -----------------------------------------------------------------

// Text is literal inline text.
type Text string

// Emphasis is text enclosed in single asterisks; markers are not part of it.
type Emphasis string

// Bold is text enclosed in double asterisks; markers are not part of it.
type Bold string

func (t Text) Type() NodeType     { return TextNode }
func (e Emphasis) Type() NodeType { return EmphasisNode }
func (b Bold) Type() NodeType     { return BoldNode }

func (t Text) Literal() string     { return string(t) }
func (e Emphasis) Literal() string { return string(e) }
func (b Bold) Literal() string     { return string(b) }

func (t Text) String() string     { return "Text(" + strconv.Quote(string(t)) + ")" }
func (e Emphasis) String() string { return "Emphasis(" + strconv.Quote(string(e)) + ")" }
func (b Bold) String() string     { return "Bold(" + strconv.Quote(string(b)) + ")" }

func (t Text) isNode()     {}
func (e Emphasis) isNode() {}
func (b Bold) isNode()     {}

func (t Text) isSpan()     {}
func (e Emphasis) isSpan() {}
func (b Bold) isSpan()     {}

// Spans is a sequence of inline spans, as produced by Tokenize.
type Spans []Span

// Literal concatenates the content of all spans, markers stripped.
func (s Spans) Literal() string {
	var b strings.Builder
	for _, span := range s {
		b.WriteString(span.Literal())
	}
	return b.String()
}

// Compact returns the spans without empty Text spans.
func (s Spans) Compact() Spans {
	c := make(Spans, 0, len(s))
	for _, span := range s {
		if t, ok := span.(Text); ok && t == "" {
			continue
		}
		c = append(c, span)
	}
	return c
}

func (s Spans) String() string {
	return listString(len(s), func(i int) Node { return s[i] })
}

// nodes converts spans to paragraph children.
func (s Spans) nodes() []Node {
	n := make([]Node, len(s))
	for i, span := range s {
		n[i] = span
	}
	return n
}

// --- Document --------------------------------------------------------------

// Document is the root of a document tree: an ordered sequence of blocks.
type Document struct {
	Blocks []Block
}

func (d *Document) String() string {
	if d == nil {
		return "Document(nil)"
	}
	return "Document(" + listString(len(d.Blocks), func(i int) Node { return d.Blocks[i] }) + ")"
}

// Walk visits the document's nodes depth-first, top-level blocks at depth 0.
// If f returns an error, walking stops and the error is returned.
func (d *Document) Walk(f func(n Node, depth int) error) error {
	for _, b := range d.Blocks {
		if err := Walk(b, 0, f); err != nil {
			return err
		}
	}
	return nil
}

// Walk visits n and its descendents depth-first, in pre-order.
func Walk(n Node, depth int, f func(n Node, depth int) error) error {
	if err := f(n, depth); err != nil {
		return err
	}
	for _, ch := range Children(n) {
		if err := Walk(ch, depth+1, f); err != nil {
			return err
		}
	}
	return nil
}

// Children returns the child nodes of n. Spans and code leafs have none.
func Children(n Node) []Node {
	switch n := n.(type) {
	case *Paragraph:
		return n.Children
	case *List:
		ch := make([]Node, len(n.Items))
		for i, item := range n.Items {
			ch[i] = item
		}
		return ch
	case *Header:
		return n.Spans.nodes()
	}
	return nil
}

// Equal reports whether two document trees are structurally equal.
func Equal(a, b *Document) bool {
	if a == nil || b == nil {
		return a == b
	}
	if len(a.Blocks) != len(b.Blocks) {
		return false
	}
	for i := range a.Blocks {
		if !EqualNodes(a.Blocks[i], b.Blocks[i]) {
			return false
		}
	}
	return true
}

// EqualNodes reports whether two nodes and their subtrees are structurally
// equal.
func EqualNodes(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Type() != b.Type() {
		return false
	}
	switch a := a.(type) {
	case *Header:
		if a.Level != b.(*Header).Level {
			return false
		}
	case *Code:
		return a.Raw == b.(*Code).Raw
	case Span:
		return a.Literal() == b.(Span).Literal()
	}
	ca, cb := Children(a), Children(b)
	if len(ca) != len(cb) {
		return false
	}
	for i := range ca {
		if !EqualNodes(ca[i], cb[i]) {
			return false
		}
	}
	return true
}

func listString(n int, at func(int) Node) string {
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(at(i).String())
	}
	b.WriteByte(']')
	return b.String()
}
