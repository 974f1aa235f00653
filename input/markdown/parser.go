package markdown

import (
	"io"
	"strings"

	"github.com/npillmayer/mdtree/core"
	"golang.org/x/text/unicode/norm"
)

// Parser converts Markdown text into document trees.
// A Parser is not modified by parsing and may be shared between goroutines.
type Parser struct {
	fences    FencePolicy
	normalize bool
}

// Option configures a Parser.
type Option func(*Parser)

// WithFencePolicy sets the treatment of code fences left open at the end of
// the input. The default is FlushUnterminated.
func WithFencePolicy(policy FencePolicy) Option {
	return func(p *Parser) {
		p.fences = policy
	}
}

// WithNormalization switches Unicode NFC normalization of the input on or
// off. It is off by default.
func WithNormalization(nfc bool) Option {
	return func(p *Parser) {
		p.normalize = nfc
	}
}

// NewParser creates a parser. Without options it flushes unterminated code
// fences and leaves the input unnormalized.
func NewParser(opts ...Option) *Parser {
	p := &Parser{fences: FlushUnterminated}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var defaultParser = NewParser()

// Parse parses text with a default parser. It never fails.
func Parse(text string) *Document {
	return defaultParser.Parse(text)
}

// ParseReader reads all of r and parses it.
// Errors are reading errors only, parsing itself never fails.
func ParseReader(r io.Reader, opts ...Option) (*Document, error) {
	if r == nil {
		return nil, core.Error(core.EINVALID, "no input to parse")
	}
	var b strings.Builder
	if _, err := io.Copy(&b, r); err != nil {
		return nil, core.WrapError(err, core.EIO, "cannot read markdown input")
	}
	return NewParser(opts...).Parse(b.String()), nil
}

// Parse splits text into blocks and parses every block into a tree node.
// The blocks of the resulting document appear in input order.
func (p *Parser) Parse(text string) *Document {
	if p.normalize {
		text = norm.NFC.String(text)
	}
	blocks := SplitBlocks(text, p.fences)
	doc := &Document{Blocks: make([]Block, 0, len(blocks))}
	for i, block := range blocks {
		b := parseBlock(block)
		tracer().Debugf("block #%d is a %s", i, classify(b))
		doc.Blocks = append(doc.Blocks, b)
	}
	tracer().Infof("parsed %d blocks", len(doc.Blocks))
	return doc
}

// parseBlock classifies a raw block and parses it. Classification is
// exclusive and goes by priority: code fence, header, list, paragraph.
// Once a header line is found, the header parser owns the whole block,
// even if other lines look like list items.
func parseBlock(block string) Block {
	if strings.HasPrefix(block, fence) {
		return &Paragraph{Children: []Node{&Code{Raw: block}}}
	}
	if p, ok := parseHeaders(block); ok {
		return p
	}
	if startsList(block) {
		return parseList(block)
	}
	return parseParagraph(block)
}

// classify names the variant of a parsed top-level block, for tracing.
func classify(b Block) string {
	if p, ok := b.(*Paragraph); ok && len(p.Children) > 0 {
		switch p.Children[len(p.Children)-1].(type) {
		case *Code:
			return "code block"
		case *Header:
			return "header block"
		}
	}
	return b.Type().String()
}
