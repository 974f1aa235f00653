package markdown

import (
	"bytes"
	"errors"
	"testing"

	"github.com/npillmayer/mdtree/core"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdtree.markdown")
	defer teardown()
	//
	tests := []struct {
		input string
		want  string
	}{
		{"The first paragraph.\n\nThe second paragraph.", "The first paragraph.\n\nThe second paragraph.\n\n"},
		{"#header1\n##header2\n\nanother paragraph", "# header1\n## header2\n\nanother paragraph\n\n"},
		{"- item1\n- item2\n - item2.1\n - item2.2\n- item3", "- item1\n- item2\n - item2.1\n - item2.2\n- item3\n\n"},
		{"```\na\n\nb\n```", "```\na\n\nb\n```\n\n"},
		{"Bold **is** and *em* too.", "Bold **is** and *em* too.\n\n"},
		{"intro\n\n> quoted", "intro\n\n\n> quoted\n\n"},
		{"Title\n---", "Title\n---\n\n\n\n"},
		{"#######this is header", "###### #this is header\n\n"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Render(Parse(tt.input)), "input %q", tt.input)
	}
}

func TestRenderRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdtree.markdown")
	defer teardown()
	//
	inputs := []string{
		"This is a paragraph.",
		"The first paragraph.\n\nThe second paragraph.",
		"Emphasis *is* supported, **bold** as well.",
		"- the first item\n- the second item",
		"* the first item\n* the second item",
		"- item1\n- item2\n - item2.1\n - item2.2\n- item3",
		"- a\n - b *c*",
		"#header1\n##header2\n\nanother paragraph",
		"#######this is *header* and **header**",
		"intro *text*\n## Section\nbody",
		"```\nfirst\n\n\nsecond\n```\n\nafter the code",
		"text\n\n```\ncode\n```",
		"x y\n",
		"first\n\nsecond line\nthird line\n",
		"- a\n- b\n",
		"#Title\nbody\n",
		"```\ncode\n```\n",
		"trailing blanks \n\n\n",
	}
	for _, input := range inputs {
		doc := Parse(input)
		again := Parse(Render(doc))
		assert.True(t, Equal(doc, again), "round trip of %q yields %s, expected %s", input, again, doc)
	}
}

func TestRenderListMarker(t *testing.T) {
	doc := Parse("- a\n- b")
	r := NewRenderer(WithListMarker('*'))
	assert.Equal(t, "* a\n* b\n\n", r.Render(doc))
	r = NewRenderer(WithListMarker('+'))
	assert.Equal(t, "- a\n- b\n\n", r.Render(doc))
}

func TestRenderConstructedTree(t *testing.T) {
	doc := &Document{Blocks: []Block{
		&Paragraph{Children: []Node{&Header{Level: 3, Spans: Spans{Text("Notes")}}}},
		&List{Items: []*Paragraph{
			{Children: []Node{Text("one "), Bold("two")}},
		}},
	}}
	assert.Equal(t, "### Notes\n\n- one **two**\n\n", Render(doc))
	assert.Equal(t, "", Render(nil))
}

func TestFragments(t *testing.T) {
	doc := Parse("a *b*")
	c := NewRenderer().Fragments(doc)
	require.False(t, c.IsVoid())
	assert.Equal(t, uint64(len("a *b*\n\n")), c.Len())
	assert.Equal(t, "a *b*\n\n", c.String())
	assert.True(t, NewRenderer().Fragments(nil).IsVoid())
}

func TestWriteTo(t *testing.T) {
	doc := Parse("- x")
	var buf bytes.Buffer
	n, err := doc.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	assert.Equal(t, "- x\n\n", buf.String())
	//
	b, err := doc.MarshalMarkdown()
	require.NoError(t, err)
	assert.Equal(t, buf.Bytes(), b)
	//
	_, err = NewRenderer().Write(failingWriter{}, doc)
	assert.Error(t, err)
	assert.Equal(t, core.EIO, core.Code(err))
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("device full")
}
