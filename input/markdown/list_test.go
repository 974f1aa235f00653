package markdown

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestSplitItems(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdtree.markdown")
	defer teardown()
	//
	assert.Equal(t, []string{"a", "b"}, splitItems("- a\n- b"))
	assert.Equal(t, []string{"a", "b"}, splitItems("* a\n-\tb"))
	assert.Equal(t, []string{"a\n - b"}, splitItems("- a\n - b"))
	assert.Equal(t, []string{"", "b"}, splitItems("- \n- b"))
	assert.Equal(t, []string{"a-b"}, splitItems("- a-b"))
	assert.Nil(t, splitItems("no list here"))
}

func TestStartsList(t *testing.T) {
	assert.True(t, startsList("- a"))
	assert.True(t, startsList("* a"))
	assert.False(t, startsList("*a*"))
	assert.False(t, startsList("-a"))
	assert.False(t, startsList(" - a"))
	assert.False(t, startsList("| a | b |"))
	assert.False(t, startsList("-"))
}

func TestSplitLoose(t *testing.T) {
	assert.Equal(t, []string{"item2", "item2.1", "item2.2"}, splitLoose("item2\n - item2.1\n - item2.2"))
	assert.Equal(t, []string{"a", "b"}, splitLoose("a * b"))
	assert.Equal(t, []string{"no-marker"}, splitLoose("no-marker"))
	assert.Equal(t, []string{"a -b"}, splitLoose("a -b"))
}

func TestNestedItemKeepsLaterSpans(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdtree.markdown")
	defer teardown()
	//
	list := parseList("- a\n - b *c*")
	assert.Equal(t, `List([Paragraph([Paragraph([Text("a")]), List([Paragraph([Text("b "), Emphasis("c"), Text("")])])])])`,
		list.String())
}

func TestDeeperNestingIsFlattened(t *testing.T) {
	list := parseList("- a\n - b\n  - c")
	assert.Equal(t, `List([Paragraph([Paragraph([Text("a")]), List([Paragraph([Text("b")]), Paragraph([Text("c")])])])])`,
		list.String())
}

func TestItemWithEmphasisFirstIsNotNested(t *testing.T) {
	list := parseList("- *x* - y")
	assert.Equal(t, `List([Paragraph([Text(""), Emphasis("x"), Text(" - y")])])`, list.String())
}
