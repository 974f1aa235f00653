package markdown

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNodeTypeString(t *testing.T) {
	assert.Equal(t, "Paragraph", ParagraphNode.String())
	assert.Equal(t, "Bold", BoldNode.String())
	assert.Equal(t, "List", (&List{}).Type().String())
}

func TestWalk(t *testing.T) {
	doc := Parse("# Title\n\n- a\n - b")
	var visited []string
	var depths []int
	err := doc.Walk(func(n Node, depth int) error {
		visited = append(visited, n.Type().String())
		depths = append(depths, depth)
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, []string{
		"Paragraph", "Header", "Text",
		"List", "Paragraph", "Paragraph", "Text", "List", "Paragraph", "Text",
	}, visited)
	assert.Equal(t, []int{0, 1, 2, 0, 1, 2, 3, 2, 3, 4}, depths)
	//
	stop := errors.New("stop")
	count := 0
	err = doc.Walk(func(n Node, depth int) error {
		count++
		if _, ok := n.(*Header); ok {
			return stop
		}
		return nil
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 2, count)
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(Parse("a *b*"), Parse("a *b*")))
	assert.False(t, Equal(Parse("a *b*"), Parse("a **b**")))
	assert.False(t, Equal(Parse("#a"), Parse("##a")))
	assert.False(t, Equal(Parse("a"), Parse("a\n\nb")))
	assert.True(t, Equal(nil, nil))
	assert.False(t, Equal(Parse("a"), nil))
	assert.False(t, EqualNodes(Text("x"), Emphasis("x")))
}

func TestSpans(t *testing.T) {
	spans := Tokenize("a **b** c")
	assert.Equal(t, "a b c", spans.Literal())
	assert.Equal(t, `[Text("a "), Bold("b"), Text(" c")]`, spans.String())
	assert.Equal(t, Spans{Bold("b")}, Tokenize("**b**").Compact())
}
