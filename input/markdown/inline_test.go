package markdown

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdtree.markdown")
	defer teardown()
	//
	tests := []struct {
		name  string
		input string
		want  Spans
	}{
		{"empty", "", Spans{Text("")}},
		{"plain", "hello world", Spans{Text("hello world")}},
		{"emphasis", "Emphasis *is* supported.",
			Spans{Text("Emphasis "), Emphasis("is"), Text(" supported.")}},
		{"bold", "Bold **is** supported.",
			Spans{Text("Bold "), Bold("is"), Text(" supported.")}},
		{"bold before emphasis", "**a** *b*",
			Spans{Text(""), Bold("a"), Text(" "), Emphasis("b"), Text("")}},
		{"trailing empty text", "this is *header* and **header**",
			Spans{Text("this is "), Emphasis("header"), Text(" and "), Bold("header"), Text("")}},
		{"unmatched star", "2 * 3 = 6", Spans{Text("2 * 3 = 6")}},
		{"unclosed bold", "**oops", Spans{Text(""), Emphasis(""), Text("oops")}},
		{"double star alone", "a ** b", Spans{Text("a "), Emphasis(""), Text(" b")}},
		{"empty bold", "****", Spans{Text(""), Bold(""), Text("")}},
		{"triple stars", "***x***",
			Spans{Text(""), Emphasis(""), Text(""), Emphasis("x"), Text(""), Emphasis(""), Text("")}},
		{"bold without closing pair", "**a* b",
			Spans{Text(""), Emphasis(""), Text("a* b")}},
		{"multi-line", "one *two\nthree* four",
			Spans{Text("one "), Emphasis("two\nthree"), Text(" four")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.input))
		})
	}
}

func TestTokenizeWithoutMarkersIsIdentity(t *testing.T) {
	for _, s := range []string{"", " ", "a", "# not a header here", "tabs\tand\nnewlines", "ünïcödé – ✓"} {
		spans := Tokenize(s)
		if assert.Len(t, spans, 1, "input %q", s) {
			assert.Equal(t, Text(s), spans[0])
		}
	}
}

func TestBoldHasPriority(t *testing.T) {
	spans := Tokenize("**a** *b*")
	assert.Equal(t, Spans{Bold("a"), Text(" "), Emphasis("b")}, spans.Compact())
}

func TestSpansLiteral(t *testing.T) {
	spans := Tokenize("a **b** *c* d")
	assert.Equal(t, "a b c d", spans.Literal())
	assert.Equal(t, `[Text("a "), Bold("b"), Text(" "), Emphasis("c"), Text(" d")]`, spans.String())
}
