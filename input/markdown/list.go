package markdown

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// isMarker is true for the list item markers '-' and '*'.
func isMarker(c byte) bool {
	return c == '-' || c == '*'
}

// skipSpace returns the position of the first non-white-space rune at or
// after pos.
func skipSpace(s string, pos int) int {
	for pos < len(s) {
		r, w := utf8.DecodeRuneInString(s[pos:])
		if !unicode.IsSpace(r) {
			break
		}
		pos += w
	}
	return pos
}

// markerEnd checks for a list marker at pos: '-' or '*' followed by at
// least one white space character. It returns the position after the white
// space run, or -1.
func markerEnd(s string, pos int) int {
	if pos >= len(s) || !isMarker(s[pos]) {
		return -1
	}
	if end := skipSpace(s, pos+1); end > pos+1 {
		return end
	}
	return -1
}

// startsList is true if block begins with a list marker.
func startsList(block string) bool {
	return markerEnd(block, 0) > 0
}

// splitItems splits a block at every list marker starting a line. Text in
// front of the first marker is discarded. Items are trimmed.
func splitItems(block string) []string {
	var items []string
	item := -1 // start of the current item
	for pos := 0; pos < len(block); {
		if pos == 0 || block[pos-1] == '\n' {
			if end := markerEnd(block, pos); end > 0 {
				if item >= 0 {
					items = append(items, strings.TrimSpace(block[item:pos]))
				}
				item, pos = end, end
				continue
			}
		}
		pos++
	}
	if item >= 0 {
		items = append(items, strings.TrimSpace(block[item:]))
	}
	return items
}

// nextLooseMarker finds the next list marker embedded in a line, i.e. a run
// of white space, '-' or '*', and another run of white space. It returns
// the start and end of the match, or (-1, -1).
func nextLooseMarker(s string, from int) (int, int) {
	for pos := from; pos < len(s); {
		r, w := utf8.DecodeRuneInString(s[pos:])
		if !unicode.IsSpace(r) {
			pos += w
			continue
		}
		run := skipSpace(s, pos)
		if end := markerEnd(s, run); end > 0 {
			return pos, end
		}
		pos = run
	}
	return -1, -1
}

// splitLoose splits s at every embedded list marker.
func splitLoose(s string) []string {
	parts := make([]string, 0, 4)
	from := 0
	for {
		start, end := nextLooseMarker(s, from)
		if start < 0 {
			break
		}
		parts = append(parts, s[from:start])
		from = end
	}
	return append(parts, s[from:])
}

// parseList converts a block starting with a list marker into a list.
//
// Parsing is done in two phases: first the block is split into items at
// markers starting a line, then each item is checked for a nested list
// (items indented by white space, which the first phase left inside the
// item's text). Only one level of nesting is modelled; deeper items end up
// in the nested list as well.
func parseList(block string) *List {
	raw := splitItems(block)
	list := &List{Items: make([]*Paragraph, len(raw))}
	for i, item := range raw {
		list.Items[i] = promoteNested(parseParagraph(item), item)
	}
	return list
}

// promoteNested rewrites a freshly parsed list item if the text of its
// first span contains embedded list markers. The item then becomes
//
//	Paragraph([ Paragraph(first line), List(nested items) ])
//
// Spans following the first one are appended to the last nested item.
// raw is the item's source text.
func promoteNested(item *Paragraph, raw string) *Paragraph {
	if len(item.Children) == 0 {
		return item
	}
	first, ok := item.Children[0].(Text)
	if !ok {
		return item
	}
	parts := splitLoose(string(first))
	if len(parts) < 2 {
		return item
	}
	parts[len(parts)-1] += raw[len(first):]
	nested := &List{Items: make([]*Paragraph, len(parts)-1)}
	for i, part := range parts[1:] {
		nested.Items[i] = parseParagraph(strings.TrimSpace(part))
	}
	tracer().Debugf("list item %q has %d nested items", strings.TrimSpace(parts[0]), len(nested.Items))
	return &Paragraph{Children: []Node{
		parseParagraph(strings.TrimSpace(parts[0])),
		nested,
	}}
}

// parseParagraph is the default handler: a paragraph of inline spans.
func parseParagraph(text string) *Paragraph {
	return &Paragraph{Children: Tokenize(text).nodes()}
}
