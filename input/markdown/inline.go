package markdown

import "strings"

// Tokenize splits text into inline spans.
//
// Bold (`**…**`) and emphasis (`*…*`) are recognized left to right; their
// content must not contain an asterisk. At every position bold is tried
// before emphasis, otherwise a bold run would be taken for two emphasis runs.
// Matches never overlap. Text between, before and after matches is kept as
// Text spans, even if empty, so the result always starts and ends with a
// Text span. A string without asterisks yields exactly one Text span.
//
// Unbalanced asterisks are not special-cased: an asterisk without a partner
// stays literal text, and `**` alone is an empty emphasis.
func Tokenize(text string) Spans {
	spans := make(Spans, 0, 3)
	start := 0 // start of pending literal text
	for i := 0; i < len(text); {
		if text[i] != '*' {
			i++
			continue
		}
		span, end, ok := inlineMarkup(text, i)
		if !ok {
			i++
			continue
		}
		spans = append(spans, Text(text[start:i]), span)
		i, start = end, end
	}
	return append(spans, Text(text[start:]))
}

// inlineMarkup recognizes a bold or emphasis run starting at pos, which
// must hold an asterisk. It returns the span and the position following
// the closing marker.
func inlineMarkup(text string, pos int) (Span, int, bool) {
	if strings.HasPrefix(text[pos:], "**") {
		if k := strings.IndexByte(text[pos+2:], '*'); k >= 0 {
			closing := pos + 2 + k
			if closing+1 < len(text) && text[closing+1] == '*' {
				return Bold(text[pos+2 : closing]), closing + 2, true
			}
		}
	}
	if k := strings.IndexByte(text[pos+1:], '*'); k >= 0 {
		closing := pos + 1 + k
		return Emphasis(text[pos+1 : closing]), closing + 1, true
	}
	return nil, pos, false
}
