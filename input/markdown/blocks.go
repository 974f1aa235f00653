package markdown

import (
	"strings"
	"unicode"
)

const fence = "```"

// FencePolicy decides what happens to a code fence which is still open at
// the end of the input.
type FencePolicy int8

// Fence policies
const (
	FlushUnterminated FencePolicy = iota // keep the open region as a final block
	DropUnterminated                     // discard the open region
)

func (fp FencePolicy) String() string {
	if fp == DropUnterminated {
		return "drop"
	}
	return "flush"
}

// fragment is a stretch of input between runs of blank lines.
type fragment struct {
	from, to int // byte positions in the input
}

// SplitBlocks divides text into blocks separated by two or more consecutive
// newlines. Fenced code regions are opaque: blank lines between an opening
// and a closing fence do not split the region, which is returned exactly as
// found in the input. Newlines at the end of the input do not belong to the
// last block.
//
// Blocks consisting of white space only are skipped, so "text\n\n" and
// "text\n\n  " both yield the single block "text".
func SplitBlocks(text string, policy FencePolicy) []string {
	frags := splitFragments(text)
	blocks := make([]string, 0, len(frags))
	open := -1 // input position of an open fence region, or -1
	for _, f := range frags {
		s := text[f.from:f.to]
		if open < 0 {
			if strings.TrimSpace(s) == "" {
				continue
			}
			if opensFence(s) {
				open = f.from
				continue
			}
			blocks = append(blocks, s)
			continue
		}
		if closesFence(s) {
			blocks = append(blocks, text[open:f.to])
			open = -1
		}
	}
	if open >= 0 {
		tracer().Infof("code fence opened at position %d is not closed, policy is %s", open, policy)
		if policy == FlushUnterminated {
			blocks = append(blocks, strings.TrimRight(text[open:], "\n"))
		}
	}
	return blocks
}

// splitFragments cuts text at every run of at least two newlines and
// before the newlines ending the input.
func splitFragments(text string) []fragment {
	frags := make([]fragment, 0, 16)
	start := 0
	for i := 0; i < len(text); {
		if text[i] != '\n' {
			i++
			continue
		}
		j := i
		for j < len(text) && text[j] == '\n' {
			j++
		}
		if j-i >= 2 || j == len(text) {
			frags = append(frags, fragment{start, i})
			start = j
		}
		i = j
	}
	return append(frags, fragment{start, len(text)})
}

// opensFence is true for a fragment starting with a fence which does not
// close it again.
func opensFence(s string) bool {
	if !strings.HasPrefix(s, fence) {
		return false
	}
	t := strings.TrimRightFunc(s, unicode.IsSpace)
	return t[len(t)-1] != '`'
}

// closesFence is true for a fragment ending with a fence. Trailing white
// space is ignored.
func closesFence(s string) bool {
	return strings.HasSuffix(strings.TrimRightFunc(s, unicode.IsSpace), fence)
}
