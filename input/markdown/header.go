package markdown

import "strings"

// MaxHeaderLevel is the deepest header level. Longer runs of '#' are capped,
// the excess characters remain part of the header's text.
const MaxHeaderLevel = 6

// headerMark is a run of '#' at the start of a line.
type headerMark struct {
	pos   int // start of the run
	level int // length of the run, capped
}

// findHeaderMarks collects every run of '#' which starts a line of block.
// A '#' in the middle of a line is literal text.
func findHeaderMarks(block string) []headerMark {
	var marks []headerMark
	for pos := 0; pos < len(block); {
		if block[pos] == '#' {
			level := 1
			for level < MaxHeaderLevel && pos+level < len(block) && block[pos+level] == '#' {
				level++
			}
			marks = append(marks, headerMark{pos: pos, level: level})
		}
		nl := strings.IndexByte(block[pos:], '\n')
		if nl < 0 {
			break
		}
		pos += nl + 1
	}
	return marks
}

// parseHeaders converts a block with header lines into a paragraph of
// headers. Each header extends from its '#' run to the next run or to the
// end of the block, trimmed of surrounding white space. Text preceding the
// first header is kept as leading spans of the paragraph.
//
// ok is false if block contains no header line.
func parseHeaders(block string) (p *Paragraph, ok bool) {
	marks := findHeaderMarks(block)
	if len(marks) == 0 {
		return nil, false
	}
	p = &Paragraph{Children: make([]Node, 0, len(marks)+1)}
	if lead := strings.TrimSpace(block[:marks[0].pos]); lead != "" {
		p.Children = append(p.Children, Tokenize(lead).nodes()...)
	}
	for i, m := range marks {
		end := len(block)
		if i+1 < len(marks) {
			end = marks[i+1].pos
		}
		text := strings.TrimSpace(block[m.pos+m.level : end])
		p.Children = append(p.Children, &Header{Level: m.level, Spans: Tokenize(text)})
	}
	return p, true
}
