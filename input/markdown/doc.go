/*
Package markdown parses Markdown input into a document tree and renders such
trees back into Markdown text.

Markdown parsing is rather local: no change at the start of the input has any
effect on blocks far behind. It suffices to determine the current block
context, which is why the parser works in two stages:

	text ──▶ blocks ──▶ classify (code | header | list | paragraph) ──▶ spans

Blocks are separated by blank lines, except inside fenced code regions.
Every block is classified exactly once, in the priority order given above,
and its leaf text is split into inline spans (text, emphasis, bold).

Only a subset of Markdown is recognized. Tables, links, images and
footnotes are kept as literal text. Lists support exactly one level of
nesting.

Parsing is total: every input produces a document, and unbalanced markup
degrades to literal text.

	doc := markdown.Parse("# Title\n\nSome *emphasis* here.")
	fmt.Println(doc)               // Document([Paragraph([Header(1,[Text("Title")])]), …])
	fmt.Print(markdown.Render(doc))

Some references for the grammar:

	https://github.github.com/gfm/
	https://www.markdownguide.org/basic-syntax

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package markdown

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mdtree.markdown'.
func tracer() tracing.Trace {
	return tracing.Select("mdtree.markdown")
}
