/*
Package mddebug helps inspecting markdown document trees.

Trees may be dumped as indented text, exported in Graphviz DOT format, or
pretty-printed as Go values. The output of a renderer, a cord of text
fragments, may be exported to DOT as well.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package mddebug

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mdtree.debug'.
func tracer() tracing.Trace {
	return tracing.Select("mdtree.debug")
}
