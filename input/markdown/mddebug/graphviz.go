package mddebug

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/npillmayer/cords"
	"github.com/npillmayer/mdtree/input/markdown"
)

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname string
	NodeTmpl *template.Template
	EdgeTmpl *template.Template
	cnt      int
}

// Helper structs
type gnode struct {
	N    markdown.Node
	Name string
}

type gedge struct {
	N1, N2 gnode
}

// ToGraphViz creates a graphical representation of a document tree.
// It produces a DOT file format suitable as input for Graphviz.
func ToGraphViz(doc *markdown.Document, w io.Writer) error {
	header, err := template.New("docTree").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := &graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("node").Funcs(
		template.FuncMap{
			"label":  dotLabel,
			"isspan": isSpan,
		}).Parse(nodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("edge").Parse(edgeTmpl))
	if err = header.Execute(w, gparams); err != nil {
		return err
	}
	root := gnode{nil, "doc"}
	if _, err = io.WriteString(w, "doc\t[ label=\"Document\" shape=box style=filled fillcolor=lightblue3 ] ;\n"); err != nil {
		return err
	}
	if doc != nil {
		for _, b := range doc.Blocks {
			if err = nodes(b, root, w, gparams); err != nil {
				return err
			}
		}
	}
	_, err = io.WriteString(w, "}\n")
	return err
}

func nodes(n markdown.Node, parent gnode, w io.Writer, gparams *graphParamsType) error {
	g := gnode{n, gparams.name()}
	tracer().Debugf("dot node %s = %s", g.Name, n.Type())
	if err := gparams.NodeTmpl.Execute(w, g); err != nil {
		return err
	}
	if err := gparams.EdgeTmpl.Execute(w, gedge{parent, g}); err != nil {
		return err
	}
	for _, ch := range markdown.Children(n) {
		if err := nodes(ch, g, w, gparams); err != nil {
			return err
		}
	}
	return nil
}

// name returns a fresh DOT name. Every node of a tree is visited once.
func (gparams *graphParamsType) name() string {
	gparams.cnt++
	return fmt.Sprintf("node%05d", gparams.cnt)
}

func dotLabel(g gnode) string {
	s := Label(g.N, 24)
	s = strings.Replace(s, `\`, `\\`, -1)
	s = strings.Replace(s, `"`, `\"`, -1)
	return "\"" + s + "\""
}

func isSpan(g gnode) bool {
	_, ok := g.N.(markdown.Span)
	return ok
}

// FragmentsToDot writes the leaf structure of a rendered cord in DOT format.
func FragmentsToDot(text cords.Cord, w io.Writer) {
	cords.Cord2Dot(text, w)
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=12] ;
   node [fontname = "{{ .Fontname }}" fontsize=12] ;
   edge [fontname = "{{ .Fontname }}" fontsize=12] ;
`

const nodeTmpl = `{{ if isspan . }}{{ .Name }}	[ label={{ label . }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ else }}{{ .Name }}	[ label={{ label . }} shape=box style=filled fillcolor=lightblue3 ] ;
{{ end }}`

const edgeTmpl = `{{ .N1.Name }} -> {{ .N2.Name }} [weight=1] ;
`
