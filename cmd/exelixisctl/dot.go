package main

import (
	"fmt"
	"io"
	"strings"

	"exelixis/internal/genealogy"
)

// writeDOT renders a genealogy graph in Graphviz DOT form. Node labels carry
// the short candidate id, generation and fitness; edge direction follows
// derivation (parent to child).
func writeDOT(w io.Writer, runID string, graph genealogy.Graph) error {
	var b strings.Builder
	fmt.Fprintf(&b, "digraph %q {\n", runID)
	b.WriteString("\trankdir=TB;\n")
	b.WriteString("\tnode [shape=box, fontsize=10];\n")
	for _, v := range graph.Vertices {
		fmt.Fprintf(&b, "\t%q [label=\"%s\\ngen=%d fit=%.3f\"];\n",
			v.Candidate.ID, shortID(v.Candidate.ID), v.Generation, v.Candidate.Fitness)
	}
	for _, e := range graph.Edges {
		fmt.Fprintf(&b, "\t%q -> %q;\n", e.From, e.To)
	}
	b.WriteString("}\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}
