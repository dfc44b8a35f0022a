// Package render turns permutations and subgroups into Graphviz diagrams:
// cycle diagrams (one node per index, one edge per mapping) and Cayley
// graphs (one node per group element, one colored edge per generator).
package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/matzehuels/permtower/pkg/group"
	"github.com/matzehuels/permtower/pkg/perm"
)

// cyclePalette colors the cycles of a cycle diagram. Cycles beyond the
// palette wrap around.
var cyclePalette = []string{
	"#2aa198", "#b58900", "#6c71c4", "#d33682", "#859900", "#cb4b16",
}

// CycleDOT converts a permutation to Graphviz DOT format: one node per
// index and a directed edge i → p(i) for every moved index. Each cycle gets
// its own color; fixed points are drawn dashed and grey.
func CycleDOT(p perm.Permutation) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  layout=circo;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=18];\n")
	buf.WriteString("\n")

	for ci, cycle := range p.Cycles() {
		if len(cycle) == 1 {
			fmt.Fprintf(&buf, "  %d [style=\"filled,dashed\", fillcolor=lightgrey];\n", cycle[0])
			continue
		}
		color := cyclePalette[ci%len(cyclePalette)]
		for i, v := range cycle {
			next := cycle[(i+1)%len(cycle)]
			fmt.Fprintf(&buf, "  %d -> %d [color=%q];\n", v, next, color)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// CayleyDOT converts a subgroup and a generator set to the Cayley graph in
// DOT format: one node per element (labeled in cycle notation) and, for
// each generator g, an edge x → g∘x colored per generator.
//
// The generators are not required to generate the whole subgroup; the graph
// simply shows the action of each generator on every element.
func CayleyDOT(s *group.Subgroup, generators []perm.Permutation) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	fmt.Fprintf(&buf, "  label=%q;\n", "generators: "+legendLabel(generators))
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14];\n")
	buf.WriteString("\n")

	elements := s.Elements()
	for _, e := range elements {
		fmt.Fprintf(&buf, "  %q [label=%q];\n", e.Key(), e.String())
	}

	buf.WriteString("\n")
	for gi, g := range generators {
		color := cyclePalette[gi%len(cyclePalette)]
		for _, e := range elements {
			target := perm.MustCompose(g, e)
			fmt.Fprintf(&buf, "  %q -> %q [color=%q, tooltip=%q];\n",
				e.Key(), target.Key(), color, g.String())
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// legendLabel summarizes the generators for diagram titles.
func legendLabel(generators []perm.Permutation) string {
	parts := make([]string, len(generators))
	for i, g := range generators {
		parts[i] = g.String()
	}
	return strings.Join(parts, ", ")
}
