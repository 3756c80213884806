// Package dot renders a partial order graph to Graphviz DOT and a minimal
// vis-network HTML page, mirroring original_source's io.rs write_dot/
// write_html — out of scope for the core per spec §1, but given a concrete
// home here as an external collaborator.
package dot

import (
	"fmt"
	"strings"

	"github.com/aria-lang/bioflow-go/internal/poa/graph"
)

// WriteDOT renders g as a Graphviz "digraph" document.
func WriteDOT(g *graph.Graph) string {
	var b strings.Builder
	b.WriteString("digraph poa {\n")

	for id := 0; id < g.NodeCount(); id++ {
		nid := graph.NodeID(id)
		fmt.Fprintf(&b, "    %d [label=%q]\n", id, g.Node(nid).Symbol)
	}

	for id := 0; id < g.NodeCount(); id++ {
		src := graph.NodeID(id)
		for _, dst := range g.Successors(src) {
			edge, _ := g.Edge(src, dst)
			weight := len(edge.Labels)
			if weight > 10 {
				weight = 10
			}
			fmt.Fprintf(&b, "    %d -> %d [label=%q penwidth=%d minlen=%d]\n",
				src, dst, fmt.Sprintf("Fragments: [%s]", strings.Join(edge.Labels, ", ")), weight, weight)
		}
	}

	b.WriteString("}\n")
	return b.String()
}

// WriteHTML wraps WriteDOT's output in a standalone vis-network page.
func WriteHTML(g *graph.Graph) string {
	dot := WriteDOT(g)
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
    <title>Partial Order Alignment Graph</title>
    <script src="https://unpkg.com/vis-network/standalone/umd/vis-network.min.js"></script>
    <style>
        #poa-graph { height: 100vh; }
    </style>
</head>
<body>
    <div id="poa-graph"></div>
    <script type="text/javascript">
    var container = document.getElementById("poa-graph");
    var dot = %q;
    var data = vis.parseDOTNetwork(dot);
    var network = new vis.Network(container, data);
    </script>
</body>
</html>
`, dot)
}
