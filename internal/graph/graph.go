// Package graph renders a stack's resource dependency graph in DOT or
// Mermaid format.
package graph

import (
	"io"
	"strings"

	"github.com/emicklei/dot"

	"github.com/GraemeHosford/vpc-pluralsight/internal/synth"
)

// Format specifies the output format for the graph.
type Format string

const (
	// FormatDOT outputs Graphviz DOT format.
	FormatDOT Format = "dot"
	// FormatMermaid outputs Mermaid format for GitHub/markdown rendering.
	FormatMermaid Format = "mermaid"
)

// Generator renders dependency graphs from a synthesized stack model.
type Generator struct {
	// IncludeParameters includes parameter references in the graph.
	IncludeParameters bool

	// Format specifies the output format (dot or mermaid). Defaults to dot.
	Format Format

	// ClusterByService groups resources by AWS service.
	ClusterByService bool
}

// Generate renders the model's dependency graph to w.
func (g *Generator) Generate(m *synth.Model, w io.Writer) error {
	graph := g.buildGraph(m)

	format := g.Format
	if format == "" {
		format = FormatDOT
	}

	var output string
	if format == FormatMermaid {
		output = dot.MermaidGraph(graph, dot.MermaidTopToBottom)
	} else {
		output = graph.String()
	}

	_, err := w.Write([]byte(output))
	return err
}

// GenerateString is a convenience method that returns the graph as a string.
func (g *Generator) GenerateString(m *synth.Model) (string, error) {
	var sb strings.Builder
	if err := g.Generate(m, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (g *Generator) buildGraph(m *synth.Model) *dot.Graph {
	graph := dot.NewGraph(dot.Directed)
	graph.Attr("rankdir", "TB")
	graph.Attr("label", m.Stack.Name)

	graph.NodeInitializer(func(n dot.Node) {
		n.Attr("shape", "box")
		n.Attr("fontname", "Arial")
	})
	graph.EdgeInitializer(func(e dot.Edge) {
		e.Attr("fontname", "Arial")
		e.Attr("fontsize", "10")
	})

	var nodes map[string]dot.Node
	if g.ClusterByService {
		nodes = g.addClusteredNodes(graph, m)
	} else {
		nodes = g.addNodes(graph, m)
	}

	if g.IncludeParameters {
		for _, name := range m.Stack.ParameterNames() {
			n := graph.Node(name)
			n.Attr("shape", "ellipse")
			n.Attr("style", "dashed")
			n.Label(name)
			nodes[name] = n
		}
	}

	for _, name := range m.Order {
		info := m.Resources[name]
		attrRefs := toSet(info.AttrRefs)

		for _, dep := range info.Dependencies {
			e := graph.Edge(nodes[name], nodes[dep])
			// GetAtt edges carry attribute values rather than plain IDs.
			if attrRefs[dep] {
				e.Attr("color", "blue")
			}
		}
		if g.IncludeParameters {
			for _, param := range info.ParameterRefs {
				e := graph.Edge(nodes[name], nodes[param])
				e.Attr("style", "dashed")
			}
		}
	}

	return graph
}

func (g *Generator) addNodes(graph *dot.Graph, m *synth.Model) map[string]dot.Node {
	nodes := make(map[string]dot.Node, len(m.Order))
	for _, name := range m.Order {
		n := graph.Node(name)
		n.Label(name + "\\n[" + m.Resources[name].Type + "]")
		nodes[name] = n
	}
	return nodes
}

// addClusteredNodes groups nodes by AWS service, so the EC2 mesh does not
// drown the occasional IAM or Logs resource. Edges are drawn against the
// returned handles; looking nodes up by id on the root graph would mint
// duplicates outside the clusters.
func (g *Generator) addClusteredNodes(graph *dot.Graph, m *synth.Model) map[string]dot.Node {
	serviceResources := make(map[string][]string)
	var serviceOrder []string

	for _, name := range m.Order {
		service := extractService(m.Resources[name].Type)
		if _, seen := serviceResources[service]; !seen {
			serviceOrder = append(serviceOrder, service)
		}
		serviceResources[service] = append(serviceResources[service], name)
	}

	nodes := make(map[string]dot.Node, len(m.Order))
	for _, service := range serviceOrder {
		names := serviceResources[service]
		if len(names) > 1 {
			cluster := graph.Subgraph(service, dot.ClusterOption{})
			cluster.Attr("style", "rounded")
			cluster.Attr("bgcolor", "lightyellow")
			for _, name := range names {
				n := cluster.Node(name)
				n.Label(name + "\\n[" + m.Resources[name].Type + "]")
				nodes[name] = n
			}
		} else {
			for _, name := range names {
				n := graph.Node(name)
				n.Label(name + "\\n[" + m.Resources[name].Type + "]")
				nodes[name] = n
			}
		}
	}
	return nodes
}

// extractService returns the service part of a CloudFormation type.
// e.g. "AWS::EC2::VPC" -> "EC2".
func extractService(cfType string) string {
	parts := strings.Split(cfType, "::")
	if len(parts) == 3 {
		return parts[1]
	}
	return "Other"
}

func toSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}
