package rdf

import (
	"io"
	"strings"
)

// Graph is an in-memory set of triples. Insertion order is preserved for
// iteration; duplicate inserts are absorbed here rather than at the sink
// layer. Not safe for concurrent use.
type Graph struct {
	triples []Triple
	seen    map[Triple]struct{}
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{seen: make(map[Triple]struct{})}
}

// Insert adds a triple to the graph. It reports whether the triple was not
// already present.
func (g *Graph) Insert(t Triple) bool {
	if _, ok := g.seen[t]; ok {
		return false
	}
	g.seen[t] = struct{}{}
	g.triples = append(g.triples, t)
	return true
}

// Contains reports whether the graph holds the triple.
func (g *Graph) Contains(t Triple) bool {
	_, ok := g.seen[t]
	return ok
}

// Len returns the number of distinct triples in the graph.
func (g *Graph) Len() int { return len(g.triples) }

// Triples returns the graph's triples in insertion order. The returned
// slice is shared; callers must not modify it.
func (g *Graph) Triples() []Triple { return g.triples }

// Subjects returns the distinct subjects in insertion order.
func (g *Graph) Subjects() []Term {
	var out []Term
	seen := make(map[Term]struct{})
	for _, t := range g.triples {
		if _, ok := seen[t.S]; ok {
			continue
		}
		seen[t.S] = struct{}{}
		out = append(out, t.S)
	}
	return out
}

// ObjectsOf returns the objects of all triples with the given subject and
// predicate, in insertion order.
func (g *Graph) ObjectsOf(subject Term, predicate IRI) []Term {
	var out []Term
	for _, t := range g.triples {
		if t.S == subject && t.P == predicate {
			out = append(out, t.O)
		}
	}
	return out
}

// WriteNTriples serializes the whole graph in N-Triples form.
func (g *Graph) WriteNTriples(w io.Writer) error {
	var b strings.Builder
	for _, t := range g.triples {
		b.WriteString(t.NTriples())
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}
