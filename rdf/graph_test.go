package rdf

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTriple(s, p, o string) Triple {
	return Triple{S: IRI{Value: s}, P: IRI{Value: p}, O: Literal{Lexical: o}}
}

func TestGraphInsert(t *testing.T) {
	g := NewGraph()
	t1 := testTriple("http://ex/a", "http://ex/p", "1")
	t2 := testTriple("http://ex/a", "http://ex/p", "2")

	assert.True(t, g.Insert(t1))
	assert.True(t, g.Insert(t2))
	assert.Equal(t, 2, g.Len())

	// Duplicate insert is absorbed
	assert.False(t, g.Insert(t1))
	assert.Equal(t, 2, g.Len())

	assert.True(t, g.Contains(t1))
	assert.False(t, g.Contains(testTriple("http://ex/b", "http://ex/p", "1")))
}

func TestGraphTriplesOrder(t *testing.T) {
	g := NewGraph()
	t1 := testTriple("http://ex/a", "http://ex/p", "first")
	t2 := testTriple("http://ex/a", "http://ex/p", "second")
	g.Insert(t1)
	g.Insert(t2)

	triples := g.Triples()
	require.Len(t, triples, 2)
	assert.Equal(t, t1, triples[0])
	assert.Equal(t, t2, triples[1])
}

func TestGraphObjectsOf(t *testing.T) {
	g := NewGraph()
	subject := IRI{Value: "http://ex/root"}
	pred := IRI{Value: "http://ex/item"}
	g.Insert(Triple{S: subject, P: pred, O: IRI{Value: "http://ex/root/item"}})
	g.Insert(Triple{S: subject, P: pred, O: IRI{Value: "http://ex/root/item-1"}})
	g.Insert(Triple{S: subject, P: IRI{Value: "http://ex/other"}, O: Literal{Lexical: "x"}})

	objects := g.ObjectsOf(subject, pred)
	require.Len(t, objects, 2)
	assert.Equal(t, IRI{Value: "http://ex/root/item"}, objects[0])
	assert.Equal(t, IRI{Value: "http://ex/root/item-1"}, objects[1])

	assert.Empty(t, g.ObjectsOf(IRI{Value: "http://ex/nope"}, pred))
}

func TestGraphSubjects(t *testing.T) {
	g := NewGraph()
	g.Insert(testTriple("http://ex/a", "http://ex/p", "1"))
	g.Insert(testTriple("http://ex/a", "http://ex/q", "2"))
	g.Insert(testTriple("http://ex/b", "http://ex/p", "3"))

	subjects := g.Subjects()
	require.Len(t, subjects, 2)
	assert.Equal(t, IRI{Value: "http://ex/a"}, subjects[0])
	assert.Equal(t, IRI{Value: "http://ex/b"}, subjects[1])
}

func TestGraphWriteNTriples(t *testing.T) {
	g := NewGraph()
	g.Insert(testTriple("http://ex/a", "http://ex/p", "1"))
	g.Insert(Triple{S: IRI{Value: "http://ex/a"}, P: IRI{Value: "http://ex/q"}, O: IRI{Value: "http://ex/b"}})

	var sb strings.Builder
	require.NoError(t, g.WriteNTriples(&sb))

	want := "<http://ex/a> <http://ex/p> \"1\" .\n<http://ex/a> <http://ex/q> <http://ex/b> .\n"
	assert.Equal(t, want, sb.String())
}
