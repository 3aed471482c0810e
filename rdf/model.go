// Package rdf provides the RDF term model used by the converter: IRIs,
// plain literals, triples, and an in-memory graph. Term identifiers are
// minted deterministically from XML structure (see mint.go), so converting
// the same document twice yields the same terms.
package rdf

import "fmt"

// TermKind identifies RDF term types.
type TermKind uint8

const (
	// TermIRI represents an IRI term.
	TermIRI TermKind = iota
	// TermLiteral represents a literal term.
	TermLiteral
)

// Term is a value that can appear in RDF statements.
type Term interface {
	Kind() TermKind
	String() string
}

// IRI represents an RDF IRI.
type IRI struct {
	// Value is the IRI string value.
	Value string
}

// Kind returns TermIRI.
func (i IRI) Kind() TermKind { return TermIRI }

// String returns the IRI value.
func (i IRI) String() string { return i.Value }

// Literal represents a plain RDF literal. The converter only produces
// simple string literals; datatypes and language tags are out of scope.
type Literal struct {
	// Lexical is the lexical form of the literal.
	Lexical string
}

// Kind returns TermLiteral.
func (l Literal) Kind() TermKind { return TermLiteral }

// String returns the quoted lexical form.
func (l Literal) String() string { return fmt.Sprintf("%q", l.Lexical) }

// NewLiteral wraps raw text verbatim as a plain literal.
func NewLiteral(text string) Literal {
	return Literal{Lexical: text}
}

// Triple is an RDF triple.
type Triple struct {
	// S is the subject.
	S Term
	// P is the predicate.
	P IRI
	// O is the object.
	O Term
}
