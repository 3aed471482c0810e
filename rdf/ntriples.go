package rdf

import "strings"

// NTriples renders the triple as one N-Triples statement, terminated by
// " ." without a trailing newline.
func (t Triple) NTriples() string {
	var b strings.Builder
	writeTerm(&b, t.S)
	b.WriteByte(' ')
	writeIRI(&b, t.P)
	b.WriteByte(' ')
	writeTerm(&b, t.O)
	b.WriteString(" .")
	return b.String()
}

func writeIRI(b *strings.Builder, iri IRI) {
	b.WriteByte('<')
	b.WriteString(iri.Value)
	b.WriteByte('>')
}

func writeTerm(b *strings.Builder, term Term) {
	switch value := term.(type) {
	case IRI:
		writeIRI(b, value)
	case Literal:
		b.WriteByte('"')
		b.WriteString(escapeLiteral(value.Lexical))
		b.WriteByte('"')
	}
}

// escapeLiteral applies the N-Triples string escapes.
func escapeLiteral(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
