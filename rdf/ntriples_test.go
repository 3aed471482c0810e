package rdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTripleNTriples(t *testing.T) {
	tests := []struct {
		name   string
		triple Triple
		want   string
	}{
		{
			name: "IRI object",
			triple: Triple{
				S: IRI{Value: "http://ex/root"},
				P: IRI{Value: "http://ex/child"},
				O: IRI{Value: "http://ex/root/child"},
			},
			want: `<http://ex/root> <http://ex/child> <http://ex/root/child> .`,
		},
		{
			name: "literal object",
			triple: Triple{
				S: IRI{Value: "http://ex/root"},
				P: IRI{Value: "http://ex/value"},
				O: Literal{Lexical: "text"},
			},
			want: `<http://ex/root> <http://ex/value> "text" .`,
		},
		{
			name: "literal with quotes and backslash",
			triple: Triple{
				S: IRI{Value: "http://ex/e"},
				P: IRI{Value: "http://ex/value"},
				O: Literal{Lexical: `say "hi" \ bye`},
			},
			want: `<http://ex/e> <http://ex/value> "say \"hi\" \\ bye" .`,
		},
		{
			name: "literal with control characters",
			triple: Triple{
				S: IRI{Value: "http://ex/e"},
				P: IRI{Value: "http://ex/value"},
				O: Literal{Lexical: "line1\nline2\ttabbed\r"},
			},
			want: `<http://ex/e> <http://ex/value> "line1\nline2\ttabbed\r" .`,
		},
		{
			name: "non-ASCII passes through",
			triple: Triple{
				S: IRI{Value: "http://ex/e"},
				P: IRI{Value: "http://ex/value"},
				O: Literal{Lexical: "héllo wörld"},
			},
			want: `<http://ex/e> <http://ex/value> "héllo wörld" .`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.triple.NTriples())
		})
	}
}
