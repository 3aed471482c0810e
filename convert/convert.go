// Package convert walks XML documents and emits RDF triples.
//
// Each element becomes a resource whose IRI is derived from the element's
// path from the document root, with repeated same-named siblings
// disambiguated by an occurrence index held in the parent's context. The
// walker keeps an explicit stack of open elements instead of recursing, so
// deeply nested documents cannot grow the call stack.
//
// Triple shapes:
//
//	parent  --<child name>-->  child resource     (one per child element)
//	element --<attr name>-->   "attr value"       (one per attribute)
//	element --value-->         "trimmed text"     (one per non-blank text run)
package convert

import (
	"encoding/xml"
	"io"
	"os"
	"strings"

	"github.com/teranos/xml2rdf/errors"
	"github.com/teranos/xml2rdf/logger"
	"github.com/teranos/xml2rdf/rdf"
	"github.com/teranos/xml2rdf/writer"
)

// node is the traversal context for one open element.
type node struct {
	name     string
	subject  rdf.IRI
	segments []string       // disambiguated path from root to this element
	children map[string]int // occurrence counter per child element name
}

// Files converts the given XML files in order, delivering every triple to w.
// All files share the sink but nothing else: each file gets a fresh walker,
// and its handle is closed before the next file opens. The first open,
// parse, or sink failure aborts the remaining files; triples already
// delivered stay delivered.
func Files(paths []string, w writer.RDFWriter, namespace string) error {
	if len(paths) == 0 {
		return errors.ErrNoInput
	}
	for _, path := range paths {
		if err := convertFile(path, w, namespace); err != nil {
			return err
		}
	}
	return nil
}

func convertFile(path string, w writer.RDFWriter, namespace string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "open XML input %s", path)
	}
	defer f.Close()

	logger.Debugw("Converting XML file", "path", path, "namespace", namespace)
	if err := Reader(f, w, namespace); err != nil {
		return errors.Wrapf(err, "convert %s", path)
	}
	return nil
}

// Reader converts a single XML document read from r, delivering every
// triple to w. Parse failures are surfaced from the underlying tokenizer
// and marked as errors.ErrParse.
func Reader(r io.Reader, w writer.RDFWriter, namespace string) error {
	dec := xml.NewDecoder(r)
	var stack []*node

	for {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return errors.Mark(err, errors.ErrParse)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if err := startElement(t, &stack, w, namespace); err != nil {
				return err
			}
		case xml.CharData:
			if err := charData(t, stack, w, namespace); err != nil {
				return err
			}
		case xml.EndElement:
			// Well-formedness is the tokenizer's contract; the stack
			// cannot underflow on a document it accepted.
			stack = stack[:len(stack)-1]
		}
	}
}

// startElement mints the element's resource, links it to its parent, and
// emits one attribute triple per attribute before pushing its context.
func startElement(t xml.StartElement, stack *[]*node, w writer.RDFWriter, namespace string) error {
	name := t.Name.Local

	var subject rdf.IRI
	var segments []string
	if len(*stack) > 0 {
		parent := (*stack)[len(*stack)-1]
		occurrence := parent.children[name]
		parent.children[name]++

		subject = rdf.MintResource(namespace, parent.segments, name, occurrence)
		segments = make([]string, len(parent.segments), len(parent.segments)+1)
		copy(segments, parent.segments)
		segments = append(segments, rdf.Segment(name, occurrence))

		link := rdf.Triple{S: parent.subject, P: rdf.MintPredicate(namespace, name), O: subject}
		if err := w.AddTriple(link); err != nil {
			return err
		}
	} else {
		// Root element: minted directly under the namespace, no parent link.
		subject = rdf.MintResource(namespace, nil, name, 0)
		segments = []string{rdf.Segment(name, 0)}
	}

	for _, attr := range t.Attr {
		// Namespace declarations are structural, not data attributes.
		if attr.Name.Space == "xmlns" || (attr.Name.Space == "" && attr.Name.Local == "xmlns") {
			continue
		}
		triple := rdf.Triple{
			S: subject,
			P: rdf.MintPredicate(namespace, attr.Name.Local),
			O: rdf.NewLiteral(attr.Value),
		}
		if err := w.AddTriple(triple); err != nil {
			return err
		}
	}

	*stack = append(*stack, &node{
		name:     name,
		subject:  subject,
		segments: segments,
		children: make(map[string]int),
	})
	return nil
}

// charData emits one value triple per non-blank text run inside the
// current element. Whitespace-only runs (indentation between elements)
// produce nothing.
func charData(t xml.CharData, stack []*node, w writer.RDFWriter, namespace string) error {
	if len(stack) == 0 {
		return nil
	}
	text := strings.TrimSpace(string(t))
	if text == "" {
		return nil
	}
	current := stack[len(stack)-1]
	triple := rdf.Triple{
		S: current.subject,
		P: rdf.ValuePredicate(namespace),
		O: rdf.NewLiteral(text),
	}
	return w.AddTriple(triple)
}
