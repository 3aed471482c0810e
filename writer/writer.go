// Package writer delivers converted triples to their destination. The
// single-method RDFWriter interface decouples the tree walker from storage:
// GraphWriter accumulates into an in-memory rdf.Graph, StreamWriter
// serializes N-Triples lines to a file or stdout as they arrive.
package writer

import (
	"bufio"
	"io"
	"os"

	"github.com/teranos/xml2rdf/errors"
	"github.com/teranos/xml2rdf/rdf"
)

// RDFWriter accepts triples one at a time. Implementations must tolerate
// duplicate triples; deduplication, where wanted, belongs to the backing
// store.
type RDFWriter interface {
	AddTriple(t rdf.Triple) error
}

// GraphWriter inserts triples into a caller-owned graph. Multiple input
// documents may share one GraphWriter to accumulate a single graph.
type GraphWriter struct {
	graph *rdf.Graph
}

// NewGraphWriter wraps an existing graph. The caller retains ownership and
// reads the graph back after conversion.
func NewGraphWriter(g *rdf.Graph) *GraphWriter {
	return &GraphWriter{graph: g}
}

// AddTriple inserts the triple into the backing graph. It never fails.
func (w *GraphWriter) AddTriple(t rdf.Triple) error {
	w.graph.Insert(t)
	return nil
}

// Graph returns the backing graph.
func (w *GraphWriter) Graph() *rdf.Graph { return w.graph }

// StreamWriter serializes each triple to one N-Triples line on an output
// stream. Every triple reaches the destination (or errors) before AddTriple
// returns, so memory stays bounded on arbitrarily large documents.
type StreamWriter struct {
	buf    *bufio.Writer
	closer io.Closer
}

// NewStreamWriter writes N-Triples lines to w. The caller owns w.
func NewStreamWriter(w io.Writer) *StreamWriter {
	return &StreamWriter{buf: bufio.NewWriter(w)}
}

// ToFile opens path for appending (creating it if absent) and returns a
// StreamWriter owning the file handle. Close releases it.
func ToFile(path string) (*StreamWriter, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, errors.Wrapf(err, "open output file %s", path)
	}
	return &StreamWriter{buf: bufio.NewWriter(f), closer: f}, nil
}

// ToStdout returns a StreamWriter on standard output.
func ToStdout() *StreamWriter {
	return NewStreamWriter(os.Stdout)
}

// AddTriple writes one serialized triple line and flushes it through to the
// destination.
func (w *StreamWriter) AddTriple(t rdf.Triple) error {
	if _, err := w.buf.WriteString(t.NTriples()); err != nil {
		return errors.Wrap(err, "write triple")
	}
	if err := w.buf.WriteByte('\n'); err != nil {
		return errors.Wrap(err, "write triple")
	}
	if err := w.buf.Flush(); err != nil {
		return errors.Wrap(err, "flush triple")
	}
	return nil
}

// Close flushes buffered output and closes the destination when the writer
// owns it (ToFile). Safe to call on stdout writers.
func (w *StreamWriter) Close() error {
	if err := w.buf.Flush(); err != nil {
		return errors.Wrap(err, "flush output")
	}
	if w.closer != nil {
		return errors.Wrap(w.closer.Close(), "close output")
	}
	return nil
}
