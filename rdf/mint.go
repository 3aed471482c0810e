package rdf

import (
	"net/url"
	"strconv"
	"strings"
)

// Minting scheme
//
// Every resource IRI is a pure function of {namespace, path, occurrence}:
//
//	<base><segment>/<segment>/...
//
// where base is the namespace with exactly one trailing separator ("/" is
// appended unless the namespace already ends in "/" or "#"), each segment is
// the percent-escaped element name, and a segment for the k-th same-named
// sibling (k > 0) carries a "-k" suffix. The first occurrence stays bare so
// single-occurrence paths remain stable and human-readable.
//
// Predicates are minted directly under the namespace from the element or
// attribute local name; element text content uses the fixed "value"
// predicate.

// Base normalizes a namespace so terms can be appended directly.
func Base(namespace string) string {
	if strings.HasSuffix(namespace, "/") || strings.HasSuffix(namespace, "#") {
		return namespace
	}
	return namespace + "/"
}

// Segment renders one path segment: the escaped name, suffixed with the
// occurrence index for repeated same-named siblings. Occurrence 0 renders
// bare.
func Segment(name string, occurrence int) string {
	seg := url.PathEscape(name)
	if occurrence > 0 {
		seg += "-" + strconv.Itoa(occurrence)
	}
	return seg
}

// MintResource derives the IRI for an XML element. ancestors are the
// already-disambiguated path segments from the document root down to the
// element's parent (empty for the root element); name and occurrence
// identify the element among its same-named siblings.
func MintResource(namespace string, ancestors []string, name string, occurrence int) IRI {
	var b strings.Builder
	b.WriteString(Base(namespace))
	for _, seg := range ancestors {
		b.WriteString(seg)
		b.WriteByte('/')
	}
	b.WriteString(Segment(name, occurrence))
	return IRI{Value: b.String()}
}

// MintPredicate derives the predicate IRI for an element or attribute name.
func MintPredicate(namespace, name string) IRI {
	return IRI{Value: Base(namespace) + url.PathEscape(name)}
}

// ValuePredicate is the fixed predicate linking an element resource to its
// text content.
func ValuePredicate(namespace string) IRI {
	return MintPredicate(namespace, "value")
}
