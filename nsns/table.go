// Package nsns provides an append-only table of interned XML namespace
// URIs, the mechanism that makes cross-document type references
// unambiguous once a WSDL and its imported schemas have all been loaded.
package nsns

import "fmt"

// Table is an append-only sequence of namespace URIs. The zero value is
// an empty table ready to use. A Table is never safe for concurrent
// writers; it is built once during parsing and then treated as
// read-only for the rest of the pipeline.
type Table struct {
	uris []string
	// idx maps a URI back to its index, so AddOrGet doesn't need to
	// scan uris on the common "already seen" path.
	idx map[string]int
}

// NewTable returns an empty Table.
func NewTable() *Table {
	return &Table{idx: make(map[string]int)}
}

// AddOrGet interns uri, returning its stable index. Calling AddOrGet
// with the same URI always returns the same index, regardless of how
// many other URIs were interned in between.
func (t *Table) AddOrGet(uri string) int {
	if t.idx == nil {
		t.idx = make(map[string]int)
	}
	if i, ok := t.idx[uri]; ok {
		return i
	}
	i := len(t.uris)
	t.uris = append(t.uris, uri)
	t.idx[uri] = i
	return i
}

// IndexOf returns the index previously assigned to uri, and false if
// uri was never interned.
func (t *Table) IndexOf(uri string) (int, bool) {
	i, ok := t.idx[uri]
	return i, ok
}

// URI returns the namespace URI at index i. It panics if i is out of
// range, since an out-of-range index can only come from a bug in the
// caller (every NamespacedName's index is minted by AddOrGet).
func (t *Table) URI(i int) string {
	return t.uris[i]
}

// Len returns the number of interned namespaces.
func (t *Table) Len() int {
	return len(t.uris)
}

// All returns the interned URIs in interning order, suitable for
// emitting one xmlns:ns{i} declaration per entry.
func (t *Table) All() []string {
	out := make([]string, len(t.uris))
	copy(out, t.uris)
	return out
}

// Prefix returns the synthetic prefix used on the wire for namespace i,
// e.g. "ns0", "ns1".
func Prefix(i int) string {
	return fmt.Sprintf("ns%d", i)
}
