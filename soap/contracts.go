package soap

import "github.com/fiorix/wsdl2go/xmlevt"

// ToXml is implemented by every generated type and message: it writes
// itself to w. topLevel is true only for the outermost value being
// serialized in a document; an implementation that owns the outermost
// tag uses it to decide whether to also declare every known namespace.
type ToXml interface {
	ToXml(w *xmlevt.Writer, topLevel bool) error
}

// FromXml is implemented by a pointer to every generated type and
// message: it reads itself from r, which is already positioned right
// before the value's opening tag.
type FromXml interface {
	FromXml(r *xmlevt.Reader) error
}
