package xmlevt

import (
	"encoding/xml"
	"io"
)

// Writer drives a *xml.Encoder at the token level, giving the SOAP
// runtime's ToXml implementations the same small event vocabulary used
// for reading: start a tag (with optional namespace declarations),
// write text, close a tag.
type Writer struct {
	enc *xml.Encoder
}

// NewWriter returns a Writer that emits to w with the indentation
// spec.md §4.7 specifies for envelope serialization (2 spaces).
func NewWriter(w io.Writer) *Writer {
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	return &Writer{enc: enc}
}

// StartElement writes an opening tag named name with the given
// attributes, in document order.
func (w *Writer) StartElement(name string, attrs ...xml.Attr) error {
	return w.enc.EncodeToken(xml.StartElement{
		Name: xml.Name{Local: name},
		Attr: attrs,
	})
}

// EndElement writes a closing tag named name.
func (w *Writer) EndElement(name string) error {
	return w.enc.EncodeToken(xml.EndElement{Name: xml.Name{Local: name}})
}

// Text writes character data, escaped by the underlying encoder.
func (w *Writer) Text(s string) error {
	return w.enc.EncodeToken(xml.CharData([]byte(s)))
}

// Flush flushes any buffered output to the underlying writer. Callers
// must call Flush after the last token, or output may be silently
// truncated; encoding/xml buffers internally.
func (w *Writer) Flush() error {
	return w.enc.Flush()
}

// NewAttr builds an xml.Attr with a local (unprefixed) name, for use
// with StartElement.
func NewAttr(name, value string) xml.Attr {
	return xml.Attr{Name: xml.Name{Local: name}, Value: value}
}
