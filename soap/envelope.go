package soap

import "github.com/fiorix/wsdl2go/xmlevt"

// envelopeNS is the SOAP 1.1 envelope namespace every generated
// Envelope declares, matching spec.md §4.7.
const envelopeNS = "http://schemas.xmlsoap.org/soap/envelope/"

// Envelope wraps a SOAP body of type T, per spec.md §4.7's
// Envelope<T>. Generated code always instantiates both type
// parameters, e.g. soap.Envelope[AddResponse, *AddResponse], since Go
// generics have no way to infer PT from T alone.
type Envelope[T any, PT interface {
	*T
	ToXml
	FromXml
}] struct {
	Body T
}

// ToXml writes the soapenv:Envelope/soapenv:Body wrapper, then
// delegates to the body's ToXml with topLevel set to true.
func (e *Envelope[T, PT]) ToXml(w *xmlevt.Writer) error {
	if err := w.StartElement("soapenv:Envelope", xmlevt.NewAttr("xmlns:soapenv", envelopeNS)); err != nil {
		return err
	}
	if err := w.StartElement("soapenv:Body"); err != nil {
		return err
	}
	if err := PT(&e.Body).ToXml(w, true); err != nil {
		return err
	}
	if err := w.EndElement("soapenv:Body"); err != nil {
		return err
	}
	if err := w.EndElement("soapenv:Envelope"); err != nil {
		return err
	}
	return w.Flush()
}

// FromXml consumes an opening Envelope, an opening Body, delegates to
// the body's FromXml, then the two matching closing tags.
func (e *Envelope[T, PT]) FromXml(r *xmlevt.Reader) error {
	if _, err := r.ExpectStart("Envelope"); err != nil {
		return err
	}
	if _, err := r.ExpectStart("Body"); err != nil {
		return err
	}
	if err := PT(&e.Body).FromXml(r); err != nil {
		return err
	}
	if err := r.ExpectEnd(); err != nil {
		return err
	}
	return r.ExpectEnd()
}
