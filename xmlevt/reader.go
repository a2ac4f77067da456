// Package xmlevt wraps encoding/xml's pull-based tokenizer with the
// narrow event vocabulary the WSDL/XSD parser and the SOAP runtime both
// need: expect a start tag, expect text, expect an end tag, or read
// whatever significant event comes next. Decoding is charset-aware.
package xmlevt

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
)

// EventKind discriminates the events NextSignificant can surface.
// Declarations, processing instructions, whitespace-only text, and
// CDATA wrapping are never surfaced; they're skipped transparently.
type EventKind int

const (
	// Eof is returned once the underlying document is exhausted.
	Eof EventKind = iota
	// Start is a Start event, or the first half of an expanded empty
	// element (a Start immediately followed by an End).
	Start
	// End is an End event.
	End
	// Text is a non-whitespace-only character data event.
	Text
)

// Event is one significant token from the document, with only the
// fields relevant to its Kind populated.
type Event struct {
	Kind  EventKind
	Name  string // local name, for Start/End
	Attrs []xml.Attr
	Text  string // unescaped character data, for Text
}

// Reader drives a *xml.Decoder and exposes the expect_start/expect_text/
// expect_end/next_significant vocabulary of spec.md §4.1. Reader options
// are fixed at construction: surrounding whitespace is trimmed from text
// events, and empty elements are expanded to Start immediately followed
// by End.
type Reader struct {
	dec *xml.Decoder
	// pending, when non-nil, is returned by the next NextSignificant
	// call before any further token is read. No method of Reader sets
	// it.
	pending *Event
}

// NewReader returns a Reader over r, using the charset-aware decoder
// the teacher's wsdl/decoder.go already configures, so WSDL documents
// declaring a non-UTF-8 encoding still parse correctly.
func NewReader(r io.Reader) *Reader {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel
	return &Reader{dec: dec}
}

// NextSignificant returns the next significant event: declarations,
// processing instructions, whitespace-only text, and CDATA wrapping are
// skipped. An empty element (<foo/>) is reported as a Start immediately
// followed, on the subsequent call, by an End for the same element.
func (r *Reader) NextSignificant() (Event, error) {
	if r.pending != nil {
		ev := *r.pending
		r.pending = nil
		return ev, nil
	}
	for {
		tok, err := r.dec.Token()
		if err == io.EOF {
			return Event{Kind: Eof}, nil
		}
		if err != nil {
			return Event{}, fmt.Errorf("xmlevt: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			attrs := make([]xml.Attr, len(t.Attr))
			copy(attrs, t.Attr)
			return Event{Kind: Start, Name: t.Name.Local, Attrs: attrs}, nil
		case xml.EndElement:
			return Event{Kind: End, Name: t.Name.Local}, nil
		case xml.CharData:
			text := strings.TrimSpace(string(t))
			if text == "" {
				continue
			}
			return Event{Kind: Text, Text: text}, nil
		default:
			// xml.Comment, xml.ProcInst, xml.Directive: skip.
			continue
		}
	}
}

// ExpectStart consumes whitespace/comments/PIs and requires the next
// significant event to be a Start whose local name equals name. It
// returns the start event's attributes on success.
func (r *Reader) ExpectStart(name string) ([]xml.Attr, error) {
	ev, err := r.NextSignificant()
	if err != nil {
		return nil, err
	}
	if ev.Kind != Start || ev.Name != name {
		return nil, fmt.Errorf("xmlevt: expected <%s>, got %s", name, describe(ev))
	}
	return ev.Attrs, nil
}

// ExpectText requires a Text event and returns its unescaped content.
// Callers that need a typed value parse the returned string themselves
// (spec.md's "target-language-level string-to-value conversion").
func (r *Reader) ExpectText() (string, error) {
	ev, err := r.NextSignificant()
	if err != nil {
		return "", err
	}
	if ev.Kind != Text {
		return "", fmt.Errorf("xmlevt: expected text, got %s", describe(ev))
	}
	return ev.Text, nil
}

// ExpectEnd requires the next significant event to be an End,
// regardless of which element it closes; callers have already
// established the open context.
func (r *Reader) ExpectEnd() error {
	ev, err := r.NextSignificant()
	if err != nil {
		return err
	}
	if ev.Kind != End {
		return fmt.Errorf("xmlevt: expected end tag, got %s", describe(ev))
	}
	return nil
}

// Skip consumes and discards events until the matching End for the
// element whose Start was just consumed (depth 1 already open).
func (r *Reader) Skip() error {
	depth := 1
	for depth > 0 {
		ev, err := r.NextSignificant()
		if err != nil {
			return err
		}
		switch ev.Kind {
		case Eof:
			return fmt.Errorf("xmlevt: unexpected EOF while skipping")
		case Start:
			depth++
		case End:
			depth--
		}
	}
	return nil
}

func describe(ev Event) string {
	switch ev.Kind {
	case Eof:
		return "EOF"
	case Start:
		return fmt.Sprintf("<%s>", ev.Name)
	case End:
		return fmt.Sprintf("</%s>", ev.Name)
	case Text:
		return fmt.Sprintf("text %q", ev.Text)
	default:
		return "unknown event"
	}
}

// Attr returns the value of the first attribute in attrs whose local
// name equals local, and ok=false if none matches.
func Attr(attrs []xml.Attr, local string) (string, bool) {
	for _, a := range attrs {
		if a.Name.Local == local {
			return a.Value, true
		}
	}
	return "", false
}
