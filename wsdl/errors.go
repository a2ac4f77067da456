package wsdl

import "fmt"

// ErrorKind classifies a parse-time failure, per spec.md §7. All
// propagate as a fatal, unrecoverable *ParseError: there is no retry or
// partial-result behavior defined for this pipeline.
type ErrorKind int

const (
	// XmlParseError is malformed XML or an unexpected event during a
	// structured expectation (expect_start/expect_text/expect_end).
	XmlParseError ErrorKind = iota
	// StructuralError is well-formed XML that violates the WSDL/XSD
	// shape the parser's state machine expects: a missing mandatory
	// attribute, an unresolved reference, or an orphan state close.
	StructuralError
	// UrlParseError is an input URL that could not be parsed and does
	// not resolve as a local path either.
	UrlParseError
	// PathConversionError is a URL that cannot be mapped to, or
	// canonicalized as, a local filesystem path.
	PathConversionError
	// FileOpenError is a referenced local document that cannot be
	// opened.
	FileOpenError
	// HttpFetchError is a network failure loading a remote document.
	HttpFetchError
	// UnsupportedScheme is a URL scheme other than file/http/https.
	UnsupportedScheme
)

func (k ErrorKind) String() string {
	switch k {
	case XmlParseError:
		return "XmlParseError"
	case StructuralError:
		return "StructuralError"
	case UrlParseError:
		return "UrlParseError"
	case PathConversionError:
		return "PathConversionError"
	case FileOpenError:
		return "FileOpenError"
	case HttpFetchError:
		return "HttpFetchError"
	case UnsupportedScheme:
		return "UnsupportedScheme"
	default:
		return "UnknownError"
	}
}

// ParseError is the error type returned for every failure described by
// spec.md §7. Kind lets callers use errors.Is/errors.As against a
// sentinel built with the same Kind, while Err (when set) carries the
// underlying cause for %w-wrapping.
type ParseError struct {
	Kind ErrorKind
	Msg  string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("wsdl: %s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("wsdl: %s: %s", e.Kind, e.Msg)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is reports whether target is a *ParseError with the same Kind,
// enabling errors.Is(err, &ParseError{Kind: StructuralError}).
func (e *ParseError) Is(target error) bool {
	other, ok := target.(*ParseError)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

func structuralf(format string, args ...interface{}) error {
	return &ParseError{Kind: StructuralError, Msg: fmt.Sprintf(format, args...)}
}

func xmlErrorf(err error, format string, args ...interface{}) error {
	return &ParseError{Kind: XmlParseError, Msg: fmt.Sprintf(format, args...), Err: err}
}
