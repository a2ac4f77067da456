// Package wsdl implements the WSDL 1.1 / XSD 1.0 loader and parser of
// spec.md §4.3: a stack of ParseState values driven by XML events from
// one or more documents, following wsdl:import, xs:import and
// xs:include to build a single model.Definition.
//
// http://www.w3schools.com/xml/xml_wsdl.asp
package wsdl

import (
	"encoding/xml"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"

	"github.com/fiorix/wsdl2go/model"
	"github.com/fiorix/wsdl2go/nsns"
	"github.com/fiorix/wsdl2go/xmlevt"
)

// parser drives the stack machine across one or more documents into a
// single model.Definition. It is built once per Load call and
// discarded; there is no reuse across calls.
type parser struct {
	def     *model.Definition
	ns      *nsns.Table
	nsctx   *nsContext
	stack   []frame
	base    *url.URL
	client  *http.Client
	visited map[string]bool
}

// Load parses the WSDL document at src (a local path or a file/http/https
// URL) and everything it transitively imports or includes, returning
// the resulting model.Definition. cli is used for any remote fetch; if
// nil, http.DefaultClient is used.
func Load(src string, cli *http.Client) (*model.Definition, error) {
	if cli == nil {
		cli = http.DefaultClient
	}
	base, err := toBaseURL(src)
	if err != nil {
		return nil, err
	}
	ns := nsns.NewTable()
	p := &parser{
		def:     model.NewDefinition(ns),
		ns:      ns,
		nsctx:   newNSContext(),
		base:    base,
		client:  cli,
		visited: make(map[string]bool),
	}
	if err := p.loadDocument(base); err != nil {
		return nil, err
	}
	return p.def, nil
}

// toBaseURL converts src into an absolute *url.URL. Local paths
// (including relative ones, and bare "file" scheme URLs) are
// canonicalized against the working directory; http/https pass
// through as-is; any other scheme is UnsupportedScheme.
func toBaseURL(src string) (*url.URL, error) {
	u, err := url.Parse(src)
	if err != nil || u.Scheme == "" {
		abs, aerr := filepath.Abs(src)
		if aerr != nil {
			return nil, &ParseError{Kind: PathConversionError, Msg: src, Err: aerr}
		}
		return &url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}, nil
	}
	switch u.Scheme {
	case "file":
		abs, aerr := filepath.Abs(u.Path)
		if aerr != nil {
			return nil, &ParseError{Kind: PathConversionError, Msg: src, Err: aerr}
		}
		return &url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}, nil
	case "http", "https":
		return u, nil
	default:
		return nil, &ParseError{Kind: UnsupportedScheme, Msg: u.Scheme}
	}
}

// resolve resolves loc (possibly relative) against the root URL
// established by Load, per spec.md §4.3 ("the referenced URL is
// resolved relative to the root URL").
func (p *parser) resolve(loc string) (*url.URL, error) {
	rel, err := url.Parse(loc)
	if err != nil {
		return nil, &ParseError{Kind: UrlParseError, Msg: loc, Err: err}
	}
	if rel.Scheme != "" {
		return toBaseURL(loc)
	}
	if p.base.Scheme == "file" {
		if path.IsAbs(rel.Path) {
			return &url.URL{Scheme: "file", Path: rel.Path}, nil
		}
		dir := path.Dir(p.base.Path)
		return &url.URL{Scheme: "file", Path: path.Clean(path.Join(dir, rel.Path))}, nil
	}
	return p.base.ResolveReference(rel), nil
}

// open returns a reader for u, dispatching on scheme.
func (p *parser) open(u *url.URL) (*xmlevt.Reader, func(), error) {
	switch u.Scheme {
	case "file":
		f, err := os.Open(filepath.FromSlash(u.Path))
		if err != nil {
			return nil, nil, &ParseError{Kind: FileOpenError, Msg: u.Path, Err: err}
		}
		return xmlevt.NewReader(f), func() { f.Close() }, nil
	case "http", "https":
		resp, err := p.client.Get(u.String())
		if err != nil {
			return nil, nil, &ParseError{Kind: HttpFetchError, Msg: u.String(), Err: err}
		}
		return xmlevt.NewReader(resp.Body), func() { resp.Body.Close() }, nil
	default:
		return nil, nil, &ParseError{Kind: UnsupportedScheme, Msg: u.Scheme}
	}
}

// loadDocument loads and parses u inline, unless it was already
// visited (import/include cycles and diamond imports are both legal
// in WSDL; the second visit is a no-op).
func (p *parser) loadDocument(u *url.URL) error {
	key := u.String()
	if p.visited[key] {
		return nil
	}
	p.visited[key] = true
	r, closeFn, err := p.open(u)
	if err != nil {
		return err
	}
	defer closeFn()
	return p.run(r)
}

// run drives the stack machine over r until its document is exhausted.
// It is called once for the root document and once per import/include,
// recursively, sharing the parser's stack/namespace context so that
// declarations from every document land in the same model.Definition.
func (p *parser) run(r *xmlevt.Reader) error {
	depth := len(p.stack)
	for {
		ev, err := r.NextSignificant()
		if err != nil {
			return xmlErrorf(err, "reading document")
		}
		switch ev.Kind {
		case xmlevt.Eof:
			if len(p.stack) != depth {
				return structuralf("unexpected EOF mid-element")
			}
			return nil
		case xmlevt.Start:
			if err := p.onStart(r, ev); err != nil {
				return err
			}
		case xmlevt.End:
			if err := p.onEnd(); err != nil {
				return err
			}
			if len(p.stack) == depth {
				// The element that opened this document (or, for a
				// nested run() called from an import, the imported
				// document's own root) has closed; nothing more of
				// interest can appear before EOF, but we keep
				// reading so a well-formed document still reaches
				// EOF cleanly on the next iteration.
			}
		case xmlevt.Text:
			p.onText(ev.Text)
		}
	}
}

func (p *parser) top() frame {
	if len(p.stack) == 0 {
		return nil
	}
	return p.stack[len(p.stack)-1]
}

func (p *parser) push(f frame) {
	p.stack = append(p.stack, f)
}

func (p *parser) pop() frame {
	n := len(p.stack)
	f := p.stack[n-1]
	p.stack = p.stack[:n-1]
	return f
}

func (p *parser) parent() frame {
	if len(p.stack) < 2 {
		return nil
	}
	return p.stack[len(p.stack)-2]
}

// qname resolves a prefixed attribute value to a NamespacedName using
// the current namespace context.
func (p *parser) qname(v string) (model.NamespacedName, error) {
	return p.nsctx.ResolveQName(v, p.ns)
}

// localName builds the NamespacedName for a declaration (an element,
// type, message, portType, binding, service, or operation name): these
// live in the current target namespace, never in a prefixed qname.
func (p *parser) localName(local string) model.NamespacedName {
	return model.NamespacedName{NS: p.ns.AddOrGet(p.nsctx.Target()), Local: local}
}

// requireAttr fetches a mandatory attribute, returning a StructuralError
// naming both the missing attribute and the element it was required on.
func (p *parser) requireAttr(attrs []xml.Attr, local, context string) (string, error) {
	v, ok := xmlevt.Attr(attrs, local)
	if !ok || v == "" {
		return "", structuralf("%s: missing required attribute %q", context, local)
	}
	return v, nil
}

// importDoc resolves loc against the root URL and loads it inline,
// splicing its top-level declarations into the shared Definition.
func (p *parser) importDoc(loc string) error {
	u, err := p.resolve(loc)
	if err != nil {
		return err
	}
	return p.loadDocument(u)
}

