package wsdl

import (
	"encoding/xml"
	"strings"

	"github.com/fiorix/wsdl2go/model"
	"github.com/fiorix/wsdl2go/nsns"
)

// nsContext is the CurrentNamespaces of spec.md §4.3: a target-namespace
// stack (pushed on definitions and each schema, popped on their closes)
// paired with a prefix→URI map updated from every xmlns:* attribute
// encountered on element entry. The target namespace in effect is
// always the top of the stack; tns: resolves to it. Other prefixes
// resolve through the prefix map; an unknown prefix is a fatal
// structural error.
type nsContext struct {
	targets []string
	// scopes is a stack of prefix maps, one pushed per element that
	// declared xmlns:* attributes (even an empty map keeps the stack
	// depth in sync with PopScope calls for elements with none).
	scopes []map[string]string
}

func newNSContext() *nsContext {
	return &nsContext{}
}

// PushTarget pushes a new target namespace, e.g. on entering
// definitions or schema.
func (c *nsContext) PushTarget(uri string) {
	c.targets = append(c.targets, uri)
}

// PopTarget pops the target namespace stack, e.g. on closing
// definitions or schema.
func (c *nsContext) PopTarget() {
	if len(c.targets) == 0 {
		return
	}
	c.targets = c.targets[:len(c.targets)-1]
}

// Target returns the innermost target namespace, or "" if none is in
// effect.
func (c *nsContext) Target() string {
	if len(c.targets) == 0 {
		return ""
	}
	return c.targets[len(c.targets)-1]
}

// PushScope records the xmlns:* prefix declarations on attrs as a new
// scope. Call once per element entry, even when attrs declares no
// prefixes, so PopScope calls stay balanced with element exits.
func (c *nsContext) PushScope(attrs []xml.Attr) {
	scope := make(map[string]string)
	for _, a := range attrs {
		switch {
		case a.Name.Space == "xmlns":
			scope[a.Name.Local] = a.Value
		case a.Name.Space == "" && a.Name.Local == "xmlns":
			scope[""] = a.Value
		}
	}
	c.scopes = append(c.scopes, scope)
}

// PopScope discards the innermost prefix scope.
func (c *nsContext) PopScope() {
	if len(c.scopes) == 0 {
		return
	}
	c.scopes = c.scopes[:len(c.scopes)-1]
}

// ResolvePrefix resolves an XML namespace prefix (the empty string for
// the default namespace) to a URI, searching from the innermost scope
// outward. The "tns" prefix always resolves to the current target
// namespace, regardless of whether it was separately declared as an
// xmlns:tns attribute (the common WSDL convention).
func (c *nsContext) ResolvePrefix(prefix string) (string, bool) {
	if prefix == "tns" {
		if t := c.Target(); t != "" {
			return t, true
		}
	}
	for i := len(c.scopes) - 1; i >= 0; i-- {
		if uri, ok := c.scopes[i][prefix]; ok {
			return uri, true
		}
	}
	return "", false
}

// ResolveQName splits a prefixed QName on the first ':' (or treats it
// as using the default/no prefix if absent), resolves the prefix to a
// namespace URI, and interns the result as a model.NamespacedName. An
// unresolvable prefix is a fatal structural error.
func (c *nsContext) ResolveQName(qname string, ns *nsns.Table) (model.NamespacedName, error) {
	prefix, local := splitQName(qname)
	uri, ok := c.ResolvePrefix(prefix)
	if !ok {
		return model.NamespacedName{}, structuralf("unresolvable namespace prefix %q in %q", prefix, qname)
	}
	return model.NamespacedName{NS: ns.AddOrGet(uri), Local: local}, nil
}

// splitQName splits a prefixed QName on the first ':'. If no prefix is
// present, the returned prefix is "".
func splitQName(qname string) (prefix, local string) {
	i := strings.IndexByte(qname, ':')
	if i < 0 {
		return "", qname
	}
	return qname[:i], qname[i+1:]
}
