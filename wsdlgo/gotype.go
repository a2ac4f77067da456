package wsdlgo

import (
	"fmt"
	"strings"

	"github.com/fiorix/wsdl2go/model"
	"github.com/fiorix/wsdl2go/resolve"
)

// goType returns the Go type a reference to n should be rendered as,
// and whether n names an XSD built-in primitive rather than a
// generator-emitted declaration. User-defined Struct types are
// rendered as pointers, per spec.md §9's note on cyclic type graphs: a
// Go struct cannot embed itself by value, and emission order cannot be
// relied on to avoid forward references.
func (ge *goEncoder) goType(n model.NamespacedName, rm *resolve.ResolvedModel) (goType string, builtin bool) {
	if gt, ok := model.IsBuiltin(n, rm.Namespaces.Namespaces); ok {
		return gt, true
	}
	t, ok := rm.Namespaces.Type(n)
	if !ok {
		// Resolve already guarantees every message/operation reference
		// exists; a dangling field-level reference this deep is only
		// reachable for a part/element the parser never folded into a
		// Type (no complexType/simpleType declaration backs it). Render
		// it as an opaque string rather than failing generation.
		return "string", true
	}
	if t.Kind.Tag == model.TagStruct {
		return "*" + ge.ids.Assign(t.Name), false
	}
	return ge.ids.Assign(t.Name), false
}

// primitiveKind follows Simple/Alias chains down to the XSD built-in
// they ultimately wrap, so a newtype like CRSType (string) or a
// defined-type alias of dateTime (string) knows which strconv family
// to format/parse with. It returns "" if n ultimately names a Struct,
// since structs have no primitive representation.
func (ge *goEncoder) primitiveKind(n model.NamespacedName, rm *resolve.ResolvedModel) string {
	if gt, ok := model.IsBuiltin(n, rm.Namespaces.Namespaces); ok {
		return gt
	}
	t, ok := rm.Namespaces.Type(n)
	if !ok {
		return "string"
	}
	switch t.Kind.Tag {
	case model.TagSimple:
		return ge.primitiveKind(t.Kind.Base, rm)
	case model.TagAlias:
		return ge.primitiveKind(t.Kind.Target, rm)
	default:
		return ""
	}
}

// formatExpr renders a Go expression that turns varExpr (of Go type
// kind, or a defined type whose underlying type is kind) into a
// string, for use with xmlevt.Writer.Text. The explicit conversion is
// always emitted, even for kind=="string", since varExpr may carry a
// defined type (CRSType) rather than the bare primitive.
func (ge *goEncoder) formatExpr(kind, varExpr string) string {
	switch kind {
	case "string":
		return "string(" + varExpr + ")"
	case "[]byte":
		return "string(" + varExpr + ")"
	case "bool":
		ge.needsStdPkg["strconv"] = true
		return "strconv.FormatBool(bool(" + varExpr + "))"
	case "float64":
		ge.needsStdPkg["strconv"] = true
		return "strconv.FormatFloat(float64(" + varExpr + "), 'f', -1, 64)"
	case "uint", "uint16", "uint64", "byte":
		ge.needsStdPkg["strconv"] = true
		return "strconv.FormatUint(uint64(" + varExpr + "), 10)"
	default: // int, int16, int64
		ge.needsStdPkg["strconv"] = true
		return "strconv.FormatInt(int64(" + varExpr + "), 10)"
	}
}

// genAssign writes the statements that parse strExpr (a string
// expression already in scope) as kind and assign the result,
// converted to namedType, into dstExpr. namedType may equal kind
// itself (plain built-in field) or a generator-emitted defined type
// (CRSType, a message part typed by a Simple/Alias declaration).
func (ge *goEncoder) genAssign(b *strings.Builder, kind, namedType, strExpr, dstExpr string) {
	switch kind {
	case "string":
		fmt.Fprintf(b, "%s = %s(%s)\n", dstExpr, namedType, strExpr)
	case "[]byte":
		fmt.Fprintf(b, "%s = %s([]byte(%s))\n", dstExpr, namedType, strExpr)
	case "bool":
		ge.needsStdPkg["strconv"] = true
		fmt.Fprintf(b, "{\nparsed, err := strconv.ParseBool(%s)\nif err != nil {\nreturn err\n}\n%s = %s(parsed)\n}\n", strExpr, dstExpr, namedType)
	case "float64":
		ge.needsStdPkg["strconv"] = true
		fmt.Fprintf(b, "{\nparsed, err := strconv.ParseFloat(%s, 64)\nif err != nil {\nreturn err\n}\n%s = %s(parsed)\n}\n", strExpr, dstExpr, namedType)
	case "uint", "uint16", "uint64", "byte":
		ge.needsStdPkg["strconv"] = true
		bits := map[string]string{"uint": "0", "uint16": "16", "uint64": "64", "byte": "8"}[kind]
		fmt.Fprintf(b, "{\nparsed, err := strconv.ParseUint(%s, 10, %s)\nif err != nil {\nreturn err\n}\n%s = %s(parsed)\n}\n", strExpr, bits, dstExpr, namedType)
	default: // int, int16, int64
		ge.needsStdPkg["strconv"] = true
		bits := map[string]string{"int": "0", "int16": "16", "int64": "64"}[kind]
		if bits == "" {
			bits = "0"
		}
		fmt.Fprintf(b, "{\nparsed, err := strconv.ParseInt(%s, 10, %s)\nif err != nil {\nreturn err\n}\n%s = %s(parsed)\n}\n", strExpr, bits, dstExpr, namedType)
	}
}

// exported upper-cases the first byte of a bare XML local name. It
// names struct and message fields (named and inline structs alike)
// and operation methods. Unlike top-level declarations, these never
// go through ge.ids: each is scoped to one struct type or one method
// set.
func exported(local string) string {
	if local == "" {
		return local
	}
	return strings.ToUpper(local[:1]) + local[1:]
}
