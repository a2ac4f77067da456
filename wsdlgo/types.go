package wsdlgo

import (
	"fmt"
	"strings"

	"github.com/fiorix/wsdl2go/model"
	"github.com/fiorix/wsdl2go/nsns"
	"github.com/fiorix/wsdl2go/resolve"
)

// writeTypes emits the types namespace of spec.md §4.6: one
// declaration per user-defined type, in the order the parser recorded
// them. De-duplication is already handled upstream by
// model.Definition.AddType, which overwrites rather than appends on a
// repeated NamespacedName.
func (ge *goEncoder) writeTypes(b *strings.Builder, rm *resolve.ResolvedModel) {
	for _, t := range rm.Types {
		switch t.Kind.Tag {
		case model.TagStruct:
			goName := ge.ids.Assign(t.Name)
			ge.genStructDecl(b, goName, t.Kind.Fields, rm)
			ge.genStructXml(b, goName, t.Name.Local, nsns.Prefix(t.Name.NS), t.Kind.Fields, rm)
		case model.TagSimple:
			ge.genSimpleType(b, t, rm)
		case model.TagAlias:
			ge.genAliasType(b, t, rm)
		}
	}
}

func (ge *goEncoder) genStructDecl(b *strings.Builder, goName string, fields []model.Field, rm *resolve.ResolvedModel) {
	ge.writeComments(b, goName, "")
	fmt.Fprintf(b, "type %s struct {\n", goName)
	for _, f := range fields {
		fmt.Fprintf(b, "%s %s\n", exported(f.Name.Local), ge.fieldGoType(f, rm))
	}
	b.WriteString("}\n\n")
}

// fieldGoType returns the Go type for one struct or message field.
func (ge *goEncoder) fieldGoType(f model.Field, rm *resolve.ResolvedModel) string {
	if f.Kind.IsInner {
		return ge.inlineGoType(*f.Kind.Inner, rm)
	}
	goType, _ := ge.goType(f.Kind.Ref, rm)
	return goType
}

// inlineGoType renders an anonymous inline complexType (FieldKind.Inner)
// as a literal Go struct type, for the single-child-sequence case
// spec.md §3 describes. Its fields are scoped to this one literal, so
// they're named with exported() rather than routed through ge.ids.
func (ge *goEncoder) inlineGoType(k model.TypeKind, rm *resolve.ResolvedModel) string {
	var b strings.Builder
	b.WriteString("struct {\n")
	for _, f := range k.Fields {
		fmt.Fprintf(&b, "%s %s\n", exported(f.Name.Local), ge.fieldGoType(f, rm))
	}
	b.WriteString("}")
	return b.String()
}

// genStructXml emits the ToXml/FromXml pair for a Struct-tagged type,
// per spec.md §4.6: the opening tag carries the type's own namespace
// index, every known namespace is declared only when topLevel, and
// each field is written by genFieldsSerialize/genFieldsParse.
func (ge *goEncoder) genStructXml(b *strings.Builder, goName, wireLocal, nsPrefix string, fields []model.Field, rm *resolve.ResolvedModel) {
	ge.needsStdPkg["encoding/xml"] = true
	tag := nsPrefix + ":" + wireLocal

	fmt.Fprintf(b, "func (v *%s) ToXml(w *xmlevt.Writer, topLevel bool) error {\n", goName)
	b.WriteString("var attrs []xml.Attr\n")
	b.WriteString("if topLevel {\nfor _, ns := range xmlNamespaces {\nattrs = append(attrs, xmlevt.NewAttr(\"xmlns:\"+ns.Prefix, ns.URI))\n}\n}\n")
	fmt.Fprintf(b, "if err := w.StartElement(%q, attrs...); err != nil {\nreturn err\n}\n", tag)
	ge.genFieldsSerialize(b, "v", fields, rm, nsPrefix)
	fmt.Fprintf(b, "return w.EndElement(%q)\n}\n\n", tag)

	fmt.Fprintf(b, "func (v *%s) FromXml(r *xmlevt.Reader) error {\n", goName)
	fmt.Fprintf(b, "if _, err := r.ExpectStart(%q); err != nil {\nreturn err\n}\n", wireLocal)
	ge.genFieldsParse(b, "v", fields, rm)
	b.WriteString("return r.ExpectEnd()\n}\n\n")
}

// genFieldsSerialize writes, for each field, either a leaf
// <ns{i}:field>value</ns{i}:field> (built-in primitive or inline
// anonymous type) or a delegated call to the field's own ToXml (any
// reference to a declared type), per spec.md §4.6. Struct fields are
// never the outermost value being serialized, so every field passes
// topLevel=false.
func (ge *goEncoder) genFieldsSerialize(b *strings.Builder, varExpr string, fields []model.Field, rm *resolve.ResolvedModel, nsPrefix string) {
	for _, f := range fields {
		ge.genOneFieldSerialize(b, varExpr, f, rm, nsPrefix, "false")
	}
}

// genOneFieldSerialize writes one field. topLevelExpr is the Go
// boolean expression passed to a delegated ToXml call, or that
// controls whether a leaf tag also declares every known namespace —
// "false" for an ordinary struct field, or the message's own topLevel
// parameter for a message's first part, per spec.md §6's "declared on
// the root of the body content" rule.
func (ge *goEncoder) genOneFieldSerialize(b *strings.Builder, varExpr string, f model.Field, rm *resolve.ResolvedModel, nsPrefix, topLevelExpr string) {
	fv := varExpr + "." + exported(f.Name.Local)
	if f.Kind.IsInner {
		tag := nsPrefix + ":" + f.Name.Local
		fmt.Fprintf(b, "if err := w.StartElement(%q); err != nil {\nreturn err\n}\n", tag)
		for i, inner := range f.Kind.Inner.Fields {
			innerTop := "false"
			if i == 0 {
				innerTop = topLevelExpr
			}
			ge.genOneFieldSerialize(b, fv, inner, rm, nsPrefix, innerTop)
		}
		fmt.Fprintf(b, "if err := w.EndElement(%q); err != nil {\nreturn err\n}\n", tag)
		return
	}
	goType, builtin := ge.goType(f.Kind.Ref, rm)
	if builtin {
		ge.needsStdPkg["encoding/xml"] = true
		tag := nsPrefix + ":" + f.Name.Local
		if topLevelExpr == "false" {
			fmt.Fprintf(b, "if err := w.StartElement(%q); err != nil {\nreturn err\n}\n", tag)
		} else {
			fmt.Fprintf(b, "var attrs []xml.Attr\nif %s {\nfor _, ns := range xmlNamespaces {\nattrs = append(attrs, xmlevt.NewAttr(\"xmlns:\"+ns.Prefix, ns.URI))\n}\n}\n", topLevelExpr)
			fmt.Fprintf(b, "if err := w.StartElement(%q, attrs...); err != nil {\nreturn err\n}\n", tag)
		}
		fmt.Fprintf(b, "if err := w.Text(%s); err != nil {\nreturn err\n}\n", ge.formatExpr(goType, fv))
		fmt.Fprintf(b, "if err := w.EndElement(%q); err != nil {\nreturn err\n}\n", tag)
		return
	}
	if strings.HasPrefix(goType, "*") {
		fmt.Fprintf(b, "if %s != nil {\nif err := %s.ToXml(w, %s); err != nil {\nreturn err\n}\n}\n", fv, fv, topLevelExpr)
	} else {
		fmt.Fprintf(b, "if err := %s.ToXml(w, %s); err != nil {\nreturn err\n}\n", fv, topLevelExpr)
	}
}

// genFieldsParse mirrors genFieldsSerialize for FromXml: expect_start
// matches local name only (namespace ignored), per spec.md §4.6/§9.
func (ge *goEncoder) genFieldsParse(b *strings.Builder, varExpr string, fields []model.Field, rm *resolve.ResolvedModel) {
	for _, f := range fields {
		fv := varExpr + "." + exported(f.Name.Local)
		if f.Kind.IsInner {
			fmt.Fprintf(b, "if _, err := r.ExpectStart(%q); err != nil {\nreturn err\n}\n", f.Name.Local)
			ge.genFieldsParse(b, fv, f.Kind.Inner.Fields, rm)
			b.WriteString("if err := r.ExpectEnd(); err != nil {\nreturn err\n}\n")
			continue
		}
		goType, builtin := ge.goType(f.Kind.Ref, rm)
		if builtin {
			fmt.Fprintf(b, "if _, err := r.ExpectStart(%q); err != nil {\nreturn err\n}\n", f.Name.Local)
			b.WriteString("{\ns, err := r.ExpectText()\nif err != nil {\nreturn err\n}\n")
			ge.genAssign(b, goType, goType, "s", fv)
			b.WriteString("}\n")
			b.WriteString("if err := r.ExpectEnd(); err != nil {\nreturn err\n}\n")
			continue
		}
		if strings.HasPrefix(goType, "*") {
			elemType := strings.TrimPrefix(goType, "*")
			fmt.Fprintf(b, "%s = &%s{}\n", fv, elemType)
		}
		fmt.Fprintf(b, "if err := %s.FromXml(r); err != nil {\nreturn err\n}\n", fv)
	}
}

// genSimpleType renders a Simple TypeKind as a Go defined type over
// its primitive base, with a Validate method when the restriction
// carries enumeration facets (grounded on the teacher's
// genValidator/validatorT, updated to the ToXml/FromXml contracts).
func (ge *goEncoder) genSimpleType(b *strings.Builder, t model.Type, rm *resolve.ResolvedModel) {
	goName := ge.ids.Assign(t.Name)
	kind := ge.primitiveKind(t.Kind.Base, rm)
	if kind == "" {
		kind = "string"
	}
	ge.writeComments(b, goName, "")
	fmt.Fprintf(b, "type %s %s\n\n", goName, kind)
	ge.genValidator(b, goName, kind, t.Kind.Enum)
	ge.genPrimitiveXml(b, goName, t.Name.Local, nsns.Prefix(t.Name.NS), kind)
}

// genAliasType renders an Alias TypeKind, per spec.md §4.6: omitted
// entirely when it would alias itself. When the target is a built-in,
// Go's `type X = Y` alias syntax cannot carry methods (Y is not a
// locally-declared type), so the alias is instead a fresh defined type
// with its own ToXml/FromXml. When the target is a type this package
// already declares, a true Go alias is used instead: Foo and its
// target are then the identical type and already share one method
// set, so emitting a second ToXml/FromXml would be a duplicate method
// declaration.
func (ge *goEncoder) genAliasType(b *strings.Builder, t model.Type, rm *resolve.ResolvedModel) {
	if t.Kind.Target == t.Name {
		return
	}
	goName := ge.ids.Assign(t.Name)
	targetGoType, builtin := ge.goType(t.Kind.Target, rm)
	if builtin {
		ge.writeComments(b, goName, "")
		fmt.Fprintf(b, "type %s %s\n\n", goName, targetGoType)
		ge.genPrimitiveXml(b, goName, t.Name.Local, nsns.Prefix(t.Name.NS), targetGoType)
		return
	}
	elemType := strings.TrimPrefix(targetGoType, "*")
	ge.writeComments(b, goName, "")
	fmt.Fprintf(b, "type %s = %s\n\n", goName, elemType)
}

// genPrimitiveXml emits ToXml/FromXml for a type whose Go
// representation is a defined type over a single XSD built-in (Simple,
// or an Alias pointing at a built-in).
func (ge *goEncoder) genPrimitiveXml(b *strings.Builder, goName, wireLocal, nsPrefix, kind string) {
	ge.needsStdPkg["encoding/xml"] = true
	tag := nsPrefix + ":" + wireLocal

	fmt.Fprintf(b, "func (v *%s) ToXml(w *xmlevt.Writer, topLevel bool) error {\n", goName)
	b.WriteString("var attrs []xml.Attr\n")
	b.WriteString("if topLevel {\nfor _, ns := range xmlNamespaces {\nattrs = append(attrs, xmlevt.NewAttr(\"xmlns:\"+ns.Prefix, ns.URI))\n}\n}\n")
	fmt.Fprintf(b, "if err := w.StartElement(%q, attrs...); err != nil {\nreturn err\n}\n", tag)
	fmt.Fprintf(b, "if err := w.Text(%s); err != nil {\nreturn err\n}\n", ge.formatExpr(kind, "*v"))
	fmt.Fprintf(b, "return w.EndElement(%q)\n}\n\n", tag)

	fmt.Fprintf(b, "func (v *%s) FromXml(r *xmlevt.Reader) error {\n", goName)
	fmt.Fprintf(b, "if _, err := r.ExpectStart(%q); err != nil {\nreturn err\n}\n", wireLocal)
	b.WriteString("s, err := r.ExpectText()\nif err != nil {\nreturn err\n}\n")
	ge.genAssign(b, kind, goName, "s", "*v")
	b.WriteString("return r.ExpectEnd()\n}\n\n")
}

// genValidator emits a Validate method listing a Simple type's
// xs:enumeration facet values, grounded on the teacher's
// genValidator/validatorT (reflect.DeepEqual over a literal slice).
func (ge *goEncoder) genValidator(b *strings.Builder, goName, kind string, enum []string) {
	if len(enum) == 0 {
		return
	}
	ge.needsStdPkg["reflect"] = true
	fmt.Fprintf(b, "// Validate reports whether v is one of %s's allowed values.\n", goName)
	fmt.Fprintf(b, "func (v %s) Validate() bool {\n", goName)
	fmt.Fprintf(b, "for _, vv := range []%s{\n", goName)
	for _, e := range enum {
		if kind == "string" {
			fmt.Fprintf(b, "%s(%q),\n", goName, e)
		} else {
			fmt.Fprintf(b, "%s(%s),\n", goName, e)
		}
	}
	b.WriteString("} {\nif reflect.DeepEqual(v, vv) {\nreturn true\n}\n}\nreturn false\n}\n\n")
}
