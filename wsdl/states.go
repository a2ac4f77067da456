package wsdl

import (
	"encoding/xml"

	"github.com/fiorix/wsdl2go/model"
	"github.com/fiorix/wsdl2go/xmlevt"
)

// onStart implements the Push column of spec.md §4.3's state table. An
// element not recognized for the current top-of-stack state is
// recorded as Other(name) and its children are ignored: we simply skip
// its whole subtree and never push a frame for it.
func (p *parser) onStart(r *xmlevt.Reader, ev xmlevt.Event) error {
	p.nsctx.PushScope(ev.Attrs)
	top := p.top()
	name := ev.Name
	attrs := ev.Attrs

	switch {
	case (top == nil || isDefinitions(top)) && name == "definitions":
		tns, err := p.requireAttr(attrs, "targetNamespace", "definitions")
		if err != nil {
			return err
		}
		p.nsctx.PushTarget(tns)
		p.push(&fDefinitions{})
		return nil

	case name == "schema" && (top == nil || isTypesContext(top) || isSchema(top)):
		tns, _ := xmlevt.Attr(attrs, "targetNamespace")
		p.nsctx.PushTarget(tns)
		p.push(&fSchema{})
		return nil

	case isDefinitions(top) && name == "types":
		p.push(&passthrough{name: "types"})
		return nil

	case isDefinitions(top) && name == "import":
		if loc, ok := xmlevt.Attr(attrs, "location"); ok && loc != "" {
			if err := p.importDoc(loc); err != nil {
				return err
			}
		}
		p.push(&passthrough{name: "import"})
		return nil

	case isSchema(top) && (name == "import" || name == "include"):
		if loc, ok := xmlevt.Attr(attrs, "schemaLocation"); ok && loc != "" {
			if err := p.importDoc(loc); err != nil {
				return err
			}
		}
		p.push(&passthrough{name: name})
		return nil

	case isSchema(top) && name == "element":
		return p.pushElement(attrs)

	case isSchema(top) && name == "complexType":
		nameAttr, has := xmlevt.Attr(attrs, "name")
		ct := &fComplexType{HasName: has}
		if has {
			ct.Name = p.localName(nameAttr)
		}
		p.push(ct)
		return nil

	case isSchema(top) && name == "simpleType":
		nameAttr, err := p.requireAttr(attrs, "name", "simpleType")
		if err != nil {
			return err
		}
		p.push(&fSimpleType{Name: p.localName(nameAttr)})
		return nil

	case isKind[*fElement](top) && name == "complexType":
		p.push(&fComplexType{})
		return nil

	case isKind[*fComplexType](top) && name == "sequence":
		p.push(&fSequence{})
		return nil

	case isKind[*fComplexType](top) && name == "complexContent":
		p.push(&fComplexContent{})
		return nil

	case isKind[*fComplexType](top) && name == "simpleContent":
		p.push(&fSimpleContent{})
		return nil

	case isKind[*fComplexContent](top) && name == "extension":
		return p.pushComplexExtension(attrs)

	case isKind[*fComplexExtension](top) && name == "sequence":
		p.push(&fSequence{})
		return nil

	case isKind[*fSimpleContent](top) && name == "extension":
		baseAttr, err := p.requireAttr(attrs, "base", "simpleContent extension")
		if err != nil {
			return err
		}
		base, err := p.qname(baseAttr)
		if err != nil {
			return err
		}
		p.push(&fSimpleExtension{Ty: base})
		return nil

	case isKind[*fSimpleType](top) && name == "restriction":
		baseAttr, err := p.requireAttr(attrs, "base", "restriction")
		if err != nil {
			return err
		}
		base, err := p.qname(baseAttr)
		if err != nil {
			return err
		}
		p.push(&fRestriction{Ty: base})
		return nil

	case isKind[*fRestriction](top) && name == "enumeration":
		v, err := p.requireAttr(attrs, "value", "enumeration")
		if err != nil {
			return err
		}
		p.push(&fEnumeration{Value: v})
		return nil

	case isKind[*fSequence](top) && name == "element":
		return p.pushSequenceElement(attrs)

	case isKind[*fSequenceElement](top) && name == "complexType":
		p.push(&fComplexType{})
		return nil

	case isDefinitions(top) && name == "message":
		nameAttr, err := p.requireAttr(attrs, "name", "message")
		if err != nil {
			return err
		}
		p.push(&fMessage{Name: p.localName(nameAttr)})
		return nil

	case isKind[*fMessage](top) && name == "part":
		return p.pushPart(attrs)

	case isDefinitions(top) && name == "portType":
		nameAttr, err := p.requireAttr(attrs, "name", "portType")
		if err != nil {
			return err
		}
		p.push(&fPortType{Name: p.localName(nameAttr)})
		return nil

	case isKind[*fPortType](top) && name == "operation":
		nameAttr, err := p.requireAttr(attrs, "name", "portType operation")
		if err != nil {
			return err
		}
		p.push(&fOperation{Name: p.localName(nameAttr)})
		return nil

	case isKind[*fOperation](top) && name == "documentation":
		p.push(&fDocumentation{})
		return nil

	case isKind[*fOperation](top) && (name == "input" || name == "output"):
		msgAttr, err := p.requireAttr(attrs, "message", "operation "+name)
		if err != nil {
			return err
		}
		msg, err := p.qname(msgAttr)
		if err != nil {
			return err
		}
		p.push(&fIO{IsInput: name == "input", Message: msg})
		return nil

	case isDefinitions(top) && name == "binding":
		nameAttr, err := p.requireAttr(attrs, "name", "binding")
		if err != nil {
			return err
		}
		typeAttr, err := p.requireAttr(attrs, "type", "binding")
		if err != nil {
			return err
		}
		pt, err := p.qname(typeAttr)
		if err != nil {
			return err
		}
		p.push(&fBinding{Name: p.localName(nameAttr), PortType: pt})
		return nil

	case isKind[*fBinding](top) && name == "binding":
		transport, _ := xmlevt.Attr(attrs, "transport")
		style, _ := xmlevt.Attr(attrs, "style")
		p.push(&fTransport{Transport: transport, Style: style})
		return nil

	case isKind[*fBinding](top) && name == "operation":
		nameAttr, err := p.requireAttr(attrs, "name", "binding operation")
		if err != nil {
			return err
		}
		p.push(&fBindingOperation{Name: p.localName(nameAttr)})
		return nil

	case isKind[*fBindingOperation](top) && name == "operation":
		action, _ := xmlevt.Attr(attrs, "soapAction")
		style, _ := xmlevt.Attr(attrs, "style")
		p.push(&fOperationAction{Action: action, Style: style})
		return nil

	case isKind[*fBindingOperation](top) && (name == "input" || name == "output"):
		p.push(&fBindingIO{IsInput: name == "input"})
		return nil

	case isKind[*fBindingIO](top) && name == "body":
		use, _ := xmlevt.Attr(attrs, "use")
		p.push(&fBindingBody{Use: use})
		return nil

	case isDefinitions(top) && name == "service":
		nameAttr, err := p.requireAttr(attrs, "name", "service")
		if err != nil {
			return err
		}
		p.push(&fService{Name: p.localName(nameAttr)})
		return nil

	case isKind[*fService](top) && name == "documentation":
		p.push(&fDocumentation{})
		return nil

	case isKind[*fService](top) && name == "port":
		nameAttr, err := p.requireAttr(attrs, "name", "port")
		if err != nil {
			return err
		}
		bindingAttr, err := p.requireAttr(attrs, "binding", "port")
		if err != nil {
			return err
		}
		b, err := p.qname(bindingAttr)
		if err != nil {
			return err
		}
		p.push(&fPort{Name: p.localName(nameAttr), Binding: b})
		return nil

	case isKind[*fPort](top) && name == "address":
		loc, _ := xmlevt.Attr(attrs, "location")
		p.push(&fAddress{Location: loc})
		return nil

	default:
		p.nsctx.PopScope()
		return r.Skip()
	}
}

func (p *parser) pushElement(attrs []xml.Attr) error {
	nameAttr, err := p.requireAttr(attrs, "name", "element")
	if err != nil {
		return err
	}
	el := &fElement{Name: p.localName(nameAttr)}
	if typeAttr, ok := xmlevt.Attr(attrs, "type"); ok && typeAttr != "" {
		ref, err := p.qname(typeAttr)
		if err != nil {
			return err
		}
		el.HasType = true
		el.TypeRef = ref
	}
	p.push(el)
	return nil
}

func (p *parser) pushSequenceElement(attrs []xml.Attr) error {
	nameAttr, err := p.requireAttr(attrs, "name", "sequence element")
	if err != nil {
		return err
	}
	el := &fSequenceElement{Name: p.localName(nameAttr)}
	if typeAttr, ok := xmlevt.Attr(attrs, "type"); ok && typeAttr != "" {
		ref, err := p.qname(typeAttr)
		if err != nil {
			return err
		}
		el.HasType = true
		el.TypeRef = ref
	}
	p.push(el)
	return nil
}

func (p *parser) pushComplexExtension(attrs []xml.Attr) error {
	baseAttr, err := p.requireAttr(attrs, "base", "complexContent extension")
	if err != nil {
		return err
	}
	base, err := p.qname(baseAttr)
	if err != nil {
		return err
	}
	synthetic := model.Field{Name: base, Kind: model.TypeRef(base)}
	p.push(&fComplexExtension{Fields: []model.Field{synthetic}})
	return nil
}

func (p *parser) pushPart(attrs []xml.Attr) error {
	nameAttr, err := p.requireAttr(attrs, "name", "part")
	if err != nil {
		return err
	}
	elementAttr, hasEl := xmlevt.Attr(attrs, "element")
	typeAttr, hasTy := xmlevt.Attr(attrs, "type")
	var kind model.FieldKind
	switch {
	case hasEl && elementAttr != "":
		ref, err := p.qname(elementAttr)
		if err != nil {
			return err
		}
		kind = model.TypeRef(ref)
	case hasTy && typeAttr != "":
		ref, err := p.qname(typeAttr)
		if err != nil {
			return err
		}
		kind = model.TypeRef(ref)
	default:
		return structuralf("part %q has neither element nor type", nameAttr)
	}
	p.push(&fPart{Name: p.localName(nameAttr), Kind: kind})
	return nil
}

// onEnd implements the Closes rules of spec.md §4.3: fold the finished
// frame into its parent, or append it as a top-level entity into the
// Definition.
func (p *parser) onEnd() error {
	if len(p.stack) == 0 {
		return structuralf("unmatched closing tag")
	}
	f := p.pop()
	p.nsctx.PopScope()
	if isKind[*fDefinitions](f) || isKind[*fSchema](f) {
		p.nsctx.PopTarget()
	}
	parent := p.top()

	switch v := f.(type) {
	case *passthrough, *fDefinitions, *fSchema:
		// nothing to fold

	case *fElement:
		if kind, ok := elementKind(v); ok {
			p.def.AddType(model.Type{Name: v.Name, Kind: kind})
		}

	case *fComplexType:
		kind := model.TypeKind{Tag: model.TagStruct}
		if v.Kind != nil {
			kind = *v.Kind
		}
		switch pf := parent.(type) {
		case *fSequenceElement:
			pf.Inner = &kind
		case *fElement:
			pf.InlineKind = &kind
		default:
			if v.HasName {
				p.def.AddType(model.Type{Name: v.Name, Kind: kind})
			}
		}

	case *fSimpleType:
		p.def.AddType(model.Type{
			Name: v.Name,
			Kind: model.TypeKind{Tag: model.TagSimple, Base: v.Base, Enum: v.Enum},
		})

	case *fSequence:
		switch pf := parent.(type) {
		case *fComplexType:
			k := model.TypeKind{Tag: model.TagStruct, Fields: v.Fields}
			pf.Kind = &k
		case *fComplexExtension:
			pf.Fields = append(pf.Fields, v.Fields...)
		}

	case *fComplexContent:
		if pf, ok := parent.(*fComplexType); ok {
			k := model.TypeKind{Tag: model.TagStruct, Fields: v.Fields}
			pf.Kind = &k
		}

	case *fComplexExtension:
		if pf, ok := parent.(*fComplexContent); ok {
			pf.Fields = append(pf.Fields, v.Fields...)
		}

	case *fSimpleContent:
		if pf, ok := parent.(*fComplexType); ok && v.HasTy {
			k := model.TypeKind{Tag: model.TagAlias, Target: v.Ty}
			pf.Kind = &k
		}

	case *fSimpleExtension:
		if pf, ok := parent.(*fSimpleContent); ok {
			pf.Ty = v.Ty
			pf.HasTy = true
		}

	case *fRestriction:
		if pf, ok := parent.(*fSimpleType); ok {
			pf.Base = v.Ty
			pf.Enum = v.Enum
		}

	case *fEnumeration:
		if pf, ok := parent.(*fRestriction); ok {
			pf.Enum = append(pf.Enum, v.Value)
		}

	case *fSequenceElement:
		var kind model.FieldKind
		switch {
		case v.Inner != nil:
			kind = model.InnerKind(*v.Inner)
		case v.HasType:
			kind = model.TypeRef(v.TypeRef)
		default:
			kind = model.TypeRef(model.NamespacedName{Local: "string"})
		}
		if pf, ok := parent.(*fSequence); ok {
			pf.Fields = append(pf.Fields, model.Field{Name: v.Name, Kind: kind})
		}

	case *fMessage:
		p.def.AddMessage(model.Message{Name: v.Name, Parts: v.Parts})

	case *fPart:
		if pf, ok := parent.(*fMessage); ok {
			pf.Parts = append(pf.Parts, model.Field{Name: v.Name, Kind: v.Kind})
		}

	case *fPortType:
		p.def.AddPortType(model.PortType{Name: v.Name, Operations: v.Operations})

	case *fOperation:
		if pf, ok := parent.(*fPortType); ok {
			pf.Operations = append(pf.Operations, model.Operation{
				Name: v.Name, Documentation: v.Documentation,
				Input: v.Input, HasInput: v.HasInput,
				Output: v.Output, HasOutput: v.HasOutput,
			})
		}

	case *fDocumentation:
		switch pf := parent.(type) {
		case *fOperation:
			pf.Documentation = v.Text
		case *fService:
			pf.Doc = v.Text
		}

	case *fIO:
		if pf, ok := parent.(*fOperation); ok {
			if v.IsInput {
				pf.Input, pf.HasInput = v.Message, true
			} else {
				pf.Output, pf.HasOutput = v.Message, true
			}
		}

	case *fBinding:
		p.def.AddBinding(model.Binding{
			Name: v.Name, PortType: v.PortType, Transport: v.Transport, Operations: v.Operations,
		})

	case *fTransport:
		if pf, ok := parent.(*fBinding); ok {
			pf.Transport = v.Transport
		}

	case *fBindingOperation:
		if pf, ok := parent.(*fBinding); ok {
			pf.Operations = append(pf.Operations, model.BindingOperation{
				Name: v.Name, SOAPAction: v.Action, Style: v.Style,
				InputUse: v.InputUse, OutputUse: v.OutputUse,
			})
		}

	case *fOperationAction:
		if pf, ok := parent.(*fBindingOperation); ok {
			pf.Action = v.Action
			pf.Style = v.Style
		}

	case *fBindingIO:
		if pf, ok := parent.(*fBindingOperation); ok {
			if v.IsInput {
				pf.InputUse = v.Use
			} else {
				pf.OutputUse = v.Use
			}
		}

	case *fBindingBody:
		if pf, ok := parent.(*fBindingIO); ok {
			pf.Use = v.Use
		}

	case *fService:
		p.def.AddService(model.Service{Name: v.Name, Ports: v.Ports, Doc: v.Doc})

	case *fPort:
		if v.Address == "" {
			return structuralf("port %q has no address", v.Name.Local)
		}
		if pf, ok := parent.(*fService); ok {
			pf.Ports = append(pf.Ports, model.Port{Name: v.Name, Binding: v.Binding, Address: v.Address})
		}

	case *fAddress:
		if pf, ok := parent.(*fPort); ok {
			pf.Address = v.Location
		}
	}
	return nil
}

// onText implements the "Text events are only meaningful inside
// Documentation" rule of spec.md §4.3.
func (p *parser) onText(text string) {
	if d, ok := p.top().(*fDocumentation); ok {
		d.Text = text
	}
}

func elementKind(v *fElement) (model.TypeKind, bool) {
	switch {
	case v.InlineKind != nil:
		return *v.InlineKind, true
	case v.HasType:
		return model.TypeKind{Tag: model.TagAlias, Target: v.TypeRef}, true
	default:
		return model.TypeKind{}, false
	}
}

func isDefinitions(f frame) bool {
	_, ok := f.(*fDefinitions)
	return ok
}

func isSchema(f frame) bool {
	_, ok := f.(*fSchema)
	return ok
}

func isTypesContext(f frame) bool {
	if isDefinitions(f) {
		return true
	}
	if pt, ok := f.(*passthrough); ok {
		return pt.name == "types"
	}
	return false
}

// isKind reports whether f is of concrete type T, without the
// awkwardness of repeating a type switch everywhere onStart/onEnd need
// to ask "is the current frame a *fFoo".
func isKind[T frame](f frame) bool {
	_, ok := f.(T)
	return ok
}
