package wsdl

import "github.com/fiorix/wsdl2go/model"

// frame is a ParseState value on the parser's stack. Each concrete type
// below corresponds to one row of spec.md §4.3's state table. A frame
// knows nothing about XML; it only accumulates the fields its pushing
// rule describes, to be folded into its parent (or into the
// Definition) when the matching close rule fires.
type frame interface {
	frameName() string
}

// passthrough marks a wrapper element (wsdl:types) that contributes no
// fields of its own; it exists purely so the element's End has
// something to pop.
type passthrough struct{ name string }

func (p *passthrough) frameName() string { return p.name }

// fDefinitions marks that parsing is inside <definitions>.
type fDefinitions struct{}

func (*fDefinitions) frameName() string { return "definitions" }

// fSchema marks that parsing is inside <schema>.
type fSchema struct{}

func (*fSchema) frameName() string { return "schema" }

// fElement corresponds to a (potentially top-level) xs:element.
type fElement struct {
	Name       model.NamespacedName
	HasType    bool
	TypeRef    model.NamespacedName
	InlineKind *model.TypeKind
}

func (*fElement) frameName() string { return "element" }

// fComplexType corresponds to xs:complexType, named or anonymous.
type fComplexType struct {
	Name    model.NamespacedName
	HasName bool
	Kind    *model.TypeKind
}

func (*fComplexType) frameName() string { return "complexType" }

// fSimpleType corresponds to xs:simpleType.
type fSimpleType struct {
	Name model.NamespacedName
	Base model.NamespacedName
	Enum []string
}

func (*fSimpleType) frameName() string { return "simpleType" }

// fSequence corresponds to xs:sequence, collecting ordered fields.
type fSequence struct {
	Fields []model.Field
}

func (*fSequence) frameName() string { return "sequence" }

// fComplexContent corresponds to xs:complexContent.
type fComplexContent struct {
	Fields []model.Field
}

func (*fComplexContent) frameName() string { return "complexContent" }

// fComplexExtension corresponds to xs:extension within complexContent.
// Fields is pre-seeded with a synthetic first field embedding Base.
type fComplexExtension struct {
	Fields []model.Field
}

func (*fComplexExtension) frameName() string { return "extension" }

// fSimpleContent corresponds to xs:simpleContent.
type fSimpleContent struct {
	Ty    model.NamespacedName
	HasTy bool
}

func (*fSimpleContent) frameName() string { return "simpleContent" }

// fSimpleExtension corresponds to xs:extension within simpleContent.
type fSimpleExtension struct {
	Ty model.NamespacedName
}

func (*fSimpleExtension) frameName() string { return "extension" }

// fSequenceElement corresponds to xs:element as a child of xs:sequence.
type fSequenceElement struct {
	Name    model.NamespacedName
	HasType bool
	TypeRef model.NamespacedName
	Inner   *model.TypeKind
}

func (*fSequenceElement) frameName() string { return "element" }

// fEnumeration corresponds to xs:enumeration within a restriction.
type fEnumeration struct {
	Value string
}

func (*fEnumeration) frameName() string { return "enumeration" }

// fMessage corresponds to wsdl:message.
type fMessage struct {
	Name  model.NamespacedName
	Parts []model.Field
}

func (*fMessage) frameName() string { return "message" }

// fPart corresponds to wsdl:part.
type fPart struct {
	Name model.NamespacedName
	Kind model.FieldKind
}

func (*fPart) frameName() string { return "part" }

// fRestriction corresponds to xs:restriction within a simpleType.
type fRestriction struct {
	Ty   model.NamespacedName
	Enum []string
}

func (*fRestriction) frameName() string { return "restriction" }

// fPortType corresponds to wsdl:portType.
type fPortType struct {
	Name       model.NamespacedName
	Operations []model.Operation
}

func (*fPortType) frameName() string { return "portType" }

// fOperation corresponds to wsdl:operation as a child of portType.
type fOperation struct {
	Name          model.NamespacedName
	Documentation string
	Input         model.NamespacedName
	HasInput      bool
	Output        model.NamespacedName
	HasOutput     bool
}

func (*fOperation) frameName() string { return "operation" }

// fDocumentation corresponds to wsdl:documentation.
type fDocumentation struct {
	Text string
}

func (*fDocumentation) frameName() string { return "documentation" }

// fIO corresponds to wsdl:input/wsdl:output as children of a portType
// operation.
type fIO struct {
	IsInput bool
	Message model.NamespacedName
}

func (*fIO) frameName() string { return "io" }

// fBinding corresponds to wsdl:binding.
type fBinding struct {
	Name       model.NamespacedName
	PortType   model.NamespacedName
	Transport  string
	Operations []model.BindingOperation
}

func (*fBinding) frameName() string { return "binding" }

// fTransport corresponds to the nested soap:binding inside a
// wsdl:binding.
type fTransport struct {
	Transport string
	Style     string
}

func (*fTransport) frameName() string { return "soapBinding" }

// fBindingOperation corresponds to wsdl:operation as a child of
// wsdl:binding.
type fBindingOperation struct {
	Name      model.NamespacedName
	Action    string
	Style     string
	InputUse  string
	OutputUse string
}

func (*fBindingOperation) frameName() string { return "bindingOperation" }

// fOperationAction corresponds to the nested soap:operation inside a
// binding operation.
type fOperationAction struct {
	Action string
	Style  string
}

func (*fOperationAction) frameName() string { return "soapOperation" }

// fBindingIO corresponds to wsdl:input/wsdl:output as children of a
// binding operation.
type fBindingIO struct {
	IsInput bool
	Use     string
}

func (*fBindingIO) frameName() string { return "bindingIO" }

// fBindingBody corresponds to the nested soap:body inside a binding
// operation's input/output.
type fBindingBody struct {
	Use string
}

func (*fBindingBody) frameName() string { return "soapBody" }

// fService corresponds to wsdl:service.
type fService struct {
	Name  model.NamespacedName
	Ports []model.Port
	Doc   string
}

func (*fService) frameName() string { return "service" }

// fPort corresponds to wsdl:port as a child of service.
type fPort struct {
	Name    model.NamespacedName
	Binding model.NamespacedName
	Address string
}

func (*fPort) frameName() string { return "port" }

// fAddress corresponds to soap:address as a child of port.
type fAddress struct {
	Location string
}

func (*fAddress) frameName() string { return "address" }
