// Package model is the intermediate representation the parser builds
// and the resolver/generator consume: a namespaced, deduplicated symbol
// table linking ports, bindings, portTypes, operations, messages and
// types. It is built once by package wsdl and then treated as read-only
// input to the rest of the pipeline.
package model

import "github.com/fiorix/wsdl2go/nsns"

// NamespacedName is the unique identity of every model entity: a
// namespace index (from an nsns.Table) paired with a local name. Two
// names are equal iff both components are equal; string-only names
// must never cross component boundaries.
type NamespacedName struct {
	NS    int
	Local string
}

// String returns the local name, for use in error messages.
func (n NamespacedName) String() string {
	return n.Local
}

// TypeKind is the tagged variant describing how a named (or inline)
// type is shaped. Exactly one of Struct, Simple, Alias is meaningful
// for any given TypeKind value; callers switch on the Tag.
type TypeKind struct {
	Tag TypeTag

	// Struct: ordered fields of a complex type or message.
	Fields []Field

	// Simple: the base type a simpleType restricts.
	Base NamespacedName

	// Alias: the type a top-level element's @type points at.
	Target NamespacedName

	// Enum carries allowed values for a Simple type defined by
	// restriction with xs:enumeration facets, empty otherwise.
	Enum []string
}

// TypeTag discriminates the TypeKind variants.
type TypeTag int

const (
	// TagStruct marks a TypeKind as a Struct (complex type or message).
	TagStruct TypeTag = iota
	// TagSimple marks a TypeKind as a Simple (restriction of a builtin).
	TagSimple
	// TagAlias marks a TypeKind as an Alias (element pointing at a type).
	TagAlias
)

// Field is one member of a Struct TypeKind: a message part, or a
// sequence/element child. Order is significant: it equals XML document
// order, since SOAP bodies are positional XML.
type Field struct {
	Name NamespacedName
	Kind FieldKind
}

// FieldKind is either a reference to a named type (built-in or
// user-defined) or an anonymous inline type, used for single-child
// sequences whose element introduces an inline complexType.
type FieldKind struct {
	// Ref is set when the field refers to a named type.
	Ref NamespacedName
	// Inner is set (IsInner true) when the field's type is an
	// anonymous inline complexType instead of a named reference.
	Inner   *TypeKind
	IsInner bool
}

// TypeRef builds a FieldKind that references a named type.
func TypeRef(n NamespacedName) FieldKind {
	return FieldKind{Ref: n}
}

// InnerKind builds a FieldKind wrapping an anonymous inline type.
func InnerKind(k TypeKind) FieldKind {
	return FieldKind{Inner: &k, IsInner: true}
}

// Type is a top-level named type declaration.
type Type struct {
	Name NamespacedName
	Kind TypeKind
}

// Message is the data communicated by an operation: an ordered list of
// parts, each with the part's name and its referenced element type.
type Message struct {
	Name  NamespacedName
	Parts []Field
}

// Operation is a named request/response exchange. Input and Output are
// references into the Definition's Messages table; either may be the
// zero NamespacedName if that side of the exchange is absent, tracked
// by HasInput/HasOutput.
type Operation struct {
	Name          NamespacedName
	Documentation string
	Input         NamespacedName
	HasInput      bool
	Output        NamespacedName
	HasOutput     bool
}

// PortType holds a set of operations, abstractly, with no binding to a
// wire format.
type PortType struct {
	Name       NamespacedName
	Operations []Operation
}

// BindingOperation carries the per-operation transport metadata a
// Binding attaches to a PortType operation of the same name.
type BindingOperation struct {
	Name       NamespacedName
	SOAPAction string
	Style      string
	InputUse   string
	OutputUse  string
}

// Binding concretizes a PortType to a wire format: it references the
// PortType by name and carries the transport URI plus per-operation
// action/style/use metadata.
type Binding struct {
	Name       NamespacedName
	PortType   NamespacedName
	Transport  string
	Operations []BindingOperation
}

// Port is a concrete service endpoint: a Binding reference plus the
// endpoint address.
type Port struct {
	Name    NamespacedName
	Binding NamespacedName
	Address string
}

// Service holds a set of Ports.
type Service struct {
	Name  NamespacedName
	Ports []Port
	Doc   string
}

// Definition aggregates everything parsed from a WSDL document (and
// everything pulled in transitively through import/include). Insertion
// order is preserved throughout; this matters because field order
// within a Struct is semantically significant XML document order.
type Definition struct {
	Namespaces *nsns.Table

	Types      []Type
	Messages   []Message
	PortTypes  []PortType
	Bindings   []Binding
	Services   []Service

	// indices for O(1) lookup by NamespacedName, built incrementally
	// as entities are appended.
	typeIdx     map[NamespacedName]int
	messageIdx  map[NamespacedName]int
	portTypeIdx map[NamespacedName]int
	bindingIdx  map[NamespacedName]int
}

// NewDefinition returns an empty Definition backed by the given
// namespace table (created empty by the caller and grown during
// parsing).
func NewDefinition(ns *nsns.Table) *Definition {
	return &Definition{
		Namespaces:  ns,
		typeIdx:     make(map[NamespacedName]int),
		messageIdx:  make(map[NamespacedName]int),
		portTypeIdx: make(map[NamespacedName]int),
		bindingIdx:  make(map[NamespacedName]int),
	}
}

// AddType appends a top-level type. Type names are unique per
// namespace; a duplicate (namespace, local) pair overwrites the
// earlier entry rather than producing a second entry, since re-parsing
// the same import through two include paths is legal.
func (d *Definition) AddType(t Type) {
	if i, ok := d.typeIdx[t.Name]; ok {
		d.Types[i] = t
		return
	}
	d.typeIdx[t.Name] = len(d.Types)
	d.Types = append(d.Types, t)
}

// Type looks up a top-level type by name.
func (d *Definition) Type(n NamespacedName) (Type, bool) {
	i, ok := d.typeIdx[n]
	if !ok {
		return Type{}, false
	}
	return d.Types[i], true
}

// AddMessage appends a message.
func (d *Definition) AddMessage(m Message) {
	if i, ok := d.messageIdx[m.Name]; ok {
		d.Messages[i] = m
		return
	}
	d.messageIdx[m.Name] = len(d.Messages)
	d.Messages = append(d.Messages, m)
}

// Message looks up a message by name.
func (d *Definition) Message(n NamespacedName) (Message, bool) {
	i, ok := d.messageIdx[n]
	if !ok {
		return Message{}, false
	}
	return d.Messages[i], true
}

// AddPortType appends a portType.
func (d *Definition) AddPortType(p PortType) {
	if i, ok := d.portTypeIdx[p.Name]; ok {
		d.PortTypes[i] = p
		return
	}
	d.portTypeIdx[p.Name] = len(d.PortTypes)
	d.PortTypes = append(d.PortTypes, p)
}

// PortType looks up a portType by name.
func (d *Definition) PortType(n NamespacedName) (PortType, bool) {
	i, ok := d.portTypeIdx[n]
	if !ok {
		return PortType{}, false
	}
	return d.PortTypes[i], true
}

// AddBinding appends a binding.
func (d *Definition) AddBinding(b Binding) {
	if i, ok := d.bindingIdx[b.Name]; ok {
		d.Bindings[i] = b
		return
	}
	d.bindingIdx[b.Name] = len(d.Bindings)
	d.Bindings = append(d.Bindings, b)
}

// Binding looks up a binding by name.
func (d *Definition) Binding(n NamespacedName) (Binding, bool) {
	i, ok := d.bindingIdx[n]
	if !ok {
		return Binding{}, false
	}
	return d.Bindings[i], true
}

// AddService appends a service.
func (d *Definition) AddService(s Service) {
	d.Services = append(d.Services, s)
}
