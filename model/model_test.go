package model

import (
	"testing"

	"github.com/fiorix/wsdl2go/nsns"
	"github.com/stretchr/testify/assert"
)

func TestDefinitionAddAndLookup(t *testing.T) {
	tbl := nsns.NewTable()
	ns := tbl.AddOrGet("urn:example")
	def := NewDefinition(tbl)

	name := NamespacedName{NS: ns, Local: "Foo"}
	def.AddType(Type{Name: name, Kind: TypeKind{Tag: TagStruct}})
	got, ok := def.Type(name)
	assert.True(t, ok)
	assert.Equal(t, TagStruct, got.Kind.Tag)

	_, ok = def.Type(NamespacedName{NS: ns, Local: "Missing"})
	assert.False(t, ok)
}

func TestAddTypeOverwritesDuplicate(t *testing.T) {
	tbl := nsns.NewTable()
	ns := tbl.AddOrGet("urn:example")
	def := NewDefinition(tbl)
	name := NamespacedName{NS: ns, Local: "Foo"}

	def.AddType(Type{Name: name, Kind: TypeKind{Tag: TagSimple}})
	def.AddType(Type{Name: name, Kind: TypeKind{Tag: TagStruct}})

	assert.Len(t, def.Types, 1)
	got, _ := def.Type(name)
	assert.Equal(t, TagStruct, got.Kind.Tag)
}

func TestIsBuiltin(t *testing.T) {
	tbl := nsns.NewTable()
	xsd := tbl.AddOrGet(XSDNamespace)
	other := tbl.AddOrGet("urn:example")

	goType, ok := IsBuiltin(NamespacedName{NS: xsd, Local: "int"}, tbl)
	assert.True(t, ok)
	assert.Equal(t, "int", goType)

	_, ok = IsBuiltin(NamespacedName{NS: other, Local: "int"}, tbl)
	assert.False(t, ok)

	_, ok = IsBuiltin(NamespacedName{NS: xsd, Local: "notAType"}, tbl)
	assert.False(t, ok)
}
