package ident

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fiorix/wsdl2go/model"
)

func TestAssignStablePerName(t *testing.T) {
	d := NewDisambiguator()
	n := model.NamespacedName{NS: 0, Local: "Status"}
	first := d.Assign(n)
	second := d.Assign(n)
	assert.Equal(t, first, second)
	assert.Equal(t, "Status", first)
}

func TestAssignSuffixesOnCollision(t *testing.T) {
	d := NewDisambiguator()
	a := model.NamespacedName{NS: 0, Local: "Status"}
	b := model.NamespacedName{NS: 1, Local: "Status"}
	c := model.NamespacedName{NS: 2, Local: "Status"}

	idA := d.Assign(a)
	idB := d.Assign(b)
	idC := d.Assign(c)

	assert.Equal(t, "Status", idA)
	assert.Equal(t, "Status1", idB)
	assert.Equal(t, "Status2", idC)

	// Re-requesting any of them returns the same identifier, never a
	// fresh suffix.
	assert.Equal(t, idB, d.Assign(b))
}

func TestAssignExportsLowercaseLocalNames(t *testing.T) {
	d := NewDisambiguator()
	n := model.NamespacedName{NS: 0, Local: "addResponse"}
	assert.Equal(t, "AddResponse", d.Assign(n))
}

func TestAssignInjective(t *testing.T) {
	d := NewDisambiguator()
	names := []model.NamespacedName{
		{NS: 0, Local: "Foo"},
		{NS: 1, Local: "Foo"},
		{NS: 0, Local: "Bar"},
		{NS: 2, Local: "Foo"},
	}
	seen := make(map[string]bool)
	for _, n := range names {
		id := d.Assign(n)
		assert.False(t, seen[id], "identifier %q reused", id)
		seen[id] = true
	}
}
