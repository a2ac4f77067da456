package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiorix/wsdl2go/model"
	"github.com/fiorix/wsdl2go/nsns"
)

func sampleDefinition() *model.Definition {
	ns := nsns.NewTable()
	def := model.NewDefinition(ns)
	tns := ns.AddOrGet("urn:calc")
	name := func(l string) model.NamespacedName { return model.NamespacedName{NS: tns, Local: l} }

	def.AddMessage(model.Message{Name: name("AddIn")})
	def.AddMessage(model.Message{Name: name("AddOut")})
	def.AddPortType(model.PortType{
		Name: name("CalculatorPortType"),
		Operations: []model.Operation{
			{Name: name("Add"), Input: name("AddIn"), HasInput: true, Output: name("AddOut"), HasOutput: true},
		},
	})
	def.AddBinding(model.Binding{
		Name:      name("CalculatorBinding"),
		PortType:  name("CalculatorPortType"),
		Transport: "http://schemas.xmlsoap.org/soap/http",
		Operations: []model.BindingOperation{
			{Name: name("Add"), SOAPAction: "urn:calc#Add", InputUse: "literal", OutputUse: "literal"},
		},
	})
	def.AddService(model.Service{
		Name: name("CalculatorService"),
		Ports: []model.Port{
			{Name: name("CalculatorPort"), Binding: name("CalculatorBinding"), Address: "http://example.com/calc"},
		},
	})
	return def
}

func TestResolveJoinsEverything(t *testing.T) {
	def := sampleDefinition()
	rm, err := Resolve(def)
	require.NoError(t, err)
	require.Len(t, rm.Services, 1)
	svc := rm.Services[0]
	require.Len(t, svc.Ports, 1)
	port := svc.Ports[0]
	assert.Equal(t, "http://example.com/calc", port.Address)
	assert.Equal(t, "http://schemas.xmlsoap.org/soap/http", port.Transport)
	require.Len(t, port.Operations, 1)
	op := port.Operations[0]
	assert.Equal(t, "urn:calc#Add", op.SOAPAction)
	assert.True(t, op.HasInput)
	assert.Equal(t, "AddIn", op.Input.Name.Local)
}

func TestResolveUndefinedBindingIsFatal(t *testing.T) {
	ns := nsns.NewTable()
	def := model.NewDefinition(ns)
	tns := ns.AddOrGet("urn:calc")
	name := model.NamespacedName{NS: tns, Local: "Port"}
	def.AddService(model.Service{
		Name:  model.NamespacedName{NS: tns, Local: "Svc"},
		Ports: []model.Port{{Name: name, Binding: model.NamespacedName{NS: tns, Local: "Missing"}}},
	})
	_, err := Resolve(def)
	require.Error(t, err)
}

func TestResolveUndefinedMessageIsFatal(t *testing.T) {
	def := sampleDefinition()
	// Corrupt the operation's input reference to something undefined.
	pt, _ := def.PortType(model.NamespacedName{NS: 0, Local: "CalculatorPortType"})
	pt.Operations[0].Input = model.NamespacedName{NS: 0, Local: "NoSuchMessage"}
	def.AddPortType(pt)
	_, err := Resolve(def)
	require.Error(t, err)
}
