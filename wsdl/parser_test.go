package wsdl

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiorix/wsdl2go/model"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

const calculatorWSDL = `<?xml version="1.0"?>
<definitions name="Calculator"
    targetNamespace="urn:calc"
    xmlns:tns="urn:calc"
    xmlns:xs="http://www.w3.org/2001/XMLSchema"
    xmlns:soap="http://schemas.xmlsoap.org/wsdl/soap/"
    xmlns="http://schemas.xmlsoap.org/wsdl/">
  <types>
    <xs:schema targetNamespace="urn:calc">
      <xs:element name="Add">
        <xs:complexType>
          <xs:sequence>
            <xs:element name="A" type="xs:int"/>
            <xs:element name="B" type="xs:int"/>
          </xs:sequence>
        </xs:complexType>
      </xs:element>
      <xs:element name="AddResponse">
        <xs:complexType>
          <xs:sequence>
            <xs:element name="Result" type="xs:int"/>
          </xs:sequence>
        </xs:complexType>
      </xs:element>
    </xs:schema>
  </types>
  <message name="AddIn">
    <part name="body" element="tns:Add"/>
  </message>
  <message name="AddOut">
    <part name="body" element="tns:AddResponse"/>
  </message>
  <portType name="CalculatorPortType">
    <operation name="Add">
      <documentation>adds two numbers</documentation>
      <input message="tns:AddIn"/>
      <output message="tns:AddOut"/>
    </operation>
  </portType>
  <binding name="CalculatorBinding" type="tns:CalculatorPortType">
    <soap:binding transport="http://schemas.xmlsoap.org/soap/http" style="document"/>
    <operation name="Add">
      <soap:operation soapAction="urn:calc#Add" style="document"/>
      <input><soap:body use="literal"/></input>
      <output><soap:body use="literal"/></output>
    </operation>
  </binding>
  <service name="CalculatorService">
    <documentation>a calculator</documentation>
    <port name="CalculatorPort" binding="tns:CalculatorBinding">
      <soap:address location="http://example.com/calc"/>
    </port>
  </service>
</definitions>
`

func TestLoadCalculator(t *testing.T) {
	p := writeTemp(t, "calc.wsdl", calculatorWSDL)
	def, err := Load(p, http.DefaultClient)
	require.NoError(t, err)

	require.Len(t, def.Services, 1)
	svc := def.Services[0]
	assert.Equal(t, "CalculatorService", svc.Name.Local)
	assert.Equal(t, "a calculator", svc.Doc)
	require.Len(t, svc.Ports, 1)
	assert.Equal(t, "http://example.com/calc", svc.Ports[0].Address)

	require.Len(t, def.Bindings, 1)
	b := def.Bindings[0]
	assert.Equal(t, "http://schemas.xmlsoap.org/soap/http", b.Transport)
	require.Len(t, b.Operations, 1)
	assert.Equal(t, "urn:calc#Add", b.Operations[0].SOAPAction)
	assert.Equal(t, "literal", b.Operations[0].InputUse)

	require.Len(t, def.PortTypes, 1)
	pt := def.PortTypes[0]
	require.Len(t, pt.Operations, 1)
	assert.Equal(t, "adds two numbers", pt.Operations[0].Documentation)
	assert.True(t, pt.Operations[0].HasInput)
	assert.True(t, pt.Operations[0].HasOutput)

	addMsg, ok := def.Message(pt.Operations[0].Input)
	require.True(t, ok)
	require.Len(t, addMsg.Parts, 1)

	addType, ok := def.Type(addMsg.Parts[0].Kind.Ref)
	require.True(t, ok)
	require.Equal(t, model.TagStruct, addType.Kind.Tag)
	require.Len(t, addType.Kind.Fields, 2)
	assert.Equal(t, "A", addType.Kind.Fields[0].Name.Local)
}

const crsTypeWSDL = `<?xml version="1.0"?>
<definitions name="CRS"
    targetNamespace="urn:crs"
    xmlns:tns="urn:crs"
    xmlns:xs="http://www.w3.org/2001/XMLSchema"
    xmlns="http://schemas.xmlsoap.org/wsdl/">
  <types>
    <xs:schema targetNamespace="urn:crs">
      <xs:simpleType name="CRSType">
        <xs:restriction base="xs:string">
          <xs:enumeration value="WGS84"/>
          <xs:enumeration value="NAD83"/>
        </xs:restriction>
      </xs:simpleType>
    </xs:schema>
  </types>
</definitions>
`

func TestLoadSimpleTypeRestriction(t *testing.T) {
	p := writeTemp(t, "crs.wsdl", crsTypeWSDL)
	def, err := Load(p, http.DefaultClient)
	require.NoError(t, err)

	ty, ok := def.Type(model.NamespacedName{NS: def.Namespaces.AddOrGet("urn:crs"), Local: "CRSType"})
	require.True(t, ok)
	assert.Equal(t, model.TagSimple, ty.Kind.Tag)
	assert.Equal(t, "string", ty.Kind.Base.Local)
	assert.Equal(t, []string{"WGS84", "NAD83"}, ty.Kind.Enum)
}

const missingTargetNamespaceWSDL = `<?xml version="1.0"?>
<definitions name="Broken" xmlns="http://schemas.xmlsoap.org/wsdl/">
</definitions>
`

func TestLoadMissingTargetNamespace(t *testing.T) {
	p := writeTemp(t, "broken.wsdl", missingTargetNamespaceWSDL)
	_, err := Load(p, http.DefaultClient)
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, StructuralError, pe.Kind)
}

const missingPortAddressWSDL = `<?xml version="1.0"?>
<definitions name="Broken"
    targetNamespace="urn:broken"
    xmlns:tns="urn:broken"
    xmlns:soap="http://schemas.xmlsoap.org/wsdl/soap/"
    xmlns="http://schemas.xmlsoap.org/wsdl/">
  <binding name="B" type="tns:PT">
    <soap:binding transport="http://schemas.xmlsoap.org/soap/http"/>
  </binding>
  <service name="S">
    <port name="P" binding="tns:B">
    </port>
  </service>
</definitions>
`

func TestLoadPortMissingAddress(t *testing.T) {
	p := writeTemp(t, "broken2.wsdl", missingPortAddressWSDL)
	_, err := Load(p, http.DefaultClient)
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, StructuralError, pe.Kind)
}

func TestLoadFileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.wsdl"), http.DefaultClient)
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, FileOpenError, pe.Kind)
}

const importingWSDL = `<?xml version="1.0"?>
<definitions name="Outer"
    targetNamespace="urn:outer"
    xmlns:tns="urn:outer"
    xmlns:imp="urn:inner"
    xmlns="http://schemas.xmlsoap.org/wsdl/">
  <import namespace="urn:inner" location="%s"/>
</definitions>
`

const importedWSDL = `<?xml version="1.0"?>
<definitions name="Inner"
    targetNamespace="urn:inner"
    xmlns:tns="urn:inner"
    xmlns:xs="http://www.w3.org/2001/XMLSchema"
    xmlns="http://schemas.xmlsoap.org/wsdl/">
  <message name="PingIn">
    <part name="x" type="xs:string"/>
  </message>
</definitions>
`

func TestLoadWSDLImport(t *testing.T) {
	dir := t.TempDir()
	innerPath := filepath.Join(dir, "inner.wsdl")
	require.NoError(t, os.WriteFile(innerPath, []byte(importedWSDL), 0o644))
	outerPath := filepath.Join(dir, "outer.wsdl")
	outer := fmt.Sprintf(importingWSDL, "inner.wsdl")
	require.NoError(t, os.WriteFile(outerPath, []byte(outer), 0o644))

	def, err := Load(outerPath, http.DefaultClient)
	require.NoError(t, err)
	require.Len(t, def.Messages, 1)
	assert.Equal(t, "PingIn", def.Messages[0].Name.Local)
}
