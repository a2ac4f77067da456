package wsdlgo

import (
	"bytes"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiorix/wsdl2go/resolve"
	"github.com/fiorix/wsdl2go/wsdl"
)

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

func loadCalculator(t *testing.T) *resolve.ResolvedModel {
	t.Helper()
	dir := t.TempDir()
	p := filepath.Join(dir, "calc.wsdl")
	require.NoError(t, os.WriteFile(p, []byte(calculatorWSDL), 0o644))

	def, err := wsdl.Load(p, http.DefaultClient)
	require.NoError(t, err)

	rm, err := resolve.Resolve(def)
	require.NoError(t, err)
	return rm
}

func TestEncodeCalculator(t *testing.T) {
	rm := loadCalculator(t)

	var buf bytes.Buffer
	err := NewEncoder(&buf).Encode(rm)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "package calculatorservice")

	// types namespace: the Add/AddResponse element types.
	assert.Contains(t, out, "type Add struct")
	assert.Contains(t, out, "type AddResponse struct")
	assert.Contains(t, out, "func (v *Add) ToXml(w *xmlevt.Writer, topLevel bool) error")
	assert.Contains(t, out, "func (v *Add) FromXml(r *xmlevt.Reader) error")

	// messages namespace: AddIn/AddOut wrap the body part.
	assert.Contains(t, out, "type AddIn struct")
	assert.Contains(t, out, "type AddOut struct")
	assert.Contains(t, out, "Body *Add")
	assert.Contains(t, out, "Body *AddResponse")

	// services namespace: one interface/impl/constructor for the port.
	assert.Contains(t, out, "type CalculatorPort interface")
	assert.Contains(t, out, "func NewCalculatorPort() CalculatorPort")
	assert.Contains(t, out, `soap.NewClient("http://example.com/calc")`)
	assert.Contains(t, out, "func (p *calculatorPort) Add(in *AddIn) (*AddOut, error)")
	assert.Contains(t, out, `soap.Send(p.cli, "urn:calc#Add", req, &resp)`)

	assert.Contains(t, out, `"github.com/fiorix/wsdl2go/soap"`)
	assert.Contains(t, out, `"github.com/fiorix/wsdl2go/xmlevt"`)
}
