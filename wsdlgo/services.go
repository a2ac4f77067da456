package wsdlgo

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"github.com/fiorix/wsdl2go/resolve"
)

var interfaceTypeT = template.Must(template.New("interfaceType").Parse(`
// New{{.Name}} creates and initializes a {{.Name}}, wrapping an HTTP
// client bound to the port's address.
func New{{.Name}}() {{.Name}} {
	return &{{.Impl}}{cli: soap.NewClient({{.Address}})}
}

// {{.Name}} was auto-generated from WSDL and defines the interface
// for the remote service. Useful for testing.
type {{.Name}} interface {
{{- range .Funcs }}
{{.Doc}}{{.Name}}({{.Input}}) ({{.Output}})
{{ end }}
}
`))

var portTypeT = template.Must(template.New("portType").Parse(`
// {{.Name}} implements the {{.Interface}} interface.
type {{.Name}} struct {
	cli *soap.Client
}

`))

var soapFuncT = template.Must(template.New("soapFunc").Parse(`
{{.Doc}}func (p *{{.PortType}}) {{.Name}}(in *{{.InType}}) (*{{.OutType}}, error) {
	req := &soap.Envelope[{{.InType}}, *{{.InType}}]{Body: *in}
	var resp soap.Envelope[{{.OutType}}, *{{.OutType}}]
	if err := soap.Send(p.cli, {{.Action}}, req, &resp); err != nil {
		return nil, err
	}
	return &resp.Body, nil
}
`))

type svcFunc struct {
	Doc, Name, Input, Output string
}

// writeServices emits the services namespace of spec.md §4.6/§6: one
// interface, one implementing struct, one no-arg constructor per
// ResolvedPort, and one method per operation. Operations missing
// either side of the exchange (HasInput/HasOutput false) are skipped:
// spec.md's method shape assumes a request/response pair, the common
// document/literal SOAP pattern every included WSDL follows.
func (ge *goEncoder) writeServices(b *strings.Builder, rm *resolve.ResolvedModel) error {
	for _, svc := range rm.Services {
		for _, port := range svc.Ports {
			if err := ge.writePort(b, port, rm); err != nil {
				return fmt.Errorf("service %s: %w", svc.Name, err)
			}
		}
	}
	return nil
}

func (ge *goEncoder) writePort(b *strings.Builder, port resolve.ResolvedPort, rm *resolve.ResolvedModel) error {
	ge.needsExtPkg["github.com/fiorix/wsdl2go/soap"] = true

	ifaceName := ge.ids.Assign(port.Name)
	implName := strings.ToLower(ifaceName[:1]) + ifaceName[1:]

	var funcs []svcFunc
	for _, op := range port.Operations {
		if !op.HasInput || !op.HasOutput {
			continue
		}
		inType := ge.ids.Assign(op.Input.Name)
		outType := ge.ids.Assign(op.Output.Name)
		opName := exported(op.Name.Local)

		var doc bytes.Buffer
		ge.writeComments(&doc, opName, op.Documentation)

		funcs = append(funcs, svcFunc{
			Doc:    doc.String(),
			Name:   opName,
			Input:  "in *" + inType,
			Output: "*" + outType + ", error",
		})

		var fb bytes.Buffer
		err := soapFuncT.Execute(&fb, &struct {
			Doc, PortType, Name, InType, OutType, Action string
		}{
			doc.String(),
			implName,
			opName,
			inType,
			outType,
			strconv.Quote(op.SOAPAction),
		})
		if err != nil {
			return err
		}
		b.WriteString(fb.String())
	}

	var ifb bytes.Buffer
	err := interfaceTypeT.Execute(&ifb, &struct {
		Name, Impl, Address string
		Funcs               []svcFunc
	}{
		ifaceName,
		implName,
		strconv.Quote(port.Address),
		funcs,
	})
	if err != nil {
		return err
	}

	var ptb bytes.Buffer
	err = portTypeT.Execute(&ptb, &struct{ Name, Interface string }{implName, ifaceName})
	if err != nil {
		return err
	}

	b.WriteString(ifb.String())
	b.WriteString(ptb.String())
	return nil
}
