// Package resolve flattens a model.Definition's cross-references —
// service to port to binding to portType to operation to message —
// into a ResolvedModel ready for code generation, per spec.md §4.4. A
// missing reference along that chain is always fatal, never a degraded
// partial result. Types pass through unchanged: the type references
// inside message parts and struct fields are not looked up here.
package resolve

import (
	"fmt"

	"github.com/fiorix/wsdl2go/model"
)

// ResolvedOperation pairs a portType operation with the binding
// metadata the same-named binding operation contributes, plus the
// input/output messages already looked up.
type ResolvedOperation struct {
	Name          model.NamespacedName
	Documentation string
	SOAPAction    string
	Style         string
	InputUse      string
	OutputUse     string
	Input         model.Message
	HasInput      bool
	Output        model.Message
	HasOutput     bool
}

// ResolvedPort is a Port with its Binding, PortType and the merged
// operations already joined in.
type ResolvedPort struct {
	Name       model.NamespacedName
	Address    string
	Transport  string
	PortType   model.NamespacedName
	Operations []ResolvedOperation
}

// ResolvedService is a Service with every Port resolved.
type ResolvedService struct {
	Name  model.NamespacedName
	Doc   string
	Ports []ResolvedPort
}

// ResolvedModel is the joined view of a model.Definition: every
// port, binding, portType, operation and message reference inside a
// Service has already been looked up. Type references are not;
// wsdlgo looks those up through the Definition held in Namespaces.
type ResolvedModel struct {
	Namespaces *model.Definition
	Types      []model.Type
	Services   []ResolvedService
}

// Resolve joins def's services, ports, bindings, portTypes, operations
// and messages into a ResolvedModel. Any dangling reference — a
// binding naming an undefined portType, a port naming an undefined
// binding, an operation naming an undefined message — is a fatal
// error, since spec.md §4.4 defines no partial-resolution behavior.
func Resolve(def *model.Definition) (*ResolvedModel, error) {
	rm := &ResolvedModel{Namespaces: def, Types: def.Types}
	for _, svc := range def.Services {
		rsvc, err := resolveService(def, svc)
		if err != nil {
			return nil, err
		}
		rm.Services = append(rm.Services, rsvc)
	}
	return rm, nil
}

func resolveService(def *model.Definition, svc model.Service) (ResolvedService, error) {
	rsvc := ResolvedService{Name: svc.Name, Doc: svc.Doc}
	for _, port := range svc.Ports {
		rport, err := resolvePort(def, port)
		if err != nil {
			return ResolvedService{}, fmt.Errorf("resolve: service %s: %w", svc.Name, err)
		}
		rsvc.Ports = append(rsvc.Ports, rport)
	}
	return rsvc, nil
}

func resolvePort(def *model.Definition, port model.Port) (ResolvedPort, error) {
	binding, ok := def.Binding(port.Binding)
	if !ok {
		return ResolvedPort{}, fmt.Errorf("port %s: undefined binding %s", port.Name, port.Binding)
	}
	portType, ok := def.PortType(binding.PortType)
	if !ok {
		return ResolvedPort{}, fmt.Errorf("binding %s: undefined portType %s", binding.Name, binding.PortType)
	}
	rport := ResolvedPort{
		Name:      port.Name,
		Address:   port.Address,
		Transport: binding.Transport,
		PortType:  portType.Name,
	}
	bindingOps := make(map[model.NamespacedName]model.BindingOperation, len(binding.Operations))
	for _, bop := range binding.Operations {
		bindingOps[bop.Name] = bop
	}
	for _, op := range portType.Operations {
		rop, err := resolveOperation(def, op, bindingOps)
		if err != nil {
			return ResolvedPort{}, fmt.Errorf("portType %s: %w", portType.Name, err)
		}
		rport.Operations = append(rport.Operations, rop)
	}
	return rport, nil
}

func resolveOperation(def *model.Definition, op model.Operation, bindingOps map[model.NamespacedName]model.BindingOperation) (ResolvedOperation, error) {
	bop, ok := bindingOps[op.Name]
	if !ok {
		return ResolvedOperation{}, fmt.Errorf("operation %s: no matching binding operation", op.Name)
	}
	rop := ResolvedOperation{
		Name:          op.Name,
		Documentation: op.Documentation,
		SOAPAction:    bop.SOAPAction,
		Style:         bop.Style,
		InputUse:      bop.InputUse,
		OutputUse:     bop.OutputUse,
	}
	if op.HasInput {
		msg, ok := def.Message(op.Input)
		if !ok {
			return ResolvedOperation{}, fmt.Errorf("operation %s: undefined input message %s", op.Name, op.Input)
		}
		rop.Input, rop.HasInput = msg, true
	}
	if op.HasOutput {
		msg, ok := def.Message(op.Output)
		if !ok {
			return ResolvedOperation{}, fmt.Errorf("operation %s: undefined output message %s", op.Name, op.Output)
		}
		rop.Output, rop.HasOutput = msg, true
	}
	return rop, nil
}
