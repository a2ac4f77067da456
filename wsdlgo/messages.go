package wsdlgo

import (
	"fmt"
	"strings"

	"github.com/fiorix/wsdl2go/model"
	"github.com/fiorix/wsdl2go/nsns"
	"github.com/fiorix/wsdl2go/resolve"
)

// collectMessages walks every service's operations and returns the
// messages they reference, each exactly once, in first-seen order.
// ResolvedModel carries messages inline on each ResolvedOperation
// rather than as a standalone list, since resolve.Resolve's job is to
// join everything reachable from a Service; this is the one place
// wsdlgo flattens that back into a deduplicated set for the messages
// namespace of spec.md §4.6.
func collectMessages(rm *resolve.ResolvedModel) []model.Message {
	seen := make(map[model.NamespacedName]bool)
	var out []model.Message
	add := func(m model.Message) {
		if seen[m.Name] {
			return
		}
		seen[m.Name] = true
		out = append(out, m)
	}
	for _, svc := range rm.Services {
		for _, port := range svc.Ports {
			for _, op := range port.Operations {
				if op.HasInput {
					add(op.Input)
				}
				if op.HasOutput {
					add(op.Output)
				}
			}
		}
	}
	return out
}

// writeMessages emits the messages namespace: one record per message,
// fields per part. Unlike a Struct type, a message's ToXml/FromXml
// never open or close an outer element — spec.md §4.6 delegates that
// to whatever wraps the message (the SOAP Body).
func (ge *goEncoder) writeMessages(b *strings.Builder, messages []model.Message, rm *resolve.ResolvedModel) {
	for _, m := range messages {
		goName := ge.ids.Assign(m.Name)
		ge.genStructDecl(b, goName, m.Parts, rm)
		ge.genMessageXml(b, goName, m.Parts, rm, nsns.Prefix(m.Name.NS))
	}
}

func (ge *goEncoder) genMessageXml(b *strings.Builder, goName string, fields []model.Field, rm *resolve.ResolvedModel, nsPrefix string) {
	fmt.Fprintf(b, "func (v *%s) ToXml(w *xmlevt.Writer, topLevel bool) error {\n", goName)
	for i, f := range fields {
		top := "false"
		if i == 0 {
			top = "topLevel"
		}
		ge.genOneFieldSerialize(b, "v", f, rm, nsPrefix, top)
	}
	b.WriteString("return nil\n}\n\n")

	fmt.Fprintf(b, "func (v *%s) FromXml(r *xmlevt.Reader) error {\n", goName)
	ge.genFieldsParse(b, "v", fields, rm)
	b.WriteString("return nil\n}\n\n")
}
