package wsdlgo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fiorix/wsdl2go/model"
	"github.com/fiorix/wsdl2go/nsns"
	"github.com/fiorix/wsdl2go/resolve"
)

func rmWithService(name string) *resolve.ResolvedModel {
	ns := nsns.NewTable()
	def := model.NewDefinition(ns)
	i := ns.AddOrGet("urn:test")
	return &resolve.ResolvedModel{
		Namespaces: def,
		Services: []resolve.ResolvedService{
			{Name: model.NamespacedName{NS: i, Local: name}},
		},
	}
}

func TestPackageName(t *testing.T) {
	assert.Equal(t, "foo", packageName(rmWithService("foo")))
	assert.Equal(t, "dataendpointsoap11service", packageName(rmWithService("DataEndpointSoap11Service")))
	assert.Equal(t, "somedottedservicename", packageName(rmWithService("Some.Dotted.Service.Name")))
}

func TestPackageNameFallback(t *testing.T) {
	rm := &resolve.ResolvedModel{Namespaces: model.NewDefinition(nsns.NewTable())}
	assert.Equal(t, fallbackPackageName, packageName(rm))
}
