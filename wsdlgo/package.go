package wsdlgo

import (
	"strings"

	"github.com/fiorix/wsdl2go/resolve"
)

const fallbackPackageName = "client"

// packageName derives the generated file's package clause from rm's
// first service, generalizing the teacher's BindingPackageName (which
// derived a name from wsdl.Binding) to the post-resolve
// resolve.ResolvedModel.
func packageName(rm *resolve.ResolvedModel) string {
	if len(rm.Services) == 0 {
		return fallbackPackageName
	}
	name := strings.Replace(strings.ToLower(rm.Services[0].Name.Local), ".", "", -1)
	if name == "" {
		return fallbackPackageName
	}
	return name
}
