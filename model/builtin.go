package model

// XSDNamespace is the XML Schema namespace URI that built-in primitive
// types live in.
const XSDNamespace = "http://www.w3.org/2001/XMLSchema"

// goBuiltins maps an XSD built-in local name to the Go type it
// deserializes to, per spec.md §4.7's built-in type mapping table.
var goBuiltins = map[string]string{
	"boolean":        "bool",
	"int":            "int",
	"integer":        "int",
	"long":           "int64",
	"short":          "int16",
	"unsignedShort":  "uint16",
	"unsignedInt":    "uint",
	"unsignedLong":   "uint64",
	"byte":           "byte",
	"float":          "float64",
	"double":         "float64",
	"decimal":        "float64",
	"string":         "string",
	"anyURI":         "string",
	"token":          "string",
	"QName":          "string",
	"dateTime":       "string",
	"date":           "string",
	"time":           "string",
	"duration":       "string",
	"hexBinary":      "[]byte",
	"base64Binary":   "[]byte",
	"nonNegativeInteger": "uint",
}

// IsBuiltin reports whether n names an XSD built-in primitive, and
// returns the Go type it maps to.
func IsBuiltin(n NamespacedName, ns *Table) (string, bool) {
	if ns.URI(n.NS) != XSDNamespace {
		return "", false
	}
	t, ok := goBuiltins[n.Local]
	return t, ok
}

// Table is the subset of nsns.Table's methods IsBuiltin needs;
// *nsns.Table (as stored in Definition.Namespaces) satisfies it.
type Table interface {
	URI(i int) string
}
