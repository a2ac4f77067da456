// Package wsdlgo generates a Go SOAP client from a resolve.ResolvedModel.
package wsdlgo

import (
	"bufio"
	"bytes"
	"fmt"
	"go/parser"
	"go/token"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fiorix/wsdl2go/ident"
	"github.com/fiorix/wsdl2go/nsns"
	"github.com/fiorix/wsdl2go/resolve"
)

// An Encoder generates Go code from a resolved WSDL model.
type Encoder interface {
	Encode(rm *resolve.ResolvedModel) error
}

// goEncoder accumulates the import set generated code needs to
// compile, and owns the single ident.Disambiguator shared by every
// declaration this run emits, so a type, a message and a port can
// never collide on the same Go identifier.
type goEncoder struct {
	w io.Writer

	ids *ident.Disambiguator

	needsStdPkg map[string]bool
	needsExtPkg map[string]bool
}

// NewEncoder creates and initializes an Encoder that generates code to w.
func NewEncoder(w io.Writer) Encoder {
	return &goEncoder{
		w:           w,
		ids:         ident.NewDisambiguator(),
		needsStdPkg: make(map[string]bool),
		needsExtPkg: make(map[string]bool),
	}
}

func gofmtPath() (string, error) {
	goroot := os.Getenv("GOROOT")
	if goroot != "" {
		return filepath.Join(goroot, "bin", "gofmt"), nil
	}
	return exec.LookPath("gofmt")
}

// Encode generates Go source for rm, validates it parses, and pipes it
// through gofmt before writing to ge.w — the teacher's
// parse-then-gofmt pipeline in wsdlgo/encoder.go, unchanged.
func (ge *goEncoder) Encode(rm *resolve.ResolvedModel) error {
	if rm == nil {
		return nil
	}
	var b strings.Builder
	if err := ge.encode(&b, rm); err != nil {
		return err
	}
	if b.Len() == 0 {
		return nil
	}
	input := b.String()

	fset := token.NewFileSet()
	if _, err := parser.ParseFile(fset, "", input, parser.ParseComments); err != nil {
		var src bytes.Buffer
		s := bufio.NewScanner(strings.NewReader(input))
		for line := 1; s.Scan(); line++ {
			fmt.Fprintf(&src, "%5d\t%s\n", line, s.Bytes())
		}
		return fmt.Errorf("generated bad code: %v\n%s", err, src.String())
	}

	path, err := gofmtPath()
	if err != nil {
		return fmt.Errorf("cannot find gofmt: %v", err)
	}
	var errb bytes.Buffer
	cmd := exec.Cmd{
		Path:   path,
		Stdin:  strings.NewReader(input),
		Stdout: ge.w,
		Stderr: &errb,
	}
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("gofmt: %v\n%s\ngenerated code:\n%s", err, errb.String(), input)
	}
	return nil
}

// encode drives the three namespaces of spec.md §4.6 — types,
// messages, services — into one Go source file, then prepends the
// package clause, import block and namespace table once every
// declaration has had a chance to request a package via
// needsStdPkg/needsExtPkg.
func (ge *goEncoder) encode(w io.Writer, rm *resolve.ResolvedModel) error {
	messages := collectMessages(rm)

	var body strings.Builder
	ge.writeTypes(&body, rm)
	ge.writeMessages(&body, messages, rm)
	if err := ge.writeServices(&body, rm); err != nil {
		return err
	}

	fmt.Fprintf(w, "package %s\n\nimport (\n", packageName(rm))
	for p := range ge.needsStdPkg {
		fmt.Fprintf(w, "%q\n", p)
	}
	if len(ge.needsStdPkg) > 0 && len(ge.needsExtPkg) > 0 {
		fmt.Fprintf(w, "\n")
	}
	for p := range ge.needsExtPkg {
		fmt.Fprintf(w, "%q\n", p)
	}
	fmt.Fprintf(w, "%q\n", "github.com/fiorix/wsdl2go/xmlevt")
	fmt.Fprintf(w, ")\n\n")

	ge.writeNamespace(w, rm)

	_, err := io.WriteString(w, body.String())
	return err
}

// writeNamespace emits the package-level Namespace variable and the
// xmlNamespaces table every ToXml method consults to declare
// xmlns:ns{i} on the outermost element of a serialized value, per
// spec.md §4.6/§4.7.
func (ge *goEncoder) writeNamespace(w io.Writer, rm *resolve.ResolvedModel) {
	uris := rm.Namespaces.Namespaces.All()

	if len(rm.Services) > 0 {
		ns := rm.Namespaces.Namespaces.URI(rm.Services[0].Name.NS)
		ge.writeComments(w, "Namespace", "")
		fmt.Fprintf(w, "var Namespace = %s\n\n", strconv.Quote(ns))
	}

	fmt.Fprintf(w, "type xmlNamespace struct {\nPrefix, URI string\n}\n\n")
	fmt.Fprintf(w, "var xmlNamespaces = []xmlNamespace{\n")
	for i, uri := range uris {
		fmt.Fprintf(w, "{%s, %s},\n", strconv.Quote(nsns.Prefix(i)), strconv.Quote(uri))
	}
	fmt.Fprintf(w, "}\n\n")
}

// writeComments writes comments to w, capped at ~60 columns, exactly
// as the teacher's wsdlgo/encoder.go does.
func (ge *goEncoder) writeComments(w io.Writer, typeName, comment string) {
	comment = strings.Trim(strings.Replace(comment, "\n", " ", -1), " ")
	if comment == "" {
		comment = exported(typeName) + " was auto-generated from WSDL."
	}
	count, line := 0, ""
	words := strings.Split(comment, " ")
	for _, word := range words {
		if line == "" {
			count, line = 2, "//"
		}
		count += len(word)
		if count > 60 {
			fmt.Fprintf(w, "%s %s\n", line, word)
			count, line = 0, ""
			continue
		}
		line = line + " " + word
		count++
	}
	if line != "" {
		fmt.Fprintf(w, "%s\n", line)
	}
}
