// Package ident assigns stable, collision-free Go identifiers to
// model.NamespacedName values, per spec.md §4.5. WSDL local names can
// repeat across namespaces (two schemas both declaring a type named
// "Status"); Go identifiers within a package cannot, so the generator
// routes every declaration name through a Disambiguator instead of
// using local names directly, the way the teacher's
// fixFuncNameConflicts/renameType did ad hoc per call site.
package ident

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/fiorix/wsdl2go/model"
)

// Disambiguator assigns a Go-safe identifier to each NamespacedName it
// sees, guaranteeing: the same NamespacedName always yields the same
// identifier, and two different NamespacedNames never yield the same
// identifier.
type Disambiguator struct {
	titler cases.Caser
	byName map[model.NamespacedName]string
	seen   map[string]int
}

// NewDisambiguator returns an empty Disambiguator.
func NewDisambiguator() *Disambiguator {
	return &Disambiguator{
		titler: cases.Title(language.Und),
		byName: make(map[model.NamespacedName]string),
		seen:   make(map[string]int),
	}
}

// Assign returns the identifier for n. The first namespaced name to
// claim a given local-name gets the bare, exported local-name; every
// later namespaced name that collides on the same local-name gets a
// numeric suffix, assigned in first-seen order starting at 1. A
// suffixed candidate that is already in use (for example a bare
// local-name "Status1") is skipped in favor of the next suffix.
func (d *Disambiguator) Assign(n model.NamespacedName) string {
	if id, ok := d.byName[n]; ok {
		return id
	}
	base := d.exported(n.Local)
	id := base
	for d.seen[id] > 0 {
		if d.seen[base] == 0 {
			d.seen[base] = 1
		}
		id = fmt.Sprintf("%s%d", base, d.seen[base])
		d.seen[base]++
	}
	if d.seen[id] == 0 {
		d.seen[id] = 1
	}
	d.byName[n] = id
	return id
}

// exported titlecases local so generated identifiers are always
// exported, mirroring the teacher's strings.Title-based export rule
// but through golang.org/x/text/cases, since strings.Title is
// deprecated.
func (d *Disambiguator) exported(local string) string {
	if local == "" {
		return local
	}
	return d.titler.String(local[:1]) + local[1:]
}
