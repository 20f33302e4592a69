// Package ident allocates globally-unique identifiers within a generation run.
// Collisions are resolved with bijective base-26 alphabetic suffixes, so the
// allocator is total: every base name, including the empty string, yields a name.
package ident

import (
	"fmt"
	"strings"

	"git.home.luguber.info/inful/paperforge/internal/util/sets"
)

const (
	slugPlaceholder = "document"
	idPlaceholder   = "Document"
)

// AlphabeticSuffix returns the bijective base-26 label for index:
// 0→A, 1→B, … 25→Z, 26→AA, 27→AB. Every non-negative integer maps to a
// distinct label with no leading-zero ambiguity.
func AlphabeticSuffix(index int) string {
	if index < 0 {
		panic(fmt.Sprintf("ident: suffix index must be non-negative, got %d", index))
	}
	buf := make([]byte, 0, 3)
	value := index
	for {
		buf = append(buf, byte('A'+value%26))
		value /= 26
		if value == 0 {
			break
		}
		value--
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}

// Namespace tracks identifiers issued during a single generation run.
// It is owned by the caller and must be rebuilt for every run; reuse across
// runs would break the determinism guarantee.
type Namespace struct {
	issued   sets.Set[string]
	counters map[string]int
}

// NewNamespace returns an empty namespace.
func NewNamespace() *Namespace {
	return &Namespace{
		issued:   sets.New[string](),
		counters: make(map[string]int),
	}
}

// Slug allocates a unique slug-style name, suffixing `-a`, `-b`, … on
// collision. The retry counter is carried per base across calls, so repeated
// collisions on the same base continue the sequence.
func (n *Namespace) Slug(base string) string {
	return n.allocate(base, slugPlaceholder, func(b string, i int) string {
		return b + "-" + strings.ToLower(AlphabeticSuffix(i))
	})
}

// ID allocates a unique PascalCase name, suffixing `A`, `B`, … on collision.
func (n *Namespace) ID(base string) string {
	return n.allocate(base, idPlaceholder, func(b string, i int) string {
		return b + AlphabeticSuffix(i)
	})
}

func (n *Namespace) allocate(base, placeholder string, candidate func(string, int) string) string {
	if base == "" {
		base = placeholder
	}
	if !n.issued.Has(base) {
		n.issued.Add(base)
		if _, ok := n.counters[base]; !ok {
			n.counters[base] = 0
		}
		return base
	}

	counter := n.counters[base]
	for {
		name := candidate(base, counter)
		counter++
		if !n.issued.Has(name) {
			n.issued.Add(name)
			n.counters[base] = counter
			return name
		}
	}
}
