// Package registry maps human readable contract names to on-chain addresses
// and back. Entries keep the order of the backing document so reverse lookups
// are deterministic: the first name registered for an address wins.
package registry

import (
	"fmt"
	"io"
	"os"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/sahilm/fuzzy"

	"github.com/cosmos/cosmos-sdk/types/bech32"

	"github.com/thec00n/osmosis-cli-wrapper/types"
)

const maxSuggestions = 3

// Entry is one name -> address pair of the registry.
type Entry struct {
	Name    string `json:"name" yaml:"name"`
	Address string `json:"address" yaml:"address"`
}

type Registry struct {
	entries []Entry
	// name -> index in entries
	byName map[string]int
	// values of the document that were not strings
	skipped []string
}

// New builds a registry from entries. A repeated name replaces the address
// of the first occurrence.
func New(entries ...Entry) *Registry {
	r := &Registry{byName: make(map[string]int, len(entries))}
	for _, e := range entries {
		r.put(e.Name, e.Address)
	}
	return r
}

func (r *Registry) put(name, address string) {
	if i, ok := r.byName[name]; ok {
		r.entries[i].Address = address
		return
	}
	r.byName[name] = len(r.entries)
	r.entries = append(r.entries, Entry{Name: name, Address: address})
}

// Load reads a JSON object of contract name -> address from path.
func Load(path string) (*Registry, error) {
	bz, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read contracts file %s: %w", path, err)
	}
	r, err := Parse(bz)
	if err != nil {
		return nil, types.ErrParse.Wrapf("contracts file %s: %s", path, err)
	}
	return r, nil
}

// Parse reads a registry document. Values that are not JSON strings are
// skipped and can not be resolved.
func Parse(bz []byte) (*Registry, error) {
	iter := jsoniter.ParseBytes(jsoniter.ConfigCompatibleWithStandardLibrary, bz)
	if next := iter.WhatIsNext(); next != jsoniter.ObjectValue {
		return nil, fmt.Errorf("expected a JSON object of contract name to address")
	}

	r := New()
	iter.ReadObjectCB(func(it *jsoniter.Iterator, name string) bool {
		if it.WhatIsNext() != jsoniter.StringValue {
			r.skipped = append(r.skipped, name)
			it.Skip()
			return true
		}
		r.put(name, it.ReadString())
		return true
	})
	if iter.Error != nil && iter.Error != io.EOF {
		return nil, iter.Error
	}
	// only whitespace may follow the object
	iter.WhatIsNext()
	if iter.Error != io.EOF {
		return nil, fmt.Errorf("trailing data after the contracts object")
	}
	return r, nil
}

// ResolveAddress returns the address registered under name.
func (r *Registry) ResolveAddress(name string) (string, error) {
	if r != nil {
		if i, ok := r.byName[name]; ok {
			return r.entries[i].Address, nil
		}
	}
	if suggestions := r.Suggest(name); len(suggestions) > 0 {
		return "", types.ErrNotFound.Wrapf("%q (did you mean %s?)", name, strings.Join(suggestions, ", "))
	}
	return "", types.ErrNotFound.Wrapf("%q", name)
}

// ResolveName returns the first name registered for address.
func (r *Registry) ResolveName(address string) (string, bool) {
	if r == nil {
		return "", false
	}
	for _, e := range r.entries {
		if e.Address == address {
			return e.Name, true
		}
	}
	return "", false
}

// Suggest returns registered names that fuzzily match name, best first.
func (r *Registry) Suggest(name string) []string {
	if r == nil || name == "" {
		return nil
	}
	matches := fuzzy.FindFrom(name, source(r.entries))
	var result []string
	for i := 0; i < len(matches) && i < maxSuggestions; i++ {
		result = append(result, r.entries[matches[i].Index].Name)
	}
	return result
}

// Entries returns the registry in document order.
func (r *Registry) Entries() []Entry {
	if r == nil {
		return nil
	}
	return append([]Entry(nil), r.entries...)
}

// Skipped returns the names whose value was not an address string.
func (r *Registry) Skipped() []string {
	if r == nil {
		return nil
	}
	return append([]string(nil), r.skipped...)
}

func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.entries)
}

// Validate checks that every address is bech32 encoded with the given
// human readable prefix.
func (r *Registry) Validate(prefix string) []error {
	var errs []error
	for _, e := range r.Entries() {
		hrp, _, err := bech32.DecodeAndConvert(e.Address)
		if err != nil {
			errs = append(errs, fmt.Errorf("contract %s: invalid address %q: %w", e.Name, e.Address, err))
			continue
		}
		if prefix != "" && hrp != prefix {
			errs = append(errs, fmt.Errorf("contract %s: address %s has prefix %q, expected %q", e.Name, e.Address, hrp, prefix))
		}
	}
	return errs
}

// source adapts entries to fuzzy.Source.
type source []Entry

func (s source) Len() int {
	return len(s)
}

func (s source) String(i int) string {
	return s[i].Name
}
