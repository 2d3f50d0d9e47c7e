// Package view reads and writes view files: TOML documents whose top-level
// tables each declare one model of a scene, keyed by the role it plays.
//
//	[title]
//	model = "label"
//	text = "Tableau"
//	position = "400,120"
//
//	[menu]
//	model = "menu"
//	options = ["Start", "Options", "Quit"]
package view

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/OpticalFlyer/tableau/model"
	"github.com/OpticalFlyer/tableau/property"
)

// DefaultKind is the model kind of a declaration without a "model" key.
const DefaultKind = "label"

// Entry is one declared model.
type Entry struct {
	Role   string
	Kind   string
	Fields property.Fields
}

// Builder receives the entries of a view. *scene.Scene implements it.
type Builder interface {
	Create(role, kind string, decl property.Fields) (model.Model, error)
}

// Load decodes a view, keeping the declaration order of the file.
func Load(r io.Reader) ([]Entry, error) {
	var doc map[string]any
	md, err := toml.NewDecoder(r).Decode(&doc)
	if err != nil {
		return nil, fmt.Errorf("decoding view: %w", err)
	}

	var entries []Entry
	for _, key := range md.Keys() {
		if len(key) != 1 {
			continue
		}
		role := key[0]
		table, ok := doc[role].(map[string]any)
		if !ok {
			return nil, fmt.Errorf("view entry %q: want a table, got %T", role, doc[role])
		}
		fields := property.From(table).Fields()
		kind := DefaultKind
		if k, ok := fields["model"]; ok {
			kind = k.String()
			delete(fields, "model")
		}
		entries = append(entries, Entry{Role: role, Kind: kind, Fields: fields})
	}
	return entries, nil
}

// LoadFile loads the view stored at path.
func LoadFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	entries, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return entries, nil
}

// Build creates every entry in b, in order.
func Build(b Builder, entries []Entry) error {
	for _, e := range entries {
		if _, err := b.Create(e.Role, e.Kind, e.Fields); err != nil {
			return err
		}
	}
	return nil
}

// Save encodes a view as exported by a scene.
func Save(w io.Writer, v map[string]map[string]any) error {
	if err := toml.NewEncoder(w).Encode(v); err != nil {
		return fmt.Errorf("encoding view: %w", err)
	}
	return nil
}
