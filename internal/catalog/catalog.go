// Package catalog loads the item catalog, a JSON object mapping item names to
// arbitrary JSON values, and looks items up by exact name.
package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileName is the catalog file expected next to the executable.
const FileName = "items.json"

// Catalog is a loaded catalog file.
type Catalog struct {
	Path  string
	Items *Object
}

// DefaultPath returns the catalog location beside the running executable.
// The caller's working directory plays no part.
func DefaultPath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), FileName), nil
}

// Load reads and decodes the catalog at path.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	v, err := Decode(data)
	if err != nil {
		var se *SyntaxError
		if errors.As(err, &se) {
			return nil, &MalformedError{Path: path, Msg: se.Msg, Line: se.Line, Column: se.Column}
		}
		return nil, fmt.Errorf("decode catalog %s: %w", path, err)
	}
	obj, ok := v.(*Object)
	if !ok {
		line, col := firstToken(data)
		return nil, &MalformedError{
			Path:   path,
			Msg:    fmt.Sprintf("top-level value must be an object, got %s", KindName(v)),
			Line:   line,
			Column: col,
		}
	}
	return &Catalog{Path: path, Items: obj}, nil
}

// Lookup returns the value stored under name. Matching is exact and
// case-sensitive.
func (c *Catalog) Lookup(name string) (Value, error) {
	v, ok := c.Items.Get(name)
	if !ok {
		return nil, &ItemNotFoundError{Item: name, Path: c.Path}
	}
	return v, nil
}
