package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleCatalog = `{"sword": 10, "shield": {"defense": 5, "weight": 2}, "potion": "heals 20 HP"}`

func writeCatalog(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	return p
}

func TestLoad_LookupScalarsAndContainers(t *testing.T) {
	c, err := Load(writeCatalog(t, sampleCatalog))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	v, err := c.Lookup("sword")
	if err != nil {
		t.Fatalf("lookup sword: %v", err)
	}
	if v != Number("10") {
		t.Fatalf("sword: got %#v", v)
	}
	v, err = c.Lookup("potion")
	if err != nil {
		t.Fatalf("lookup potion: %v", err)
	}
	if v != String("heals 20 HP") {
		t.Fatalf("potion: got %#v", v)
	}
	v, err = c.Lookup("shield")
	if err != nil {
		t.Fatalf("lookup shield: %v", err)
	}
	obj, ok := v.(*Object)
	if !ok {
		t.Fatalf("shield: expected object, got %T", v)
	}
	if got := strings.Join(obj.Keys(), ","); got != "defense,weight" {
		t.Fatalf("shield keys: %s", got)
	}
	if !IsContainer(v) {
		t.Fatalf("shield should be a container")
	}
}

func TestLookup_CaseSensitive(t *testing.T) {
	c, err := Load(writeCatalog(t, sampleCatalog))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	_, err = c.Lookup("Sword")
	var inf *ItemNotFoundError
	if !errors.As(err, &inf) {
		t.Fatalf("expected ItemNotFoundError, got %v", err)
	}
	if inf.Item != "Sword" || inf.Path != c.Path {
		t.Fatalf("unexpected error fields: %+v", inf)
	}
	want := "Item 'Sword' was not found in " + c.Path + "."
	if err.Error() != want {
		t.Fatalf("message: got %q want %q", err.Error(), want)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), FileName)
	_, err := Load(p)
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if !strings.Contains(err.Error(), p) {
		t.Fatalf("message should name the path: %q", err.Error())
	}
	if nf.ExitCode() == 0 {
		t.Fatalf("exit code must be non-zero")
	}
}

func TestLoad_Malformed(t *testing.T) {
	cases := []struct {
		name string
		body string
		line int
	}{
		{"trailing comma", `{"sword": 10,}`, 1},
		{"trailing comma multiline", "{\n  \"a\": 1,\n}\n", 3},
		{"truncated", "{\n\"a\": [1, 2\n", 3},
		{"empty", "", 1},
		{"comment", "{\n// no\n}", 2},
		{"not an object", "\n\n[1, 2]", 3},
		{"scalar", `"sword"`, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := writeCatalog(t, tc.body)
			_, err := Load(p)
			var me *MalformedError
			if !errors.As(err, &me) {
				t.Fatalf("expected MalformedError, got %v", err)
			}
			if me.Line != tc.line {
				t.Fatalf("line: got %d want %d (%s)", me.Line, tc.line, me.Msg)
			}
			if !strings.Contains(err.Error(), "(line ") || !strings.Contains(err.Error(), p) {
				t.Fatalf("message: %q", err.Error())
			}
		})
	}
}

func TestLoad_UnreadablePathIsNotClassified(t *testing.T) {
	dir := t.TempDir()
	_, err := Load(dir)
	if err == nil {
		t.Fatalf("expected error reading a directory")
	}
	var nf *NotFoundError
	var me *MalformedError
	if errors.As(err, &nf) || errors.As(err, &me) {
		t.Fatalf("directory read should not be classified: %v", err)
	}
}

func TestDefaultPath_BesideExecutable(t *testing.T) {
	p, err := DefaultPath()
	if err != nil {
		t.Fatalf("default path: %v", err)
	}
	if filepath.Base(p) != FileName {
		t.Fatalf("unexpected file name: %s", p)
	}
	if !filepath.IsAbs(p) {
		t.Fatalf("expected absolute path: %s", p)
	}
}
