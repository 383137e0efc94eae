package descriptor

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeDescriptor(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, "python-package.json"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoad_NotFound(t *testing.T) {
	res := NewStore(t.TempDir()).Load()
	if res.Status != NotFound {
		t.Fatalf("Status = %v, want %v", res.Status, NotFound)
	}
	if res.Descriptor == nil || !res.Descriptor.IsEmpty() {
		t.Errorf("expected empty descriptor, got %+v", res.Descriptor)
	}
	if res.Usable() {
		t.Error("missing descriptor should not be usable")
	}
}

func TestLoad_ParseError(t *testing.T) {
	dir := t.TempDir()
	writeDescriptor(t, dir, `{"name": "broken",`)

	res := NewStore(dir).Load()
	if res.Status != ParseError {
		t.Fatalf("Status = %v, want %v", res.Status, ParseError)
	}
	if res.Err == nil {
		t.Error("expected Err to be set")
	}
	if !res.Descriptor.IsEmpty() {
		t.Error("expected empty descriptor on parse error")
	}
}

func TestLoad_WrongFieldType(t *testing.T) {
	dir := t.TempDir()
	writeDescriptor(t, dir, `{"globalCommands": "not-a-list"}`)

	res := NewStore(dir).Load()
	if res.Status != ParseError {
		t.Fatalf("Status = %v, want %v", res.Status, ParseError)
	}
}

func TestLoad_EmptyObjectIsNotUsable(t *testing.T) {
	dir := t.TempDir()
	writeDescriptor(t, dir, `{}`)

	res := NewStore(dir).Load()
	if res.Status != Found {
		t.Fatalf("Status = %v, want %v", res.Status, Found)
	}
	if res.Usable() {
		t.Error("empty object should be treated as no descriptor")
	}
}

func TestLoad_Fields(t *testing.T) {
	dir := t.TempDir()
	writeDescriptor(t, dir, `{
  "name": "weather",
  "description": "Forecast in your terminal",
  "author": "Johan",
  "mainFile": "main.py",
  "dependencies": {"requests": "*", "flask": "2.0.1"},
  "globalCommands": ["weather", "wttr"]
}`)

	res := NewStore(dir).Load()
	if res.Status != Found {
		t.Fatalf("Status = %v (%v)", res.Status, res.Err)
	}
	d := res.Descriptor
	if d.Name != "weather" || d.Author != "Johan" || d.MainFile != "main.py" {
		t.Errorf("unexpected fields: %+v", d)
	}
	if d.Dependencies["flask"] != "2.0.1" || d.Dependencies["requests"] != "*" {
		t.Errorf("Dependencies = %v", d.Dependencies)
	}
	if len(d.GlobalCommands) != 2 || d.GlobalCommands[1] != "wttr" {
		t.Errorf("GlobalCommands = %v", d.GlobalCommands)
	}
}

func TestSaveLoad_Idempotent(t *testing.T) {
	dir := t.TempDir()
	writeDescriptor(t, dir, `{"globalCommands":["b","a"],"zeta":{"x":1},"dependencies":{"requests":"*","flask":"2.0.1"},"name":"demo","alpha":true}`)
	store := NewStore(dir)

	if err := store.Save(store.Load().Descriptor); err != nil {
		t.Fatal(err)
	}
	first, err := os.ReadFile(store.Path())
	if err != nil {
		t.Fatal(err)
	}

	if err := store.Save(store.Load().Descriptor); err != nil {
		t.Fatal(err)
	}
	second, err := os.ReadFile(store.Path())
	if err != nil {
		t.Fatal(err)
	}

	if string(first) != string(second) {
		t.Errorf("serialization not idempotent:\n%s\n---\n%s", first, second)
	}
}

func TestSave_PreservesUnknownFields(t *testing.T) {
	dir := t.TempDir()
	writeDescriptor(t, dir, `{"name":"demo","license":"MIT","repository":{"url":"https://example.com/a&b"}}`)
	store := NewStore(dir)

	if err := store.Save(store.Load().Descriptor); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(store.Path())
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	for _, want := range []string{`"license": "MIT"`, `"url": "https://example.com/a&b"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s:\n%s", want, out)
		}
	}
}

func TestFormat_Layout(t *testing.T) {
	d := &Descriptor{Name: "demo"}
	data, err := Format(d)
	if err != nil {
		t.Fatal(err)
	}
	want := `{
  "name": "demo",
  "description": "",
  "author": "",
  "mainFile": "",
  "dependencies": {},
  "globalCommands": []
}
`
	if string(data) != want {
		t.Errorf("Format =\n%s\nwant\n%s", data, want)
	}
}

func TestFormat_NoHTMLEscaping(t *testing.T) {
	d := &Descriptor{Name: "demo", Description: "a <b> & c"}
	data, err := Format(d)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"description": "a <b> & c"`) {
		t.Errorf("description escaped:\n%s", data)
	}

	parsed, err := Parse(data)
	if err != nil {
		t.Fatal(err)
	}
	again, err := Format(parsed)
	if err != nil {
		t.Fatal(err)
	}
	if string(again) != string(data) {
		t.Errorf("serialization not idempotent:\n%s\n---\n%s", data, again)
	}
}

func TestDependencies(t *testing.T) {
	d := &Descriptor{}
	d.AddDependency(ParseRequirement("requests"))
	d.AddDependency(ParseRequirement("flask==2.0.1"))

	if d.Dependencies["requests"] != AnyVersion {
		t.Errorf("requests = %q, want %q", d.Dependencies["requests"], AnyVersion)
	}
	if d.Dependencies["flask"] != "2.0.1" {
		t.Errorf("flask = %q, want 2.0.1", d.Dependencies["flask"])
	}

	reqs := d.Requirements()
	if len(reqs) != 2 || reqs[0].String() != "flask==2.0.1" || reqs[1].String() != "requests" {
		t.Errorf("Requirements = %v", reqs)
	}

	if !d.RemoveDependency("flask") {
		t.Error("RemoveDependency(flask) = false")
	}
	if d.RemoveDependency("flask") {
		t.Error("second RemoveDependency(flask) = true")
	}
}

func TestParseRequirement(t *testing.T) {
	tests := []struct {
		in      string
		name    string
		version string
		str     string
	}{
		{"requests", "requests", "", "requests"},
		{"flask==2.0.1", "flask", "2.0.1", "flask==2.0.1"},
		{" numpy == 1.26 ", "numpy", "1.26", "numpy==1.26"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			r := ParseRequirement(tt.in)
			if r.Name != tt.name || r.Version != tt.version {
				t.Errorf("ParseRequirement(%q) = %+v", tt.in, r)
			}
			if r.String() != tt.str {
				t.Errorf("String() = %q, want %q", r.String(), tt.str)
			}
		})
	}
}

func TestCommands(t *testing.T) {
	d := &Descriptor{GlobalCommands: []string{"a", "b"}}
	if d.AddCommand("a") {
		t.Error("AddCommand(a) added a duplicate")
	}
	if !d.AddCommand("c") {
		t.Error("AddCommand(c) = false")
	}
	if !d.RemoveCommand("b") {
		t.Error("RemoveCommand(b) = false")
	}
	if d.RemoveCommand("zzz") {
		t.Error("RemoveCommand(zzz) = true")
	}
	if got := strings.Join(d.GlobalCommands, ","); got != "a,c" {
		t.Errorf("GlobalCommands = %s, want a,c", got)
	}
}
