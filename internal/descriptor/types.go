package descriptor

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// AuthorMaxLength is the maximum number of characters accepted for Author.
const AuthorMaxLength = 48

// MainFileExt is the extension a main file must have.
const MainFileExt = ".py"

// Descriptor is the content of python-package.json.
//
// Unknown top-level keys are kept in extra and written back on save, so a
// user-owned file never loses fields this tool does not know about.
type Descriptor struct {
	Name           string
	Description    string
	Author         string
	MainFile       string
	Dependencies   map[string]string
	GlobalCommands []string

	extra map[string]json.RawMessage
}

// Field names in the on-disk JSON, in write order.
const (
	fieldName           = "name"
	fieldDescription    = "description"
	fieldAuthor         = "author"
	fieldMainFile       = "mainFile"
	fieldDependencies   = "dependencies"
	fieldGlobalCommands = "globalCommands"
)

// IsEmpty reports whether the descriptor carries no information at all.
// An empty object on disk is treated the same as a missing file.
func (d *Descriptor) IsEmpty() bool {
	return d.Name == "" && d.Description == "" && d.Author == "" && d.MainFile == "" &&
		len(d.Dependencies) == 0 && len(d.GlobalCommands) == 0 && len(d.extra) == 0
}

// AddDependency records req, replacing any previous constraint for the same name.
func (d *Descriptor) AddDependency(req Requirement) {
	if d.Dependencies == nil {
		d.Dependencies = make(map[string]string)
	}
	d.Dependencies[req.Name] = req.Constraint()
}

// RemoveDependency deletes name from the dependency map and reports whether it was present.
func (d *Descriptor) RemoveDependency(name string) bool {
	if _, ok := d.Dependencies[name]; !ok {
		return false
	}
	delete(d.Dependencies, name)
	return true
}

// Requirements returns the dependency map as requirements sorted by name.
func (d *Descriptor) Requirements() []Requirement {
	names := make([]string, 0, len(d.Dependencies))
	for name := range d.Dependencies {
		names = append(names, name)
	}
	sort.Strings(names)

	reqs := make([]Requirement, 0, len(names))
	for _, name := range names {
		reqs = append(reqs, Requirement{Name: name, Version: versionFromConstraint(d.Dependencies[name])})
	}
	return reqs
}

// MarshalJSON writes the known fields in a fixed order followed by the
// preserved unknown fields sorted by key.
func (d Descriptor) MarshalJSON() ([]byte, error) {
	deps := d.Dependencies
	if deps == nil {
		deps = map[string]string{}
	}
	cmds := d.GlobalCommands
	if cmds == nil {
		cmds = []string{}
	}

	fields := []struct {
		key   string
		value any
	}{
		{fieldName, d.Name},
		{fieldDescription, d.Description},
		{fieldAuthor, d.Author},
		{fieldMainFile, d.MainFile},
		{fieldDependencies, deps},
		{fieldGlobalCommands, cmds},
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeMember(&buf, f.key, f.value); err != nil {
			return nil, err
		}
	}

	keys := make([]string, 0, len(d.extra))
	for k := range d.extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		buf.WriteByte(',')
		if err := writeMember(&buf, k, d.extra[k]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads the known fields and keeps everything else in extra.
func (d *Descriptor) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	targets := map[string]any{
		fieldName:           &d.Name,
		fieldDescription:    &d.Description,
		fieldAuthor:         &d.Author,
		fieldMainFile:       &d.MainFile,
		fieldDependencies:   &d.Dependencies,
		fieldGlobalCommands: &d.GlobalCommands,
	}

	d.extra = nil
	for key, value := range raw {
		target, known := targets[key]
		if !known {
			if d.extra == nil {
				d.extra = make(map[string]json.RawMessage)
			}
			d.extra[key] = value
			continue
		}
		if err := json.Unmarshal(value, target); err != nil {
			return fmt.Errorf("field %q: %w", key, err)
		}
	}
	return nil
}

func writeMember(buf *bytes.Buffer, key string, value any) error {
	k, err := encode(key)
	if err != nil {
		return err
	}
	v, err := encode(value)
	if err != nil {
		return fmt.Errorf("encoding %q: %w", key, err)
	}
	buf.Write(k)
	buf.WriteByte(':')
	buf.Write(v)
	return nil
}

// encode marshals v without HTML escaping and without the trailing newline
// json.Encoder appends.
func encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// HasCommand reports whether command is listed in GlobalCommands.
func (d *Descriptor) HasCommand(command string) bool {
	for _, c := range d.GlobalCommands {
		if c == command {
			return true
		}
	}
	return false
}

// AddCommand appends command to GlobalCommands unless already listed.
func (d *Descriptor) AddCommand(command string) bool {
	if d.HasCommand(command) {
		return false
	}
	d.GlobalCommands = append(d.GlobalCommands, command)
	return true
}

// RemoveCommand drops command from GlobalCommands, keeping the order of the rest.
func (d *Descriptor) RemoveCommand(command string) bool {
	result := make([]string, 0, len(d.GlobalCommands))
	for _, c := range d.GlobalCommands {
		if c != command {
			result = append(result, c)
		}
	}
	removed := len(result) != len(d.GlobalCommands)
	d.GlobalCommands = result
	return removed
}
