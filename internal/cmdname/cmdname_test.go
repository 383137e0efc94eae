package cmdname

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestIsWellFormed(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"my-cmd", true},
		{"Cmd2", true},
		{"-", true},
		{"", false},
		{"my cmd", false},
		{"cmd*", false},
		{"cmd/x", false},
		{`cmd\x`, false},
		{"cmd;rm", false},
		{"my_cmd", false},
		{"café", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsWellFormed(tt.name), "IsWellFormed(%q)", tt.name)
	}
}

func TestIsReserved_Examples(t *testing.T) {
	for _, name := range []string{"cd", "ls", "dir", "Get-ChildItem", "python", "pip", "sudo", "xcopy", "Evntcmd"} {
		assert.True(t, IsReserved(name), name)
	}
	for _, name := range []string{"weather", "my-cmd", "CD", "get-childitem"} {
		assert.False(t, IsReserved(name), name)
	}
}

func TestReservedBy(t *testing.T) {
	table, ok := ReservedBy("echo")
	assert.True(t, ok)
	assert.Equal(t, TableWindows, table, "echo is listed in the windows table first")

	table, ok = ReservedBy("Write-Host")
	assert.True(t, ok)
	assert.Equal(t, TablePowerShell, table)

	table, ok = ReservedBy("emacs")
	assert.True(t, ok)
	assert.Equal(t, TableCLI, table)
}

func TestCheck(t *testing.T) {
	assert.NoError(t, Check("weather"))
	assert.True(t, errors.Is(Check("bad name"), ErrMalformed))
	assert.True(t, errors.Is(Check("ls"), ErrReserved))
}

func TestIsReserved_EveryTableEntry(t *testing.T) {
	for _, table := range []Table{TableWindows, TablePowerShell, TableUnix, TableCLI} {
		names := Names(table)
		assert.NotEmpty(t, names, table.String())
		for _, name := range names {
			assert.True(t, IsReserved(name), "%s entry %q", table, name)
		}
	}
}

func TestIsReserved_Property(t *testing.T) {
	var all []string
	for _, table := range []Table{TableWindows, TablePowerShell, TableUnix, TableCLI} {
		all = append(all, Names(table)...)
	}
	inTable := make(map[string]bool, len(all))
	for _, n := range all {
		inTable[n] = true
	}

	rapid.Check(t, func(t *rapid.T) {
		name := rapid.SampledFrom(all).Draw(t, "reserved")
		if !IsReserved(name) {
			t.Fatalf("IsReserved(%q) = false", name)
		}
	})

	rapid.Check(t, func(t *rapid.T) {
		name := rapid.StringMatching(`[a-zA-Z0-9-]{1,24}`).Draw(t, "name")
		if !IsWellFormed(name) {
			t.Fatalf("IsWellFormed(%q) = false for a pattern-conforming name", name)
		}
		if IsReserved(name) != inTable[name] {
			t.Fatalf("IsReserved(%q) = %v, table membership %v", name, IsReserved(name), inTable[name])
		}
	})
}

func TestIsWellFormed_RejectsMetacharacters(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		prefix := rapid.StringMatching(`[a-z]{0,6}`).Draw(t, "prefix")
		meta := rapid.SampledFrom([]string{"/", `\`, " ", "*", "?", "$", "&", "|", ";", "<", ">", "`", "'", `"`, "."}).Draw(t, "meta")
		if IsWellFormed(prefix + meta) {
			t.Fatalf("IsWellFormed(%q) = true", prefix+meta)
		}
	})
}

func TestExists(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses a shell script as fake executable")
	}
	dir := t.TempDir()
	a := assert.New(t)
	a.NoError(os.WriteFile(filepath.Join(dir, "fake-tool"), []byte("#!/bin/sh\n"), 0o755))
	t.Setenv("PATH", dir)

	a.True(Exists("fake-tool"))
	a.False(Exists("definitely-not-installed-here"))
}
