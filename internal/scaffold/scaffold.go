package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/johan-perso/betterpip/internal/branding"
	"github.com/johan-perso/betterpip/internal/descriptor"
)

//go:embed scripts/*.tmpl
var scriptFS embed.FS

// OutputDirName is the folder, relative to the project, that receives the scripts.
const OutputDirName = "build"

// ScriptData holds the template variables of the installer scripts.
type ScriptData struct {
	Owner    string
	Repo     string
	CloneURL string
	// Requirements are pip arguments: "name" or "name==version".
	Requirements []string

	CLIName     string
	DisplayName string
	ToolRepo    string
}

// Result lists what Generate wrote.
type Result struct {
	OutputDir string
	Files     []string
}

// NewScriptData builds the template data for the repository owner/repo
// and the dependencies of d.
func NewScriptData(owner, repo, cloneURL string, d *descriptor.Descriptor) *ScriptData {
	data := &ScriptData{
		Owner:       owner,
		Repo:        repo,
		CloneURL:    cloneURL,
		CLIName:     branding.CLIName(),
		DisplayName: branding.DisplayName(),
		ToolRepo:    branding.GitHubRepo(),
	}
	for _, req := range d.Requirements() {
		data.Requirements = append(data.Requirements, req.String())
	}
	return data
}

var funcs = template.FuncMap{"join": strings.Join}

// Generate renders every embedded script into outputDir, replacing files
// from a previous run. Batch files get CRLF line endings and shell scripts
// are made executable.
func Generate(data *ScriptData, outputDir string) (*Result, error) {
	entries, err := fs.ReadDir(scriptFS, "scripts")
	if err != nil {
		return nil, fmt.Errorf("reading embedded scripts: %w", err)
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	result := &Result{OutputDir: outputDir}
	for _, entry := range entries {
		tmplBytes, err := fs.ReadFile(scriptFS, "scripts/"+entry.Name())
		if err != nil {
			return nil, fmt.Errorf("reading template %s: %w", entry.Name(), err)
		}

		tmpl, err := template.New(entry.Name()).Funcs(funcs).Parse(string(tmplBytes))
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", entry.Name(), err)
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			return nil, fmt.Errorf("executing template %s: %w", entry.Name(), err)
		}

		outName := strings.TrimSuffix(entry.Name(), ".tmpl")
		content := buf.Bytes()
		mode := os.FileMode(0o644)
		switch filepath.Ext(outName) {
		case ".cmd":
			content = bytes.ReplaceAll(content, []byte("\n"), []byte("\r\n"))
		case ".sh":
			mode = 0o755
		}

		outPath := filepath.Join(outputDir, outName)
		_ = os.Remove(outPath)
		if err := os.WriteFile(outPath, content, mode); err != nil {
			return nil, fmt.Errorf("writing %s: %w", outPath, err)
		}
		result.Files = append(result.Files, outName)
	}
	return result, nil
}
