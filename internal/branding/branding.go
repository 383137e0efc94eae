// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed, so a fork only has to edit the YAML.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName        string `yaml:"cli_name"`
	DisplayName    string `yaml:"display_name"`
	Description    string `yaml:"description"`
	HomeDir        string `yaml:"home_dir"`
	EnvPrefix      string `yaml:"env_prefix"`
	GoModule       string `yaml:"go_module"`
	GitHubRepo     string `yaml:"github_repo"`
	DescriptorFile string `yaml:"descriptor_file"`
	ShimMarker     string `yaml:"shim_marker"`
	ShimFolder     string `yaml:"shim_folder"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			CLIName:        "betterpip",
			DisplayName:    "BetterPip",
			Description:    "A friendlier pip with project descriptors and global commands",
			HomeDir:        ".betterpip",
			EnvPrefix:      "BETTERPIP",
			GoModule:       "github.com/johan-perso/betterpip",
			GitHubRepo:     "johan-perso/betterpip",
			DescriptorFile: "python-package.json",
			ShimMarker:     "better-pip_v",
			ShimFolder:     "BetterPip",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "betterpip").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name (e.g., "BetterPip").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".betterpip").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "BETTERPIP").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the module path, used in `go install` hints.
func GoModule() string { load(); return defaults.GoModule }

// GitHubRepo returns the "owner/repo" string used for release checks.
func GitHubRepo() string { load(); return defaults.GitHubRepo }

// DescriptorFile returns the project descriptor file name.
func DescriptorFile() string { load(); return defaults.DescriptorFile }

// ShimMarker returns the prefix written into every generated shim, followed
// by the CLI version (e.g., "better-pip_v1.4.0").
func ShimMarker() string { load(); return defaults.ShimMarker }

// ShimFolder returns the folder name used for shims under %APPDATA% on Windows.
func ShimFolder() string { load(); return defaults.ShimFolder }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("silent_output") → "BETTERPIP_SILENT_OUTPUT".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
