package descriptor

import "strings"

// AnyVersion is the constraint recorded for a dependency installed without a pin.
const AnyVersion = "*"

// Requirement is a single installable module, optionally pinned to a version.
type Requirement struct {
	Name    string
	Version string
}

// ParseRequirement splits "name==version" into its parts. A bare name yields
// an unpinned requirement.
func ParseRequirement(s string) Requirement {
	s = strings.TrimSpace(s)
	name, version, found := strings.Cut(s, "==")
	if !found {
		return Requirement{Name: s}
	}
	return Requirement{Name: strings.TrimSpace(name), Version: strings.TrimSpace(version)}
}

// Pinned reports whether the requirement names an exact version.
func (r Requirement) Pinned() bool {
	return r.Version != "" && r.Version != AnyVersion
}

// String returns the installer argument: the bare name when unpinned,
// "name==version" otherwise.
func (r Requirement) String() string {
	if !r.Pinned() {
		return r.Name
	}
	return r.Name + "==" + r.Version
}

// Constraint returns the value stored in the descriptor's dependency map.
func (r Requirement) Constraint() string {
	if !r.Pinned() {
		return AnyVersion
	}
	return r.Version
}

func versionFromConstraint(c string) string {
	if c == AnyVersion {
		return ""
	}
	return c
}
