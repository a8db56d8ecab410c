package scaffold

import "strings"

// File name conventions the inclusion policy matches, case-insensitively.
const (
	// SerializationProjectSuffix marks the project file variant that
	// references the serialization configuration.
	SerializationProjectSuffix = ".unicorn.csproj"

	// ProjectFileSuffix marks any project file.
	ProjectFileSuffix = ".csproj"

	// SerializationConfigSuffix marks a serialization configuration file.
	SerializationConfigSuffix = "serialization.config"
)

// Action is the outcome of an inclusion decision.
type Action int

const (
	// Skip leaves the file out of the output.
	Skip Action = iota

	// Copy renders the file under Decision.Name.
	Copy

	// CopyAndMarkOverride renders the file and records that a
	// project-specific serialization configuration exists.
	CopyAndMarkOverride
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case Skip:
		return "skip"
	case Copy:
		return "copy"
	case CopyAndMarkOverride:
		return "copy-override"
	default:
		return "unknown"
	}
}

// Decision is the inclusion verdict for one template file.
type Decision struct {
	Action Action
	// Name is the destination file name. Empty for Skip.
	Name string
}

// Policy decides per template file whether it is materialized.
type Policy struct {
	Serialization bool
	Names         NameRewriteStrategy
}

// Decide applies the inclusion rules to a template file name. The first
// matching rule wins. Exactly one of the two project file variants survives
// for any serialization setting.
func (p Policy) Decide(name string) Decision {
	lower := strings.ToLower(name)

	switch {
	case strings.HasSuffix(lower, SerializationProjectSuffix):
		if !p.Serialization {
			return Decision{Action: Skip}
		}
		stripped := name[:len(name)-len(SerializationProjectSuffix)] + ProjectFileSuffix
		return Decision{Action: Copy, Name: p.Names.RewriteFile(stripped)}

	case strings.HasSuffix(lower, ProjectFileSuffix) && p.Serialization:
		return Decision{Action: Skip}

	case strings.HasSuffix(lower, SerializationConfigSuffix):
		if !p.Serialization {
			return Decision{Action: Skip}
		}
		return Decision{Action: CopyAndMarkOverride, Name: p.Names.RewriteFile(name)}

	default:
		return Decision{Action: Copy, Name: p.Names.RewriteFile(name)}
	}
}
