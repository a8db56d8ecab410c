package settings

// DefaultTarget is the target framework used when none is configured.
const DefaultTarget = "v4.8"

var targets = []string{
	"v4.5",
	"v4.5.1",
	"v4.5.2",
	"v4.6",
	"v4.6.1",
	"v4.6.2",
	"v4.7",
	"v4.7.1",
	"v4.7.2",
	"v4.8",
}

// Targets returns the supported .NET Framework target versions.
func Targets() []string {
	out := make([]string, len(targets))
	copy(out, targets)
	return out
}

// IsValidTarget reports whether v is a supported target framework version.
func IsValidTarget(v string) bool {
	for _, t := range targets {
		if t == v {
			return true
		}
	}
	return false
}
