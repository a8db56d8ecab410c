package scaffold

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolicy_Decide(t *testing.T) {
	names := TokenRewriter{Layer: "Feature", Module: "Catalog"}

	tests := []struct {
		name          string
		file          string
		serialization bool
		want          Decision
	}{
		{"unicorn project on", "Project.unicorn.csproj", true, Decision{Action: Copy, Name: "Project.csproj"}},
		{"unicorn project off", "Project.unicorn.csproj", false, Decision{Action: Skip}},
		{"unicorn placeholder on", "_project.unicorn.csproj", true, Decision{Action: Copy, Name: "_project.csproj"}},
		{"unicorn suffix case-insensitive", "_Layer.Unicorn.CSPROJ", true, Decision{Action: Copy, Name: "Feature.csproj"}},
		{"plain project on", "_project.csproj", true, Decision{Action: Skip}},
		{"plain project off", "_project.csproj", false, Decision{Action: Copy, Name: "_project.csproj"}},
		{"plain project tokens off", "_Layer._Module.csproj", false, Decision{Action: Copy, Name: "Feature.Catalog.csproj"}},
		{"serialization config off", "serialization.config", false, Decision{Action: Skip}},
		{"serialization config on", "serialization.config", true, Decision{Action: CopyAndMarkOverride, Name: "serialization.config"}},
		{"prefixed serialization config on", "_Module.Serialization.config", true, Decision{Action: CopyAndMarkOverride, Name: "Catalog.Serialization.config"}},
		{"other file on", "_Module.cs", true, Decision{Action: Copy, Name: "Catalog.cs"}},
		{"other file off", "web.config", false, Decision{Action: Copy, Name: "web.config"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Policy{Serialization: tt.serialization, Names: names}
			assert.Equal(t, tt.want, p.Decide(tt.file))
		})
	}
}

func TestPolicy_ExactlyOneProjectVariant(t *testing.T) {
	names := TokenRewriter{Layer: "Feature", Module: "Catalog"}

	for _, serialization := range []bool{true, false} {
		p := Policy{Serialization: serialization, Names: names}
		copied := 0
		for _, f := range []string{"_project.csproj", "_project.unicorn.csproj"} {
			if p.Decide(f).Action != Skip {
				copied++
			}
		}
		assert.Equal(t, 1, copied, "serialization=%v", serialization)
	}
}

func TestAction_String(t *testing.T) {
	assert.Equal(t, "skip", Skip.String())
	assert.Equal(t, "copy", Copy.String())
	assert.Equal(t, "copy-override", CopyAndMarkOverride.String())
	assert.Equal(t, "unknown", Action(42).String())
}
