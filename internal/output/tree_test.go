package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderFileTree(t *testing.T) {
	old := stdout
	stdout = &bytes.Buffer{} // not a terminal: unstyled output
	defer func() { stdout = old }()

	got := RenderFileTree("code", map[string]string{
		"Feature.Catalog.csproj":                                  "Project file",
		"Properties/AssemblyInfo.cs":                              "",
		"App_Config/Include/Feature.Catalog/serialization.config": "",
	})

	want := "code/\n" +
		"├── App_Config/\n" +
		"│   └── Include/\n" +
		"│       └── Feature.Catalog/\n" +
		"│           └── serialization.config\n" +
		"├── Properties/\n" +
		"│   └── AssemblyInfo.cs\n" +
		"└── Feature.Catalog.csproj              Project file\n"

	assert.Equal(t, want, got)
}

func TestRenderFileTree_Empty(t *testing.T) {
	assert.Equal(t, "", RenderFileTree("code", nil))
}

func TestRenderFileTree_BackslashPaths(t *testing.T) {
	old := stdout
	stdout = &bytes.Buffer{}
	defer func() { stdout = old }()

	got := RenderFileTree("code", map[string]string{`Properties\AssemblyInfo.cs`: ""})
	assert.Equal(t, "code/\n└── Properties/\n    └── AssemblyInfo.cs\n", got)
}
