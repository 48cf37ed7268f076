package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	def := c.DefaultMode()
	assert.Equal(t, "default", def.Name)
	assert.Equal(t, []Artifact{ArtifactCMakeLists, ArtifactPresets}, def.Artifacts)
	assert.Empty(t, def.Keyword, "the default mode is selected by the absence of an argument")
}

func TestLookup(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	tests := []struct {
		keyword   string
		found     bool
		artifacts []Artifact
	}{
		{"cmake", true, []Artifact{ArtifactCMakeLists}},
		{"presets", true, []Artifact{ArtifactPresets}},
		{"scripts", true, []Artifact{ArtifactCMakeLists, ArtifactUnixScripts, ArtifactWindowsScripts}},
		{"all", true, []Artifact{ArtifactCMakeLists, ArtifactPresets, ArtifactUnixScripts, ArtifactWindowsScripts}},
		{"default", false, nil},
		{"", false, nil},
		{"CMAKE", false, nil},
		{"--force", false, nil},
	}

	for _, tt := range tests {
		t.Run(tt.keyword, func(t *testing.T) {
			m, ok := c.Lookup(tt.keyword)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.artifacts, m.Artifacts)
				assert.NotEmpty(t, m.Description)
			}
		})
	}
}

func TestKeywords(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	var keywords []string
	for _, m := range c.Keywords() {
		keywords = append(keywords, m.Keyword)
	}
	assert.Equal(t, []string{"cmake", "presets", "scripts", "all"}, keywords)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name        string
		doc         string
		errContains string
	}{
		{
			name:        "malformed yaml",
			doc:         "modes: [",
			errContains: "parsing catalog",
		},
		{
			name: "unknown artifact",
			doc: `default: a
modes:
  - name: a
    artifacts: [makefile]`,
			errContains: `unknown artifact "makefile"`,
		},
		{
			name: "duplicate keyword",
			doc: `default: a
modes:
  - name: a
    keyword: x
    artifacts: [presets]
  - name: b
    keyword: x
    artifacts: [presets]`,
			errContains: `keyword "x"`,
		},
		{
			name: "missing default",
			doc: `default: nope
modes:
  - name: a
    artifacts: [presets]`,
			errContains: `default mode "nope"`,
		},
		{
			name: "empty output set",
			doc: `default: a
modes:
  - name: a`,
			errContains: "has no artifacts",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}
