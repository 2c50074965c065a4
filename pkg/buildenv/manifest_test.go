package buildenv

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadManifestSection(t *testing.T) {
	tests := []struct {
		name     string
		manifest string // "" means no file
		want     Section
		wantErr  bool
		wantLog  string
	}{
		{
			name: "no manifest",
			want: Section{},
		},
		{
			name:     "no section",
			manifest: `{"name": "app", "version": "1.0.0"}`,
			want:     Section{},
			wantLog:  "no opencv4nodejs section found",
		},
		{
			name:     "null section",
			manifest: `{"opencv4nodejs": null}`,
			want:     Section{},
			wantLog:  "no opencv4nodejs section found",
		},
		{
			name:     "section",
			manifest: `{"opencv4nodejs": {"autoBuildFlags": "-DX=1", "disableAutoBuild": true}}`,
			want:     Section{"autoBuildFlags": "-DX=1", "disableAutoBuild": true},
			wantLog:  "found opencv4nodejs section",
		},
		{
			name:     "malformed",
			manifest: `{"opencv4nodejs": `,
			wantErr:  true,
		},
		{
			name:     "section is not an object",
			manifest: `{"opencv4nodejs": ["a"]}`,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			if tt.manifest != "" {
				writeManifest(t, root, tt.manifest)
			}
			logger, buf := bufferLogger()

			got, err := ReadManifestSection(root, logger)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, buf.String(), tt.wantLog)
		})
	}
}

func TestSectionValue(t *testing.T) {
	s := Section{
		"str":   "abc",
		"empty": "",
		"yes":   true,
		"no":    false,
		"zero":  float64(0),
		"num":   float64(2.5),
		"null":  nil,
	}

	assert.Equal(t, "abc", s.Value("str"))
	assert.Equal(t, "", s.Value("empty"))
	assert.Equal(t, "1", s.Value("yes"))
	assert.Equal(t, "", s.Value("no"))
	assert.Equal(t, "", s.Value("zero"))
	assert.Equal(t, "2.5", s.Value("num"))
	assert.Equal(t, "", s.Value("null"))
	assert.Equal(t, "", s.Value("missing"))
	assert.Equal(t, []string{"empty", "no", "null", "num", "str", "yes", "zero"}, s.Keys())
}

func TestSectionValue_Composite(t *testing.T) {
	var s Section
	require.NoError(t, json.Unmarshal([]byte(`{"obj": {"a": 1}, "list": [1, "b"], "none": {}}`), &s))

	assert.Equal(t, `{"a":1}`, s.Value("obj"))
	assert.Equal(t, `[1,"b"]`, s.Value("list"))
	assert.Equal(t, `{}`, s.Value("none"))
}
