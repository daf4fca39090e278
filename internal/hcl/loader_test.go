package hcl

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/massplot/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "massplot.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_FullFile(t *testing.T) {
	// --- Arrange ---
	path := writeConfig(t, `
		formats = ["png"]
		begin   = 10
		jobs    = 3

		sources {
		  fusion_dir    = "results/tempo-fusion"
		  reference_dir = "${env.RESULTS}/tempo-fusion-temoin"
		  exclude       = []
		}

		chart {
		  dpi       = 300
		  y_min     = 0
		  colors    = ["#112233", "k"]
		  top_label = upper("reference")
		}

		log {
		  level = "debug"
		}
	`)
	loader := &Loader{environ: func() []string { return []string{"RESULTS=/srv/results", "BROKEN"} }}

	// --- Act ---
	patch, err := loader.Load(context.Background(), path)

	// --- Assert ---
	require.NoError(t, err)
	s := config.Default()
	patch.Apply(&s)

	assert.Equal(t, []string{"png"}, s.Formats)
	assert.Equal(t, 10, s.Begin)
	assert.Equal(t, 3, s.Jobs)
	assert.Equal(t, "results/tempo-fusion", s.Sources.FusionDir)
	assert.Equal(t, "/srv/results/tempo-fusion-temoin", s.Sources.ReferenceDir)
	assert.Equal(t, "images", s.Sources.OutputDir, "unset attributes keep their default")
	assert.Empty(t, s.Sources.Exclude)
	assert.Equal(t, 300.0, s.Chart.DPI)
	assert.Equal(t, 0.0, s.Chart.YMin)
	assert.Equal(t, 1.1, s.Chart.YMax)
	assert.Equal(t, []string{"#112233", "k"}, s.Chart.Colors)
	assert.Equal(t, "REFERENCE", s.Chart.TopLabel)
	assert.Equal(t, "debug", s.LogLevel)
	assert.Equal(t, "text", s.LogFormat)
}

func TestLoad_EmptyFile(t *testing.T) {
	path := writeConfig(t, "")
	patch, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)

	s := config.Default()
	patch.Apply(&s)
	assert.Equal(t, config.Default(), s)
}

func TestLoad_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		errMsg  string
	}{
		{
			name:    "syntax error",
			content: "chart {\n  dpi = 100\n",
			errMsg:  "failed to parse HCL file",
		},
		{
			name:    "unknown attribute",
			content: "chart {\n  colour = \"red\"\n}\n",
			errMsg:  "failed to decode HCL file",
		},
		{
			name:    "wrong type",
			content: "jobs = \"many\"\n",
			errMsg:  "failed to decode HCL file",
		},
		{
			name:    "missing env var",
			content: "sources {\n  fusion_dir = env.NOT_SET_ANYWHERE\n}\n",
			errMsg:  "failed to decode HCL file",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeConfig(t, tc.content)
			loader := &Loader{environ: func() []string { return nil }}
			_, err := loader.Load(context.Background(), path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errMsg)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "absent.hcl"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse HCL file")
}
