package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// ResultTree is a temporary tempo-fusion layout: a fusion directory with its
// sibling reference directory.
type ResultTree struct {
	Root         string
	FusionDir    string
	ReferenceDir string
	OutputDir    string
}

// NewResultTree creates the directories under t.TempDir().
func NewResultTree(t *testing.T) *ResultTree {
	t.Helper()
	root := t.TempDir()
	tree := &ResultTree{
		Root:         root,
		FusionDir:    filepath.Join(root, "tempo-fusion"),
		ReferenceDir: filepath.Join(root, "tempo-fusion-temoin"),
		OutputDir:    filepath.Join(root, "tempo-fusion", "images"),
	}
	require.NoError(t, os.MkdirAll(tree.FusionDir, 0o755))
	require.NoError(t, os.MkdirAll(tree.ReferenceDir, 0o755))
	return tree
}

// WriteAttribute writes the fusion and reference files of name.
func (tr *ResultTree) WriteAttribute(t *testing.T, name, fusion, reference string) {
	t.Helper()
	tr.WriteFusion(t, name, fusion)
	tr.WriteReference(t, name, reference)
}

// WriteFusion writes only the fusion file of name.
func (tr *ResultTree) WriteFusion(t *testing.T, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(tr.FusionDir, name), []byte(content), 0o644))
}

// WriteReference writes only the reference file of name.
func (tr *ResultTree) WriteReference(t *testing.T, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(tr.ReferenceDir, name), []byte(content), 0o644))
}

// Output returns the path of a chart written for name.
func (tr *ResultTree) Output(name, format string) string {
	return filepath.Join(tr.OutputDir, name+"."+format)
}

// SampleFusion is a small well-formed fusion result with two categories.
const SampleFusion = `1;Sitting;0.6
1;Walking;0.4
2;Sitting;0.5
2;Walking;0.5
3;Sitting;0.2
3;Walking;0.8
`

// SampleReference is the reference result matching SampleFusion.
const SampleReference = `1;Sitting;0.7
1;Walking;0.3
2;Walking;0.9
3;Walking;1
`
