package config

import (
	"go/parser"
	"go/token"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultUnits(t *testing.T) {
	c := Default()
	assert.Equal(t, 1.0/60, c.TimeStep)
	assert.Equal(t, 1200.0, c.Physics.Gravity)
	assert.Equal(t, 1200.0, c.Level.Width)
	assert.Equal(t, 640.0, c.Level.Height)
	assert.NotSame(t, c, Default())
}

// The simulation and the headless runner import this package, so it must
// build without a window system.
func TestConfigHasNoFrontendImports(t *testing.T) {
	files, err := filepath.Glob("*.go")
	require.NoError(t, err)

	fset := token.NewFileSet()
	for _, name := range files {
		if strings.HasSuffix(name, "_test.go") {
			continue
		}
		f, err := parser.ParseFile(fset, name, nil, parser.ImportsOnly)
		require.NoError(t, err)
		for _, imp := range f.Imports {
			path, err := strconv.Unquote(imp.Path.Value)
			require.NoError(t, err)
			assert.NotContains(t, path, "ebiten", name)
			assert.NotContains(t, path, "donburi", name)
		}
	}
}
