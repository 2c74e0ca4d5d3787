package walk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileOverrides(t *testing.T) {
	t.Run("no patterns yields nil", func(t *testing.T) {
		o, err := CompileOverrides(nil)
		require.NoError(t, err)
		assert.Nil(t, o)
	})

	t.Run("nil overrides exclude nothing", func(t *testing.T) {
		var o *Overrides
		assert.False(t, o.Excluded("any/path", "path"))
	})

	t.Run("malformed glob rejected", func(t *testing.T) {
		o, err := CompileOverrides([]string{"[unclosed"})
		require.Error(t, err)
		assert.Nil(t, o)

		var eo *ErrInvalidOverride
		require.ErrorAs(t, err, &eo)
		assert.Equal(t, "[unclosed", eo.Pattern)
	})

	t.Run("first malformed pattern aborts", func(t *testing.T) {
		_, err := CompileOverrides([]string{"*.ok", "{a,{b,c}}"})
		require.Error(t, err)

		var eo *ErrInvalidOverride
		require.ErrorAs(t, err, &eo)
		assert.Equal(t, "{a,{b,c}}", eo.Pattern)
	})
}

func TestOverridesExcluded(t *testing.T) {
	t.Run("name pattern matches at any level", func(t *testing.T) {
		o, err := CompileOverrides([]string{"*.log"})
		require.NoError(t, err)

		assert.True(t, o.Excluded("app.log", "app.log"))
		assert.True(t, o.Excluded("deep/nested/app.log", "app.log"))
		assert.False(t, o.Excluded("app.txt", "app.txt"))
	})

	t.Run("path pattern matches relative path", func(t *testing.T) {
		o, err := CompileOverrides([]string{"vendor/*"})
		require.NoError(t, err)

		assert.True(t, o.Excluded("vendor/lib.go", "lib.go"))
		assert.False(t, o.Excluded("pkg/vendor.go", "vendor.go"))
		assert.False(t, o.Excluded("sub/vendor/lib.go", "lib.go"))
	})

	t.Run("trailing slash strips to name pattern", func(t *testing.T) {
		o, err := CompileOverrides([]string{"node_modules/"})
		require.NoError(t, err)

		assert.True(t, o.Excluded("node_modules", "node_modules"))
		assert.True(t, o.Excluded("web/node_modules", "node_modules"))
	})

	t.Run("multiple patterns", func(t *testing.T) {
		o, err := CompileOverrides([]string{"*.tmp", "dist/**"})
		require.NoError(t, err)

		assert.True(t, o.Excluded("a/b.tmp", "b.tmp"))
		assert.True(t, o.Excluded("dist/js/app.js", "app.js"))
		assert.False(t, o.Excluded("src/app.js", "app.js"))
	})
}
