package glob

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compile(t *testing.T, pattern string) *regexp.Regexp {
	t.Helper()

	src, err := Translate(pattern)
	require.NoError(t, err)

	re, err := regexp.Compile(src)
	require.NoError(t, err)

	return re
}

func TestTranslate(t *testing.T) {
	t.Run("SimpleGlob", func(t *testing.T) {
		re := compile(t, "*.rs")
		assert.True(t, re.MatchString("file.rs"))
		assert.False(t, re.MatchString("file.toml"))
	})

	t.Run("StarDoesNotCrossSeparator", func(t *testing.T) {
		re := compile(t, "*.rs")
		assert.False(t, re.MatchString("dir/file.rs"))
	})

	t.Run("RecursiveGlob", func(t *testing.T) {
		re := compile(t, "src/**/*.rs")
		assert.True(t, re.MatchString("src/lib.rs"))
		assert.True(t, re.MatchString("src/sub/mod.rs"))
		assert.True(t, re.MatchString("src/a/b/c.rs"))
		assert.False(t, re.MatchString("other/lib.rs"))
	})

	t.Run("LeadingRecursiveGlob", func(t *testing.T) {
		re := compile(t, "**/mod.rs")
		assert.True(t, re.MatchString("mod.rs"))
		assert.True(t, re.MatchString("a/b/mod.rs"))
	})

	t.Run("TrailingRecursiveGlob", func(t *testing.T) {
		re := compile(t, "target/**")
		assert.True(t, re.MatchString("target/debug"))
		assert.True(t, re.MatchString("target/debug/build"))
		assert.False(t, re.MatchString("target"))
	})

	t.Run("QuestionMark", func(t *testing.T) {
		re := compile(t, "file?.rs")
		assert.True(t, re.MatchString("file1.rs"))
		assert.True(t, re.MatchString("fileA.rs"))
		assert.False(t, re.MatchString("file12.rs"))
		assert.False(t, re.MatchString("file/.rs"))
	})

	t.Run("Brackets", func(t *testing.T) {
		re := compile(t, "file[0-9].rs")
		assert.True(t, re.MatchString("file1.rs"))
		assert.True(t, re.MatchString("file9.rs"))
		assert.False(t, re.MatchString("filea.rs"))
	})

	t.Run("NegatedBrackets", func(t *testing.T) {
		re := compile(t, "file[!0-9].rs")
		assert.True(t, re.MatchString("filea.rs"))
		assert.False(t, re.MatchString("file1.rs"))
	})

	t.Run("Alternation", func(t *testing.T) {
		re := compile(t, "Cargo.{toml,lock}")
		assert.True(t, re.MatchString("Cargo.toml"))
		assert.True(t, re.MatchString("Cargo.lock"))
		assert.False(t, re.MatchString("Cargo.json"))
	})

	t.Run("EscapedMeta", func(t *testing.T) {
		re := compile(t, `file\*.rs`)
		assert.True(t, re.MatchString("file*.rs"))
		assert.False(t, re.MatchString("fileX.rs"))
	})

	t.Run("LiteralDotsAreEscaped", func(t *testing.T) {
		re := compile(t, "a.b")
		assert.True(t, re.MatchString("a.b"))
		assert.False(t, re.MatchString("aXb"))
	})

	t.Run("InvalidGlobs", func(t *testing.T) {
		_, err := Translate("[invalid")
		assert.ErrorIs(t, err, ErrUnclosedClass)

		_, err = Translate("{a,b")
		assert.ErrorIs(t, err, ErrUnclosedAlternate)

		_, err = Translate(`broken\`)
		assert.ErrorIs(t, err, ErrTrailingEscape)

		_, err = Translate("{a,{b,c}}")
		assert.ErrorIs(t, err, ErrNestedAlternate)
	})
}
