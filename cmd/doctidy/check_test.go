package main_test

import (
	"testing"

	"github.com/fwojciec/doctidy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("passes on a healthy tree", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeFile(t, root, "README.md", "[guide](docs/guide.md)")
		writeFile(t, root, "docs/guide.md", "[back](../README.md)")

		stdout, _, err := run(t, root, "check")

		require.NoError(t, err)
		assert.Contains(t, stdout, "Markdown link check passed.")
	})

	t.Run("lists every broken link and fails", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeFile(t, root, "README.md", "[gone](docs/gone.md)")
		writeFile(t, root, "docs/guide.md", "[missing](./missing.md) [escape](../../outside.md)")

		stdout, _, err := run(t, root, "check")

		require.Error(t, err)
		assert.Equal(t, doctidy.EUNPROCESSABLE, doctidy.ErrorCode(err))
		assert.Contains(t, stdout, "Broken Markdown links found:")
		assert.Contains(t, stdout, "README.md -> docs/gone.md")
		assert.Contains(t, stdout, "docs/guide.md -> ./missing.md")
		assert.Contains(t, stdout, "docs/guide.md -> ../../outside.md")
	})

	t.Run("external links are never checked", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeFile(t, root, "README.md", "[web](https://example.com/missing.md) [mail](mailto:a@b.c)")

		stdout, _, err := run(t, root, "check")

		require.NoError(t, err)
		assert.Contains(t, stdout, "Markdown link check passed.")
	})
}
