package inventory_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/lotworks/lotfix/pkg/errors"
	"github.com/lotworks/lotfix/pkg/inventory"
)

func writeTestFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "inventory.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		path := writeTestFile(t, sampleDocument)

		doc, err := inventory.Load(path)
		require.NoError(t, err)
		assert.Len(t, doc.Cars, 2)
		assert.Len(t, doc.UsedCars, 1)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := inventory.Load(filepath.Join(t.TempDir(), "nope.json"))
		require.Error(t, err)
		assert.True(t, pkgerrors.IsIOError(err))
	})

	t.Run("malformed file", func(t *testing.T) {
		path := writeTestFile(t, `{broken`)

		_, err := inventory.Load(path)
		require.Error(t, err)
		assert.True(t, pkgerrors.IsParseError(err))

		// The file is untouched after a failed load.
		data, readErr := os.ReadFile(path)
		require.NoError(t, readErr)
		assert.Equal(t, `{broken`, string(data))
	})

	t.Run("null car entry is a parse error", func(t *testing.T) {
		path := writeTestFile(t, `{"cars":[null],"usedCars":[]}`)

		_, err := inventory.Load(path)
		require.Error(t, err)
		assert.True(t, pkgerrors.IsParseError(err))
	})

	t.Run("missing collection names the file", func(t *testing.T) {
		path := writeTestFile(t, `{"cars":[]}`)

		_, err := inventory.Load(path)
		require.Error(t, err)
		assert.True(t, pkgerrors.IsMissingField(err))
		assert.Contains(t, err.Error(), path)
	})
}

func TestSave(t *testing.T) {
	t.Run("writes indented document", func(t *testing.T) {
		path := writeTestFile(t, sampleDocument)

		doc, err := inventory.Load(path)
		require.NoError(t, err)
		inventory.Renumber(doc)
		require.NoError(t, inventory.Save(doc, path))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "  \"cars\": [")
		assert.Contains(t, string(data), "\"id\": 1")
		assert.Contains(t, string(data), "\"id\": 2")
	})

	t.Run("leaves no temporary files behind", func(t *testing.T) {
		path := writeTestFile(t, sampleDocument)

		doc, err := inventory.Load(path)
		require.NoError(t, err)
		require.NoError(t, inventory.Save(doc, path))

		entries, err := os.ReadDir(filepath.Dir(path))
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, filepath.Base(path), entries[0].Name())
	})

	t.Run("fails without touching the target when the directory is gone", func(t *testing.T) {
		doc, err := inventory.Decode([]byte(sampleDocument))
		require.NoError(t, err)

		missingDir := filepath.Join(t.TempDir(), "gone")
		err = inventory.Save(doc, filepath.Join(missingDir, "inventory.json"))
		require.Error(t, err)
		assert.True(t, pkgerrors.IsIOError(err))
	})

	t.Run("running twice produces identical bytes", func(t *testing.T) {
		path := writeTestFile(t, sampleDocument)

		run := func() []byte {
			doc, err := inventory.Load(path)
			require.NoError(t, err)
			inventory.Renumber(doc)
			require.NoError(t, inventory.Save(doc, path))

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			return data
		}

		first := run()
		second := run()
		assert.Equal(t, string(first), string(second))
	})
}
