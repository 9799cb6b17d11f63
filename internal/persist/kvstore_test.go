package persist_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tubedeck/tubedeck/internal/models"
	"github.com/tubedeck/tubedeck/internal/persist"
	"github.com/tubedeck/tubedeck/test/testutil"
)

func TestJSONStore(t *testing.T) {
	newStore := func(t *testing.T) (*persist.JSONStore, string) {
		t.Helper()
		dir := t.TempDir()
		kv, err := persist.NewJSONStore(dir, testutil.NewTestLogger())
		require.NoError(t, err)
		return kv, dir
	}

	t.Run("save and load", func(t *testing.T) {
		kv, _ := newStore(t)

		require.NoError(t, kv.Save("appState", []byte(`{"theme":"dark"}`)))

		data, err := kv.Load("appState")
		require.NoError(t, err)
		assert.JSONEq(t, `{"theme":"dark"}`, string(data))
	})

	t.Run("missing key", func(t *testing.T) {
		kv, _ := newStore(t)

		_, err := kv.Load("appState")
		assert.ErrorIs(t, err, models.ErrStateNotFound)
	})

	t.Run("corrupt file without backup", func(t *testing.T) {
		kv, dir := newStore(t)

		path := filepath.Join(dir, "appState.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"theme":`), 0600))

		_, err := kv.Load("appState")
		assert.ErrorIs(t, err, models.ErrStateCorrupt)
	})

	t.Run("corrupt file recovers from backup", func(t *testing.T) {
		kv, dir := newStore(t)

		require.NoError(t, kv.Save("appState", []byte(`{"theme":"dark"}`)))
		require.NoError(t, kv.Save("appState", []byte(`{"theme":"light"}`)))

		// Simulate a partial write clobbering the primary copy.
		path := filepath.Join(dir, "appState.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"the`), 0600))

		data, err := kv.Load("appState")
		require.NoError(t, err)
		assert.JSONEq(t, `{"theme":"dark"}`, string(data))
	})

	t.Run("delete removes key and backup", func(t *testing.T) {
		kv, dir := newStore(t)

		require.NoError(t, kv.Save("appState", []byte(`{}`)))
		require.NoError(t, kv.Save("appState", []byte(`{"a":1}`)))
		require.NoError(t, kv.Delete("appState"))

		_, err := kv.Load("appState")
		assert.ErrorIs(t, err, models.ErrStateNotFound)

		_, statErr := os.Stat(filepath.Join(dir, "appState.json.backup"))
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("keys are independent files", func(t *testing.T) {
		kv, dir := newStore(t)

		require.NoError(t, kv.Save(persist.StateKey, []byte(`{}`)))
		require.NoError(t, kv.Save(persist.HistoryKey, []byte(`["react"]`)))

		for _, name := range []string{"appState.json", "searchHistory.json"} {
			_, err := os.Stat(filepath.Join(dir, name))
			assert.NoError(t, err)
		}
	})
}

func TestSQLiteStore(t *testing.T) {
	newStore := func(t *testing.T) *persist.SQLiteStore {
		t.Helper()
		path := filepath.Join(t.TempDir(), "prefs.db")
		kv, err := persist.NewSQLiteStore(path, testutil.NewTestLogger())
		require.NoError(t, err)
		t.Cleanup(func() { _ = kv.Close() })
		return kv
	}

	t.Run("save and load", func(t *testing.T) {
		kv := newStore(t)

		require.NoError(t, kv.Save("appState", []byte(`{"theme":"dark"}`)))

		data, err := kv.Load("appState")
		require.NoError(t, err)
		assert.JSONEq(t, `{"theme":"dark"}`, string(data))
	})

	t.Run("upsert overwrites", func(t *testing.T) {
		kv := newStore(t)

		require.NoError(t, kv.Save("appState", []byte(`{"v":1}`)))
		require.NoError(t, kv.Save("appState", []byte(`{"v":2}`)))

		data, err := kv.Load("appState")
		require.NoError(t, err)
		assert.JSONEq(t, `{"v":2}`, string(data))
	})

	t.Run("missing key", func(t *testing.T) {
		kv := newStore(t)

		_, err := kv.Load("missing")
		assert.ErrorIs(t, err, models.ErrStateNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		kv := newStore(t)

		require.NoError(t, kv.Save("appState", []byte(`{}`)))
		require.NoError(t, kv.Delete("appState"))

		_, err := kv.Load("appState")
		assert.ErrorIs(t, err, models.ErrStateNotFound)
	})
}
