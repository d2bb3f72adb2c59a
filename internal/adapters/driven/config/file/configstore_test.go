package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voacatofe/Supabase-Free-Connector-sub000/internal/core/ports/driven"
)

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
}

func TestNewConfigStore_DefaultDir(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("Cannot determine home directory")
	}

	store, err := NewConfigStore("")

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(home, ".supasync", "config.toml"), store.Path())

	// Cleanup
	_ = os.Remove(store.Path())
}

func TestNewConfigStore_MkdirAllError(t *testing.T) {
	store, err := NewConfigStore("/dev/null/cannot/create/dirs")

	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestNewConfigStore_LoadCorruptedFile(t *testing.T) {
	tmpDir := t.TempDir()

	corruptedContent := []byte("this is not valid TOML {{{[[")
	err := os.WriteFile(filepath.Join(tmpDir, "config.toml"), corruptedContent, 0600)
	require.NoError(t, err)

	store, err := NewConfigStore(tmpDir)

	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestConfigStore_SetAndGet(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	err = store.Set(driven.ConfigSourceKind, "postgrest")
	require.NoError(t, err)

	val, ok := store.Get(driven.ConfigSourceKind)
	assert.True(t, ok)
	assert.Equal(t, "postgrest", val)
}

func TestConfigStore_GetString(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	err = store.Set(driven.ConfigSourceURL, "https://abc.supabase.co")
	require.NoError(t, err)

	val := store.GetString(driven.ConfigSourceURL)
	assert.Equal(t, "https://abc.supabase.co", val)

	// Non-existent key
	val = store.GetString("nonexistent")
	assert.Equal(t, "", val)

	// Wrong type
	err = store.Set("int_key", 42)
	require.NoError(t, err)
	val = store.GetString("int_key")
	assert.Equal(t, "", val)
}

func TestConfigStore_GetInt(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	err = store.Set("int_key", 42)
	require.NoError(t, err)

	val := store.GetInt("int_key")
	assert.Equal(t, 42, val)

	// Non-existent key
	val = store.GetInt("nonexistent")
	assert.Equal(t, 0, val)

	// Wrong type
	err = store.Set("string_key", "not an int")
	require.NoError(t, err)
	val = store.GetInt("string_key")
	assert.Equal(t, 0, val)
}

func TestConfigStore_GetInt_Int64Type(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	// TOML unmarshals integers as int64
	store.mu.Lock()
	store.data["int64_key"] = int64(9999)
	store.mu.Unlock()

	val := store.GetInt("int64_key")
	assert.Equal(t, 9999, val)
}

func TestConfigStore_GetBool(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	err = store.Set("verbose", true)
	require.NoError(t, err)
	assert.True(t, store.GetBool("verbose"))

	err = store.Set("quiet", false)
	require.NoError(t, err)
	assert.False(t, store.GetBool("quiet"))

	// Non-existent key
	assert.False(t, store.GetBool("nonexistent"))

	// Wrong type
	err = store.Set("string_key", "true")
	require.NoError(t, err)
	assert.False(t, store.GetBool("string_key"))
}

func TestConfigStore_Get_NotFound(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	val, ok := store.Get("nonexistent")
	assert.False(t, ok)
	assert.Nil(t, val)
}

func TestConfigStore_Persistence(t *testing.T) {
	tmpDir := t.TempDir()

	store1, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	err = store1.Set(driven.ConfigSourceKind, "postgres")
	require.NoError(t, err)
	err = store1.Set(driven.ConfigSourceDatabaseURL, "postgres://localhost:5432/app")
	require.NoError(t, err)
	err = store1.Set(driven.ConfigCollectionID, "col_123")
	require.NoError(t, err)

	// A fresh instance loads from the same file
	store2, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "postgres", store2.GetString(driven.ConfigSourceKind))
	assert.Equal(t, "postgres://localhost:5432/app", store2.GetString(driven.ConfigSourceDatabaseURL))
	assert.Equal(t, "col_123", store2.GetString(driven.ConfigCollectionID))
}

func TestConfigStore_WritesSections(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	err = store.Set(driven.ConfigSourceKind, "postgrest")
	require.NoError(t, err)
	err = store.Set(driven.ConfigSourceURL, "https://abc.supabase.co")
	require.NoError(t, err)
	err = store.Set(driven.ConfigCollectionToken, "secret")
	require.NoError(t, err)

	// Dotted keys land in TOML sections, not quoted flat keys.
	raw, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(raw), "[source]")
	assert.Contains(t, string(raw), "[collection]")
	assert.NotContains(t, string(raw), `"source.kind"`)
}

func TestConfigStore_LoadsHandWrittenSections(t *testing.T) {
	tmpDir := t.TempDir()

	content := []byte("[source]\nkind = \"postgrest\"\nurl = \"https://abc.supabase.co\"\n\n[collection]\nid = \"col_123\"\n")
	err := os.WriteFile(filepath.Join(tmpDir, "config.toml"), content, 0600)
	require.NoError(t, err)

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "postgrest", store.GetString(driven.ConfigSourceKind))
	assert.Equal(t, "https://abc.supabase.co", store.GetString(driven.ConfigSourceURL))
	assert.Equal(t, "col_123", store.GetString(driven.ConfigCollectionID))
}

func TestConfigStore_Load_NonExistent(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	val, ok := store.Get("any_key")
	assert.False(t, ok)
	assert.Nil(t, val)
}

func TestConfigStore_EmptyFile(t *testing.T) {
	tmpDir := t.TempDir()

	err := os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte{}, 0600)
	require.NoError(t, err)

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	val, ok := store.Get("any_key")
	assert.False(t, ok)
	assert.Nil(t, val)
}

func TestConfigStore_FilePermissions(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	err = store.Set(driven.ConfigCollectionToken, "secret")
	require.NoError(t, err)

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestConfigStore_OverwriteValue(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	err = store.Set(driven.ConfigSourceKind, "postgrest")
	require.NoError(t, err)
	assert.Equal(t, "postgrest", store.GetString(driven.ConfigSourceKind))

	err = store.Set(driven.ConfigSourceKind, "postgres")
	require.NoError(t, err)
	assert.Equal(t, "postgres", store.GetString(driven.ConfigSourceKind))
}

func TestConfigStore_Save_WriteFileError(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	err = store.Set("test", "value")
	require.NoError(t, err)

	// Replace the file with a directory to make the write fail
	err = os.Remove(store.Path())
	require.NoError(t, err)
	err = os.Mkdir(store.Path(), 0700)
	require.NoError(t, err)

	err = store.Set("another", "value")
	assert.Error(t, err)
}

func TestConfigStore_Load_InvalidTOML(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	err = store.Set("valid", "data")
	require.NoError(t, err)

	corruptedContent := []byte("invalid toml syntax ][}{")
	err = os.WriteFile(store.Path(), corruptedContent, 0600)
	require.NoError(t, err)

	err = store.Load()
	assert.Error(t, err)
}

func TestConfigStore_Concurrency(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	done := make(chan bool)
	for i := 0; i < 10; i++ {
		go func(id int) {
			key := "key" + string(rune('0'+id))
			_ = store.Set(key, id)
			_ = store.GetInt(key)
			_ = store.GetString(key)
			_ = store.GetBool(key)
			_, _ = store.Get(key)
			done <- true
		}(i)
	}

	for i := 0; i < 10; i++ {
		<-done
	}
}
