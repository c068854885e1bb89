package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFile_LocalStorageLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.json")

	f, err := NewFile(path)
	require.NoError(t, err)

	require.NoError(t, f.Put("timeTransferData", []byte(`{"jar1Hours":364}`)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"timeTransferData":"{\"jar1Hours\":364}"}`, string(data))
}

func TestFile_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.json")
	require.NoError(t, os.WriteFile(path, []byte("[1,2"), 0o600))

	f, err := NewFile(path)
	require.NoError(t, err)

	assert.Error(t, f.Ping())

	_, _, err = f.Get("timeTransferData")
	assert.Error(t, err)
}

func TestMemory_CopiesValues(t *testing.T) {
	m := NewMemory()

	v := []byte("abc")
	require.NoError(t, m.Put("k", v))
	v[0] = 'z'

	got, ok, err := m.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "abc", string(got))
}
