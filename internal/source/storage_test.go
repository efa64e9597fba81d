package source

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"prnbook/domain/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/simplifiedchinese"
)

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestLocalFileStorage_IsDir(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	file := writeFile(t, dir, "a.prn", []byte("x"))

	s, err := NewLocalFileStorage(nil)
	require.NoError(t, err)

	ok, err := s.IsDir(ctx, dir)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.IsDir(ctx, file)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = s.IsDir(ctx, filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = s.IsDir(ctx, "  ")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLocalFileStorage_ListFiltersAndSorts(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b 001 S11.prn", nil)
	writeFile(t, dir, "a 001 S11.prn", nil)
	writeFile(t, dir, "a 001 S11.PRN", nil)
	writeFile(t, dir, "a 001.xlsx", nil)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.prn"), 0o755))

	s, err := NewLocalFileStorage(DefaultStorageConfig())
	require.NoError(t, err)

	names, err := s.List(context.Background(), dir, ".prn")
	require.NoError(t, err)
	assert.Equal(t, []string{"a 001 S11.prn", "b 001 S11.prn"}, names)
}

func TestLocalFileStorage_OpenUTF8PassesBytesThrough(t *testing.T) {
	dir := t.TempDir()
	raw := []byte("A,1.5\n\xffB,2\n")
	path := writeFile(t, dir, "x.prn", raw)

	s, err := NewLocalFileStorage(&StorageConfig{Encoding: "UTF-8"})
	require.NoError(t, err)

	rc, err := s.Open(context.Background(), path)
	require.NoError(t, err)
	defer rc.Close()

	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, raw, got)
}

func TestLocalFileStorage_OpenDecodesGBK(t *testing.T) {
	dir := t.TempDir()
	encoded, err := simplifiedchinese.GBK.NewEncoder().String("频率,1.5\n")
	require.NoError(t, err)
	path := writeFile(t, dir, "x.prn", []byte(encoded))

	s, err := NewLocalFileStorage(&StorageConfig{Encoding: "gbk"})
	require.NoError(t, err)
	assert.Equal(t, "gbk", s.Encoding())

	rc, err := s.Open(context.Background(), path)
	require.NoError(t, err)
	defer rc.Close()

	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "频率,1.5\n", string(got))
}

func TestNewLocalFileStorage_UnknownEncoding(t *testing.T) {
	_, err := NewLocalFileStorage(&StorageConfig{Encoding: "klingon-8"})
	assert.ErrorIs(t, err, core.ErrUnknownEncoding)
}

func TestLocalFileStorage_OpenMissing(t *testing.T) {
	s, err := NewLocalFileStorage(nil)
	require.NoError(t, err)
	_, err = s.Open(context.Background(), filepath.Join(t.TempDir(), "nope.prn"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLocalFileStorage_OpenDropsUndecodableGBK(t *testing.T) {
	dir := t.TempDir()
	encoded, err := simplifiedchinese.GBK.NewEncoder().String("频率")
	require.NoError(t, err)
	// 0x81 0x20 is not a valid GBK pair
	path := writeFile(t, dir, "x.prn", append([]byte(encoded), 0x81, 0x20, ',', '2'))

	s, err := NewLocalFileStorage(&StorageConfig{Encoding: "GBK"})
	require.NoError(t, err)

	rc, err := s.Open(context.Background(), path)
	require.NoError(t, err)
	defer rc.Close()

	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.NotContains(t, string(got), "�")
	assert.Contains(t, string(got), "频率")
	assert.Contains(t, string(got), ",2")
}
