package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) (UploadStorage, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := NewLocalStorage(dir, "http://localhost:8080")
	require.NoError(t, err)
	return store, dir
}

func TestNewLocalStorage_CreatesBucketDirs(t *testing.T) {
	_, dir := newTestStorage(t)

	for bucket := range Buckets {
		info, err := os.Stat(filepath.Join(dir, bucket))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}

func TestSave_ReturnsPublicURL(t *testing.T) {
	store, dir := newTestStorage(t)

	url, err := store.Save("projects", "screenshot.PNG", strings.NewReader("image bytes"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "http://localhost:8080/uploads/projects/"))
	assert.True(t, strings.HasSuffix(url, ".png"))

	storedName := url[strings.LastIndex(url, "/")+1:]
	content, err := os.ReadFile(filepath.Join(dir, "projects", storedName))
	require.NoError(t, err)
	assert.Equal(t, "image bytes", string(content))
}

func TestSave_UnknownBucket(t *testing.T) {
	store, _ := newTestStorage(t)

	_, err := store.Save("secrets", "file.png", strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrUnknownBucket)
}

func TestSave_FreshNamePerUpload(t *testing.T) {
	store, _ := newTestStorage(t)

	first, err := store.Save("home", "hero.jpg", strings.NewReader("a"))
	require.NoError(t, err)
	second, err := store.Save("home", "hero.jpg", strings.NewReader("b"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestValidateFile(t *testing.T) {
	assert.NoError(t, ValidateFile("projects", "shot.png", 1024))
	assert.NoError(t, ValidateFile("resumes", "cv.pdf", 1024))

	assert.ErrorIs(t, ValidateFile("nope", "shot.png", 1024), ErrUnknownBucket)
	assert.ErrorIs(t, ValidateFile("projects", "script.sh", 1024), ErrBlockedExt)
	assert.ErrorIs(t, ValidateFile("projects", "shot.png", MaxFileSize+1), ErrFileTooLarge)
}

func TestDelete(t *testing.T) {
	store, dir := newTestStorage(t)

	url, err := store.Save("about-me", "portrait.webp", strings.NewReader("x"))
	require.NoError(t, err)
	storedName := url[strings.LastIndex(url, "/")+1:]

	require.NoError(t, store.Delete("about-me", storedName))
	_, err = os.Stat(filepath.Join(dir, "about-me", storedName))
	assert.True(t, os.IsNotExist(err))

	// deleting again is a no-op
	assert.NoError(t, store.Delete("about-me", storedName))
}

func TestDelete_PathTraversal(t *testing.T) {
	store, _ := newTestStorage(t)

	assert.ErrorIs(t, store.Delete("home", "../escape.png"), ErrPathTraversal)
	assert.ErrorIs(t, store.Delete("home", "/etc/passwd"), ErrPathTraversal)
}
