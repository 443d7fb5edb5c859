package storage

import (
	"context"
	"strings"
	"testing"
	"time"

	apperrors "crm-backend/internal/errors"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// minimal PNG and GIF headers are enough for content sniffing
var (
	pngData = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")
	gifData = []byte("GIF89a\x01\x00\x01\x00\x00\x00\x00;")
)

func newTestStore() (*FileStore, afero.Fs) {
	fs := afero.NewMemMapFs()
	store := NewFileStore(fs, "/static/")
	store.now = func() time.Time { return time.Unix(1700000000, 0) }
	return store, fs
}

func TestUpload_WritesUnderUserID(t *testing.T) {
	store, fs := newTestStore()
	userID := uuid.New()

	url, err := store.Upload(context.Background(), userID, pngData)
	require.NoError(t, err)
	assert.Equal(t, "/static/avatars/"+userID.String()+".png?v=1700000000", url)

	stored, err := afero.ReadFile(fs, "/avatars/"+userID.String()+".png")
	require.NoError(t, err)
	assert.Equal(t, pngData, stored)
}

func TestUpload_ReplacesPreviousImage(t *testing.T) {
	store, fs := newTestStore()
	userID := uuid.New()

	_, err := store.Upload(context.Background(), userID, pngData)
	require.NoError(t, err)
	_, err = store.Upload(context.Background(), userID, gifData)
	require.NoError(t, err)

	exists, _ := afero.Exists(fs, "/avatars/"+userID.String()+".png")
	assert.False(t, exists)
	exists, _ = afero.Exists(fs, "/avatars/"+userID.String()+".gif")
	assert.True(t, exists)
}

func TestUpload_RejectsNonImages(t *testing.T) {
	store, _ := newTestStore()

	_, err := store.Upload(context.Background(), uuid.New(), []byte("just some text"))
	assert.ErrorIs(t, err, apperrors.ErrInvalidImageUpload)

	_, err = store.Upload(context.Background(), uuid.New(), nil)
	assert.ErrorIs(t, err, apperrors.ErrInvalidImageUpload)
}

func TestHTTPFileSystem_ServesStoredFiles(t *testing.T) {
	store, _ := newTestStore()
	userID := uuid.New()
	_, err := store.Upload(context.Background(), userID, pngData)
	require.NoError(t, err)

	f, err := store.HTTPFileSystem().Open("/avatars/" + userID.String() + ".png")
	require.NoError(t, err)
	defer f.Close()
	info, err := f.Stat()
	require.NoError(t, err)
	assert.Equal(t, int64(len(pngData)), info.Size())
}

func TestHTTPFileSystem_ServesUploadedURLPath(t *testing.T) {
	store, _ := newTestStore()
	userID := uuid.New()
	url, err := store.Upload(context.Background(), userID, gifData)
	require.NoError(t, err)

	// the part after the static prefix is what the file server is asked for
	name := strings.TrimPrefix(strings.SplitN(url, "?", 2)[0], "/static")
	f, err := store.HTTPFileSystem().Open(name)
	require.NoError(t, err)
	defer f.Close()
	info, err := f.Stat()
	require.NoError(t, err)
	assert.Equal(t, int64(len(gifData)), info.Size())
}

func TestDiskStore_ServesStoredFiles(t *testing.T) {
	store, err := NewDiskStore(t.TempDir(), "/static")
	require.NoError(t, err)
	userID := uuid.New()
	_, err = store.Upload(context.Background(), userID, pngData)
	require.NoError(t, err)

	f, err := store.HTTPFileSystem().Open("/avatars/" + userID.String() + ".png")
	require.NoError(t, err)
	defer f.Close()
}
