// Package storage keeps uploaded profile images.
package storage

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path"
	"strings"
	"time"

	apperrors "crm-backend/internal/errors"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/spf13/afero"
)

// MaxAvatarSize bounds a single upload
const MaxAvatarSize = 5 << 20

// avatarDir is rooted so Upload and HTTPFileSystem name the same files on any afero.Fs
const avatarDir = "/avatars"

//go:generate mockgen -source=avatar.go -destination=../mocks/storage_mocks.go -package=mocks

var allowedImageTypes = []string{"image/png", "image/jpeg", "image/gif", "image/webp"}

// AvatarStore stores one image per user, replacing any previous one
type AvatarStore interface {
	Upload(ctx context.Context, userID uuid.UUID, data []byte) (string, error)
}

// FileStore is an AvatarStore on top of an afero filesystem
type FileStore struct {
	fs      afero.Fs
	baseURL string
	now     func() time.Time
}

var _ AvatarStore = (*FileStore)(nil)

// NewFileStore creates a store writing under the root of fs. Returned URLs
// are baseURL joined with the stored file path.
func NewFileStore(fs afero.Fs, baseURL string) *FileStore {
	return &FileStore{fs: fs, baseURL: strings.TrimSuffix(baseURL, "/"), now: time.Now}
}

// NewDiskStore stores avatars below dir on the local disk
func NewDiskStore(dir, baseURL string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage dir: %w", err)
	}
	return NewFileStore(afero.NewBasePathFs(afero.NewOsFs(), dir), baseURL), nil
}

// HTTPFileSystem exposes the stored files for static serving
func (s *FileStore) HTTPFileSystem() http.FileSystem {
	return afero.NewHttpFs(s.fs).Dir("/")
}

// Upload writes data as the avatar of userID. The public name is derived from
// the user id so a new upload overwrites the old one. The returned URL carries
// a version parameter so clients do not keep a stale cached copy.
func (s *FileStore) Upload(ctx context.Context, userID uuid.UUID, data []byte) (string, error) {
	if len(data) == 0 || len(data) > MaxAvatarSize {
		return "", apperrors.ErrInvalidImageUpload
	}
	mtype := mimetype.Detect(data)
	if !mimetype.EqualsAny(mtype.String(), allowedImageTypes...) {
		return "", apperrors.ErrInvalidImageUpload
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := s.fs.MkdirAll(avatarDir, 0o755); err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrUploadFailed, err)
	}
	if err := s.removeExisting(userID); err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrUploadFailed, err)
	}

	name := path.Join(avatarDir, userID.String()+mtype.Extension())
	if err := afero.WriteFile(s.fs, name, data, 0o644); err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrUploadFailed, err)
	}

	return fmt.Sprintf("%s%s?v=%d", s.baseURL, name, s.now().Unix()), nil
}

// removeExisting deletes avatars stored for the user under another extension
func (s *FileStore) removeExisting(userID uuid.UUID) error {
	matches, err := afero.Glob(s.fs, path.Join(avatarDir, userID.String()+".*"))
	if err != nil {
		return err
	}
	for _, m := range matches {
		if err := s.fs.Remove(m); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	return nil
}
