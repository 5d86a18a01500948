// Package uploads implements the attachment store: uploaded media is
// written to a local directory under a generated name and referenced by a
// URL path the gateway serves statically.
package uploads

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"fleetportal/backend/internal/apperr"

	"github.com/google/uuid"
)

// Saver persists one uploaded file and returns its serving reference.
type Saver interface {
	Save(file *multipart.FileHeader) (string, error)
	SaveOptional(file *multipart.FileHeader) (*string, error)
}

// Store writes uploads to Dir and returns references under URLPrefix.
type Store struct {
	Dir       string
	URLPrefix string
}

// New creates the upload directory if needed.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{Dir: dir, URLPrefix: "/uploads"}, nil
}

// Save writes the uploaded file under a collision-resistant generated name
// (time discriminator plus a uuid component, keeping the original
// extension) and returns the serving reference. Any write failure surfaces
// as a storage error; nothing is left behind on failure beyond a possibly
// partial file.
func (s *Store) Save(file *multipart.FileHeader) (string, error) {
	name := fmt.Sprintf("%d_%s%s", time.Now().UnixMilli(), uuid.NewString(), filepath.Ext(file.Filename))

	src, err := file.Open()
	if err != nil {
		return "", apperr.Storagef("open upload %s: %w", file.Filename, err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.Dir, name))
	if err != nil {
		return "", apperr.Storagef("create %s: %w", name, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", apperr.Storagef("write %s: %w", name, err)
	}
	return s.URLPrefix + "/" + name, nil
}

// SaveOptional is Save for optional-attachment flows: a nil header is valid
// and yields a nil reference.
func (s *Store) SaveOptional(file *multipart.FileHeader) (*string, error) {
	if file == nil {
		return nil, nil
	}
	ref, err := s.Save(file)
	if err != nil {
		return nil, err
	}
	return &ref, nil
}
