package files

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/arsipkita/arsip/pkg/idx"
)

// RefPrefix is the public path prefix under which disk-stored attachments
// are served.
const RefPrefix = "/uploads/"

// DiskStore keeps attachments in a local directory. References look like
// /uploads/file-<ulid><ext> so they can double as static URLs.
type DiskStore struct {
	dir string
}

func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, err
	}
	return &DiskStore{dir: dir}, nil
}

// Dir returns the directory attachments live in, for static serving.
func (s *DiskStore) Dir() string { return s.dir }

func (s *DiskStore) Save(ctx context.Context, originalName string, r io.Reader) (string, error) {
	name := "file-" + strings.ToLower(idx.New().String()) + sanitizeExt(originalName)

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		_ = os.Remove(dst.Name())
		return "", err
	}
	return RefPrefix + name, nil
}

func (s *DiskStore) Remove(ctx context.Context, ref string) error {
	local, err := s.localPath(ref)
	if err != nil {
		return err
	}
	if err := os.Remove(local); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func (s *DiskStore) Open(ctx context.Context, ref string) (io.ReadCloser, error) {
	local, err := s.localPath(ref)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(local)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	return f, err
}

// RedirectURL is always empty for disk storage; content is streamed.
func (s *DiskStore) RedirectURL(ctx context.Context, ref string) (string, error) {
	return "", nil
}

// localPath maps a reference back to a file inside the store directory,
// rejecting anything that tries to escape it.
func (s *DiskStore) localPath(ref string) (string, error) {
	name := path.Base(strings.TrimPrefix(ref, RefPrefix))
	if name == "" || name == "." || name == ".." {
		return "", ErrNotFound
	}
	return filepath.Join(s.dir, name), nil
}

// sanitizeExt keeps a short, safe extension from the original filename.
func sanitizeExt(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if len(ext) > 10 || strings.ContainsAny(ext, `/\`) {
		return ""
	}
	return ext
}
