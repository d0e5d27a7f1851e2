// Package media stores uploaded assets (images, icons, the resume) by key.
package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

var ErrNotFound = errors.New("media object not found")

type Storage interface {
	// Open returns the object body and its size. ErrNotFound when absent.
	Open(ctx context.Context, key string) (io.ReadCloser, int64, error)
	Put(ctx context.Context, key string, body io.Reader) error
	// URL is where a browser can fetch the object from.
	URL(key string) string
}

// IsRemote reports keys that already are absolute URLs and need no storage lookup.
func IsRemote(key string) bool {
	return strings.HasPrefix(key, "http://") || strings.HasPrefix(key, "https://")
}

type local struct {
	root    string
	baseURL string
}

// NewLocal serves objects from root; baseURL is the path they are mounted under.
func NewLocal(root, baseURL string) Storage {
	return &local{
		root:    root,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (l *local) path(key string) string {
	return filepath.Join(l.root, filepath.FromSlash(path.Clean("/"+key)))
}

func (l *local) Open(_ context.Context, key string) (io.ReadCloser, int64, error) {
	if key == "" {
		return nil, 0, ErrNotFound
	}

	f, err := os.Open(l.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, 0, ErrNotFound
		}
		return nil, 0, err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, err
	}
	if info.IsDir() {
		f.Close()
		return nil, 0, ErrNotFound
	}

	return f, info.Size(), nil
}

func (l *local) Put(_ context.Context, key string, body io.Reader) error {
	if key == "" {
		return fmt.Errorf("media: empty key")
	}

	dst := l.path(key)
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}

	f, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(f, body); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (l *local) URL(key string) string {
	if key == "" || IsRemote(key) {
		return key
	}
	return l.baseURL + path.Clean("/"+key)
}
