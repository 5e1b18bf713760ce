// Package filestore persists uploaded binaries (company logos, business
// permits) on local disk and hands back durable URL paths, standing in
// for the hosted CDN the consoles address in production.
package filestore

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

type Store struct {
	root    string
	baseURL string
}

func New(root, baseURL string) *Store {
	return &Store{root: root, baseURL: strings.TrimRight(baseURL, "/")}
}

// Save writes the file under root/<folder>/<uuid><ext> and returns the
// URL path a client can fetch it from. The folder is restricted to a
// single path segment so callers cannot escape the upload root.
func (s *Store) Save(folder, filename string, src io.Reader) (string, error) {
	folder = sanitizeFolder(folder)
	if folder == "" {
		return "", fmt.Errorf("invalid upload folder")
	}

	dir := filepath.Join(s.root, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	name := uuid.NewString() + strings.ToLower(filepath.Ext(filename))
	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return s.baseURL + path.Join("/", folder, name), nil
}

// Root returns the directory Save writes into, for static file serving.
func (s *Store) Root() string {
	return s.root
}

func sanitizeFolder(folder string) string {
	folder = strings.Trim(strings.TrimSpace(folder), "/")
	if folder == "" || strings.ContainsAny(folder, `/\`) || strings.Contains(folder, "..") {
		return ""
	}
	return folder
}
