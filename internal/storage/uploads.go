// Package storage writes uploaded project images under the configured
// uploads directory and hands back the relative path used to render them.
package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

var (
	ErrUnsupportedType = errors.New("unsupported image type")
	ErrFileTooLarge    = errors.New("file exceeds the upload size limit")
)

type Store struct {
	dir      string
	maxBytes int64
}

func New(dir string, maxBytes int64) *Store {
	return &Store{dir: dir, maxBytes: maxBytes}
}

// Save validates and stores one uploaded file. A unix timestamp is
// appended to the base name so repeated uploads of the same file never
// collide. Returns the relative path ("uploads/<name>") to persist.
func (s *Store) Save(name string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(name))
	if !allowedExtensions[ext] {
		return "", ErrUnsupportedType
	}

	base := sanitizeBaseName(strings.TrimSuffix(filepath.Base(name), filepath.Ext(name)))
	filename := fmt.Sprintf("%s_%d%s", base, time.Now().Unix(), ext)

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", err
	}

	dst := filepath.Join(s.dir, filename)
	f, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	defer f.Close()

	// read one byte past the cap so oversized uploads are detectable
	n, err := io.Copy(f, io.LimitReader(r, s.maxBytes+1))
	if err != nil {
		os.Remove(dst)
		return "", err
	}
	if n > s.maxBytes {
		os.Remove(dst)
		return "", ErrFileTooLarge
	}

	return path.Join("uploads", filename), nil
}

// sanitizeBaseName keeps the filename shell- and URL-safe: anything
// outside [a-zA-Z0-9_-] becomes an underscore.
func sanitizeBaseName(base string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, base)
	if cleaned == "" || strings.Trim(cleaned, "_") == "" {
		cleaned = "upload"
	}
	return cleaned
}
