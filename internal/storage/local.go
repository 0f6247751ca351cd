package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// MaxResumeSize caps uploads at 5MB, matching the public form.
const MaxResumeSize = 5 << 20

var allowedExts = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

var (
	ErrFileTooLarge    = errors.New("file exceeds the 5MB limit")
	ErrUnsupportedType = errors.New("only PDF and Word documents are allowed")
	ErrNotFound        = errors.New("stored file not found")
)

// Store is the narrow contract the rest of the app sees: a resume goes in,
// an opaque URL and stored name come out.
type Store interface {
	Save(filename string, size int64, r io.Reader) (url, storedName string, err error)
	Open(storedName string) (io.ReadCloser, error)
	Remove(storedName string) error
}

// LocalStore keeps resumes on local disk under a single directory.
type LocalStore struct {
	dir     string
	baseURL string
}

func NewLocalStore(dir, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStore{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

func (s *LocalStore) Save(filename string, size int64, r io.Reader) (string, string, error) {
	if size > MaxResumeSize {
		return "", "", ErrFileTooLarge
	}
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExts[ext] {
		return "", "", ErrUnsupportedType
	}

	storedName := fmt.Sprintf("resume-%s%s", uuid.NewString(), ext)
	dst, err := os.Create(filepath.Join(s.dir, storedName))
	if err != nil {
		return "", "", err
	}
	defer dst.Close()

	// The size header can lie, so the copy itself is capped too.
	written, err := io.Copy(dst, io.LimitReader(r, MaxResumeSize+1))
	if err != nil {
		os.Remove(dst.Name())
		return "", "", err
	}
	if written > MaxResumeSize {
		os.Remove(dst.Name())
		return "", "", ErrFileTooLarge
	}

	return s.baseURL + "/" + storedName, storedName, nil
}

func (s *LocalStore) Open(storedName string) (io.ReadCloser, error) {
	// Base strips any path segments a stored value could smuggle in.
	f, err := os.Open(filepath.Join(s.dir, filepath.Base(storedName)))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	return f, err
}

func (s *LocalStore) Remove(storedName string) error {
	err := os.Remove(filepath.Join(s.dir, filepath.Base(storedName)))
	if errors.Is(err, os.ErrNotExist) {
		return ErrNotFound
	}
	return err
}
