package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/autoexpert/backend/internal/infrastructure/config"
	"github.com/google/uuid"
)

// ErrFileTooLarge is returned when an upload exceeds the configured limit
var ErrFileTooLarge = fmt.Errorf("file exceeds the maximum allowed size")

// LocalStore writes evidence files to a directory on local disk. The
// database keeps metadata only; StoredFile.Path is what gets recorded
// against a mission attachment.
type LocalStore struct {
	dir     string
	maxSize int64
}

// StoredFile describes a file persisted by the store
type StoredFile struct {
	Path string `json:"file_path"`
	Name string `json:"file_name"`
	Size int64  `json:"size"`
}

// NewLocalStore creates the upload directory if needed
func NewLocalStore(cfg *config.StorageConfig) (*LocalStore, error) {
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalStore{
		dir:     cfg.UploadDir,
		maxSize: cfg.MaxUploadSize,
	}, nil
}

// Save persists the reader's content under a collision-free name derived
// from the original file name. Returns ErrFileTooLarge when the content
// exceeds the configured limit.
func (s *LocalStore) Save(originalName string, r io.Reader) (*StoredFile, error) {
	name := sanitizeFileName(originalName)
	subdir := time.Now().UTC().Format("2006/01")
	if err := os.MkdirAll(filepath.Join(s.dir, subdir), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload subdirectory: %w", err)
	}

	stored := filepath.Join(subdir, uuid.New().String()+filepath.Ext(name))
	dst, err := os.Create(filepath.Join(s.dir, stored))
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = dst.Close() }()

	// Copy one byte past the limit so oversize content is detectable.
	written, err := io.Copy(dst, io.LimitReader(r, s.maxSize+1))
	if err != nil {
		_ = os.Remove(filepath.Join(s.dir, stored))
		return nil, fmt.Errorf("failed to write file: %w", err)
	}
	if written > s.maxSize {
		_ = os.Remove(filepath.Join(s.dir, stored))
		return nil, ErrFileTooLarge
	}

	return &StoredFile{
		Path: filepath.ToSlash(stored),
		Name: name,
		Size: written,
	}, nil
}

// Remove deletes a previously stored file. A missing file is not an error.
func (s *LocalStore) Remove(storedPath string) error {
	full := filepath.Join(s.dir, filepath.FromSlash(storedPath))
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove file: %w", err)
	}
	return nil
}

// MaxSize returns the configured upload limit in bytes
func (s *LocalStore) MaxSize() int64 {
	return s.maxSize
}

func sanitizeFileName(name string) string {
	name = filepath.Base(strings.TrimSpace(name))
	if name == "" || name == "." || name == string(filepath.Separator) {
		return "upload"
	}
	return name
}
