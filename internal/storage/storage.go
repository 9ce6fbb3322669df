// Package storage implements the upload store: bucket-partitioned blob
// storage returning publicly resolvable URLs. Buckets partition content by
// type (hero images, project images, about images, resumes).
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

// Storage errors
var (
	ErrUnknownBucket = errors.New("unknown bucket")
	ErrPathTraversal = errors.New("path traversal detected")
	ErrFileNotFound  = errors.New("file not found")
	ErrFileTooLarge  = errors.New("file exceeds size limit")
	ErrBlockedExt    = errors.New("file type is not allowed")
)

// MaxFileSize is the maximum allowed upload size (10 MB)
const MaxFileSize = 10 * 1024 * 1024

// Buckets are the logical partitions uploads may target.
var Buckets = map[string]bool{
	"home":     true,
	"projects": true,
	"about-me": true,
	"resumes":  true,
}

// AllowedExtensions lists the upload types the site serves: images plus
// PDF resumes.
var AllowedExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true,
	".webp": true, ".svg": true, ".pdf": true,
}

// UploadStorage defines the interface for upload operations. Save returns a
// publicly resolvable URL for the stored object.
type UploadStorage interface {
	Save(bucket, filename string, content io.Reader) (url string, err error)
	Delete(bucket, storedName string) error
}

// localStorage implements UploadStorage on the local filesystem, standing in
// for a hosted object store. URLs are prefixed with publicBaseURL so they
// resolve through the static /uploads route.
type localStorage struct {
	basePath      string
	publicBaseURL string
}

// NewLocalStorage creates a localStorage rooted at basePath, pre-creating
// every bucket directory.
func NewLocalStorage(basePath, publicBaseURL string) (UploadStorage, error) {
	for bucket := range Buckets {
		if err := os.MkdirAll(filepath.Join(basePath, bucket), 0755); err != nil {
			return nil, fmt.Errorf("failed to create bucket directory: %w", err)
		}
	}
	return &localStorage{
		basePath:      basePath,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}, nil
}

// ValidateFile checks bucket, extension and size before a save.
func ValidateFile(bucket, filename string, size int64) error {
	if !Buckets[bucket] {
		return ErrUnknownBucket
	}
	ext := strings.ToLower(filepath.Ext(filename))
	if !AllowedExtensions[ext] {
		return ErrBlockedExt
	}
	if size > MaxFileSize {
		return ErrFileTooLarge
	}
	return nil
}

// Save stores an upload under a fresh name and returns its public URL.
func (s *localStorage) Save(bucket, filename string, content io.Reader) (string, error) {
	if !Buckets[bucket] {
		return "", ErrUnknownBucket
	}

	ext := strings.ToLower(filepath.Ext(filename))
	storedName := uuid.New().String() + ext
	fullPath := filepath.Join(s.basePath, bucket, storedName)

	file, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, content); err != nil {
		os.Remove(fullPath)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return fmt.Sprintf("%s/uploads/%s/%s", s.publicBaseURL, bucket, storedName), nil
}

// Delete removes a stored object.
func (s *localStorage) Delete(bucket, storedName string) error {
	if !Buckets[bucket] {
		return ErrUnknownBucket
	}
	cleaned, err := s.validateName(storedName)
	if err != nil {
		return err
	}

	if err := os.Remove(filepath.Join(s.basePath, bucket, cleaned)); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// validateName rejects names that could escape the bucket directory.
func (s *localStorage) validateName(name string) (string, error) {
	cleaned := filepath.Clean(name)
	if filepath.IsAbs(cleaned) || strings.Contains(cleaned, "..") || strings.ContainsRune(cleaned, filepath.Separator) {
		return "", ErrPathTraversal
	}
	return cleaned, nil
}
