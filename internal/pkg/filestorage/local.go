// Package filestorage stores uploaded marksheet images on the local filesystem.
package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/GeetAtGit/ReportVerse/internal/pkg/logger"
)

// FileStorage defines the interface for file storage operations
type FileStorage interface {
	// SaveFileWithPath stores an uploaded file under the given subdirectory
	// and returns the accessible URL/path of the stored file.
	SaveFileWithPath(fileHeader *multipart.FileHeader, subPath string) (string, error)
}

// LocalStorage handles saving files to the local filesystem.
type LocalStorage struct {
	basePath string // Root directory where files are stored
	baseURL  string // Base URL prefixed to returned file paths
}

// NewLocalStorage creates a new LocalStorage instance rooted at basePath.
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}

	return &LocalStorage{
		basePath: basePath,
		baseURL:  baseURL,
	}, nil
}

// SaveFileWithPath saves an uploaded file to a subdirectory under the storage
// root, using a generated filename to avoid collisions.
func (ls *LocalStorage) SaveFileWithPath(fileHeader *multipart.FileHeader, subPath string) (string, error) {
	if fileHeader == nil {
		return "", nil // No file uploaded
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	fullDirPath := ls.basePath
	if subPath != "" {
		fullDirPath = filepath.Join(ls.basePath, subPath)
		if err := os.MkdirAll(fullDirPath, os.ModePerm); err != nil {
			return "", fmt.Errorf("failed to create subdirectory: %w", err)
		}
	}

	ext := filepath.Ext(fileHeader.Filename)
	uniqueFilename := uuid.New().String() + ext
	dstPath := filepath.Join(fullDirPath, uniqueFilename)

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		// Remove the partially written file
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	accessiblePath := uniqueFilename
	if subPath != "" {
		accessiblePath = subPath + "/" + uniqueFilename
	}
	if ls.baseURL != "" {
		accessiblePath = strings.TrimRight(ls.baseURL, "/") + "/" + accessiblePath
	}

	logger.Info().Str("filename", fileHeader.Filename).Str("savedAs", uniqueFilename).Msg("File saved")
	return accessiblePath, nil
}
