package storage

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const metaSuffix = ".meta"

// LocalStorage implements Storage on the local filesystem.
// Metadata is written as JSON to a sibling file with a .meta suffix.
type LocalStorage struct {
	basePath string
}

// NewLocalStorage creates the base directory if needed
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	return &LocalStorage{basePath: basePath}, nil
}

// Put writes content and its metadata
func (s *LocalStorage) Put(ctx context.Context, key string, content []byte, metadata *Metadata) error {
	fullPath, err := s.keyToPath(key)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", key, err)
	}
	if err := os.WriteFile(fullPath, content, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}

	if metadata == nil {
		return nil
	}
	if metadata.Checksum == "" {
		metadata.Checksum = ComputeChecksum(content)
	}
	metaBytes, err := json.Marshal(metadata)
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}
	if err := os.WriteFile(fullPath+metaSuffix, metaBytes, 0o644); err != nil {
		return fmt.Errorf("failed to write metadata for %s: %w", key, err)
	}
	return nil
}

// Get reads archived content
func (s *LocalStorage) Get(ctx context.Context, key string) ([]byte, error) {
	fullPath, err := s.keyToPath(key)
	if err != nil {
		return nil, err
	}
	content, err := os.ReadFile(fullPath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return content, nil
}

// List returns archived files whose key starts with prefix, newest first
func (s *LocalStorage) List(ctx context.Context, prefix string) ([]FileInfo, error) {
	files := make([]FileInfo, 0)

	err := filepath.WalkDir(s.basePath, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || strings.HasSuffix(p, metaSuffix) {
			return nil
		}

		key := s.pathToKey(p)
		if !strings.HasPrefix(key, prefix) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		file := FileInfo{Key: key, Size: info.Size(), ModifiedAt: info.ModTime()}
		if metaBytes, err := os.ReadFile(p + metaSuffix); err == nil {
			var meta Metadata
			if json.Unmarshal(metaBytes, &meta) == nil {
				file.Metadata = &meta
			}
		}
		files = append(files, file)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}

	sort.Slice(files, func(i, j int) bool {
		if files[i].ModifiedAt.Equal(files[j].ModifiedAt) {
			return files[i].Key > files[j].Key
		}
		return files[i].ModifiedAt.After(files[j].ModifiedAt)
	})
	return files, nil
}

// Delete removes content and metadata; missing files are not an error
func (s *LocalStorage) Delete(ctx context.Context, key string) error {
	fullPath, err := s.keyToPath(key)
	if err != nil {
		return err
	}
	if err := os.Remove(fullPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	_ = os.Remove(fullPath + metaSuffix)
	return nil
}

// keyToPath maps a key under the base path, rejecting traversal
func (s *LocalStorage) keyToPath(key string) (string, error) {
	clean := filepath.Clean("/" + filepath.FromSlash(key))
	if clean == string(filepath.Separator) {
		return "", fmt.Errorf("invalid storage key %q", key)
	}
	return filepath.Join(s.basePath, clean), nil
}

func (s *LocalStorage) pathToKey(p string) string {
	rel, err := filepath.Rel(s.basePath, p)
	if err != nil {
		return p
	}
	return filepath.ToSlash(rel)
}

// ComputeChecksum returns the hex SHA-256 of content
func ComputeChecksum(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}
