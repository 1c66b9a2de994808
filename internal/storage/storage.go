// Package storage archives uploaded import files
package storage

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"
)

// ErrNotFound is returned for keys that do not exist
var ErrNotFound = errors.New("file not found")

// Metadata is stored next to each archived upload
type Metadata struct {
	ContentType  string    `json:"contentType,omitempty"`
	OriginalName string    `json:"originalName"`
	Entity       string    `json:"entity"`
	RunID        string    `json:"runId"`
	Checksum     string    `json:"checksum"`
	UploadedAt   time.Time `json:"uploadedAt"`
}

// FileInfo describes an archived file
type FileInfo struct {
	Key        string    `json:"key"`
	Size       int64     `json:"size"`
	ModifiedAt time.Time `json:"modifiedAt"`
	Metadata   *Metadata `json:"metadata,omitempty"`
}

// Storage archives upload content by key
type Storage interface {
	Put(ctx context.Context, key string, content []byte, metadata *Metadata) error
	Get(ctx context.Context, key string) ([]byte, error)
	List(ctx context.Context, prefix string) ([]FileInfo, error)
	Delete(ctx context.Context, key string) error
}

// UploadKey builds the archive key for an uploaded file
func UploadKey(entity, runID, filename string, at time.Time) string {
	name := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	if name == "." || name == "/" || name == "" {
		name = "upload"
	}
	return fmt.Sprintf("uploads/%s/%s/%s-%s", entity, at.UTC().Format("2006-01-02"), runID, name)
}
