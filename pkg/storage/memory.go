package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
)

// MemoryConfig selects the in-process backend used in development when no
// bucket is configured.
type MemoryConfig struct {
	PublicURL string
}

func (c *MemoryConfig) Validate() error {
	if c.PublicURL == "" {
		return fmt.Errorf("memory storage requires a public URL")
	}
	return nil
}

type MemoryObject struct {
	Data        []byte
	ContentType string
}

type MemoryStorage struct {
	mu        sync.RWMutex
	objects   map[string]MemoryObject
	publicURL string
}

func NewMemoryStorage(config MemoryConfig) *MemoryStorage {
	return &MemoryStorage{
		objects:   make(map[string]MemoryObject),
		publicURL: strings.TrimSuffix(config.PublicURL, "/"),
	}
}

func (m *MemoryStorage) Upload(ctx context.Context, objectKey string, body io.Reader, contentType string) (string, error) {
	if objectKey == "" {
		return "", fmt.Errorf("object key cannot be empty")
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, body); err != nil {
		return "", fmt.Errorf("failed to upload object: %w", err)
	}

	m.mu.Lock()
	m.objects[objectKey] = MemoryObject{Data: buf.Bytes(), ContentType: contentType}
	m.mu.Unlock()

	return m.publicURL + "/" + objectKey, nil
}

func (m *MemoryStorage) Delete(ctx context.Context, objectKey string) error {
	if objectKey == "" {
		return fmt.Errorf("object key cannot be empty")
	}

	m.mu.Lock()
	delete(m.objects, objectKey)
	m.mu.Unlock()
	return nil
}

func (m *MemoryStorage) ObjectKey(publicURL string) (string, bool) {
	return trimBaseURL(m.publicURL, publicURL)
}

func (m *MemoryStorage) Get(objectKey string) (MemoryObject, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	obj, ok := m.objects[objectKey]
	return obj, ok
}
