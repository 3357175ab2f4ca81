package localfs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Storage writes rendered reports under a base directory and hands back
// public URLs rooted at the configured base URL.
type Storage struct {
	basePath string
	baseURL  string
}

func New(basePath, baseURL string) (*Storage, error) {
	if basePath == "" {
		basePath = "./data/reports"
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("create reports dir: %w", err)
	}
	return &Storage{
		basePath: basePath,
		baseURL:  strings.TrimRight(baseURL, "/"),
	}, nil
}

func (s *Storage) Put(_ context.Context, key string, data []byte, _ string) (string, error) {
	path := filepath.Join(s.basePath, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write report file: %w", err)
	}
	return s.baseURL + "/" + key, nil
}
