package collector

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// FileSystemSink persists run payloads to disk. Writes go to a temporary
// sibling file first and are renamed over the target, so readers of the
// final path never observe a partial snapshot.
type FileSystemSink struct {
	logger *zap.Logger
}

// NewFileSystemSink returns a sink logging through the given logger.
func NewFileSystemSink(logger *zap.Logger) *FileSystemSink {
	return &FileSystemSink{logger: logger}
}

// WritePayload serializes the payload as indented JSON and atomically
// replaces path with it, creating parent directories as needed. Non-ASCII
// characters and URLs are written literally, not escaped.
func (s *FileSystemSink) WritePayload(payload Payload, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("create output dir for %s: %w", path, err)
	}

	tmp := path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("open temp file %s: %w", tmp, err)
	}

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(payload); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("encode payload: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("close temp file %s: %w", tmp, err)
	}

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace %s: %w", path, err)
	}

	s.logger.Info("payload written",
		zap.String("path", path),
		zap.Int("items", len(payload.Items)),
	)
	return nil
}
