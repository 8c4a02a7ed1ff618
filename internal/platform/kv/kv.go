package kv

import (
	"encoding/json"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Store is the durable key-value primitive every record sits on. It is
// deliberately fail-soft: reads report absence instead of errors, writes are
// best effort. Failures are logged and swallowed so a full disk or a
// corrupted file never surfaces past the persistence layer; the in-memory
// state stays the source of truth for the rest of the session.
type Store interface {
	// Get returns the raw JSON stored under key, or ok=false when the key
	// is absent or its contents cannot be read.
	Get(key string) (json.RawMessage, bool)
	// Set serializes value and writes it under key.
	Set(key string, value any)
	// Remove deletes key. Removing an absent key is a no-op.
	Remove(key string)
	// Clear removes every given key and nothing else.
	Clear(keys ...string)
}

// FileStore keeps one JSON file per key under a single directory.
type FileStore struct {
	dir string
	log *zap.Logger
}

func NewFileStore(dir string, log *zap.Logger) *FileStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &FileStore{dir: dir, log: log}
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *FileStore) Get(key string) (json.RawMessage, bool) {
	payload, err := os.ReadFile(s.path(key))
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn("kv read failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}
	if !json.Valid(payload) {
		s.log.Warn("kv value is not valid JSON", zap.String("key", key))
		return nil, false
	}
	return payload, true
}

func (s *FileStore) Set(key string, value any) {
	payload, err := json.Marshal(value)
	if err != nil {
		s.log.Warn("kv marshal failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		s.log.Warn("kv create dir failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := os.WriteFile(s.path(key), payload, 0o644); err != nil {
		s.log.Warn("kv write failed", zap.String("key", key), zap.Error(err))
	}
}

func (s *FileStore) Remove(key string) {
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		s.log.Warn("kv remove failed", zap.String("key", key), zap.Error(err))
	}
}

func (s *FileStore) Clear(keys ...string) {
	for _, key := range keys {
		s.Remove(key)
	}
}
