// Package cache provides a JSON file-based cache for fetched entities,
// used as an offline fallback when the service is unreachable.
package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// cacheData represents the JSON file structure.
type cacheData struct {
	Entries map[string]json.RawMessage `json:"entries"`
}

// Ensure Store implements domain.Cache.
var _ domain.Cache = (*Store)(nil)

// Store implements domain.Cache using a JSON file guarded by a file lock,
// so concurrent taskdeck processes cannot corrupt it.
type Store struct {
	path     string
	lockPath string
}

// New creates a Store for the given file path.
// The file does not need to exist; it will be created on first write.
func New(path string) *Store {
	return &Store{
		path:     path,
		lockPath: path + ".lock",
	}
}

// Path returns the cache file path.
func (s *Store) Path() string {
	return s.path
}

// Get loads the cached value for key into v.
func (s *Store) Get(key string, v any) error {
	return s.withLock(syscall.LOCK_SH, func(data *cacheData) error {
		raw, ok := data.Entries[key]
		if !ok {
			return domain.ErrCacheMiss
		}
		if err := json.Unmarshal(raw, v); err != nil {
			return fmt.Errorf("decode cache entry %q: %w", key, err)
		}
		return nil
	})
}

// Put stores v under key, replacing any previous value.
func (s *Store) Put(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode cache entry %q: %w", key, err)
	}
	return s.withLockWrite(func(data *cacheData) error {
		data.Entries[key] = raw
		return nil
	})
}

// Clear removes all cached values.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove cache file: %w", err)
	}
	return nil
}

// withLock executes fn with the given lock type held.
func (s *Store) withLock(lockType int, fn func(*cacheData) error) error {
	lock, err := s.acquireLock(lockType)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	data, err := s.read()
	if err != nil {
		return err
	}
	return fn(data)
}

// withLockWrite executes fn with an exclusive lock and writes the result.
func (s *Store) withLockWrite(fn func(*cacheData) error) error {
	lock, err := s.acquireLock(syscall.LOCK_EX)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	data, err := s.read()
	if err != nil {
		return err
	}
	if err := fn(data); err != nil {
		return err
	}
	return s.write(data)
}

func (s *Store) acquireLock(lockType int) (*os.File, error) {
	dir := filepath.Dir(s.lockPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create cache directory: %w", err)
	}

	lock, err := os.OpenFile(s.lockPath, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}
	if err := syscall.Flock(int(lock.Fd()), lockType); err != nil {
		_ = lock.Close()
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	return lock, nil
}

func (s *Store) releaseLock(lock *os.File) {
	_ = syscall.Flock(int(lock.Fd()), syscall.LOCK_UN)
	_ = lock.Close()
}

func (s *Store) read() (*cacheData, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return &cacheData{Entries: make(map[string]json.RawMessage)}, nil
		}
		return nil, fmt.Errorf("read cache file: %w", err)
	}

	var data cacheData
	if err := json.Unmarshal(content, &data); err != nil {
		// A corrupt cache is not worth failing over; start fresh.
		return &cacheData{Entries: make(map[string]json.RawMessage)}, nil
	}
	if data.Entries == nil {
		data.Entries = make(map[string]json.RawMessage)
	}
	return &data, nil
}

func (s *Store) write(data *cacheData) error {
	content, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal cache data: %w", err)
	}

	// Write to temp file first, then rename for atomicity
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
