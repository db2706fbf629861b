package cache

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// maxLineCapacity is the maximum buffer size for reading JSONL lines (1MB).
const maxLineCapacity = 1024 * 1024

// JSONLStore persists cache entries as one JSON document per line, readable
// and diffable. This is the default backend.
type JSONLStore struct {
	Path string
}

// NewJSONLStore creates a JSONL-backed store at path.
func NewJSONLStore(path string) *JSONLStore {
	return &JSONLStore{Path: path}
}

// jsonlEntry is the on-disk line format.
type jsonlEntry struct {
	Key
	Entry
}

// Load reads all entries. A missing file or unparseable lines yield whatever
// could be read, never an error for malformed content.
func (s *JSONLStore) Load() (map[Key]Entry, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[Key]Entry{}, nil
		}
		return nil, fmt.Errorf("opening cache file: %w", err)
	}
	defer f.Close()

	entries := make(map[Key]Entry)
	scanner := bufio.NewScanner(f)
	buf := make([]byte, maxLineCapacity)
	scanner.Buffer(buf, maxLineCapacity)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var e jsonlEntry
		if err := json.Unmarshal(line, &e); err != nil {
			continue // Corrupt line, skip it
		}
		entries[e.Key] = e.Entry
	}
	if err := scanner.Err(); err != nil {
		// Truncated or unreadable tail: keep what parsed so far.
		return entries, nil
	}

	return entries, nil
}

// Save replaces the cache file with the given entries.
func (s *JSONLStore) Save(entries map[Key]Entry) error {
	if dir := filepath.Dir(s.Path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating cache directory: %w", err)
		}
	}

	f, err := os.Create(s.Path)
	if err != nil {
		return fmt.Errorf("creating cache file: %w", err)
	}
	defer f.Close()

	for k, e := range entries {
		data, err := json.Marshal(jsonlEntry{Key: k, Entry: e})
		if err != nil {
			return fmt.Errorf("encoding cache entry: %w", err)
		}
		if _, err := f.Write(data); err != nil {
			return fmt.Errorf("writing cache entry: %w", err)
		}
		if _, err := f.WriteString("\n"); err != nil {
			return fmt.Errorf("writing newline: %w", err)
		}
	}

	return nil
}
