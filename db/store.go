package db

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/tidwall/gjson"
)

var (
	// ErrParse means the record file exists but is not a JSON array of objects.
	ErrParse = errors.New("record file is not a valid JSON array")
	// ErrIndexOutOfRange is returned by positional updates outside [0, len).
	ErrIndexOutOfRange = errors.New("record index out of range")
	// ErrNotFound is returned when no record carries the requested id.
	ErrNotFound = errors.New("record not found")
	// ErrVersionConflict is returned when the caller's _v does not match the stored one.
	ErrVersionConflict = errors.New("record version conflict")
)

// Store persists one homogeneous, ordered list of records as a single JSON array file.
// Every operation is a whole-file read and/or write. All operations on one Store are
// serialized by its mutex, so concurrent appends never lose each other's records.
type Store struct {
	name   string
	path   string
	backup bool
	mu     sync.Mutex
}

// NewStore returns a handle for <dir>/<name>.json. Nothing is touched on disk until the first write.
func NewStore(dir, name string, backup bool) *Store {
	return &Store{
		name:   name,
		path:   filepath.Join(dir, name+".json"),
		backup: backup,
	}
}

// Name returns the resource name the store was created for.
func (s *Store) Name() string { return s.name }

// Path returns the absolute or relative path of the backing file.
func (s *Store) Path() string { return s.path }

// LoadAll returns every record in insertion order. A missing file is an empty store.
func (s *Store) LoadAll() ([]json.RawMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readLocked()
}

// List decodes the whole store into out, which must be a pointer to a slice.
func (s *Store) List(out any) error {
	records, err := s.LoadAll()
	if err != nil {
		return err
	}
	buf, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to re-encode %s records: %w", s.name, err)
	}
	if err := json.Unmarshal(buf, out); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrParse, s.path, err)
	}
	return nil
}

// Len returns the number of stored records.
func (s *Store) Len() (int, error) {
	records, err := s.LoadAll()
	if err != nil {
		return 0, err
	}
	return len(records), nil
}

// Append adds record at the end of the store and rewrites the file.
func (s *Store) Append(record any) error {
	raw, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode %s record: %w", s.name, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.readLocked()
	if err != nil {
		return err
	}
	records = append(records, raw)
	if err := s.writeLocked(records); err != nil {
		return err
	}
	log.Printf("INFO: Appended record to %s store (%d records)", s.name, len(records))
	return nil
}

// UpdateFieldAtIndex sets field on the record at index and rewrites the file.
// When expectedVersion is non-nil it must equal the stored _v. It returns the updated record.
func (s *Store) UpdateFieldAtIndex(index int, field string, value any, expectedVersion *int) (map[string]any, error) {
	return s.update(func(records []json.RawMessage) (int, error) {
		if index < 0 || index >= len(records) {
			return -1, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, index, len(records))
		}
		return index, nil
	}, field, value, expectedVersion)
}

// UpdateFieldByID sets field on the record with the given id and rewrites the file.
// When expectedVersion is non-nil it must equal the stored _v.
func (s *Store) UpdateFieldByID(id, field string, value any, expectedVersion *int) (map[string]any, error) {
	return s.update(func(records []json.RawMessage) (int, error) {
		for i, raw := range records {
			if gjson.GetBytes(raw, "id").String() == id {
				return i, nil
			}
		}
		return -1, fmt.Errorf("%w: %s id '%s'", ErrNotFound, s.name, id)
	}, field, value, expectedVersion)
}

func (s *Store) update(locate func([]json.RawMessage) (int, error), field string, value any, expectedVersion *int) (map[string]any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.readLocked()
	if err != nil {
		return nil, err
	}
	index, err := locate(records)
	if err != nil {
		return nil, err
	}

	current := int(gjson.GetBytes(records[index], "_v").Int())
	if expectedVersion != nil && *expectedVersion != current {
		return nil, fmt.Errorf("%w: %s record at %d has _v %d, expected %d", ErrVersionConflict, s.name, index, current, *expectedVersion)
	}

	var obj map[string]any
	dec := json.NewDecoder(bytes.NewReader(records[index]))
	dec.UseNumber() // keep stored numbers byte-for-byte
	if err := dec.Decode(&obj); err != nil || obj == nil {
		return nil, fmt.Errorf("%w: %s record at %d is not an object", ErrParse, s.name, index)
	}
	obj[field] = value
	obj["updatedAt"] = time.Now().UTC()
	obj["_v"] = current + 1

	raw, err := json.Marshal(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s record: %w", s.name, err)
	}
	records[index] = raw
	if err := s.writeLocked(records); err != nil {
		return nil, err
	}
	log.Printf("INFO: Updated field '%s' of %s record at index %d", field, s.name, index)
	return obj, nil
}

// readLocked reads and validates the file. Caller holds s.mu.
func (s *Store) readLocked() ([]json.RawMessage, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []json.RawMessage{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}

	if !gjson.ValidBytes(data) || !gjson.ParseBytes(data).IsArray() {
		return nil, fmt.Errorf("%w: %s", ErrParse, s.path)
	}
	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrParse, s.path, err)
	}
	if records == nil {
		records = []json.RawMessage{}
	}
	return records, nil
}

// writeLocked replaces the file with the pretty-printed array. Caller holds s.mu.
// The new content goes to a temp file that is renamed over the old one, so readers
// never observe a half-written array.
func (s *Store) writeLocked(records []json.RawMessage) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create data directory for %s: %w", s.name, err)
	}

	jsonData, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s store: %w", s.name, err)
	}

	tempFilePath := s.path + ".tmp"
	backupFilePath := s.path + ".bak"

	if err := os.WriteFile(tempFilePath, jsonData, 0644); err != nil {
		return fmt.Errorf("failed to write temporary file '%s': %w", tempFilePath, err)
	}

	if s.backup {
		if _, err := os.Stat(s.path); err == nil {
			if err := copyFile(s.path, backupFilePath); err != nil {
				log.Printf("WARN: Failed to back up '%s' to '%s': %v. Proceeding with save.", s.path, backupFilePath, err)
			}
		} else if !os.IsNotExist(err) {
			log.Printf("WARN: Error checking '%s' before backup: %v", s.path, err)
		}
	}

	if err := os.Rename(tempFilePath, s.path); err != nil {
		_ = os.Remove(tempFilePath)
		return fmt.Errorf("failed to replace '%s': %w", s.path, err)
	}
	return nil
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0644)
}
