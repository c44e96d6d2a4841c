package store

// FileStore persists the task list as a single JSON or YAML document.

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"gopkg.in/yaml.v3"

	"github.com/boolean-maybe/todo/list"
)

// Format is the on-disk encoding of a task file.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

func (f Format) String() string {
	if f == FormatYAML {
		return "yaml"
	}
	return "json"
}

// FormatForPath picks the encoding from the file extension. Unknown extensions are JSON.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

const tmpAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// FileStore is a Store backed by one file on disk.
type FileStore struct {
	mu          sync.Mutex
	path        string
	format      Format
	schemaCheck bool
}

// Option configures a FileStore.
type Option func(*FileStore)

// WithSchemaCheck enables or disables schema validation on load.
func WithSchemaCheck(enabled bool) Option {
	return func(s *FileStore) {
		s.schemaCheck = enabled
	}
}

// WithFormat overrides the extension-derived format.
func WithFormat(format Format) Option {
	return func(s *FileStore) {
		s.format = format
	}
}

// NewFileStore creates a FileStore for path. Schema validation is on by default.
func NewFileStore(path string, opts ...Option) *FileStore {
	s := &FileStore{
		path:        path,
		format:      FormatForPath(path),
		schemaCheck: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	slog.Debug("created file store", "file", path, "format", s.format, "schema_check", s.schemaCheck)
	return s
}

// Path returns the task file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads and decodes the task file.
func (s *FileStore) Load(ctx context.Context) (list.List, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Debug("task file does not exist, starting empty", "file", s.path)
			return list.List{}, nil
		}
		slog.Error("failed to read task file", "file", s.path, "error", err)
		return nil, fmt.Errorf("reading task file: %w", err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return list.List{}, nil
	}

	if s.schemaCheck {
		doc, err := s.decodeGeneric(data)
		if err != nil {
			return nil, err
		}
		if err := validateDocument(s.path, doc); err != nil {
			slog.Error("task file failed schema validation", "file", s.path, "error", err)
			return nil, err
		}
	}

	var tasks list.List
	switch s.format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &tasks)
	default:
		err = json.Unmarshal(data, &tasks)
	}
	if err != nil {
		slog.Error("failed to decode task file", "file", s.path, "error", err)
		return nil, fmt.Errorf("decoding %s task file %s: %w", s.format, s.path, err)
	}
	if tasks == nil {
		tasks = list.List{}
	}

	slog.Info("loaded tasks", "file", s.path, "num_tasks", len(tasks))
	return tasks, nil
}

// decodeGeneric decodes data into JSON-compatible values for schema validation.
// YAML documents are normalized through JSON so the validator sees the same types either way.
func (s *FileStore) decodeGeneric(data []byte) (interface{}, error) {
	if s.format == FormatYAML {
		var raw interface{}
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("decoding yaml task file %s: %w", s.path, err)
		}
		normalized, err := json.Marshal(raw)
		if err != nil {
			return nil, fmt.Errorf("normalizing yaml task file %s: %w", s.path, err)
		}
		data = normalized
	}

	var doc interface{}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding json task file %s: %w", s.path, err)
	}
	return doc, nil
}

// Save encodes l and atomically replaces the task file.
func (s *FileStore) Save(ctx context.Context, l list.List) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if l == nil {
		l = list.List{}
	}

	data, err := s.encode(l)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	//nolint:gosec // G301: 0755 is appropriate for the task file directory
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	suffix, err := gonanoid.Generate(tmpAlphabet, 8)
	if err != nil {
		return fmt.Errorf("generating temp file name: %w", err)
	}
	tmp := s.path + "." + suffix + ".tmp"

	//nolint:gosec // G306: 0644 is appropriate for task files
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		slog.Error("failed to write temp task file", "file", tmp, "error", err)
		return fmt.Errorf("writing task file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		slog.Error("failed to replace task file", "file", s.path, "error", err)
		return fmt.Errorf("replacing task file: %w", err)
	}

	slog.Info("saved tasks", "file", s.path, "num_tasks", len(l))
	return nil
}

func (s *FileStore) encode(l list.List) ([]byte, error) {
	switch s.format {
	case FormatYAML:
		data, err := yaml.Marshal(l)
		if err != nil {
			return nil, fmt.Errorf("encoding yaml: %w", err)
		}
		return data, nil
	default:
		data, err := json.MarshalIndent(l, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encoding json: %w", err)
		}
		return append(data, '\n'), nil
	}
}
