// Package source reads measurement files from a local folder.
package source

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"unicode/utf8"

	"prnbook/domain/core"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// StorageConfig holds configuration for local source storage
type StorageConfig struct {
	Encoding string // Input text encoding name, e.g. "utf-8" or "gbk"
}

// DefaultStorageConfig returns UTF-8 input
func DefaultStorageConfig() *StorageConfig {
	return &StorageConfig{Encoding: "utf-8"}
}

// LocalFileStorage implements ports.SourceStorage using the local filesystem
type LocalFileStorage struct {
	config  *StorageConfig
	decoder *encoding.Decoder // nil for UTF-8
}

// NewLocalFileStorage creates a new local file storage instance
func NewLocalFileStorage(config *StorageConfig) (*LocalFileStorage, error) {
	if config == nil {
		config = DefaultStorageConfig()
	}
	dec, err := lookupDecoder(config.Encoding)
	if err != nil {
		return nil, err
	}
	return &LocalFileStorage{config: config, decoder: dec}, nil
}

// lookupDecoder resolves an encoding label; UTF-8 needs no decoder
func lookupDecoder(name string) (*encoding.Decoder, error) {
	label := strings.ToLower(strings.TrimSpace(name))
	if label == "" || label == "utf-8" || label == "utf8" {
		return nil, nil
	}
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, core.NewUnknownEncodingError(name)
	}
	canonical, _ := htmlindex.Name(enc)
	if canonical == "utf-8" {
		return nil, nil
	}
	return enc.NewDecoder(), nil
}

// IsDir checks that folder exists and is a directory
func (s *LocalFileStorage) IsDir(ctx context.Context, folder string) (bool, error) {
	if strings.TrimSpace(folder) == "" {
		return false, nil
	}
	info, err := os.Stat(folder)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check folder: %w", err)
	}
	return info.IsDir(), nil
}

// List returns regular files in folder whose name ends in ext
func (s *LocalFileStorage) List(ctx context.Context, folder, ext string) ([]string, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, fmt.Errorf("failed to list folder: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ext) {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}

// Open returns a reader over the file's text. Non UTF-8 input is decoded with
// the configured encoding and sequences the decoder cannot map are dropped.
// UTF-8 input is returned as is.
func (s *LocalFileStorage) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	if s.decoder == nil {
		return file, nil
	}
	return &decodedFile{
		Reader: transform.NewReader(file, transform.Chain(s.decoder, dropReplacement)),
		file:   file,
	}, nil
}

// Encoding returns the configured input encoding name
func (s *LocalFileStorage) Encoding() string {
	return s.config.Encoding
}

var dropReplacement = runes.Remove(runes.Predicate(func(r rune) bool {
	return r == utf8.RuneError
}))

type decodedFile struct {
	io.Reader
	file *os.File
}

func (d *decodedFile) Close() error {
	return d.file.Close()
}
