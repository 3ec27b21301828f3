package corpus

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/KirkDiggler/npc-generator/internal/errors"
)

const textExt = ".txt"

// Load reads a corpus from disk. A path ending in .txt is parsed as a blob,
// anything else as a directory of <Group>.txt files whose sub-directories
// become the groups' sub-corpora.
func Load(path string) (Corpus, error) {
	if strings.HasSuffix(path, textExt) {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.CorpusUnavailable(path, err)
		}
		return NewBlob(string(data), GroupDelimiter), nil
	}

	return loadDir(path)
}

// LoadDatabase loads the group database, falling back to the legacy
// <path>.txt document when the directory is missing
func LoadDatabase(path string) (Corpus, error) {
	c, err := Load(path)
	if err == nil || strings.HasSuffix(path, textExt) {
		return c, err
	}

	legacy := path + textExt
	c, legacyErr := Load(legacy)
	if legacyErr != nil {
		return nil, err
	}

	slog.Warn("database directory not found, using legacy database file",
		"directory", path,
		"file", legacy)
	return c, nil
}

func loadDir(dir string) (*Mapping, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.CorpusUnavailable(dir, err)
	}

	m := NewMapping()
	var subdirs []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() {
			subdirs = append(subdirs, name)
			continue
		}
		if !strings.HasSuffix(name, textExt) {
			continue
		}

		filePath := filepath.Join(dir, name)
		data, err := os.ReadFile(filePath)
		if err != nil {
			return nil, errors.CorpusUnavailable(filePath, err)
		}
		m.Add(strings.TrimSuffix(name, textExt), string(data))
	}

	for _, name := range subdirs {
		sub, err := loadDir(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		m.Attach(name, sub)
	}

	slog.Debug("loaded corpus directory",
		"directory", dir,
		"groups", len(m.order),
		"sub_corpora", len(subdirs))

	return m, nil
}
