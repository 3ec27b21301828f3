package sheets

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/KirkDiggler/npc-generator/internal/errors"
	"github.com/KirkDiggler/npc-generator/internal/pkg/clock"
	"github.com/KirkDiggler/npc-generator/internal/pkg/idgen"
	"github.com/KirkDiggler/npc-generator/internal/sheet"
)

// FileConfig contains configuration for the save file repository
type FileConfig struct {
	Path        string
	Clock       clock.Clock
	IDGenerator idgen.Generator
}

// Validate validates the FileConfig
func (cfg *FileConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if cfg.Path == "" {
		vb.RequiredField("Path")
	}
	return vb.Build()
}

// FileRepository appends text sheets to a save file
type FileRepository struct {
	path  string
	clock clock.Clock
	idGen idgen.Generator
	mu    sync.Mutex
}

// Ensure FileRepository implements Saver
var _ Saver = (*FileRepository)(nil)

// NewFile creates a save file repository. The file is created on first save.
func NewFile(cfg *FileConfig) (*FileRepository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	gen := cfg.IDGenerator
	if gen == nil {
		gen = idgen.NewUUID("")
	}

	return &FileRepository{path: cfg.Path, clock: c, idGen: gen}, nil
}

// Create appends the sheet in text form. The ID is not written to the file.
func (r *FileRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Sheet == nil {
		return nil, errors.InvalidArgument(errSheetNil)
	}

	saved := *input.Sheet
	if saved.ID == "" {
		saved.ID = r.idGen.Generate()
	}
	if saved.CreatedAt.IsZero() {
		saved.CreatedAt = r.clock.Now()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.appendText(sheet.FormatText(saved.Character())); err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "sheet appended", "sheet_id", saved.ID, "path", r.path)

	return &CreateOutput{Sheet: &saved}, nil
}

func (r *FileRepository) appendText(text string) error {
	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return errors.Wrapf(err, "failed to create save directory %s", dir)
		}
	}

	f, err := os.OpenFile(r.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return errors.Wrapf(err, "failed to open save file %s", r.path)
	}

	if _, err := f.WriteString(text); err != nil {
		_ = f.Close()
		return errors.Wrapf(err, "failed to write save file %s", r.path)
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "failed to close save file %s", r.path)
	}
	return nil
}
