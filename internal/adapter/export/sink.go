package export

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/heartmarshall/punsmith/internal/domain"
)

// FileSink writes one file per format next to a common base path:
// base.csv, base.json, base.txt.
type FileSink struct {
	log     *slog.Logger
	base    string
	formats []Format
}

// NewFileSink creates a sink writing formats under base. No formats means all.
func NewFileSink(logger *slog.Logger, base string, formats []Format) *FileSink {
	if len(formats) == 0 {
		formats = AllFormats
	}
	return &FileSink{
		log:     logger.With("adapter", "export"),
		base:    base,
		formats: formats,
	}
}

// Paths returns the files Save writes, in order.
func (s *FileSink) Paths() []string {
	paths := make([]string, len(s.formats))
	for i, f := range s.formats {
		paths[i] = s.base + f.Ext()
	}
	return paths
}

// Save writes every format. Files are written to a temporary name first and
// renamed, so a failed run leaves earlier output intact.
func (s *FileSink) Save(ctx context.Context, records []domain.PunRecord) error {
	if dir := filepath.Dir(s.base); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	for _, f := range s.formats {
		if err := ctx.Err(); err != nil {
			return err
		}
		path := s.base + f.Ext()
		if err := writeFile(path, f, records); err != nil {
			return err
		}
		s.log.Info("dataset written", "path", path, "format", f, "records", len(records))
	}
	return nil
}

func writeFile(path string, f Format, records []domain.PunRecord) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = Write(tmp, f, records); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename %s: %w", path, err)
	}
	return nil
}
