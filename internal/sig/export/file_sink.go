package export

import (
	"context"
	"os"
	"path/filepath"

	"github.com/sig-gov/sig-backend/internal/sig/service"
)

// FileSink writes each refreshed snapshot to a directory for the external
// renderer: the full snapshot as JSON plus its DOT rendering. Files are
// overwritten in place so the renderer always picks up the latest state.
type FileSink struct {
	dir string
}

func NewFileSink(dir string) *FileSink {
	return &FileSink{dir: dir}
}

func (s *FileSink) Save(ctx context.Context, snap *service.Snapshot) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	if err := WriteJSON(filepath.Join(s.dir, "snapshot.json"), snap); err != nil {
		return err
	}
	dot := ToDOT(snap.Graph, "")
	return os.WriteFile(filepath.Join(s.dir, "snapshot.dot"), []byte(dot), 0o644)
}
