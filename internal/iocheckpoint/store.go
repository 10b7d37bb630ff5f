// Package iocheckpoint persists the output of each pipeline stage as a
// JSON file under data/temp/, keyed by a stable per-stage file name. The
// files let the orchestrator resume from the most advanced completed
// stage instead of restarting from scratch.
package iocheckpoint

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gnames/gnfmt"
	"github.com/gnames/gnsys"
)

// Stage names a pipeline stage and doubles as the file name of its
// checkpoint artifact.
type Stage string

const (
	// StageAll is the full collected species list.
	StageAll Stage = "herbario_species_all"
	// StageFiltered is the checklist-filtered species list.
	StageFiltered Stage = "herbario_species_filtered"
	// StageAccepted is the list of full detail documents.
	StageAccepted Stage = "herbario_species_accepted"
)

// Store is a file-based checkpoint store. Checkpoints are written
// wholesale and never patched; a new run overwrites them.
type Store struct {
	dir string
	log *slog.Logger
}

// New creates a Store rooted at the given directory, creating it when
// needed.
func New(tempDir string, log *slog.Logger) (*Store, error) {
	if err := gnsys.MakeDir(tempDir); err != nil {
		return nil, CreateDirError(tempDir, err)
	}
	return &Store{dir: tempDir, log: log}, nil
}

// Path returns the file path of a stage's checkpoint.
func (s *Store) Path(stage Stage) string {
	return filepath.Join(s.dir, string(stage)+".json")
}

// Exists reports whether a stage has a persisted checkpoint.
func (s *Store) Exists(stage Stage) bool {
	info, err := os.Stat(s.Path(stage))
	return err == nil && !info.IsDir()
}

// Save persists one stage's output. The path is returned even when the
// save fails; the failure is logged and the caller must treat the stage
// as not checkpointed on the next run.
func (s *Store) Save(stage Stage, data any) (string, error) {
	path := s.Path(stage)

	enc := gnfmt.GNjson{}
	bytes, err := enc.Encode(data)
	if err != nil {
		s.log.Error("cannot encode checkpoint",
			"stage", stage, "error", err)
		return path, EncodeError(stage, err)
	}

	if err = os.WriteFile(path, bytes, 0644); err != nil {
		s.log.Error("cannot write checkpoint",
			"stage", stage, "path", path, "error", err)
		return path, WriteError(path, err)
	}
	return path, nil
}

// Load reads one stage's checkpoint into out.
func (s *Store) Load(stage Stage, out any) error {
	path := s.Path(stage)

	bytes, err := os.ReadFile(path)
	if err != nil {
		return ReadError(path, err)
	}

	enc := gnfmt.GNjson{}
	if err = enc.Decode(bytes, out); err != nil {
		return ReadError(path, err)
	}
	return nil
}
