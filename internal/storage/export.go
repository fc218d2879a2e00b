package storage

import (
	"encoding/json"
	"io"
	"os"
)

type ExportData struct {
	ID     string      `json:"id"`
	Seed   int64       `json:"seed"`
	Bodies int         `json:"bodies"`
	Steps  int         `json:"steps"`
	Frames [][]float64 `json:"frames"`
}

func exportJSON(w io.Writer, meta *RunMetadata, frames [][]float64) error {
	data := ExportData{
		ID:     meta.ID,
		Seed:   meta.Seed,
		Bodies: meta.Bodies,
		Steps:  len(frames),
		Frames: frames,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// ExportJSON writes a recording to path as a single JSON document.
func (s *Store) ExportJSON(path, runID string) error {
	meta, frames, err := s.loadAll(runID)
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return exportJSON(file, meta, frames)
}

// ExportJSONStdout writes a recording to standard output.
func (s *Store) ExportJSONStdout(runID string) error {
	meta, frames, err := s.loadAll(runID)
	if err != nil {
		return err
	}
	return exportJSON(os.Stdout, meta, frames)
}

func (s *Store) loadAll(runID string) (*RunMetadata, [][]float64, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, nil, err
	}
	frames, err := s.LoadFrames(runID)
	if err != nil {
		return nil, nil, err
	}
	return meta, frames, nil
}
