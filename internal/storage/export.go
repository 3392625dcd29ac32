package storage

import (
	"encoding/json"
	"io"
	"os"
)

type ExportData struct {
	RunMetadata
	Frames []ExportFrame `json:"frames"`
}

type ExportFrame struct {
	Tick       uint64  `json:"tick"`
	IntervalMs float64 `json:"interval_ms"`
	Particles  int     `json:"particles"`
	Links      int     `json:"links"`
	Repelled   int     `json:"repelled"`
	MeanAlpha  float64 `json:"mean_alpha"`
}

// Export gathers a stored run into one document.
func (s *Store) Export(runID string) (*ExportData, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}
	frames, err := s.LoadFrames(runID)
	if err != nil {
		return nil, err
	}

	data := &ExportData{RunMetadata: *meta, Frames: make([]ExportFrame, len(frames))}
	for i, f := range frames {
		data.Frames[i] = ExportFrame{
			Tick:       f.Tick,
			IntervalMs: float64(f.Interval.Microseconds()) / 1000,
			Particles:  f.Particles,
			Links:      f.Links,
			Repelled:   f.Repelled,
			MeanAlpha:  f.MeanAlpha,
		}
	}
	return data, nil
}

// ExportJSON writes a run as indented JSON to w.
func (s *Store) ExportJSON(w io.Writer, runID string) error {
	data, err := s.Export(runID)
	if err != nil {
		return err
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// ExportJSONFile is ExportJSON into a new file at path.
func (s *Store) ExportJSONFile(path, runID string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return s.ExportJSON(file, runID)
}
