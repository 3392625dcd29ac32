package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/san-kum/plexus/internal/field"
)

func TestExportJSON(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}
	frames := []field.FrameStats{
		{Tick: 1, Particles: 60, Links: 12, MeanAlpha: 0.05},
		{Tick: 2, Interval: 16500 * time.Microsecond, Particles: 60, Links: 14, Repelled: 3, MeanAlpha: 0.06},
	}
	id, err := st.Save(RunMetadata{Preset: "calm", Seed: 5, Ticks: 2}, frames)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := st.ExportJSON(&buf, id); err != nil {
		t.Fatalf("ExportJSON() error = %v", err)
	}

	var got ExportData
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.ID != id || got.Preset != "calm" || got.Seed != 5 {
		t.Errorf("metadata = %+v", got.RunMetadata)
	}
	if len(got.Frames) != 2 {
		t.Fatalf("frames = %d, want 2", len(got.Frames))
	}
	if got.Frames[1].IntervalMs != 16.5 || got.Frames[1].Repelled != 3 {
		t.Errorf("frame = %+v", got.Frames[1])
	}

	path := filepath.Join(t.TempDir(), "run.json")
	if err := st.ExportJSONFile(path, id); err != nil {
		t.Errorf("ExportJSONFile() error = %v", err)
	}
}

func TestExportMissing(t *testing.T) {
	st := New(t.TempDir())
	if _, err := st.Export("nope"); !errors.Is(err, ErrRunNotFound) {
		t.Errorf("error = %v, want ErrRunNotFound", err)
	}
}
