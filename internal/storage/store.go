package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/plexus/internal/field"
)

var ErrRunNotFound = errors.New("storage: run not found")

const (
	metadataFile = "metadata.json"
	framesFile   = "frames.csv"
)

var frameHeader = []string{"tick", "interval_ms", "particles", "links", "repelled", "mean_alpha"}

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Preset    string             `json:"preset"`
	Timestamp time.Time          `json:"timestamp"`
	Seed      int64              `json:"seed"`
	Width     float64            `json:"width"`
	Height    float64            `json:"height"`
	Ticks     int                `json:"ticks"`
	Count     int                `json:"count"`
	MaxDist   float64            `json:"max_dist"`
	Pointer   *field.Vec2        `json:"pointer,omitempty"`
	Metrics   map[string]float64 `json:"metrics"`
}

// Save writes a run directory holding the metadata and one CSV row per
// frame, and returns the run id.
func (s *Store) Save(meta RunMetadata, frames []field.FrameStats) (string, error) {
	name := meta.Preset
	if name == "" {
		name = "field"
	}
	if meta.Timestamp.IsZero() {
		meta.Timestamp = time.Now()
	}
	meta.ID = fmt.Sprintf("%s_%d", name, meta.Timestamp.UnixMilli())
	runDir := filepath.Join(s.baseDir, meta.ID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	metaFile, err := os.Create(filepath.Join(runDir, metadataFile))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, framesFile))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	if err := w.Write(frameHeader); err != nil {
		return "", err
	}
	for _, f := range frames {
		row := []string{
			strconv.FormatUint(f.Tick, 10),
			strconv.FormatFloat(float64(f.Interval)/float64(time.Millisecond), 'f', 3, 64),
			strconv.Itoa(f.Particles),
			strconv.Itoa(f.Links),
			strconv.Itoa(f.Repelled),
			strconv.FormatFloat(f.MeanAlpha, 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	return meta.ID, nil
}

// List returns every readable run, oldest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("decode %s: %w", runID, err)
	}
	return &meta, nil
}

// LoadFrames reads the per-frame statistics of a run. Malformed rows are
// skipped.
func (s *Store) LoadFrames(runID string) ([]field.FrameStats, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, framesFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []field.FrameStats{}, nil
	}

	frames := make([]field.FrameStats, 0, len(records)-1)
	for _, rec := range records[1:] {
		if len(rec) < len(frameHeader) {
			continue
		}
		tick, err1 := strconv.ParseUint(rec[0], 10, 64)
		intervalMs, err2 := strconv.ParseFloat(rec[1], 64)
		particles, err3 := strconv.Atoi(rec[2])
		links, err4 := strconv.Atoi(rec[3])
		repelled, err5 := strconv.Atoi(rec[4])
		alpha, err6 := strconv.ParseFloat(rec[5], 64)
		if err := errors.Join(err1, err2, err3, err4, err5, err6); err != nil {
			continue
		}
		frames = append(frames, field.FrameStats{
			Tick:      tick,
			Interval:  time.Duration(intervalMs * float64(time.Millisecond)),
			Particles: particles,
			Links:     links,
			Repelled:  repelled,
			MeanAlpha: alpha,
		})
	}
	return frames, nil
}
