package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/rg/internal/application/game"
)

// Version is bumped whenever a simulation change invalidates old runs.
const Version = "1.0"

// Recorder accumulates a run's intent stream and checksums.
type Recorder struct {
	data RunData
}

// NewRecorder creates a recorder for a session seeded with seed and stepped
// at a fixed dt.
func NewRecorder(seed int64, dt float64) *Recorder {
	return &Recorder{data: RunData{
		Version:   Version,
		Seed:      seed,
		DT:        dt,
		StartTime: time.Now().Format(time.RFC3339),
	}}
}

// Record captures one tick. Call it right after Session.Tick with the same
// intent that was passed in.
func (r *Recorder) Record(s *game.Session, in game.Intent) {
	r.data.Frames = append(r.data.Frames, FrameRecord{
		F:        len(r.data.Frames),
		Fwd:      in.Forward,
		Str:      in.Strafe,
		Trn:      in.Turn,
		Fire:     in.Fire,
		Checksum: s.Checksum(),
	})
}

// Data returns the recorded run.
func (r *Recorder) Data() RunData {
	return r.data
}

// Save writes the run to a file as JSON.
func (r *Recorder) Save(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode run: %w", err)
	}
	return nil
}

// Load reads a recorded run from a file.
func Load(filename string) (*RunData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data RunData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode run: %w", err)
	}
	return &data, nil
}
