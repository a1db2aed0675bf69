package replay

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/rg/internal/application/game"
	"github.com/younwookim/rg/internal/infrastructure/config"
)

func recordTestRun(t *testing.T, seed int64, frames int) *Recorder {
	t.Helper()
	cfg, err := config.NewDefaultLoader().LoadAll()
	require.NoError(t, err)
	s, err := game.New(cfg, seed)
	require.NoError(t, err)

	rec := NewRecorder(seed, 1.0/60.0)
	intents := []game.Intent{
		{},
		{Forward: 1},
		{Forward: 1, Turn: -0.5},
		{Strafe: 1, Fire: true},
	}
	for i := 0; i < frames; i++ {
		in := intents[i%len(intents)]
		s.Tick(in, 1.0/60.0)
		rec.Record(s, in)
	}
	return rec
}

func TestRecorder(t *testing.T) {
	rec := recordTestRun(t, 11, 30)
	data := rec.Data()

	assert.Equal(t, Version, data.Version)
	assert.Equal(t, int64(11), data.Seed)
	assert.Equal(t, 1.0/60.0, data.DT)
	require.Len(t, data.Frames, 30)

	for i, frame := range data.Frames {
		assert.Equal(t, i, frame.F)
		assert.NotZero(t, frame.Checksum)
	}
}

func TestVerifyReproducesRun(t *testing.T) {
	cfg, err := config.NewDefaultLoader().LoadAll()
	require.NoError(t, err)

	rec := recordTestRun(t, 11, 60)
	data := rec.Data()

	assert.NoError(t, Verify(&data, cfg))
}

func TestVerifyDetectsDivergence(t *testing.T) {
	cfg, err := config.NewDefaultLoader().LoadAll()
	require.NoError(t, err)

	rec := recordTestRun(t, 11, 20)
	data := rec.Data()
	data.Frames[13].Checksum ^= 1

	err = Verify(&data, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "frame 13")
}

func TestVerifyRejectsVersionMismatch(t *testing.T) {
	cfg, err := config.NewDefaultLoader().LoadAll()
	require.NoError(t, err)

	data := &RunData{Version: "0.9"}

	err = Verify(data, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "version")
}

func TestSaveAndLoad(t *testing.T) {
	cfg, err := config.NewDefaultLoader().LoadAll()
	require.NoError(t, err)

	rec := recordTestRun(t, 23, 30)
	path := filepath.Join(t.TempDir(), "run.json")
	require.NoError(t, rec.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, rec.Data(), *loaded)
	assert.NoError(t, Verify(loaded, cfg))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}
