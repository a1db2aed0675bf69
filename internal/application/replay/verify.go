package replay

import (
	"fmt"

	"github.com/younwookim/rg/internal/application/game"
	"github.com/younwookim/rg/internal/infrastructure/config"
)

// Verify replays a recorded run through a fresh session and compares the
// world checksum after every tick. Returns an error naming the first
// diverging frame, or nil when the run reproduces exactly.
func Verify(data *RunData, cfg *config.GameConfig) error {
	if data.Version != Version {
		return fmt.Errorf("run version %q does not match %q", data.Version, Version)
	}

	s, err := game.New(cfg, data.Seed)
	if err != nil {
		return fmt.Errorf("failed to rebuild session: %w", err)
	}

	for _, frame := range data.Frames {
		s.Tick(game.Intent{
			Forward: frame.Fwd,
			Strafe:  frame.Str,
			Turn:    frame.Trn,
			Fire:    frame.Fire,
		}, data.DT)
		if got := s.Checksum(); got != frame.Checksum {
			return fmt.Errorf("frame %d diverged: checksum %#x, recorded %#x", frame.F, got, frame.Checksum)
		}
	}
	return nil
}
