package replay

// FrameRecord is one recorded tick: the player intent that went in and the
// world checksum that came out.
type FrameRecord struct {
	F        int     `json:"f"`              // Frame number
	Fwd      float64 `json:"fwd,omitempty"`  // Forward
	Str      float64 `json:"str,omitempty"`  // Strafe
	Trn      float64 `json:"trn,omitempty"`  // Turn
	Fire     bool    `json:"fire,omitempty"` // Fire
	Checksum uint64  `json:"sum"`
}

// RunData contains everything needed to reproduce a session: seed, fixed
// timestep and the per-frame intent stream.
type RunData struct {
	Version   string        `json:"version"`
	Seed      int64         `json:"seed"`
	DT        float64       `json:"dt"`
	StartTime string        `json:"startTime"`
	Frames    []FrameRecord `json:"frames"`
}
