package replay

// Version is written into every new recording
const Version = "2.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F   int  `json:"f"`             // Frame number
	MX  int  `json:"mx"`            // MouseX (aim point)
	MY  int  `json:"my"`            // MouseY
	Aim bool `json:"aim,omitempty"` // Left button held
	Rel bool `json:"rel,omitempty"` // Left button released
	Rst bool `json:"rst,omitempty"` // Reset pressed
}

// ReplayData contains all data needed to replay a game session.
// The simulation has no randomness, so frames and stage are enough.
type ReplayData struct {
	Version   string       `json:"version"`
	Session   string       `json:"session"`
	Stage     string       `json:"stage"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
