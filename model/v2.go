package model

// V2 is a DLS v2 vehicle configuration. Element text is trimmed on read,
// as for V1.
type V2 struct {
	Vehicles string

	// Modes is ordered; the index is significant for conversion.
	Modes              []Mode
	AudioModes         []AudioMode
	AudioControlGroups []AudioControlGroup

	// PatternSync is enabled when non-empty.
	PatternSync string
	// SpeedDrift is enabled when non-zero.
	SpeedDrift float64
	// DefaultMode names the mode selected by default, if any.
	DefaultMode string
}

// Mode is a v2 light mode.
type Mode struct {
	Name    string
	Enabled bool
	Yield   bool

	Conditions []Condition
	Triggers   []Condition
	Extras     []Extra
	Animations []Animation
	Paints     []Paint
	Modkits    []Modkit

	SirenSettings *SirenSettings
}

// Condition is a trigger or requirement expression, e.g. SpeedAbove 30.
type Condition struct {
	Name      string
	Arguments string
	Invert    bool
}

// Extra toggles a vehicle extra part.
type Extra struct {
	ID      int
	Enabled bool
}

type Animation struct {
	Dictionary string
	Name       string
}

type Paint struct {
	ID    int
	Color int
}

type Modkit struct {
	Type  int
	Index int
}

// AudioMode is a v2 sound mode.
type AudioMode struct {
	Name      string
	SoundSet  string
	SoundBank string
	SoundName string
	Yield     bool
}

// AudioControlGroup couples audio modes for UI and behaviour.
type AudioControlGroup struct {
	Name      string
	Cycle     string
	RevCycle  string
	Toggle    string
	Exclusive bool
	Entries   []AudioControlEntry
}

type AudioControlEntry struct {
	Names  []string
	Toggle string
	Hold   string
}

// ModeIndex returns the index of the mode called name, or -1.
func (m *V2) ModeIndex(name string) int {
	for i := range m.Modes {
		if m.Modes[i].Name == name {
			return i
		}
	}
	return -1
}
