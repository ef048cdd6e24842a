package model

import "fmt"

// StageID identifies one of the five fixed v1 stage slots.
type StageID int

const (
	Stage1 StageID = iota
	Stage2
	Stage3
	CustomStage1
	CustomStage2

	// NumStages is the fixed number of v1 stage slots.
	NumStages = 5
)

// StageIDs lists the stage slots in document order.
var StageIDs = [NumStages]StageID{Stage1, Stage2, Stage3, CustomStage1, CustomStage2}

var stageTags = [NumStages]string{"Stage1", "Stage2", "Stage3", "CustomStage1", "CustomStage2"}
var stageNames = [NumStages]string{"Stage 1", "Stage 2", "Stage 3", "Custom Stage 1", "Custom Stage 2"}

// Tag returns the XML element name of the stage, e.g. CustomStage1.
func (id StageID) Tag() string {
	if id < 0 || int(id) >= NumStages {
		return fmt.Sprintf("StageID(%d)", int(id))
	}
	return stageTags[id]
}

// String returns the display name of the stage, e.g. "Custom Stage 1".
func (id StageID) String() string {
	if id < 0 || int(id) >= NumStages {
		return fmt.Sprintf("StageID(%d)", int(id))
	}
	return stageNames[id]
}

// V1 is a DLS v1 vehicle configuration.
//
// String fields hold trimmed text: documents are read with surrounding
// whitespace removed, so a value with leading or trailing blanks does not
// survive a write and re-read.
type V1 struct {
	Vehicles             string
	GetStage3FromCarcols bool

	Stages          [NumStages]Stage
	SpecialModes    SpecialModes
	Sound           SoundSettings
	TrafficAdvisory TrafficAdvisory
}

// Stage is a v1 stage slot. Slots always exist; a slot absent from the
// source document is disabled with zero settings.
type Stage struct {
	Enabled  bool
	Settings SirenSettings
}

// Stage returns the stage in slot id.
func (m *V1) Stage(id StageID) *Stage { return &m.Stages[id] }

type SpecialModes struct {
	// SirenUI names a custom siren UI; empty means the default UI.
	SirenUI            string
	PresetSirenOnLeave string
	WailSetup          WailSetup
	SteadyBurn         SteadyBurn
}

type WailSetup struct {
	Enabled    bool
	LightStage string
	SirenTone  string
}

type SteadyBurn struct {
	Enabled bool
	Pattern string
	Sirens  string
}

// SoundSettings holds the v1 audio references.
type SoundSettings struct {
	Tone1                  string
	Tone2                  string
	Tone3                  string
	Tone4                  string
	Horn                   string
	AirHornInterruptsSiren bool
}

// ToneSlot identifies a v1 sound slot.
type ToneSlot int

const (
	SlotTone1 ToneSlot = iota
	SlotTone2
	SlotTone3
	SlotTone4
	SlotHorn

	NumToneSlots = 5
)

var toneSlotNames = [NumToneSlots]string{"Tone1", "Tone2", "Tone3", "Tone4", "Horn"}

func (s ToneSlot) String() string {
	if s < 0 || int(s) >= NumToneSlots {
		return fmt.Sprintf("ToneSlot(%d)", int(s))
	}
	return toneSlotNames[s]
}

// Slot returns a pointer to the sound reference held in slot s.
func (s *SoundSettings) Slot(slot ToneSlot) *string {
	switch slot {
	case SlotTone1:
		return &s.Tone1
	case SlotTone2:
		return &s.Tone2
	case SlotTone3:
		return &s.Tone3
	case SlotTone4:
		return &s.Tone4
	case SlotHorn:
		return &s.Horn
	}
	panic(fmt.Sprintf("invalid tone slot %d", int(slot)))
}

// AdvisoryType is the traffic advisory mode. Values other than the
// constants below are kept verbatim.
type AdvisoryType string

// AdvisoryOff disables the traffic advisory.
const AdvisoryOff AdvisoryType = "off"

// SegmentPosition is a traffic advisory light bar position.
type SegmentPosition string

const (
	SegmentL  SegmentPosition = "L"
	SegmentEL SegmentPosition = "EL"
	SegmentCL SegmentPosition = "CL"
	SegmentC  SegmentPosition = "C"
	SegmentCR SegmentPosition = "CR"
	SegmentER SegmentPosition = "ER"
	SegmentR  SegmentPosition = "R"
)

// SegmentPositions lists the light bar positions, left to right.
var SegmentPositions = []SegmentPosition{SegmentL, SegmentEL, SegmentCL, SegmentC, SegmentCR, SegmentER, SegmentR}

type TrafficAdvisory struct {
	Type                    AdvisoryType
	DivergeOnly             bool
	AutoEnableStages        string
	DefaultEnabledDirection string
	AutoDisableStages       string

	// Segments holds the positions present in the document, in
	// SegmentPositions order and each at most once. A present position may
	// have an empty pattern.
	Segments []AdvisorySegment
}

type AdvisorySegment struct {
	Position SegmentPosition
	Pattern  string
}

// IsZero reports whether the advisory carries no data at all.
func (ta TrafficAdvisory) IsZero() bool {
	return (ta.Type == "" || ta.Type == AdvisoryOff) &&
		!ta.DivergeOnly &&
		ta.AutoEnableStages == "" &&
		ta.DefaultEnabledDirection == "" &&
		ta.AutoDisableStages == "" &&
		len(ta.Segments) == 0
}
