package model

// SirenSettings is a carcols style siren configuration block, shared by v1
// stages and v2 modes.
type SirenSettings struct {
	TimeMultiplier       float64
	LightFalloffMax      float64
	LightFalloffExponent float64
	LightInnerConeAngle  float64
	LightOuterConeAngle  float64
	LightOffset          float64
	TextureName          string
	SequencerBPM         int

	LeftHeadLight  uint32
	RightHeadLight uint32
	LeftTailLight  uint32
	RightTailLight uint32

	LeftHeadLightMultiples  int
	RightHeadLightMultiples int
	LeftTailLightMultiples  int
	RightTailLightMultiples int

	UseRealLights bool

	// Sirens is ordered; a siren's light bulb index is its 1-based
	// position in the list.
	Sirens []Siren
}

// Siren is a single light of a siren configuration.
type Siren struct {
	Rotation   Motion
	Flashiness Motion
	Corona     Corona

	Color       string
	Intensity   float64
	LightGroup  int
	Rotate      bool
	Scale       bool
	ScaleFactor float64
	Flash       bool
	Light       bool
	SpotLight   bool
	CastShadows bool
}

// Motion describes a rotation or flash sequence. Sequencer is the 32 bit
// flash pattern.
type Motion struct {
	Delta     float64
	Start     float64
	Speed     float64
	Sequencer uint32
	Multiples int
	Direction bool
	SyncToBPM bool
}

type Corona struct {
	Intensity  float64
	Size       float64
	Pull       float64
	FaceCamera bool
}

// Clone returns a deep copy of s.
func (s SirenSettings) Clone() SirenSettings {
	if s.Sirens != nil {
		sirens := make([]Siren, len(s.Sirens))
		copy(sirens, s.Sirens)
		s.Sirens = sirens
	}
	return s
}

// ClonePtr returns a deep copy of s, or nil.
func (s *SirenSettings) ClonePtr() *SirenSettings {
	if s == nil {
		return nil
	}
	c := s.Clone()
	return &c
}
