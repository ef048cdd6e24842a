package analyzer

import "github.com/dlstool/vcf/model"

// V2Summary describes a v2 configuration.
type V2Summary struct {
	Vehicles    string        `json:"vehicles" yaml:"vehicles"`
	ModeCount   int           `json:"modeCount" yaml:"modeCount"`
	Modes       []ModeSummary `json:"modes" yaml:"modes"`
	TotalSirens int           `json:"totalSirens" yaml:"totalSirens"`

	AudioModeCount int                `json:"audioModeCount" yaml:"audioModeCount"`
	AudioModes     []AudioModeSummary `json:"audioModes" yaml:"audioModes"`

	PatternSync            bool                  `json:"patternSync" yaml:"patternSync"`
	SpeedDrift             bool                  `json:"speedDrift" yaml:"speedDrift"`
	AudioControlGroups     bool                  `json:"audioControlGroups" yaml:"audioControlGroups"`
	AudioControlGroupCount int                   `json:"audioControlGroupCount" yaml:"audioControlGroupCount"`
	ControlGroups          []ControlGroupSummary `json:"controlGroups,omitempty" yaml:"controlGroups,omitempty"`

	// DefaultMode is the name of the default mode, if any. DefaultModeIndex
	// is its position in Modes, or -1 when absent or not found.
	DefaultMode      string `json:"defaultMode,omitempty" yaml:"defaultMode,omitempty"`
	DefaultModeIndex int    `json:"defaultModeIndex" yaml:"defaultModeIndex"`

	Exclusive        Exclusive `json:"exclusive" yaml:"exclusive"`
	ModesOverV1Limit int       `json:"modesOverV1Limit" yaml:"modesOverV1Limit"`
}

type ModeSummary struct {
	Name             string `json:"name" yaml:"name"`
	Enabled          bool   `json:"enabled" yaml:"enabled"`
	Yield            bool   `json:"yield" yaml:"yield"`
	HasSirenSettings bool   `json:"hasSirenSettings" yaml:"hasSirenSettings"`
	Sirens           int    `json:"sirens" yaml:"sirens"`
	BPM              int    `json:"bpm" yaml:"bpm"`
	Extras           int    `json:"extras" yaml:"extras"`
	Conditions       int    `json:"conditions" yaml:"conditions"`
	Triggers         int    `json:"triggers" yaml:"triggers"`
}

type AudioModeSummary struct {
	Name     string `json:"name" yaml:"name"`
	SoundSet string `json:"soundset,omitempty" yaml:"soundset,omitempty"`
	Sound    string `json:"sound,omitempty" yaml:"sound,omitempty"`
	Yield    bool   `json:"yield" yaml:"yield"`
}

type ControlGroupSummary struct {
	Name      string `json:"name" yaml:"name"`
	Exclusive bool   `json:"exclusive" yaml:"exclusive"`
	Entries   int    `json:"entries" yaml:"entries"`
	Modes     int    `json:"modes" yaml:"modes"`
	Cycle     bool   `json:"cycle" yaml:"cycle"`
	Toggle    bool   `json:"toggle" yaml:"toggle"`
}

// Exclusive counts instances of features that have no v1 representation.
type Exclusive struct {
	Conditions         int `json:"conditions" yaml:"conditions"`
	Triggers           int `json:"triggers" yaml:"triggers"`
	Extras             int `json:"extras" yaml:"extras"`
	Animations         int `json:"animations" yaml:"animations"`
	Paints             int `json:"paints" yaml:"paints"`
	Modkits            int `json:"modkits" yaml:"modkits"`
	Yields             int `json:"yields" yaml:"yields"`
	AudioControlGroups int `json:"audioControlGroups" yaml:"audioControlGroups"`
	AudioModesOverV1   int `json:"audioModesOverV1" yaml:"audioModesOverV1"`
}

// Total returns the number of counted instances.
func (e Exclusive) Total() int {
	return e.Conditions + e.Triggers + e.Extras + e.Animations + e.Paints +
		e.Modkits + e.Yields + e.AudioControlGroups + e.AudioModesOverV1
}

// V2 summarises m.
func V2(m *model.V2) V2Summary {
	s := V2Summary{
		Vehicles:               m.Vehicles,
		ModeCount:              len(m.Modes),
		AudioModeCount:         len(m.AudioModes),
		PatternSync:            m.PatternSync != "",
		SpeedDrift:             m.SpeedDrift != 0,
		AudioControlGroups:     len(m.AudioControlGroups) > 0,
		AudioControlGroupCount: len(m.AudioControlGroups),
		DefaultMode:            m.DefaultMode,
		DefaultModeIndex:       -1,
	}
	if m.DefaultMode != "" {
		s.DefaultModeIndex = m.ModeIndex(m.DefaultMode)
	}
	if n := len(m.Modes) - model.NumStages; n > 0 {
		s.ModesOverV1Limit = n
	}

	for i := range m.Modes {
		mode := &m.Modes[i]
		ms := ModeSummary{
			Name:       mode.Name,
			Enabled:    mode.Enabled,
			Yield:      mode.Yield,
			Extras:     len(mode.Extras),
			Conditions: len(mode.Conditions),
			Triggers:   len(mode.Triggers),
		}
		if ss := mode.SirenSettings; ss != nil {
			ms.HasSirenSettings = true
			ms.Sirens = len(ss.Sirens)
			ms.BPM = ss.SequencerBPM
			s.TotalSirens += ms.Sirens
		}
		s.Modes = append(s.Modes, ms)

		s.Exclusive.Conditions += len(mode.Conditions)
		s.Exclusive.Triggers += len(mode.Triggers)
		s.Exclusive.Extras += len(mode.Extras)
		s.Exclusive.Animations += len(mode.Animations)
		s.Exclusive.Paints += len(mode.Paints)
		s.Exclusive.Modkits += len(mode.Modkits)
		if mode.Yield {
			s.Exclusive.Yields++
		}
	}

	for _, am := range m.AudioModes {
		s.AudioModes = append(s.AudioModes, AudioModeSummary{
			Name:     am.Name,
			SoundSet: am.SoundSet,
			Sound:    am.SoundName,
			Yield:    am.Yield,
		})
		if am.Yield {
			s.Exclusive.Yields++
		}
	}
	for _, slot := range model.AssignToneSlots(m.AudioModes) {
		if slot == model.NoToneSlot {
			s.Exclusive.AudioModesOverV1++
		}
	}

	for _, g := range m.AudioControlGroups {
		names := 0
		for _, e := range g.Entries {
			names += len(e.Names)
		}
		s.ControlGroups = append(s.ControlGroups, ControlGroupSummary{
			Name:      g.Name,
			Exclusive: g.Exclusive,
			Entries:   len(g.Entries),
			Modes:     names,
			Cycle:     g.Cycle != "",
			Toggle:    g.Toggle != "",
		})
	}
	s.Exclusive.AudioControlGroups = len(m.AudioControlGroups)
	return s
}

// LossyForV1 reports whether converting the summarised model to v1 will
// drop features. Sound references outside the known soundsets are not
// considered; the conversion report is authoritative.
func (s V2Summary) LossyForV1() bool {
	return s.ModesOverV1Limit > 0 || s.Exclusive.Total() > 0 ||
		s.PatternSync || s.SpeedDrift || s.DefaultMode != ""
}
