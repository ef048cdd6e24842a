package analyzer

import (
	"strings"

	"github.com/dlstool/vcf/model"
)

// V1Summary describes a v1 configuration.
type V1Summary struct {
	Stages [model.NumStages]StageSummary `json:"stages" yaml:"stages"`
	// EnabledStages counts the enabled stage slots.
	EnabledStages int `json:"enabledStages" yaml:"enabledStages"`
	// TotalSirens is summed over enabled stages only.
	TotalSirens int `json:"totalSirens" yaml:"totalSirens"`

	Tones                  [model.NumToneSlots]ToneSummary `json:"tones" yaml:"tones"`
	AirHornInterruptsSiren bool                            `json:"airHornInterruptsSiren" yaml:"airHornInterruptsSiren"`

	CustomSirenUI bool `json:"customSirenUI" yaml:"customSirenUI"`
	WailSetup     bool `json:"wailSetup" yaml:"wailSetup"`
	SteadyBurn    bool `json:"steadyBurn" yaml:"steadyBurn"`
	PresetOnLeave bool `json:"presetOnLeave" yaml:"presetOnLeave"`

	Advisory AdvisorySummary `json:"trafficAdvisory" yaml:"trafficAdvisory"`
}

type StageSummary struct {
	Name    string `json:"name" yaml:"name"`
	Tag     string `json:"tag" yaml:"tag"`
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Sirens  int    `json:"sirens" yaml:"sirens"`
	BPM     int    `json:"bpm" yaml:"bpm"`
	Texture string `json:"texture,omitempty" yaml:"texture,omitempty"`
}

type ToneSummary struct {
	Slot    string `json:"slot" yaml:"slot"`
	Sound   string `json:"sound,omitempty" yaml:"sound,omitempty"`
	Present bool   `json:"present" yaml:"present"`
}

type AdvisorySummary struct {
	Enabled  bool   `json:"enabled" yaml:"enabled"`
	Type     string `json:"type,omitempty" yaml:"type,omitempty"`
	Segments int    `json:"segments" yaml:"segments"`
}

// V1 summarises m.
func V1(m *model.V1) V1Summary {
	var s V1Summary
	for _, id := range model.StageIDs {
		st := m.Stage(id)
		s.Stages[id] = StageSummary{
			Name:    id.String(),
			Tag:     id.Tag(),
			Enabled: st.Enabled,
			Sirens:  len(st.Settings.Sirens),
			BPM:     st.Settings.SequencerBPM,
			Texture: st.Settings.TextureName,
		}
		if st.Enabled {
			s.EnabledStages++
			s.TotalSirens += len(st.Settings.Sirens)
		}
	}

	snd := m.Sound
	for i := model.ToneSlot(0); i < model.NumToneSlots; i++ {
		ref := *snd.Slot(i)
		s.Tones[i] = ToneSummary{Slot: i.String(), Sound: ref, Present: ref != ""}
	}
	s.AirHornInterruptsSiren = snd.AirHornInterruptsSiren

	sm := m.SpecialModes
	s.CustomSirenUI = sm.SirenUI != ""
	s.WailSetup = sm.WailSetup.Enabled
	s.SteadyBurn = sm.SteadyBurn.Enabled
	s.PresetOnLeave = PresetSet(sm.PresetSirenOnLeave)

	ta := m.TrafficAdvisory
	s.Advisory = AdvisorySummary{
		Enabled:  ta.Type != "" && ta.Type != model.AdvisoryOff,
		Type:     string(ta.Type),
		Segments: len(ta.Segments),
	}
	return s
}

// PresetSet reports whether a PresetSirenOnLeaveVehicle value selects a
// preset. Empty and "none" do not.
func PresetSet(v string) bool {
	v = strings.TrimSpace(v)
	return v != "" && !strings.EqualFold(v, "none")
}
