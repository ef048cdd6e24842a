package analyzer

import (
	"encoding/json"
	"testing"

	"github.com/dlstool/vcf/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sirens(n int) []model.Siren { return make([]model.Siren, n) }

func TestV1(t *testing.T) {
	a := assert.New(t)
	m := &model.V1{}
	for i, n := range []int{20, 20, 20, 8, 8} {
		st := m.Stage(model.StageID(i))
		st.Enabled = i < 3
		st.Settings = model.SirenSettings{SequencerBPM: 100 + i, Sirens: sirens(n)}
	}
	m.Stage(model.Stage1).Settings.TextureName = "VehicleLight_sirenlight"
	m.Sound = model.SoundSettings{Tone1: "VEHICLES_HORNS_SIREN_1", Horn: "SIRENS_AIRHORN", AirHornInterruptsSiren: true}
	m.SpecialModes = model.SpecialModes{SirenUI: "tahoe", PresetSirenOnLeave: "none", SteadyBurn: model.SteadyBurn{Enabled: true}}

	s := V1(m)
	a.Equal(3, s.EnabledStages)
	a.Equal(60, s.TotalSirens)
	a.Equal(StageSummary{Name: "Stage 1", Tag: "Stage1", Enabled: true, Sirens: 20, BPM: 100, Texture: "VehicleLight_sirenlight"}, s.Stages[0])
	a.Equal(StageSummary{Name: "Custom Stage 2", Tag: "CustomStage2", Sirens: 8, BPM: 104}, s.Stages[4])

	a.Equal(ToneSummary{Slot: "Tone1", Sound: "VEHICLES_HORNS_SIREN_1", Present: true}, s.Tones[model.SlotTone1])
	a.Equal(ToneSummary{Slot: "Tone2"}, s.Tones[model.SlotTone2])
	a.True(s.Tones[model.SlotHorn].Present)
	a.True(s.AirHornInterruptsSiren)

	a.True(s.CustomSirenUI)
	a.False(s.WailSetup)
	a.True(s.SteadyBurn)
	a.False(s.PresetOnLeave)
	a.Equal(AdvisorySummary{}, s.Advisory)
}

func TestV1Advisory(t *testing.T) {
	for _, tc := range []struct {
		name string
		ta   model.TrafficAdvisory
		want AdvisorySummary
	}{
		{name: "absent", want: AdvisorySummary{}},
		{name: "off", ta: model.TrafficAdvisory{Type: model.AdvisoryOff}, want: AdvisorySummary{Type: "off"}},
		{
			name: "segments",
			ta: model.TrafficAdvisory{Type: "C", Segments: []model.AdvisorySegment{
				{Position: model.SegmentL, Pattern: "1"}, {Position: model.SegmentR, Pattern: "2"},
			}},
			want: AdvisorySummary{Enabled: true, Type: "C", Segments: 2},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, V1(&model.V1{TrafficAdvisory: tc.ta}).Advisory)
		})
	}
}

func TestPresetSet(t *testing.T) {
	for in, want := range map[string]bool{"": false, "none": false, " None ": false, "Stage2": true} {
		assert.Equal(t, want, PresetSet(in), in)
	}
}

func TestV2(t *testing.T) {
	a := assert.New(t)
	m := &model.V2{
		Vehicles: "police3",
		Modes: []model.Mode{
			{
				Name: "Primary", Enabled: true, Yield: true,
				Conditions:    []model.Condition{{Name: "SpeedAbove", Arguments: "30"}},
				Extras:        []model.Extra{{ID: 1, Enabled: true}, {ID: 2}},
				Paints:        []model.Paint{{ID: 1, Color: 27}},
				SirenSettings: &model.SirenSettings{SequencerBPM: 300, Sirens: sirens(12)},
			},
			{Name: "Secondary", SirenSettings: &model.SirenSettings{Sirens: sirens(4)}},
			{Name: "Park", Enabled: true, Triggers: []model.Condition{{Name: "Parked"}}},
		},
		AudioModes: []model.AudioMode{
			{Name: "Wail", SoundSet: "DLS_Sirens", SoundName: "wail", Yield: true},
		},
		AudioControlGroups: []model.AudioControlGroup{{
			Name: "Main", Exclusive: true, Cycle: "R",
			Entries: []model.AudioControlEntry{{Names: []string{"Wail"}}, {Names: []string{"Wail", "Yelp"}}},
		}},
		SpeedDrift:  0.25,
		DefaultMode: "Park",
	}

	s := V2(m)
	a.Equal("police3", s.Vehicles)
	a.Equal(3, s.ModeCount)
	a.Equal(16, s.TotalSirens)
	a.Equal(ModeSummary{
		Name: "Primary", Enabled: true, Yield: true, HasSirenSettings: true,
		Sirens: 12, BPM: 300, Extras: 2, Conditions: 1,
	}, s.Modes[0])
	a.Equal(ModeSummary{Name: "Park", Enabled: true, Triggers: 1}, s.Modes[2])

	a.Equal(1, s.AudioModeCount)
	a.Equal([]AudioModeSummary{{Name: "Wail", SoundSet: "DLS_Sirens", Sound: "wail", Yield: true}}, s.AudioModes)

	a.False(s.PatternSync)
	a.True(s.SpeedDrift)
	a.True(s.AudioControlGroups)
	a.Equal(1, s.AudioControlGroupCount)
	a.Equal([]ControlGroupSummary{{Name: "Main", Exclusive: true, Entries: 2, Modes: 3, Cycle: true}}, s.ControlGroups)

	a.Equal("Park", s.DefaultMode)
	a.Equal(2, s.DefaultModeIndex)

	a.Equal(Exclusive{Conditions: 1, Triggers: 1, Extras: 2, Paints: 1, Yields: 2, AudioControlGroups: 1}, s.Exclusive)
	a.Equal(8, s.Exclusive.Total())
	a.Zero(s.ModesOverV1Limit)
	a.True(s.LossyForV1())
}

func TestV2DefaultMode(t *testing.T) {
	a := assert.New(t)
	m := &model.V2{Modes: []model.Mode{{Name: "A"}}}
	a.Equal(-1, V2(m).DefaultModeIndex)
	m.DefaultMode = "missing"
	a.Equal(-1, V2(m).DefaultModeIndex)
	m.DefaultMode = "A"
	a.Equal(0, V2(m).DefaultModeIndex)
}

func TestV2LossyForV1(t *testing.T) {
	modes := func(n int) []model.Mode { return make([]model.Mode, n) }
	for _, tc := range []struct {
		name  string
		m     *model.V2
		over  int
		lossy bool
	}{
		{name: "empty", m: &model.V2{}},
		{name: "five modes", m: &model.V2{Modes: modes(5)}},
		{name: "nineteen modes", m: &model.V2{Modes: modes(19)}, over: 14, lossy: true},
		{name: "pattern sync", m: &model.V2{PatternSync: "all"}, lossy: true},
		{name: "six audio modes", m: &model.V2{AudioModes: make([]model.AudioMode, 6)}, lossy: true},
		{name: "four audio modes", m: &model.V2{AudioModes: make([]model.AudioMode, 4)}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			a := assert.New(t)
			s := V2(tc.m)
			a.Equal(tc.over, s.ModesOverV1Limit)
			a.Equal(tc.lossy, s.LossyForV1())
		})
	}
}

func TestSummaryEncoding(t *testing.T) {
	a := assert.New(t)
	s := V2(&model.V2{Vehicles: "car", Modes: []model.Mode{{Name: "A", Enabled: true}}})

	b, err := json.Marshal(s)
	require.NoError(t, err)
	var fromJSON map[string]any
	require.NoError(t, json.Unmarshal(b, &fromJSON))
	a.Equal("car", fromJSON["vehicles"])
	a.EqualValues(-1, fromJSON["defaultModeIndex"])
	a.NotContains(fromJSON, "controlGroups")

	y, err := yaml.Marshal(s)
	require.NoError(t, err)
	var fromYAML V2Summary
	require.NoError(t, yaml.Unmarshal(y, &fromYAML))
	a.Equal(s.Modes, fromYAML.Modes)
	a.Equal(-1, fromYAML.DefaultModeIndex)
	a.Equal(s.Exclusive, fromYAML.Exclusive)
}
