package convert

import (
	"fmt"
	"testing"

	"github.com/dlstool/vcf/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleV1() *model.V1 {
	m := &model.V1{Vehicles: "police,police2"}
	for i, id := range model.StageIDs {
		st := m.Stage(id)
		st.Enabled = i%2 == 0
		st.Settings = model.SirenSettings{
			SequencerBPM: 200 + i*10,
			TextureName:  "VehicleLight_sirenlight",
			Sirens: []model.Siren{
				{Color: "0xFFFF0000", Flashiness: model.Motion{Sequencer: 0xAAAAAAAA}, Light: true},
				{Color: "0xFF0000FF", Flashiness: model.Motion{Sequencer: 0x55555555}, LightGroup: i},
			},
		}
	}
	m.Sound = model.SoundSettings{
		Tone1: "VEHICLES_HORNS_SIREN_1",
		Tone2: "VEHICLES_HORNS_SIREN_2",
		Tone4: "RESIDENT_VEHICLES_SIREN_WAIL_01",
		Horn:  "SIRENS_AIRHORN",
	}
	return m
}

func TestV1ToV2(t *testing.T) {
	a := assert.New(t)
	src := sampleV1()
	dst, loss := V1ToV2(src)

	a.True(loss.Empty(), loss.String())
	a.Equal("police,police2", dst.Vehicles)
	require.Len(t, dst.Modes, model.NumStages)
	for i, mode := range dst.Modes {
		id := model.StageIDs[i]
		a.Equal(id.String(), mode.Name)
		a.Equal(src.Stage(id).Enabled, mode.Enabled)
		require.NotNil(t, mode.SirenSettings)
		a.Equal(src.Stage(id).Settings, *mode.SirenSettings)
	}
	a.Equal("Custom Stage 2", dst.Modes[4].Name)
	a.Equal([]model.AudioMode{
		{Name: "Tone1", SoundSet: SoundSetPolice, SoundName: "slow"},
		{Name: "Tone2", SoundSet: SoundSetPolice, SoundName: "fast"},
		{Name: "Tone4", SoundName: "RESIDENT_VEHICLES_SIREN_WAIL_01"},
		{Name: "Horn", SoundSet: SoundSetPolice, SoundName: "horn"},
	}, dst.AudioModes)
	a.Nil(dst.AudioControlGroups)
	a.Empty(dst.PatternSync)
	a.Zero(dst.SpeedDrift)
	a.Empty(dst.DefaultMode)

	dst.Modes[0].SirenSettings.Sirens[0].Color = "changed"
	a.Equal("0xFFFF0000", src.Stage(model.Stage1).Settings.Sirens[0].Color)
}

func TestV1ToV2Loss(t *testing.T) {
	for _, tc := range []struct {
		name    string
		mutate  func(*model.V1)
		feature string
	}{
		{name: "traffic advisory", mutate: func(m *model.V1) { m.TrafficAdvisory.Type = "C" }, feature: model.FeatureTrafficAdvisory},
		{
			name: "advisory segments only",
			mutate: func(m *model.V1) {
				m.TrafficAdvisory.Segments = []model.AdvisorySegment{{Position: model.SegmentL, Pattern: "1"}}
			},
			feature: model.FeatureTrafficAdvisory,
		},
		{name: "siren ui", mutate: func(m *model.V1) { m.SpecialModes.SirenUI = "tahoe" }, feature: model.FeatureSirenUI},
		{name: "preset on leave", mutate: func(m *model.V1) { m.SpecialModes.PresetSirenOnLeave = "Stage2" }, feature: model.FeaturePresetSirenOnLeave},
		{name: "wail setup", mutate: func(m *model.V1) { m.SpecialModes.WailSetup.Enabled = true }, feature: model.FeatureWailSetup},
		{name: "steady burn", mutate: func(m *model.V1) { m.SpecialModes.SteadyBurn.Pattern = "5" }, feature: model.FeatureSteadyBurn},
		{name: "air horn", mutate: func(m *model.V1) { m.Sound.AirHornInterruptsSiren = true }, feature: model.FeatureAirHornInterrupts},
		{name: "carcols stage 3", mutate: func(m *model.V1) { m.GetStage3FromCarcols = true }, feature: model.FeatureGetStage3FromCarcols},
	} {
		t.Run(tc.name, func(t *testing.T) {
			a := assert.New(t)
			m := sampleV1()
			tc.mutate(m)
			_, loss := V1ToV2(m)
			require.Len(t, loss, 1)
			a.Equal(tc.feature, loss[0].Feature)
		})
	}

	m := sampleV1()
	m.TrafficAdvisory.Type = model.AdvisoryOff
	m.SpecialModes.PresetSirenOnLeave = "none"
	_, loss := V1ToV2(m)
	assert.True(t, loss.Empty(), loss.String())
}

func modes(n int) []model.Mode {
	out := make([]model.Mode, n)
	for i := range out {
		out[i] = model.Mode{
			Name:          fmt.Sprintf("Mode %d", i+1),
			Enabled:       true,
			SirenSettings: &model.SirenSettings{SequencerBPM: i, Sirens: []model.Siren{{LightGroup: i}}},
		}
	}
	return out
}

func TestV2ToV1Truncation(t *testing.T) {
	for _, n := range []int{0, 1, 5, 6, 19} {
		t.Run(fmt.Sprint(n), func(t *testing.T) {
			a := assert.New(t)
			dst, loss := V2ToV1(&model.V2{Modes: modes(n)})

			want := n - model.NumStages
			if want < 0 {
				want = 0
			}
			a.Equal(want, loss.Count(model.FeatureMode))
			a.Equal(want, len(loss))
			for i, st := range dst.Stages {
				if i < n {
					a.True(st.Enabled)
					a.Equal(i, st.Settings.SequencerBPM)
				} else {
					a.Equal(model.Stage{}, st)
				}
			}
			for i, l := range loss {
				a.Equal(fmt.Sprintf("Mode %d", model.NumStages+i+1), l.Location)
				a.Equal("exceeds v1 5-mode limit", l.Reason)
			}
		})
	}
}

func TestV2ToV1Empty(t *testing.T) {
	a := assert.New(t)
	dst, loss := V2ToV1(&model.V2{})
	a.True(loss.Empty())
	a.Equal(&model.V1{}, dst)
	for _, st := range dst.Stages {
		a.False(st.Enabled)
	}
}

func TestV2ToV1Loss(t *testing.T) {
	a := assert.New(t)
	src := &model.V2{
		Vehicles: "police3",
		Modes: append([]model.Mode{{
			Name:       "Primary",
			Enabled:    true,
			Yield:      true,
			Conditions: []model.Condition{{Name: "SpeedAbove", Arguments: "30"}, {Name: "Indoors", Invert: true}},
			Triggers:   []model.Condition{{Name: "Braking"}},
			Extras:     []model.Extra{{ID: 1, Enabled: true}},
			Animations: []model.Animation{{Dictionary: "veh@police", Name: "lightbar"}},
			Paints:     []model.Paint{{ID: 1, Color: 27}},
			Modkits:    []model.Modkit{{Type: 48, Index: 2}},
		}}, append(modes(4), model.Mode{
			Name:   "Overflow",
			Extras: []model.Extra{{ID: 4}, {ID: 5}},
		})...),
		AudioModes: []model.AudioMode{
			{Name: "Wail", SoundSet: "DLS_Sirens", SoundName: "wail", Yield: true},
			{Name: "Yelp", SoundSet: SoundSetPolice, SoundName: "fast"},
		},
		AudioControlGroups: []model.AudioControlGroup{{Name: "Main"}, {}},
		PatternSync:        "all",
		SpeedDrift:         0.5,
		DefaultMode:        "Primary",
	}

	dst, loss := V2ToV1(src)
	a.Equal([]model.Loss{
		{Feature: model.FeatureYield, Location: "Primary/Yield", Reason: "v1 stages have no yield"},
		{Feature: model.FeatureCondition, Location: "Primary/Conditions/Condition[1]", Reason: "v1 has no mode conditions"},
		{Feature: model.FeatureCondition, Location: "Primary/Conditions/Condition[2]", Reason: "v1 has no mode conditions"},
		{Feature: model.FeatureTrigger, Location: "Primary/Triggers/Trigger[1]", Reason: "v1 has no mode triggers"},
		{Feature: model.FeatureExtra, Location: "Primary/Extras/Extra[1]", Reason: "v1 has no vehicle extras"},
		{Feature: model.FeatureAnimation, Location: "Primary/Animations/Animation[1]", Reason: "v1 has no animations"},
		{Feature: model.FeaturePaint, Location: "Primary/Paints/Paint[1]", Reason: "v1 has no paint changes"},
		{Feature: model.FeatureModkit, Location: "Primary/Modkits/Modkit[1]", Reason: "v1 has no modkits"},
		{Feature: model.FeatureMode, Location: "Overflow", Reason: "exceeds v1 5-mode limit"},
		{Feature: model.FeatureExtra, Location: "Overflow/Extras/Extra[1]", Reason: "v1 has no vehicle extras"},
		{Feature: model.FeatureExtra, Location: "Overflow/Extras/Extra[2]", Reason: "v1 has no vehicle extras"},
		{Feature: model.FeatureSound, Location: "Wail", Reason: `soundset "DLS_Sirens" has no v1 equivalent, using DLS_SIRENS_WAIL`},
		{Feature: model.FeatureYield, Location: "Wail/Yield", Reason: "v1 audio has no yield"},
		{Feature: model.FeatureAudioControlGroup, Location: "Main", Reason: "v1 has no audio control groups"},
		{Feature: model.FeatureAudioControlGroup, Location: "AudioControlGroup[2]", Reason: "v1 has no audio control groups"},
		{Feature: model.FeaturePatternSync, Location: "PatternSync", Reason: "v1 has no pattern sync"},
		{Feature: model.FeatureSpeedDrift, Location: "SpeedDrift", Reason: "v1 has no speed drift"},
		{Feature: model.FeatureDefaultMode, Location: "DefaultMode", Reason: "v1 has no default mode"},
	}, []model.Loss(loss))

	a.Equal("police3", dst.Vehicles)
	a.Equal(model.SoundSettings{Tone1: "DLS_SIRENS_WAIL", Tone2: "VEHICLES_HORNS_SIREN_2"}, dst.Sound)
	a.Equal(model.TrafficAdvisory{}, dst.TrafficAdvisory)
	a.Equal(model.SirenSettings{}, dst.Stage(model.Stage1).Settings)
	a.Equal(3, dst.Stage(model.CustomStage2).Settings.SequencerBPM)
}

func TestV2ToV1AudioSlots(t *testing.T) {
	a := assert.New(t)
	src := &model.V2{AudioModes: []model.AudioMode{
		{Name: "Rumbler", SoundName: "RUMBLER"},
		{Name: "Airhorn", SoundSet: SoundSetPolice, SoundName: "horn"},
		{Name: "Siren 2", SoundSet: "POLICEVEHSIRENS", SoundName: "Fast"},
		{Name: "Hi-Lo", SoundName: "HILO"},
		{Name: "Priority", SoundName: "PRIO"},
		{Name: "Piercer", SoundName: "PIERCE"},
	}}
	dst, loss := V2ToV1(src)
	a.Equal(model.SoundSettings{
		Tone1: "RUMBLER",
		Tone2: "VEHICLES_HORNS_SIREN_2",
		Tone3: "HILO",
		Tone4: "PRIO",
		Horn:  "SIRENS_AIRHORN",
	}, dst.Sound)
	a.Equal(model.LossReport{{Feature: model.FeatureAudioMode, Location: "Piercer", Reason: "no free v1 tone slot"}}, loss)
}

func TestV2ToV1Isolation(t *testing.T) {
	src := &model.V2{Modes: modes(1)}
	dst, _ := V2ToV1(src)
	dst.Stage(model.Stage1).Settings.Sirens[0].LightGroup = 42
	assert.Equal(t, 0, src.Modes[0].SirenSettings.Sirens[0].LightGroup)
}

func TestRoundTripV1(t *testing.T) {
	a := assert.New(t)
	src := sampleV1()
	v2, _ := V1ToV2(src)
	back, loss := V2ToV1(v2)

	a.True(loss.Empty(), loss.String())
	a.Equal(src, back)
}

func TestRoundTripV1Lossy(t *testing.T) {
	a := assert.New(t)
	src := sampleV1()
	src.TrafficAdvisory = model.TrafficAdvisory{Type: "C", Segments: []model.AdvisorySegment{{Position: model.SegmentC, Pattern: "3"}}}
	src.SpecialModes.SirenUI = "tahoe"

	v2, _ := V1ToV2(src)
	back, _ := V2ToV1(v2)
	a.Equal(src.Stages, back.Stages)
	a.Equal(src.Sound, back.Sound)
	a.Equal(model.TrafficAdvisory{}, back.TrafficAdvisory)
	a.Equal(model.SpecialModes{}, back.SpecialModes)
}

func TestSound(t *testing.T) {
	for _, tc := range []struct {
		set, name string
		ref       string
		ok        bool
	}{
		{set: "", name: "VEHICLES_HORNS_SIREN_1", ref: "VEHICLES_HORNS_SIREN_1", ok: true},
		{set: SoundSetPolice, name: "warning", ref: "VEHICLES_HORNS_POLICE_WARNING", ok: true},
		{set: SoundSetPolice, name: "rumbler", ref: "POLICEVEHSIRENS_RUMBLER"},
		{set: "DLS", name: "slow", ref: "DLS_SLOW"},
	} {
		t.Run(tc.ref, func(t *testing.T) {
			a := assert.New(t)
			ref, ok := toV1Sound(tc.set, tc.name)
			a.Equal(tc.ref, ref)
			a.Equal(tc.ok, ok)
		})
	}
	assert.Equal(t, sound{name: "CUSTOM"}, toV2Sound("CUSTOM"))
	assert.Equal(t, sound{SoundSetPolice, "horn"}, toV2Sound("SIRENS_AIRHORN"))
}
