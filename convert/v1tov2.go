package convert

import (
	"github.com/dlstool/vcf/analyzer"
	"github.com/dlstool/vcf/model"
	"github.com/rs/zerolog/log"
)

// V1ToV2 converts a v1 configuration.
//
// Every stage becomes a mode named after it, disabled stages included, so
// the five stages survive a round trip through v2. Each non-empty sound
// slot becomes an audio mode named after the slot.
func V1ToV2(src *model.V1) (*model.V2, model.LossReport) {
	dst := &model.V2{Vehicles: src.Vehicles}
	var loss model.LossReport

	for _, id := range model.StageIDs {
		st := src.Stage(id)
		settings := st.Settings.Clone()
		dst.Modes = append(dst.Modes, model.Mode{
			Name:          id.String(),
			Enabled:       st.Enabled,
			SirenSettings: &settings,
		})
	}

	for slot := model.SlotTone1; slot < model.NumToneSlots; slot++ {
		ref := *src.Sound.Slot(slot)
		if ref == "" {
			continue
		}
		s := toV2Sound(ref)
		dst.AudioModes = append(dst.AudioModes, model.AudioMode{
			Name:      slot.String(),
			SoundSet:  s.set,
			SoundName: s.name,
		})
	}

	if !src.TrafficAdvisory.IsZero() {
		loss = loss.Add(model.FeatureTrafficAdvisory, "TrafficAdvisory", "v2 has no traffic advisory")
	}
	sm := src.SpecialModes
	if sm.SirenUI != "" {
		loss = loss.Add(model.FeatureSirenUI, "SpecialModes/SirenUI", "v2 has no custom siren UI")
	}
	if analyzer.PresetSet(sm.PresetSirenOnLeave) {
		loss = loss.Add(model.FeaturePresetSirenOnLeave, "SpecialModes/PresetSirenOnLeaveVehicle", "v2 has no preset on leave")
	}
	if sm.WailSetup != (model.WailSetup{}) {
		loss = loss.Add(model.FeatureWailSetup, "SpecialModes/WailSetup", "v2 has no wail setup")
	}
	if sm.SteadyBurn != (model.SteadyBurn{}) {
		loss = loss.Add(model.FeatureSteadyBurn, "SpecialModes/SteadyBurn", "v2 has no steady burn")
	}
	if src.Sound.AirHornInterruptsSiren {
		loss = loss.Add(model.FeatureAirHornInterrupts, "SoundSettings/AirHornInterruptsSiren", "v2 has no air horn interrupt")
	}
	if src.GetStage3FromCarcols {
		loss = loss.Add(model.FeatureGetStage3FromCarcols, "StageSettings/GetStage3FromCarcols", "v2 has no carcols stage import")
	}

	log.Debug().
		Int("modes", len(dst.Modes)).
		Int("audioModes", len(dst.AudioModes)).
		Int("losses", len(loss)).
		Msg("converted v1 to v2")
	return dst, loss
}
