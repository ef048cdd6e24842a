package convert

import (
	"fmt"

	"github.com/dlstool/vcf/model"
	"github.com/rs/zerolog/log"
)

// V2ToV1 converts a v2 configuration.
//
// The first five modes fill the stage slots in order; later modes are
// dropped. Audio modes are placed with model.AssignToneSlots. Features
// with no v1 equivalent are recorded in the report, one entry per
// instance.
func V2ToV1(src *model.V2) (*model.V1, model.LossReport) {
	dst := &model.V1{Vehicles: src.Vehicles}
	var loss model.LossReport

	for i := range src.Modes {
		mode := &src.Modes[i]
		if i < model.NumStages {
			st := dst.Stage(model.StageIDs[i])
			st.Enabled = mode.Enabled
			if mode.SirenSettings != nil {
				st.Settings = mode.SirenSettings.Clone()
			}
		} else {
			loss = loss.Add(model.FeatureMode, mode.Name, "exceeds v1 5-mode limit")
		}
		loss = modeLoss(loss, mode)
	}

	slots := model.AssignToneSlots(src.AudioModes)
	for i, am := range src.AudioModes {
		if slots[i] == model.NoToneSlot {
			loss = loss.Add(model.FeatureAudioMode, am.Name, "no free v1 tone slot")
		} else {
			ref, ok := toV1Sound(am.SoundSet, am.SoundName)
			if !ok {
				loss = loss.Add(model.FeatureSound, am.Name,
					fmt.Sprintf("soundset %q has no v1 equivalent, using %s", am.SoundSet, ref))
			}
			*dst.Sound.Slot(slots[i]) = ref
		}
		if am.Yield {
			loss = loss.Add(model.FeatureYield, am.Name+"/Yield", "v1 audio has no yield")
		}
	}

	for i, g := range src.AudioControlGroups {
		name := g.Name
		if name == "" {
			name = fmt.Sprintf("AudioControlGroup[%d]", i+1)
		}
		loss = loss.Add(model.FeatureAudioControlGroup, name, "v1 has no audio control groups")
	}
	if src.PatternSync != "" {
		loss = loss.Add(model.FeaturePatternSync, "PatternSync", "v1 has no pattern sync")
	}
	if src.SpeedDrift != 0 {
		loss = loss.Add(model.FeatureSpeedDrift, "SpeedDrift", "v1 has no speed drift")
	}
	if src.DefaultMode != "" {
		loss = loss.Add(model.FeatureDefaultMode, "DefaultMode", "v1 has no default mode")
	}

	if n := len(src.Modes) - model.NumStages; n > 0 {
		log.Debug().Int("dropped", n).Msg("v2 modes truncated to v1 stages")
	}
	log.Debug().
		Int("modes", len(src.Modes)).
		Int("audioModes", len(src.AudioModes)).
		Int("losses", len(loss)).
		Msg("converted v2 to v1")
	return dst, loss
}

func modeLoss(loss model.LossReport, mode *model.Mode) model.LossReport {
	if mode.Yield {
		loss = loss.Add(model.FeatureYield, mode.Name+"/Yield", "v1 stages have no yield")
	}
	for i := range mode.Conditions {
		loss = loss.Add(model.FeatureCondition, at(mode.Name, "Conditions/Condition", i), "v1 has no mode conditions")
	}
	for i := range mode.Triggers {
		loss = loss.Add(model.FeatureTrigger, at(mode.Name, "Triggers/Trigger", i), "v1 has no mode triggers")
	}
	for i := range mode.Extras {
		loss = loss.Add(model.FeatureExtra, at(mode.Name, "Extras/Extra", i), "v1 has no vehicle extras")
	}
	for i := range mode.Animations {
		loss = loss.Add(model.FeatureAnimation, at(mode.Name, "Animations/Animation", i), "v1 has no animations")
	}
	for i := range mode.Paints {
		loss = loss.Add(model.FeaturePaint, at(mode.Name, "Paints/Paint", i), "v1 has no paint changes")
	}
	for i := range mode.Modkits {
		loss = loss.Add(model.FeatureModkit, at(mode.Name, "Modkits/Modkit", i), "v1 has no modkits")
	}
	return loss
}

func at(mode, path string, i int) string {
	return fmt.Sprintf("%s/%s[%d]", mode, path, i+1)
}
