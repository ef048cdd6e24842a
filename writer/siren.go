package writer

import "github.com/dlstool/vcf/model"

type sirenSettings struct {
	TimeMultiplier       value  `xml:"timeMultiplier"`
	LightFalloffMax      value  `xml:"lightFalloffMax"`
	LightFalloffExponent value  `xml:"lightFalloffExponent"`
	LightInnerConeAngle  value  `xml:"lightInnerConeAngle"`
	LightOuterConeAngle  value  `xml:"lightOuterConeAngle"`
	LightOffset          value  `xml:"lightOffset"`
	TextureName          string `xml:"textureName"`
	SequencerBPM         value  `xml:"sequencerBpm"`

	LeftHeadLight  sequencer `xml:"leftHeadLight"`
	RightHeadLight sequencer `xml:"rightHeadLight"`
	LeftTailLight  sequencer `xml:"leftTailLight"`
	RightTailLight sequencer `xml:"rightTailLight"`

	LeftHeadLightMultiples  value `xml:"leftHeadLightMultiples"`
	RightHeadLightMultiples value `xml:"rightHeadLightMultiples"`
	LeftTailLightMultiples  value `xml:"leftTailLightMultiples"`
	RightTailLightMultiples value `xml:"rightTailLightMultiples"`

	UseRealLights value `xml:"useRealLights"`

	Sirens []siren `xml:"sirens>Item"`
}

type sequencer struct {
	Sequencer value `xml:"sequencer"`
}

type siren struct {
	Rotation   motion `xml:"rotation"`
	Flashiness motion `xml:"flashiness"`
	Corona     corona `xml:"corona"`

	Color       value `xml:"color"`
	Intensity   value `xml:"intensity"`
	LightGroup  value `xml:"lightGroup"`
	Rotate      value `xml:"rotate"`
	Scale       value `xml:"scale"`
	ScaleFactor value `xml:"scaleFactor"`
	Flash       value `xml:"flash"`
	Light       value `xml:"light"`
	SpotLight   value `xml:"spotLight"`
	CastShadows value `xml:"castShadows"`
}

type motion struct {
	Delta     value `xml:"delta"`
	Start     value `xml:"start"`
	Speed     value `xml:"speed"`
	Sequencer value `xml:"sequencer"`
	Multiples value `xml:"multiples"`
	Direction value `xml:"direction"`
	SyncToBPM value `xml:"syncToBpm"`
}

type corona struct {
	Intensity  value `xml:"intensity"`
	Size       value `xml:"size"`
	Pull       value `xml:"pull"`
	FaceCamera value `xml:"faceCamera"`
}

func fromSirenSettings(s *model.SirenSettings) sirenSettings {
	out := sirenSettings{
		TimeMultiplier:       float(s.TimeMultiplier),
		LightFalloffMax:      float(s.LightFalloffMax),
		LightFalloffExponent: float(s.LightFalloffExponent),
		LightInnerConeAngle:  float(s.LightInnerConeAngle),
		LightOuterConeAngle:  float(s.LightOuterConeAngle),
		LightOffset:          float(s.LightOffset),
		TextureName:          s.TextureName,
		SequencerBPM:         integer(s.SequencerBPM),

		LeftHeadLight:  sequencer{seq(s.LeftHeadLight)},
		RightHeadLight: sequencer{seq(s.RightHeadLight)},
		LeftTailLight:  sequencer{seq(s.LeftTailLight)},
		RightTailLight: sequencer{seq(s.RightTailLight)},

		LeftHeadLightMultiples:  integer(s.LeftHeadLightMultiples),
		RightHeadLightMultiples: integer(s.RightHeadLightMultiples),
		LeftTailLightMultiples:  integer(s.LeftTailLightMultiples),
		RightTailLightMultiples: integer(s.RightTailLightMultiples),

		UseRealLights: boolean(s.UseRealLights),
	}
	for i := range s.Sirens {
		out.Sirens = append(out.Sirens, fromSiren(&s.Sirens[i]))
	}
	return out
}

func fromSiren(s *model.Siren) siren {
	return siren{
		Rotation:   fromMotion(s.Rotation),
		Flashiness: fromMotion(s.Flashiness),
		Corona: corona{
			Intensity:  float(s.Corona.Intensity),
			Size:       float(s.Corona.Size),
			Pull:       float(s.Corona.Pull),
			FaceCamera: boolean(s.Corona.FaceCamera),
		},
		Color:       value{s.Color},
		Intensity:   float(s.Intensity),
		LightGroup:  integer(s.LightGroup),
		Rotate:      boolean(s.Rotate),
		Scale:       boolean(s.Scale),
		ScaleFactor: float(s.ScaleFactor),
		Flash:       boolean(s.Flash),
		Light:       boolean(s.Light),
		SpotLight:   boolean(s.SpotLight),
		CastShadows: boolean(s.CastShadows),
	}
}

func fromMotion(m model.Motion) motion {
	return motion{
		Delta:     float(m.Delta),
		Start:     float(m.Start),
		Speed:     float(m.Speed),
		Sequencer: seq(m.Sequencer),
		Multiples: integer(m.Multiples),
		Direction: boolean(m.Direction),
		SyncToBPM: boolean(m.SyncToBPM),
	}
}
