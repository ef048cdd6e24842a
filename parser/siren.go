package parser

import (
	"github.com/antchfx/xmlquery"
	"github.com/dlstool/vcf/model"
)

// sirenSettings reads a carcols style siren block. n may be nil, which
// yields zero settings.
func (d *decoder) sirenSettings(n *xmlquery.Node) model.SirenSettings {
	var s model.SirenSettings
	if n == nil {
		return s
	}
	s.TimeMultiplier = d.float(n, "timeMultiplier")
	s.LightFalloffMax = d.float(n, "lightFalloffMax")
	s.LightFalloffExponent = d.float(n, "lightFalloffExponent")
	s.LightInnerConeAngle = d.float(n, "lightInnerConeAngle")
	s.LightOuterConeAngle = d.float(n, "lightOuterConeAngle")
	s.LightOffset = d.float(n, "lightOffset")
	s.TextureName = d.text(n, "textureName")
	s.SequencerBPM = d.int(n, "sequencerBpm")

	s.LeftHeadLight = d.uint32(n, "leftHeadLight", "sequencer")
	s.RightHeadLight = d.uint32(n, "rightHeadLight", "sequencer")
	s.LeftTailLight = d.uint32(n, "leftTailLight", "sequencer")
	s.RightTailLight = d.uint32(n, "rightTailLight", "sequencer")

	s.LeftHeadLightMultiples = d.int(n, "leftHeadLightMultiples")
	s.RightHeadLightMultiples = d.int(n, "rightHeadLightMultiples")
	s.LeftTailLightMultiples = d.int(n, "leftTailLightMultiples")
	s.RightTailLightMultiples = d.int(n, "rightTailLightMultiples")

	s.UseRealLights = d.bool(n, "useRealLights")

	for _, item := range children(child(n, "sirens"), "Item") {
		s.Sirens = append(s.Sirens, d.siren(item))
	}
	return s
}

func (d *decoder) siren(n *xmlquery.Node) model.Siren {
	return model.Siren{
		Rotation:   d.motion(child(n, "rotation")),
		Flashiness: d.motion(child(n, "flashiness")),
		Corona: model.Corona{
			Intensity:  d.float(n, "corona", "intensity"),
			Size:       d.float(n, "corona", "size"),
			Pull:       d.float(n, "corona", "pull"),
			FaceCamera: d.bool(n, "corona", "faceCamera"),
		},
		Color:       d.text(n, "color"),
		Intensity:   d.float(n, "intensity"),
		LightGroup:  d.int(n, "lightGroup"),
		Rotate:      d.bool(n, "rotate"),
		Scale:       d.bool(n, "scale"),
		ScaleFactor: d.float(n, "scaleFactor"),
		Flash:       d.bool(n, "flash"),
		Light:       d.bool(n, "light"),
		SpotLight:   d.bool(n, "spotLight"),
		CastShadows: d.bool(n, "castShadows"),
	}
}

func (d *decoder) motion(n *xmlquery.Node) model.Motion {
	if n == nil {
		return model.Motion{}
	}
	return model.Motion{
		Delta:     d.float(n, "delta"),
		Start:     d.float(n, "start"),
		Speed:     d.float(n, "speed"),
		Sequencer: d.uint32(n, "sequencer"),
		Multiples: d.int(n, "multiples"),
		Direction: d.bool(n, "direction"),
		SyncToBPM: d.bool(n, "syncToBpm"),
	}
}
