package parser

import (
	"bytes"
	"io"

	"github.com/antchfx/xmlquery"
	"github.com/dlstool/vcf/model"
	"github.com/dlstool/vcf/schema"
)

// V1 parses a DLS v1 document.
func V1(r io.Reader) (*model.V1, error) {
	_, root, err := load(r, schema.V1)
	if err != nil {
		return nil, err
	}
	d := &decoder{}
	m := d.v1(root)
	if d.err != nil {
		return nil, d.err
	}
	return m, nil
}

// V1Bytes parses an in-memory DLS v1 document.
func V1Bytes(b []byte) (*model.V1, error) { return V1(bytes.NewReader(b)) }

func (d *decoder) v1(root *xmlquery.Node) *model.V1 {
	m := &model.V1{Vehicles: d.text(root, "Models")}

	if ss := child(root, "StageSettings"); ss != nil {
		for _, id := range model.StageIDs {
			m.Stages[id].Enabled = d.bool(ss, id.Tag()+"Enabled")
		}
		m.GetStage3FromCarcols = d.bool(ss, "GetStage3FromCarcols")
	}

	sirens := child(root, "Sirens")
	for _, id := range model.StageIDs {
		m.Stages[id].Settings = d.sirenSettings(child(sirens, id.Tag()))
	}

	if sm := child(root, "SpecialModes"); sm != nil {
		m.SpecialModes = model.SpecialModes{
			SirenUI:            d.text(sm, "SirenUI"),
			PresetSirenOnLeave: d.text(sm, "PresetSirenOnLeaveVehicle"),
			WailSetup: model.WailSetup{
				Enabled:    d.bool(sm, "WailSetup", "WailSetupEnabled"),
				LightStage: d.text(sm, "WailSetup", "WailLightStage"),
				SirenTone:  d.text(sm, "WailSetup", "WailSirenTone"),
			},
			SteadyBurn: model.SteadyBurn{
				Enabled: d.bool(sm, "SteadyBurn", "SteadyBurnEnabled"),
				Pattern: d.text(sm, "SteadyBurn", "Pattern"),
				Sirens:  d.text(sm, "SteadyBurn", "Sirens"),
			},
		}
	}

	if snd := child(root, "SoundSettings"); snd != nil {
		m.Sound = model.SoundSettings{
			Tone1:                  d.text(snd, "Tone1"),
			Tone2:                  d.text(snd, "Tone2"),
			Tone3:                  d.text(snd, "Tone3"),
			Tone4:                  d.text(snd, "Tone4"),
			Horn:                   d.text(snd, "Horn"),
			AirHornInterruptsSiren: d.bool(snd, "AirHornInterruptsSiren"),
		}
	}

	if ta := child(root, "TrafficAdvisory"); ta != nil {
		m.TrafficAdvisory = model.TrafficAdvisory{
			Type:                    model.AdvisoryType(d.textOr(string(model.AdvisoryOff), ta, "Type")),
			DivergeOnly:             d.bool(ta, "DivergeOnly"),
			AutoEnableStages:        d.text(ta, "AutoEnableStages"),
			DefaultEnabledDirection: d.text(ta, "DefaultEnabledDirection"),
			AutoDisableStages:       d.text(ta, "AutoDisableStages"),
		}
		for _, pos := range model.SegmentPositions {
			if _, p, ok := lookup(ta, string(pos)); ok {
				m.TrafficAdvisory.Segments = append(m.TrafficAdvisory.Segments,
					model.AdvisorySegment{Position: pos, Pattern: p})
			}
		}
	}
	return m
}
