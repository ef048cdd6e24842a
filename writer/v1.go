package writer

import (
	"bytes"
	"encoding/xml"
	"io"

	"github.com/dlstool/vcf/model"
)

type v1Document struct {
	XMLName         xml.Name           `xml:"CONFIG"`
	Models          string             `xml:"Models"`
	StageSettings   v1StageSettings    `xml:"StageSettings"`
	SpecialModes    v1SpecialModes     `xml:"SpecialModes"`
	SoundSettings   v1SoundSettings    `xml:"SoundSettings"`
	TrafficAdvisory *v1TrafficAdvisory `xml:"TrafficAdvisory,omitempty"`
	Sirens          v1Sirens           `xml:"Sirens"`
}

type v1StageSettings struct {
	Stage1Enabled        bool `xml:"Stage1Enabled"`
	Stage2Enabled        bool `xml:"Stage2Enabled"`
	Stage3Enabled        bool `xml:"Stage3Enabled"`
	CustomStage1Enabled  bool `xml:"CustomStage1Enabled"`
	CustomStage2Enabled  bool `xml:"CustomStage2Enabled"`
	GetStage3FromCarcols bool `xml:"GetStage3FromCarcols"`
}

type v1SpecialModes struct {
	SirenUI                   string `xml:"SirenUI"`
	PresetSirenOnLeaveVehicle string `xml:"PresetSirenOnLeaveVehicle"`
	WailSetup                 struct {
		Enabled    bool   `xml:"WailSetupEnabled"`
		LightStage string `xml:"WailLightStage"`
		SirenTone  string `xml:"WailSirenTone"`
	} `xml:"WailSetup"`
	SteadyBurn struct {
		Enabled bool   `xml:"SteadyBurnEnabled"`
		Pattern string `xml:"Pattern"`
		Sirens  string `xml:"Sirens"`
	} `xml:"SteadyBurn"`
}

type v1SoundSettings struct {
	Tone1                  string `xml:"Tone1"`
	Tone2                  string `xml:"Tone2"`
	Tone3                  string `xml:"Tone3"`
	Tone4                  string `xml:"Tone4"`
	Horn                   string `xml:"Horn"`
	AirHornInterruptsSiren bool   `xml:"AirHornInterruptsSiren"`
}

type v1TrafficAdvisory struct {
	Type                    string  `xml:"Type"`
	DivergeOnly             bool    `xml:"DivergeOnly"`
	AutoEnableStages        string  `xml:"AutoEnableStages"`
	DefaultEnabledDirection string  `xml:"DefaultEnabledDirection"`
	AutoDisableStages       string  `xml:"AutoDisableStages"`
	L                       *string `xml:"L,omitempty"`
	EL                      *string `xml:"EL,omitempty"`
	CL                      *string `xml:"CL,omitempty"`
	C                       *string `xml:"C,omitempty"`
	CR                      *string `xml:"CR,omitempty"`
	ER                      *string `xml:"ER,omitempty"`
	R                       *string `xml:"R,omitempty"`
}

type v1Sirens struct {
	Stage1       sirenSettings `xml:"Stage1"`
	Stage2       sirenSettings `xml:"Stage2"`
	Stage3       sirenSettings `xml:"Stage3"`
	CustomStage1 sirenSettings `xml:"CustomStage1"`
	CustomStage2 sirenSettings `xml:"CustomStage2"`
}

func fromV1(m *model.V1) *v1Document {
	doc := &v1Document{
		Models: m.Vehicles,
		StageSettings: v1StageSettings{
			Stage1Enabled:        m.Stages[model.Stage1].Enabled,
			Stage2Enabled:        m.Stages[model.Stage2].Enabled,
			Stage3Enabled:        m.Stages[model.Stage3].Enabled,
			CustomStage1Enabled:  m.Stages[model.CustomStage1].Enabled,
			CustomStage2Enabled:  m.Stages[model.CustomStage2].Enabled,
			GetStage3FromCarcols: m.GetStage3FromCarcols,
		},
		SoundSettings: v1SoundSettings{
			Tone1:                  m.Sound.Tone1,
			Tone2:                  m.Sound.Tone2,
			Tone3:                  m.Sound.Tone3,
			Tone4:                  m.Sound.Tone4,
			Horn:                   m.Sound.Horn,
			AirHornInterruptsSiren: m.Sound.AirHornInterruptsSiren,
		},
		Sirens: v1Sirens{
			Stage1:       fromSirenSettings(&m.Stages[model.Stage1].Settings),
			Stage2:       fromSirenSettings(&m.Stages[model.Stage2].Settings),
			Stage3:       fromSirenSettings(&m.Stages[model.Stage3].Settings),
			CustomStage1: fromSirenSettings(&m.Stages[model.CustomStage1].Settings),
			CustomStage2: fromSirenSettings(&m.Stages[model.CustomStage2].Settings),
		},
	}

	sm := &doc.SpecialModes
	sm.SirenUI = m.SpecialModes.SirenUI
	sm.PresetSirenOnLeaveVehicle = m.SpecialModes.PresetSirenOnLeave
	sm.WailSetup.Enabled = m.SpecialModes.WailSetup.Enabled
	sm.WailSetup.LightStage = m.SpecialModes.WailSetup.LightStage
	sm.WailSetup.SirenTone = m.SpecialModes.WailSetup.SirenTone
	sm.SteadyBurn.Enabled = m.SpecialModes.SteadyBurn.Enabled
	sm.SteadyBurn.Pattern = m.SpecialModes.SteadyBurn.Pattern
	sm.SteadyBurn.Sirens = m.SpecialModes.SteadyBurn.Sirens

	if ta := m.TrafficAdvisory; ta.Type != "" || !ta.IsZero() {
		doc.TrafficAdvisory = fromAdvisory(ta)
	}
	return doc
}

func fromAdvisory(ta model.TrafficAdvisory) *v1TrafficAdvisory {
	out := &v1TrafficAdvisory{
		Type:                    string(ta.Type),
		DivergeOnly:             ta.DivergeOnly,
		AutoEnableStages:        ta.AutoEnableStages,
		DefaultEnabledDirection: ta.DefaultEnabledDirection,
		AutoDisableStages:       ta.AutoDisableStages,
	}
	for _, seg := range ta.Segments {
		pattern := seg.Pattern
		switch seg.Position {
		case model.SegmentL:
			out.L = &pattern
		case model.SegmentEL:
			out.EL = &pattern
		case model.SegmentCL:
			out.CL = &pattern
		case model.SegmentC:
			out.C = &pattern
		case model.SegmentCR:
			out.CR = &pattern
		case model.SegmentER:
			out.ER = &pattern
		case model.SegmentR:
			out.R = &pattern
		}
	}
	return out
}

// V1 writes m to w as a v1 document.
func V1(w io.Writer, m *model.V1, opts ...Option) error {
	return encode(w, fromV1(m), opts)
}

// MarshalV1 returns m as a v1 document.
func MarshalV1(m *model.V1, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := V1(&buf, m, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
