package writer

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"

	"github.com/dlstool/vcf/model"
)

type v2Document struct {
	XMLName     xml.Name `xml:"Model"`
	Vehicles    string   `xml:"vehicles,attr"`
	Audio       *v2Audio `xml:"Audio,omitempty"`
	Modes       []v2Mode `xml:"Modes>Mode"`
	PatternSync string   `xml:"PatternSync,omitempty"`
	SpeedDrift  string   `xml:"SpeedDrift,omitempty"`
	DefaultMode string   `xml:"DefaultMode,omitempty"`
}

type v2Audio struct {
	AudioModes         []v2AudioMode    `xml:"AudioModes>AudioMode"`
	AudioControlGroups []v2ControlGroup `xml:"AudioControlGroups>AudioControlGroup"`
}

type v2AudioMode struct {
	Name  string   `xml:"name,attr"`
	Sound *v2Sound `xml:"Sound,omitempty"`
	Yield *v2Yield `xml:"Yield,omitempty"`
}

type v2Sound struct {
	SoundSet  string `xml:"soundset,attr,omitempty"`
	SoundBank string `xml:"soundbank,attr,omitempty"`
	Name      string `xml:",chardata"`
}

type v2Yield struct {
	Enabled bool `xml:"enabled,attr"`
}

type v2ControlGroup struct {
	Name      string           `xml:"name,attr,omitempty"`
	Cycle     string           `xml:"cycle,attr,omitempty"`
	RevCycle  string           `xml:"rev_cycle,attr,omitempty"`
	Toggle    string           `xml:"toggle,attr,omitempty"`
	Exclusive bool             `xml:"exclusive,attr"`
	Entries   []v2ControlEntry `xml:"AudioModes>AudioMode"`
}

type v2ControlEntry struct {
	Toggle string `xml:"toggle,attr,omitempty"`
	Hold   string `xml:"hold,attr,omitempty"`
	Names  string `xml:",chardata"`
}

type v2Mode struct {
	Name       string         `xml:"name,attr"`
	Enabled    bool           `xml:"enabled,attr"`
	Yield      *v2Yield       `xml:"Yield,omitempty"`
	Conditions []v2Condition  `xml:"Conditions>Condition"`
	Triggers   []v2Condition  `xml:"Triggers>Trigger"`
	Extras     []v2Extra      `xml:"Extras>Extra"`
	Animations []v2Animation  `xml:"Animations>Animation"`
	Paints     []v2Paint      `xml:"Paints>Paint"`
	Modkits    []v2Modkit     `xml:"Modkits>Modkit"`
	Sirens     *sirenSettings `xml:"SirenSettings,omitempty"`
}

type v2Condition struct {
	Name      string `xml:"name,attr,omitempty"`
	Arguments string `xml:"arguments,attr,omitempty"`
	Invert    bool   `xml:"invert,attr,omitempty"`
}

type v2Extra struct {
	ID      int  `xml:"ID,attr"`
	Enabled bool `xml:"Enabled,attr"`
}

type v2Animation struct {
	Dictionary string `xml:"dict,attr,omitempty"`
	Name       string `xml:"name,attr,omitempty"`
}

type v2Paint struct {
	ID    int `xml:"id,attr"`
	Color int `xml:"color,attr"`
}

type v2Modkit struct {
	Type  int `xml:"type,attr"`
	Index int `xml:"index,attr"`
}

func fromV2(m *model.V2) *v2Document {
	doc := &v2Document{
		Vehicles:    m.Vehicles,
		PatternSync: m.PatternSync,
		DefaultMode: m.DefaultMode,
	}
	if m.SpeedDrift != 0 {
		doc.SpeedDrift = formatFloat(m.SpeedDrift)
	}

	if len(m.AudioModes) > 0 || len(m.AudioControlGroups) > 0 {
		doc.Audio = &v2Audio{}
		for _, am := range m.AudioModes {
			doc.Audio.AudioModes = append(doc.Audio.AudioModes, fromAudioMode(am))
		}
		for _, g := range m.AudioControlGroups {
			doc.Audio.AudioControlGroups = append(doc.Audio.AudioControlGroups, fromControlGroup(g))
		}
	}

	for i := range m.Modes {
		doc.Modes = append(doc.Modes, fromMode(&m.Modes[i]))
	}
	return doc
}

func fromAudioMode(am model.AudioMode) v2AudioMode {
	out := v2AudioMode{Name: am.Name, Yield: yield(am.Yield)}
	if am.SoundSet != "" || am.SoundBank != "" || am.SoundName != "" {
		out.Sound = &v2Sound{SoundSet: am.SoundSet, SoundBank: am.SoundBank, Name: am.SoundName}
	}
	return out
}

func fromControlGroup(g model.AudioControlGroup) v2ControlGroup {
	out := v2ControlGroup{
		Name:      g.Name,
		Cycle:     g.Cycle,
		RevCycle:  g.RevCycle,
		Toggle:    g.Toggle,
		Exclusive: g.Exclusive,
	}
	for _, e := range g.Entries {
		out.Entries = append(out.Entries, v2ControlEntry{
			Toggle: e.Toggle,
			Hold:   e.Hold,
			Names:  strings.Join(e.Names, ","),
		})
	}
	return out
}

func fromMode(mode *model.Mode) v2Mode {
	out := v2Mode{Name: mode.Name, Enabled: mode.Enabled, Yield: yield(mode.Yield)}
	out.Conditions = fromConditions(mode.Conditions)
	out.Triggers = fromConditions(mode.Triggers)
	for _, e := range mode.Extras {
		out.Extras = append(out.Extras, v2Extra{ID: e.ID, Enabled: e.Enabled})
	}
	for _, a := range mode.Animations {
		out.Animations = append(out.Animations, v2Animation{Dictionary: a.Dictionary, Name: a.Name})
	}
	for _, p := range mode.Paints {
		out.Paints = append(out.Paints, v2Paint{ID: p.ID, Color: p.Color})
	}
	for _, k := range mode.Modkits {
		out.Modkits = append(out.Modkits, v2Modkit{Type: k.Type, Index: k.Index})
	}
	if mode.SirenSettings != nil {
		s := fromSirenSettings(mode.SirenSettings)
		out.Sirens = &s
	}
	return out
}

func fromConditions(in []model.Condition) []v2Condition {
	var out []v2Condition
	for _, c := range in {
		out = append(out, v2Condition{Name: c.Name, Arguments: c.Arguments, Invert: c.Invert})
	}
	return out
}

func yield(enabled bool) *v2Yield {
	if !enabled {
		return nil
	}
	return &v2Yield{Enabled: true}
}

// V2 writes m to w as a v2 document.
func V2(w io.Writer, m *model.V2, opts ...Option) error {
	return encode(w, fromV2(m), opts)
}

// MarshalV2 returns m as a v2 document.
func MarshalV2(m *model.V2, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := V2(&buf, m, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
