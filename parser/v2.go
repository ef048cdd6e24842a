package parser

import (
	"bytes"
	"io"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
	"github.com/dlstool/vcf/model"
	"github.com/dlstool/vcf/schema"
)

var (
	xpAudioModes    = xpath.MustCompile(`/*/Audio/AudioModes/AudioMode`)
	xpControlGroups = xpath.MustCompile(`/*/Audio/AudioControlGroups/AudioControlGroup`)
	xpModes         = xpath.MustCompile(`/*/Modes/Mode`)
)

// V2 parses a DLS v2 document.
func V2(r io.Reader) (*model.V2, error) {
	doc, root, err := load(r, schema.V2)
	if err != nil {
		return nil, err
	}
	d := &decoder{}
	m := d.v2(doc, root)
	if d.err != nil {
		return nil, d.err
	}
	return m, nil
}

// V2Bytes parses an in-memory DLS v2 document.
func V2Bytes(b []byte) (*model.V2, error) { return V2(bytes.NewReader(b)) }

func (d *decoder) v2(doc, root *xmlquery.Node) *model.V2 {
	m := &model.V2{}
	m.Vehicles, _ = attr(root, schema.AttrVehicles)

	for _, n := range xmlquery.QuerySelectorAll(doc, xpAudioModes) {
		m.AudioModes = append(m.AudioModes, d.audioMode(n))
	}
	for _, n := range xmlquery.QuerySelectorAll(doc, xpControlGroups) {
		m.AudioControlGroups = append(m.AudioControlGroups, d.controlGroup(n))
	}
	for _, n := range xmlquery.QuerySelectorAll(doc, xpModes) {
		m.Modes = append(m.Modes, d.mode(n))
	}

	m.PatternSync = d.text(root, "PatternSync")
	m.SpeedDrift = d.float(root, "SpeedDrift")
	m.DefaultMode = d.text(root, "DefaultMode")
	return m
}

func (d *decoder) audioMode(n *xmlquery.Node) model.AudioMode {
	am := model.AudioMode{Name: d.required(n, "name")}
	if snd := child(n, "Sound"); snd != nil {
		am.SoundSet, _ = attr(snd, "soundset")
		am.SoundBank, _ = attr(snd, "soundbank")
		am.SoundName = strings.TrimSpace(snd.InnerText())
	}
	am.Yield = d.attrBool(child(n, "Yield"), "enabled")
	return am
}

func (d *decoder) controlGroup(n *xmlquery.Node) model.AudioControlGroup {
	g := model.AudioControlGroup{Exclusive: d.attrBool(n, "exclusive")}
	g.Name, _ = attr(n, "name")
	g.Cycle, _ = attr(n, "cycle")
	g.RevCycle, _ = attr(n, "rev_cycle")
	g.Toggle, _ = attr(n, "toggle")
	for _, e := range children(child(n, "AudioModes"), "AudioMode") {
		entry := model.AudioControlEntry{Names: splitNames(e.InnerText())}
		entry.Toggle, _ = attr(e, "toggle")
		entry.Hold, _ = attr(e, "hold")
		g.Entries = append(g.Entries, entry)
	}
	return g
}

func splitNames(s string) []string {
	var names []string
	for _, name := range strings.Split(s, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

func (d *decoder) mode(n *xmlquery.Node) model.Mode {
	mode := model.Mode{Name: d.required(n, "name"), Enabled: true}
	if v, ok := attr(n, "enabled"); ok {
		mode.Enabled = parseBool(v)
	}
	mode.Yield = d.attrBool(child(n, "Yield"), "enabled")

	mode.Conditions = d.conditions(child(n, "Conditions"), "Condition")
	mode.Triggers = d.conditions(child(n, "Triggers"), "Trigger")
	for _, e := range children(child(n, "Extras"), "Extra") {
		d.required(e, "ID")
		mode.Extras = append(mode.Extras, model.Extra{ID: d.attrInt(e, "ID"), Enabled: d.attrBool(e, "Enabled")})
	}
	for _, e := range children(child(n, "Animations"), "Animation") {
		a := model.Animation{}
		a.Dictionary, _ = attr(e, "dict")
		a.Name, _ = attr(e, "name")
		mode.Animations = append(mode.Animations, a)
	}
	for _, e := range children(child(n, "Paints"), "Paint") {
		mode.Paints = append(mode.Paints, model.Paint{ID: d.attrInt(e, "id"), Color: d.attrInt(e, "color")})
	}
	for _, e := range children(child(n, "Modkits"), "Modkit") {
		mode.Modkits = append(mode.Modkits, model.Modkit{Type: d.attrInt(e, "type"), Index: d.attrInt(e, "index")})
	}

	if ss := child(n, "SirenSettings"); ss != nil {
		s := d.sirenSettings(ss)
		mode.SirenSettings = &s
	}
	return mode
}

func (d *decoder) conditions(n *xmlquery.Node, name string) []model.Condition {
	var out []model.Condition
	for _, e := range children(n, name) {
		c := model.Condition{Invert: d.attrBool(e, "invert")}
		c.Name, _ = attr(e, "name")
		c.Arguments, _ = attr(e, "arguments")
		out = append(out, c)
	}
	return out
}
