package plugincfg

import (
	"bufio"
	"bytes"
	"path/filepath"
	"strings"

	"github.com/dlstool/vcf/schema"
	"github.com/dlstool/vcf/vcfio"
	"github.com/go-ini/ini"
	"github.com/pkg/errors"
)

// FileName is the plugin configuration file name.
const FileName = "DLS.ini"

// Paths returns the plugin configuration file and the vehicle
// configuration folder of a game installation rooted at gameRoot.
func Paths(gameRoot string) (iniPath, vcfDir string) {
	plugins := filepath.Join(gameRoot, "plugins")
	return filepath.Join(plugins, FileName), filepath.Join(plugins, "DLS")
}

// File is a parsed DLS.ini.
type File struct {
	cfg *ini.File
}

// Load reads and parses the file at path.
func Load(path string) (*File, error) {
	b, err := vcfio.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Parse(b)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}
	return f, nil
}

// Parse parses DLS.ini contents.
func Parse(b []byte) (*File, error) {
	cfg, err := ini.LoadSources(ini.LoadOptions{
		InsensitiveKeys:  true,
		AllowBooleanKeys: true,
	}, stripSlashComments(b))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return &File{cfg: cfg}, nil
}

func stripSlashComments(b []byte) []byte {
	var out bytes.Buffer
	sc := bufio.NewScanner(bytes.NewReader(b))
	sc.Buffer(make([]byte, 0, 64*1024), len(b)+1)
	for sc.Scan() {
		line := sc.Bytes()
		if bytes.HasPrefix(bytes.TrimSpace(line), []byte("//")) {
			continue
		}
		out.Write(line)
		out.WriteByte('\n')
	}
	return out.Bytes()
}

// Sections returns the section names in file order.
func (f *File) Sections() []string {
	var out []string
	for _, s := range f.cfg.Sections() {
		if s.Name() != ini.DefaultSection {
			out = append(out, s.Name())
		}
	}
	return out
}

// HasSection reports whether the file has a section called name.
func (f *File) HasSection(name string) bool { return f.cfg.HasSection(name) }

// Keys returns the lower cased key names of section.
func (f *File) Keys(section string) []string {
	s, err := f.cfg.GetSection(section)
	if err != nil {
		return nil
	}
	return s.KeyStrings()
}

// Value returns the value of key in section, or "".
func (f *File) Value(section, key string) string {
	s, err := f.cfg.GetSection(section)
	if err != nil {
		return ""
	}
	k, err := s.GetKey(strings.ToLower(key))
	if err != nil {
		return ""
	}
	return k.String()
}

var (
	v1KeyboardKeys = set("lightstage", "tadvisor", "sirentoggle", "tone1", "tone2", "tone3", "tone4",
		"auxtoggle", "manual", "horn", "steadyburn", "interiorlt", "indl", "indr", "hazard",
		"lockall", "uimodifier", "uikey")
	v1SettingsKeys = set("sirencontrolnondls", "ailightscontrol", "indenabled", "brakelightsenabled")
	v2SettingsKeys = set("audioname", "audioref", "disabledcontrols", "extrapatch", "devmode", "brakelights")

	v2ControlSections = set("lockall", "killall", "intlt", "indl", "indr", "hzrd",
		"cycle_stages", "reverse_cycle_stages", "toggle_stages", "toggle_stage3",
		"cycle_ta", "reverse_cycle_ta", "audio_horn", "toggle_siren", "cycle_siren",
		"reverse_cycle_siren", "audio_siren1_manual", "audio_siren1", "audio_siren2", "audio_siren3")
)

func set(keys ...string) map[string]bool {
	m := make(map[string]bool, len(keys))
	for _, k := range keys {
		m[k] = true
	}
	return m
}

func anyIn(keys []string, want map[string]bool) bool {
	for _, k := range keys {
		if want[k] {
			return true
		}
	}
	return false
}

// Signals are the weighted hints towards each plugin generation found
// in a file.
type Signals struct {
	V1 int `json:"v1" yaml:"v1"`
	V2 int `json:"v2" yaml:"v2"`
}

// Score weighs the sections and keys of f. A v1 file has a Keyboard
// section with single key bindings and v1 Settings keys; a v2 file has
// one section per control and v2 Settings keys.
func Score(f *File) Signals {
	var s Signals
	if f.HasSection("Keyboard") {
		s.V1 += 2
		if anyIn(f.Keys("Keyboard"), v1KeyboardKeys) {
			s.V1 += 2
		}
	}
	if f.HasSection("UI") {
		s.V1++
	}
	if f.HasSection("Settings") {
		keys := f.Keys("Settings")
		if anyIn(keys, v1SettingsKeys) {
			s.V1 += 2
		}
		if anyIn(keys, v2SettingsKeys) {
			s.V2 += 2
		}
	}
	controls := map[string]bool{}
	for _, name := range f.Sections() {
		if n := strings.ToLower(name); v2ControlSections[n] {
			controls[n] = true
		}
	}
	if len(controls) >= 2 {
		s.V2 += 3
	}
	return s
}

// Version resolves the signals to a plugin generation, or schema.Unknown.
func (s Signals) Version() schema.Version {
	switch {
	case s.V2 > s.V1 && s.V2 >= 3:
		return schema.V2
	case s.V1 > s.V2 && s.V1 >= 2:
		return schema.V1
	case s.V2 >= 2:
		return schema.V2
	case s.V1 >= 2:
		return schema.V1
	}
	return schema.Unknown
}

// InferVersion guesses the installed plugin generation from f.
func InferVersion(f *File) schema.Version { return Score(f).Version() }
