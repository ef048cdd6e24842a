package convert

import "strings"

// SoundSetPolice is the game soundset holding the stock police sirens.
const SoundSetPolice = "policevehsirens"

type sound struct {
	set, name string
}

// v1 audio references with a stock v2 equivalent.
var (
	v1Sounds = map[string]sound{
		"VEHICLES_HORNS_SIREN_1":        {SoundSetPolice, "slow"},
		"VEHICLES_HORNS_SIREN_2":        {SoundSetPolice, "fast"},
		"VEHICLES_HORNS_POLICE_WARNING": {SoundSetPolice, "warning"},
		"SIRENS_AIRHORN":                {SoundSetPolice, "horn"},
	}
	v2Sounds = func() map[sound]string {
		m := make(map[sound]string, len(v1Sounds))
		for ref, s := range v1Sounds {
			m[s] = ref
		}
		return m
	}()
)

// toV2Sound resolves a v1 audio reference. Unknown references are kept
// verbatim as the sound name with no soundset.
func toV2Sound(ref string) sound {
	if s, ok := v1Sounds[ref]; ok {
		return s
	}
	return sound{name: ref}
}

// toV1Sound resolves a v2 sound. ok is false when the reference had to be
// synthesised from the soundset and sound names.
func toV1Sound(set, name string) (ref string, ok bool) {
	if set == "" {
		return name, true
	}
	if ref, ok := v2Sounds[sound{strings.ToLower(set), strings.ToLower(name)}]; ok {
		return ref, true
	}
	return strings.ToUpper(set + "_" + name), false
}
