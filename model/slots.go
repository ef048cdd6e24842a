package model

import "strings"

// NoToneSlot marks an audio mode with no v1 slot.
const NoToneSlot ToneSlot = -1

// AssignToneSlots maps v2 audio modes onto v1 sound slots, returning one
// slot per mode, or NoToneSlot. Modes named like a slot claim it first
// ("Tone2", "siren 3", anything containing "horn"), earliest claimant
// winning; the remaining modes then fill free tone slots in order. The
// horn slot is only ever taken by name.
func AssignToneSlots(modes []AudioMode) []ToneSlot {
	slots := make([]ToneSlot, len(modes))
	var taken [NumToneSlots]bool
	for i, am := range modes {
		slots[i] = NoToneSlot
		if s, ok := slotByName(am.Name); ok && !taken[s] {
			slots[i], taken[s] = s, true
		}
	}
	next := SlotTone1
	for i := range modes {
		if slots[i] != NoToneSlot {
			continue
		}
		for next < SlotHorn && taken[next] {
			next++
		}
		if next == SlotHorn {
			break
		}
		slots[i], taken[next] = next, true
	}
	return slots
}

func slotByName(name string) (ToneSlot, bool) {
	n := normalise(name)
	for i, s := range []ToneSlot{SlotTone1, SlotTone2, SlotTone3, SlotTone4} {
		digit := string(rune('1' + i))
		if n == "tone"+digit || n == "siren"+digit {
			return s, true
		}
	}
	if strings.Contains(n, "horn") {
		return SlotHorn, true
	}
	return NoToneSlot, false
}

// normalise lower cases s and drops everything but letters and digits.
func normalise(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
