package model

import (
	"fmt"
	"strings"
)

// Loss records one source feature with no representation in the
// conversion target.
type Loss struct {
	Feature  string `json:"feature" yaml:"feature"`
	Location string `json:"location" yaml:"location"`
	Reason   string `json:"reason" yaml:"reason"`
}

func (l Loss) String() string {
	return fmt.Sprintf("%s at %s: %s", l.Feature, l.Location, l.Reason)
}

// LossReport is the ordered list of features dropped by a conversion.
type LossReport []Loss

// Add returns r with a loss appended.
func (r LossReport) Add(feature, location, reason string) LossReport {
	return append(r, Loss{Feature: feature, Location: location, Reason: reason})
}

// Empty reports whether nothing was lost.
func (r LossReport) Empty() bool { return len(r) == 0 }

// Count returns the number of losses of the given feature.
func (r LossReport) Count(feature string) int {
	n := 0
	for _, l := range r {
		if l.Feature == feature {
			n++
		}
	}
	return n
}

// Features returns the per feature loss counts.
func (r LossReport) Features() map[string]int {
	counts := map[string]int{}
	for _, l := range r {
		counts[l.Feature]++
	}
	return counts
}

func (r LossReport) String() string {
	if r.Empty() {
		return "no features lost"
	}
	var b strings.Builder
	for i, l := range r {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(l.String())
	}
	return b.String()
}

// Feature names used in loss reports.
const (
	FeatureMode              = "Mode"
	FeatureAudioMode         = "AudioMode"
	FeatureSound             = "Sound"
	FeatureCondition         = "Condition"
	FeatureTrigger           = "Trigger"
	FeatureExtra             = "Extra"
	FeatureAnimation         = "Animation"
	FeaturePaint             = "Paint"
	FeatureModkit            = "Modkit"
	FeatureYield             = "Yield"
	FeatureAudioControlGroup = "AudioControlGroup"
	FeaturePatternSync       = "PatternSync"
	FeatureSpeedDrift        = "SpeedDrift"
	FeatureDefaultMode       = "DefaultMode"

	FeatureTrafficAdvisory      = "TrafficAdvisory"
	FeatureSirenUI              = "SirenUI"
	FeaturePresetSirenOnLeave   = "PresetSirenOnLeaveVehicle"
	FeatureWailSetup            = "WailSetup"
	FeatureSteadyBurn           = "SteadyBurn"
	FeatureAirHornInterrupts    = "AirHornInterruptsSiren"
	FeatureGetStage3FromCarcols = "GetStage3FromCarcols"
)
