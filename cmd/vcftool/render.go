package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dlstool/vcf/analyzer"
	"github.com/dlstool/vcf/catalog"
	"github.com/dlstool/vcf/model"
	"github.com/dlstool/vcf/schema"
	"github.com/pkg/errors"
)

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func writeSummary(w io.Writer, name string, summary any) error {
	switch s := summary.(type) {
	case analyzer.V1Summary:
		writeV1Summary(w, name, s)
	case analyzer.V2Summary:
		writeV2Summary(w, name, s)
	default:
		return errors.Errorf("no summary for %s", name)
	}
	return nil
}

func writeV1Summary(w io.Writer, name string, s analyzer.V1Summary) {
	fmt.Fprintf(w, "%s: DLS v1, %d of %d stages enabled, %d sirens\n\n",
		name, s.EnabledStages, model.NumStages, s.TotalSirens)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "STAGE\tTAG\tENABLED\tSIRENS\tBPM\tTEXTURE")
	for _, st := range s.Stages {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%s\n",
			st.Name, st.Tag, yesNo(st.Enabled), st.Sirens, st.BPM, st.Texture)
	}
	tw.Flush()

	fmt.Fprintln(w)
	tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, t := range s.Tones {
		sound := t.Sound
		if !t.Present {
			sound = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\n", t.Slot, sound)
	}
	fmt.Fprintf(tw, "air horn interrupts siren\t%s\n", yesNo(s.AirHornInterruptsSiren))
	fmt.Fprintf(tw, "custom siren UI\t%s\n", yesNo(s.CustomSirenUI))
	fmt.Fprintf(tw, "wail setup\t%s\n", yesNo(s.WailSetup))
	fmt.Fprintf(tw, "steady burn\t%s\n", yesNo(s.SteadyBurn))
	fmt.Fprintf(tw, "preset on leave\t%s\n", yesNo(s.PresetOnLeave))
	advisory := "off"
	if s.Advisory.Enabled {
		advisory = fmt.Sprintf("%s, %d segments", s.Advisory.Type, s.Advisory.Segments)
	}
	fmt.Fprintf(tw, "traffic advisory\t%s\n", advisory)
	tw.Flush()
}

func writeV2Summary(w io.Writer, name string, s analyzer.V2Summary) {
	fmt.Fprintf(w, "%s: DLS v2 for %q, %d modes, %d audio modes, %d sirens\n\n",
		name, s.Vehicles, s.ModeCount, s.AudioModeCount, s.TotalSirens)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "MODE\tENABLED\tYIELD\tSIRENS\tBPM\tEXTRAS\tCONDITIONS\tTRIGGERS")
	for i, m := range s.Modes {
		mark := ""
		if i == s.DefaultModeIndex {
			mark = " *"
		}
		fmt.Fprintf(tw, "%s%s\t%s\t%s\t%d\t%d\t%d\t%d\t%d\n",
			m.Name, mark, yesNo(m.Enabled), yesNo(m.Yield), m.Sirens, m.BPM,
			m.Extras, m.Conditions, m.Triggers)
	}
	tw.Flush()

	if len(s.AudioModes) > 0 {
		fmt.Fprintln(w)
		tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "AUDIO MODE\tSOUNDSET\tSOUND\tYIELD")
		for _, a := range s.AudioModes {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", a.Name, a.SoundSet, a.Sound, yesNo(a.Yield))
		}
		tw.Flush()
	}

	if len(s.ControlGroups) > 0 {
		fmt.Fprintln(w)
		tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "CONTROL GROUP\tEXCLUSIVE\tENTRIES\tMODES\tCYCLE\tTOGGLE")
		for _, g := range s.ControlGroups {
			fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\t%s\n",
				g.Name, yesNo(g.Exclusive), g.Entries, g.Modes, yesNo(g.Cycle), yesNo(g.Toggle))
		}
		tw.Flush()
	}

	fmt.Fprintln(w)
	tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "pattern sync\t%s\n", yesNo(s.PatternSync))
	fmt.Fprintf(tw, "speed drift\t%s\n", yesNo(s.SpeedDrift))
	if s.DefaultMode != "" {
		fmt.Fprintf(tw, "default mode\t%s\n", s.DefaultMode)
	}
	if s.LossyForV1() {
		ex := s.Exclusive
		fmt.Fprintf(tw, "lost in v1\t%d modes over the limit, %d v2-only features\n",
			s.ModesOverV1Limit, ex.Total())
	} else {
		fmt.Fprintf(tw, "lost in v1\tnothing\n")
	}
	tw.Flush()
}

func writeLoss(w io.Writer, loss model.LossReport) {
	fmt.Fprintf(w, "%d features have no equivalent in the target version:\n", len(loss))
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "  FEATURE\tLOCATION\tREASON")
	for _, l := range loss {
		fmt.Fprintf(tw, "  %s\t%s\t%s\n", l.Feature, l.Location, l.Reason)
	}
	tw.Flush()
}

func writeIndex(w io.Writer, ix *catalog.Index) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, e := range ix.Files {
		fmt.Fprintf(tw, "%s\t%s\n", e.Version, e.RelPath)
	}
	tw.Flush()
	fmt.Fprintf(w, "%d files: %d v1, %d v2, %d unknown\n", len(ix.Files),
		ix.Count(schema.V1), ix.Count(schema.V2), ix.Count(schema.Unknown))
}
