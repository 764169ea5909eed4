package cmd

import (
	"fmt"
	"strings"

	"github.com/siahbug/harmonica/cycle"
	"github.com/siahbug/harmonica/midifile"
	"github.com/siahbug/harmonica/rational"
	"github.com/siahbug/harmonica/schedule"
	"github.com/spf13/cobra"
)

var (
	renderStart     int
	renderDurations string
	renderEvents    int
	renderTempo     int
	renderBase      int
	renderOut       string
)

func init() {
	renderCmd.Flags().IntVarP(&renderStart, "start", "s", 0, "starting pitch class")
	renderCmd.Flags().StringVarP(&renderDurations, "durations", "d", "1/4", "comma-separated beat fractions, cycled")
	renderCmd.Flags().IntVarP(&renderEvents, "events", "n", 32, "number of events to render")
	renderCmd.Flags().IntVarP(&renderTempo, "tempo", "t", 120, "tempo in beats per minute")
	renderCmd.Flags().IntVar(&renderBase, "base", midifile.DefaultBasePitch, "midi pitch for pitch class 0")
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "out.mid", "output file")
	rootCmd.AddCommand(renderCmd)
}

var renderCmd = &cobra.Command{
	Use:   "render <generators>",
	Short: "Renders an interval cycle melody to MIDI",
	Long: `Streams an endless interval cycle melody against a cycled duration
pattern, truncates it at the event bound, and writes the result to a
standard MIDI file.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		generators, err := parseInts(args[0])
		if err != nil {
			panic("Could not parse generators: " + err.Error())
		}
		durations, err := parseDurations(renderDurations)
		if err != nil {
			panic("Could not parse durations: " + err.Error())
		}

		pitches, err := cycle.NewStream(renderStart, generators, modulus)
		if err != nil {
			panic(err.Error())
		}

		events, err := schedule.Schedule(
			pitches,
			schedule.CycleDurations(durations...),
			nil,
			schedule.Bound{MaxEvents: renderEvents},
		)
		if err != nil {
			panic(err.Error())
		}

		if err := midifile.WriteFile(renderOut, events, renderTempo, renderBase); err != nil {
			panic("Could not write midi file: " + err.Error())
		}
		fmt.Printf("Wrote %v events spanning %v beats to %v\n", len(events), events.TotalDuration(), renderOut)
	},
}

func parseDurations(s string) ([]rational.Rat, error) {
	var res []rational.Rat
	for _, part := range strings.Split(s, ",") {
		r, err := rational.Parse(part)
		if err != nil {
			return nil, err
		}
		res = append(res, r)
	}
	return res, nil
}
