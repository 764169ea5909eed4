package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/siahbug/harmonica/classify"
	"github.com/siahbug/harmonica/midifile"
	"github.com/spf13/cobra"
)

var classifyMidiPath string

func init() {
	classifyCmd.Flags().StringVar(&classifyMidiPath, "midi", "", "classify the chords of a .mid file instead of arguments")
	rootCmd.AddCommand(classifyCmd)
}

var classifyCmd = &cobra.Command{
	Use:   "classify <pitch-classes>",
	Short: "Classifies pitch class structures",
	Long: `Classifies a pitch class sequence (e.g. "0,4,7") into its necklace class
and prints the derived metadata as JSON. With --midi, every distinct
sounding pitch class set of the file is classified instead.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		classifier, err := classify.New(modulus)
		if err != nil {
			panic(err.Error())
		}

		var sequences [][]int
		if classifyMidiPath != "" {
			s, err := midifile.ReadFile(classifyMidiPath)
			if err != nil {
				panic("Could not read midi file: " + err.Error())
			}
			sequences, err = midifile.ExtractSets(s, modulus)
			if err != nil {
				panic(err.Error())
			}
		} else {
			if len(args) != 1 {
				panic("Pass pitch classes or --midi")
			}
			seq, err := parseInts(args[0])
			if err != nil {
				panic("Could not parse pitch classes: " + err.Error())
			}
			sequences = [][]int{seq}
		}

		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		for _, seq := range sequences {
			info, err := classifier.Classify(seq)
			if err != nil {
				fmt.Printf("Skipping %v because: %v\n", seq, err)
				continue
			}
			encoder.Encode(info)
		}
	},
}
