package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/siahbug/harmonica/cycle"
	"github.com/siahbug/harmonica/orbit"
	"github.com/siahbug/harmonica/pitch"
	"github.com/spf13/cobra"
)

var (
	cycleStart    int
	cycleMaxSteps int
)

func init() {
	cycleCmd.Flags().IntVarP(&cycleStart, "start", "s", 0, "starting pitch class")
	cycleCmd.Flags().IntVar(&cycleMaxSteps, "max-steps", 0, "step bound (0 = modulus * number of generators)")
	rootCmd.AddCommand(cycleCmd)
}

var cycleCmd = &cobra.Command{
	Use:   "cycle <generators>",
	Short: "Generates an interval cycle",
	Long: `Generates an interval cycle by applying the comma-separated generators
round-robin until the walk closes, then prints the visited pitch classes
and their canonical necklace form.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		generators, err := parseInts(args[0])
		if err != nil {
			panic("Could not parse generators: " + err.Error())
		}

		seq, err := cycle.Generate(cycleStart, generators, modulus, cycleMaxSteps)
		if err != nil {
			panic("Could not generate cycle: " + err.Error())
		}
		canonical, err := orbit.Necklace(seq, modulus)
		if err != nil {
			panic(err.Error())
		}

		fmt.Printf("sequence:  %v\n", seq)
		fmt.Printf("canonical: %v\n", canonical)
		fmt.Printf("names:     %v\n", classNames(seq))
	},
}

func parseInts(s string) ([]int, error) {
	var res []int
	for _, part := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		res = append(res, n)
	}
	return res, nil
}

func classNames(seq []int) []string {
	names := make([]string, len(seq))
	for i, pc := range seq {
		names[i] = pitch.ClassName(pc, modulus)
	}
	return names
}
