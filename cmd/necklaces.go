package cmd

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/siahbug/harmonica/classify"
	"github.com/siahbug/harmonica/model"
	"github.com/siahbug/harmonica/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(necklacesCmd)
}

var necklacesCmd = &cobra.Command{
	Use:   "necklaces <cardinality>",
	Short: "Enumerates necklace classes",
	Long: `Enumerates every necklace class of the given cardinality: all subsets of
pitch class space are generated, reduced to canonical form and deduplicated,
then printed with their interval vectors and labels.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cardinality, err := strconv.Atoi(args[0])
		if err != nil || cardinality < 1 || cardinality > modulus {
			panic("Cardinality must be an integer in [1, modulus]")
		}

		classifier, err := classify.New(modulus)
		if err != nil {
			panic(err.Error())
		}

		classes := make(map[string]model.ClassInfo)
		subset := make([]int, 0, cardinality)
		var walk func(next int)
		walk = func(next int) {
			if len(subset) == cardinality {
				info, err := classifier.Classify(subset)
				if err != nil {
					panic(err.Error())
				}
				classes[classify.Key(info.CanonicalForm)] = info
				return
			}
			for pc := next; pc < modulus; pc++ {
				subset = append(subset, pc)
				walk(pc + 1)
				subset = subset[:len(subset)-1]
			}
		}
		walk(0)

		keys := util.GetKeys(classes)
		sort.Strings(keys)
		fmt.Printf("%v necklace classes of cardinality %v mod %v\n", len(keys), cardinality, modulus)
		for _, k := range keys {
			info := classes[k]
			fmt.Printf("%-24v vector=%v modes=%v", fmt.Sprintf("%v", info.CanonicalForm), info.IntervalVector, info.NumModes)
			if info.Label != "" {
				fmt.Printf("  (%v)", info.Label)
			}
			fmt.Println()
		}
	},
}
