package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "harmonica",
	Short: "Combinatorial music theory toolkit",
	Long:  `Generates, canonicalizes and classifies cyclic pitch class structures, and schedules them into exact rational time.`,
}

var modulus int

func init() {
	rootCmd.PersistentFlags().IntVarP(&modulus, "modulus", "m", 12, "number of pitch classes per octave")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
