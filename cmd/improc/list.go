package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/sc2682/ImageProcessor/sampling"
)

func init() {
	rootCmd.AddCommand(filtersCmd)
	rootCmd.AddCommand(backendsCmd)
}

var filtersCmd = &cobra.Command{
	Use:   `filters`,
	Short: `list resampling filters of the default backend`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		run(func() error {
			names := make([]string, 0, len(sampling.Samplers()))
			for name := range sampling.Samplers() {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Println(name)
			}
			return nil
		})
	},
}

var backendsCmd = &cobra.Command{
	Use:   `backends`,
	Short: `list resize backends`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		run(func() error {
			names := backendNames()
			sort.Strings(names)
			for _, name := range names {
				fmt.Println(name)
			}
			return nil
		})
	},
}
