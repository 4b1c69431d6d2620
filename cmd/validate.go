/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tbaxter17/coursetable/collection"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [plan file]",
	Short: "Checks a timetable plan against the catalog",
	Long: `Builds a timetable from the given plan file and reports every
rule it breaks: sections outside the plan's semester, overlapping meeting
times, and courses without exactly one lecture section. Exits non zero
when the timetable is invalid`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		logger := log.WithFields(log.Fields{
			"job":  "validatePlan",
			"plan": args[0],
		})
		catalog, err := loadCatalog(cmd, logger)
		if err != nil {
			os.Exit(1)
		}
		plan, err := collection.LoadPlan(args[0])
		if err != nil {
			logger.Error("Could not load plan ", err)
			os.Exit(1)
		}

		timetable, misses := collection.BuildTimetable(catalog, plan)
		for _, miss := range misses {
			logger.Warn("Skipped selection: ", miss)
		}

		violations := timetable.Violations()
		if len(violations) == 0 && len(misses) == 0 {
			fmt.Println("timetable is valid")
			return
		}
		for _, violation := range violations {
			fmt.Println("violation:", violation)
		}
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	catalogFlag(validateCmd)
}
