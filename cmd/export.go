/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tbaxter17/coursetable/collection"
	"github.com/tbaxter17/coursetable/internal/csvio"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export [plan file]",
	Short: "Writes a timetable plan as csv",
	Long: `Builds a timetable from the given plan file and writes one csv
row per meeting timeslot. The plan is exported as is, even when it is not
a valid timetable`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		logger := log.WithFields(log.Fields{
			"job":  "exportPlan",
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

		out, _ := cmd.Flags().GetString("out")
		if err := csvio.ExportTimetable(timetable, out); err != nil {
			logger.Error("Could not export timetable ", err)
			os.Exit(1)
		}
		logger.Info("Wrote timetable to ", out)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	catalogFlag(exportCmd)
	exportCmd.Flags().StringP("out", "o", "timetable.csv", "path of the csv file to write")
}
