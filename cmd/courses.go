/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// coursesCmd represents the courses command
var coursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "Lists the courses in the catalog",
	Long: `Loads the course catalog and prints each course with its code
and the sections it runs`,
	Run: func(cmd *cobra.Command, args []string) {
		logger := log.WithFields(log.Fields{
			"job": "listCourses",
		})
		catalog, err := loadCatalog(cmd, logger)
		if err != nil {
			return
		}

		showSections, _ := cmd.Flags().GetBool("sections")
		for _, course := range catalog.Courses() {
			fmt.Printf("%s  %s\n", course.Code, course.Name)
			if !showSections {
				continue
			}
			for _, section := range course.Sections {
				fmt.Printf("    %s %s", section.SectionCode, section.SemesterCode)
				for _, timeslot := range section.Timeslots {
					fmt.Printf("  %s", timeslot)
				}
				fmt.Println()
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(coursesCmd)
	catalogFlag(coursesCmd)
	coursesCmd.Flags().BoolP("sections", "s", false, "also list each course's sections")
}
