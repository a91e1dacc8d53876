package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/campusnav/campusnav/internal/app/models"
	"github.com/campusnav/campusnav/internal/client/editor"
	"github.com/campusnav/campusnav/internal/client/ui"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's meetings in start order",
	RunE:  runToday,
}

func runToday(cmd *cobra.Command, args []string) error {
	cc, err := newClientContext()
	if err != nil {
		return err
	}
	ed, err := cc.loadDraft()
	if err != nil {
		return err
	}

	day := models.Weekdays[time.Now().Weekday()]
	entries := editor.TodaysMeetings(ed.Courses(), day)

	fmt.Println(ui.HeaderStyle.Render(fmt.Sprintf("Classes on %s", day)))
	if len(entries) == 0 {
		fmt.Println(ui.MutedStyle.Render("No classes today."))
		return nil
	}

	for _, entry := range entries {
		timePart := entry.Meeting.StartTime + "-" + entry.Meeting.EndTime
		line := fmt.Sprintf("%s  %s", timePart, ui.CourseStyle.Render(entry.Course.Title))
		if entry.Course.BuildingCode != nil {
			line += "  " + ui.CodeStyle.Render(*entry.Course.BuildingCode)
		}
		if entry.Meeting.Room != "" {
			line += "  " + ui.MutedStyle.Render(entry.Meeting.Room)
		}
		fmt.Println(line)
	}
	return nil
}
