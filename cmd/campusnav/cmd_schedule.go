package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/campusnav/campusnav/internal/app/models"
	"github.com/campusnav/campusnav/internal/app/models/dto"
	"github.com/campusnav/campusnav/internal/client/editor"
	"github.com/campusnav/campusnav/internal/client/ui"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Edit and sync your class schedule",
	Long: `Edit the local schedule draft and sync it with the server.

The draft lives on disk and survives between invocations; 'save' pushes it
to the server, 'pull' adopts the server copy when it has one.`,
}

var scheduleShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the local schedule draft",
	RunE:  runScheduleShow,
}

var scheduleAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a course with one empty meeting",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runScheduleAdd,
}

var scheduleRmCmd = &cobra.Command{
	Use:   "rm <course-id>",
	Short: "Remove a course from the draft",
	Args:  cobra.ExactArgs(1),
	RunE:  runScheduleRm,
}

var scheduleRenameCmd = &cobra.Command{
	Use:   "rename <course-id> <title>",
	Short: "Rename a course",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runScheduleRename,
}

var scheduleBuildingCmd = &cobra.Command{
	Use:   "building <course-id> [building-id]",
	Short: "Assign a building to a course, or clear it",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runScheduleBuilding,
}

var scheduleMeetingCmd = &cobra.Command{
	Use:   "meeting",
	Short: "Edit a course's meetings",
}

var scheduleMeetingAddCmd = &cobra.Command{
	Use:   "add <course-id>",
	Short: "Add an empty meeting to a course",
	Args:  cobra.ExactArgs(1),
	RunE:  runMeetingAdd,
}

var scheduleMeetingRmCmd = &cobra.Command{
	Use:   "rm <course-id> <meeting-id>",
	Short: "Remove a meeting from a course",
	Args:  cobra.ExactArgs(2),
	RunE:  runMeetingRm,
}

var scheduleMeetingTimeCmd = &cobra.Command{
	Use:   "time <course-id> <meeting-id> <start> <end>",
	Short: "Set a meeting's start and end times (HH:MM)",
	Args:  cobra.ExactArgs(4),
	RunE:  runMeetingTime,
}

var scheduleMeetingRoomCmd = &cobra.Command{
	Use:   "room <course-id> <meeting-id> <room>",
	Short: "Set a meeting's room",
	Args:  cobra.ExactArgs(3),
	RunE:  runMeetingRoom,
}

var scheduleDayCmd = &cobra.Command{
	Use:   "day <course-id> <meeting-id> <day>",
	Short: "Toggle a weekday (Sun..Sat) on a meeting",
	Args:  cobra.ExactArgs(3),
	RunE:  runScheduleDay,
}

var scheduleSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Push the draft to the server",
	RunE:  runScheduleSave,
}

var schedulePullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Adopt the server schedule when it has one",
	RunE:  runSchedulePull,
}

func init() {
	scheduleMeetingCmd.AddCommand(scheduleMeetingAddCmd)
	scheduleMeetingCmd.AddCommand(scheduleMeetingRmCmd)
	scheduleMeetingCmd.AddCommand(scheduleMeetingTimeCmd)
	scheduleMeetingCmd.AddCommand(scheduleMeetingRoomCmd)

	scheduleCmd.AddCommand(scheduleShowCmd)
	scheduleCmd.AddCommand(scheduleAddCmd)
	scheduleCmd.AddCommand(scheduleRmCmd)
	scheduleCmd.AddCommand(scheduleRenameCmd)
	scheduleCmd.AddCommand(scheduleBuildingCmd)
	scheduleCmd.AddCommand(scheduleMeetingCmd)
	scheduleCmd.AddCommand(scheduleDayCmd)
	scheduleCmd.AddCommand(scheduleSaveCmd)
	scheduleCmd.AddCommand(schedulePullCmd)
}

func runScheduleShow(cmd *cobra.Command, args []string) error {
	cc, err := newClientContext()
	if err != nil {
		return err
	}
	ed, err := cc.loadDraft()
	if err != nil {
		return err
	}
	printCourses(ed.Courses())
	return nil
}

func runScheduleAdd(cmd *cobra.Command, args []string) error {
	cc, err := newClientContext()
	if err != nil {
		return err
	}
	ed, err := cc.loadDraft()
	if err != nil {
		return err
	}

	course, err := ed.AddCourse(strings.Join(args, " "))
	if err != nil {
		return err
	}
	fmt.Printf("Added %s %s\n", ui.CourseStyle.Render(course.Title), ui.IDStyle.Render(course.ID))
	return nil
}

func runScheduleRm(cmd *cobra.Command, args []string) error {
	cc, err := newClientContext()
	if err != nil {
		return err
	}
	ed, err := cc.loadDraft()
	if err != nil {
		return err
	}
	if err := ed.RemoveCourse(args[0]); err != nil {
		return err
	}
	fmt.Println(ui.MutedStyle.Render("Course removed."))
	return nil
}

func runScheduleRename(cmd *cobra.Command, args []string) error {
	cc, err := newClientContext()
	if err != nil {
		return err
	}
	ed, err := cc.loadDraft()
	if err != nil {
		return err
	}
	if err := ed.UpdateCourseTitle(args[0], strings.Join(args[1:], " ")); err != nil {
		return err
	}
	fmt.Println(ui.MutedStyle.Render("Course renamed."))
	return nil
}

func runScheduleBuilding(cmd *cobra.Command, args []string) error {
	cc, err := newClientContext()
	if err != nil {
		return err
	}
	ed, err := cc.loadDraft()
	if err != nil {
		return err
	}

	if len(args) == 1 {
		if err := ed.UpdateCourseBuilding(args[0], nil, nil); err != nil {
			return err
		}
		fmt.Println(ui.MutedStyle.Render("Building cleared."))
		return nil
	}

	buildingID, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid building id %q", args[1])
	}

	// Best effort code lookup; the server re-resolves it on fetch anyway.
	var code *string
	if buildings, err := cc.client.Buildings(cmd.Context()); err == nil {
		for _, b := range buildings {
			if b.ID == buildingID {
				c := b.Code
				code = &c
				break
			}
		}
	}

	if err := ed.UpdateCourseBuilding(args[0], &buildingID, code); err != nil {
		return err
	}
	fmt.Println(ui.MutedStyle.Render("Building assigned."))
	return nil
}

func runMeetingAdd(cmd *cobra.Command, args []string) error {
	cc, err := newClientContext()
	if err != nil {
		return err
	}
	ed, err := cc.loadDraft()
	if err != nil {
		return err
	}
	meeting, err := ed.AddMeeting(args[0])
	if err != nil {
		return err
	}
	fmt.Printf("Added meeting %s\n", ui.IDStyle.Render(meeting.ID))
	return nil
}

func runMeetingRm(cmd *cobra.Command, args []string) error {
	cc, err := newClientContext()
	if err != nil {
		return err
	}
	ed, err := cc.loadDraft()
	if err != nil {
		return err
	}
	if err := ed.RemoveMeeting(args[0], args[1]); err != nil {
		return err
	}
	fmt.Println(ui.MutedStyle.Render("Meeting removed."))
	return nil
}

func runMeetingTime(cmd *cobra.Command, args []string) error {
	cc, err := newClientContext()
	if err != nil {
		return err
	}
	ed, err := cc.loadDraft()
	if err != nil {
		return err
	}
	if err := ed.UpdateMeetingTimes(args[0], args[1], args[2], args[3]); err != nil {
		return err
	}
	fmt.Println(ui.MutedStyle.Render("Times updated."))
	return nil
}

func runMeetingRoom(cmd *cobra.Command, args []string) error {
	cc, err := newClientContext()
	if err != nil {
		return err
	}
	ed, err := cc.loadDraft()
	if err != nil {
		return err
	}
	if err := ed.UpdateMeetingRoom(args[0], args[1], args[2]); err != nil {
		return err
	}
	fmt.Println(ui.MutedStyle.Render("Room updated."))
	return nil
}

func runScheduleDay(cmd *cobra.Command, args []string) error {
	cc, err := newClientContext()
	if err != nil {
		return err
	}
	ed, err := cc.loadDraft()
	if err != nil {
		return err
	}
	if err := ed.ToggleMeetingDay(args[0], args[1], models.Weekday(args[2])); err != nil {
		return err
	}
	fmt.Println(ui.MutedStyle.Render("Day toggled."))
	return nil
}

func runScheduleSave(cmd *cobra.Command, args []string) error {
	cc, err := newClientContext()
	if err != nil {
		return err
	}
	session, err := requireSession(cc.store)
	if err != nil {
		return err
	}
	ed, err := cc.loadDraft()
	if err != nil {
		return err
	}

	err = ed.Save(cmd.Context(), func(ctx context.Context, req *dto.ReplaceScheduleRequest) error {
		return cc.client.ReplaceSchedule(ctx, session.Token, req)
	})
	if err != nil {
		return err
	}
	fmt.Println(ui.SuccessStyle.Render("Schedule saved to server."))
	return nil
}

func runSchedulePull(cmd *cobra.Command, args []string) error {
	cc, err := newClientContext()
	if err != nil {
		return err
	}
	session, err := requireSession(cc.store)
	if err != nil {
		return err
	}

	ed := editor.NewEditor(cc.store)
	err = ed.Load(cmd.Context(), func(ctx context.Context) ([]models.Course, error) {
		return cc.client.FetchSchedule(ctx, session.Token)
	})
	if err != nil {
		fmt.Println(ui.WarnStyle.Render("Could not reach server, showing local draft: " + err.Error()))
	}
	printCourses(ed.Courses())
	return nil
}

func printCourses(courses []editor.Course) {
	if len(courses) == 0 {
		fmt.Println(ui.MutedStyle.Render("Schedule is empty. Add a course with 'campusnav schedule add'."))
		return
	}

	fmt.Println(ui.HeaderStyle.Render("Your schedule"))
	for _, course := range courses {
		title := course.Title
		if course.BuildingCode != nil {
			title += "  " + ui.CodeStyle.Render("["+*course.BuildingCode+"]")
		}
		fmt.Printf("%s %s\n", ui.CourseStyle.Render(title), ui.IDStyle.Render(course.ID))
		for _, m := range course.Meetings {
			fmt.Println(ui.MeetingStyle.Render(formatMeeting(m)))
		}
	}
}

func formatMeeting(m editor.Meeting) string {
	days := make([]string, 0, len(m.Days))
	for _, d := range m.Days {
		days = append(days, string(d))
	}
	dayPart := strings.Join(days, " ")
	if dayPart == "" {
		dayPart = "(no days)"
	}
	timePart := "(no time)"
	if m.StartTime != "" || m.EndTime != "" {
		timePart = m.StartTime + "-" + m.EndTime
	}
	line := fmt.Sprintf("%s %s", dayPart, timePart)
	if m.Room != "" {
		line += " " + m.Room
	}
	return line + "  " + ui.IDStyle.Render(m.ID)
}
