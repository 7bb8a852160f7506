package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/MoroniPereira/TIME-SHEET/internal/model"
	"github.com/MoroniPereira/TIME-SHEET/internal/timesheet"
	"github.com/MoroniPereira/TIME-SHEET/internal/validate"
)

var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Personal time tracking (stored locally)",
}

var (
	trackID         int64
	trackDate       string
	trackStart      string
	trackEnd        string
	trackDesc       string
	trackHours      float64
	trackType       string
	trackLunchStart string
	trackLunchEnd   string
)

var trackAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a work interval",
	Args:  cobra.NoArgs,
	RunE:  runTrackAdd,
}

var trackListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded entries, most recent first",
	Args:  cobra.NoArgs,
	RunE:  runTrackList,
}

var trackRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete an entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runTrackRm,
}

var trackTotalCmd = &cobra.Command{
	Use:   "total",
	Short: "Show the aggregate of all entries",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a := newApp()
		fmt.Println(a.entries.FormattedTotal())
		return nil
	},
}

func init() {
	trackAddCmd.Flags().Int64Var(&trackID, "id", 0, "entry id (default: timestamp-based)")
	trackAddCmd.Flags().StringVar(&trackDate, "date", time.Now().Format("2006-01-02"), "date (YYYY-MM-DD)")
	trackAddCmd.Flags().StringVar(&trackStart, "start", "", "start time (HH:MM)")
	trackAddCmd.Flags().StringVar(&trackEnd, "end", "", "end time (HH:MM)")
	trackAddCmd.Flags().StringVar(&trackDesc, "desc", "", "description")
	trackAddCmd.Flags().Float64Var(&trackHours, "hours", 0, "duration in hours (default: computed from the interval)")
	trackAddCmd.Flags().StringVar(&trackType, "type", "", "entry type tag")
	trackAddCmd.Flags().StringVar(&trackLunchStart, "lunch-start", "", "lunch break start (HH:MM)")
	trackAddCmd.Flags().StringVar(&trackLunchEnd, "lunch-end", "", "lunch break end (HH:MM)")
	_ = trackAddCmd.MarkFlagRequired("start")
	_ = trackAddCmd.MarkFlagRequired("end")

	trackCmd.AddCommand(trackAddCmd)
	trackCmd.AddCommand(trackListCmd)
	trackCmd.AddCommand(trackRmCmd)
	trackCmd.AddCommand(trackTotalCmd)
}

func runTrackAdd(cmd *cobra.Command, args []string) error {
	errs := validate.Errors{}
	errs.Check(validate.NotFutureDate(trackDate), "date", "date cannot be in the future").
		Check(validate.TimeFormat(trackStart), "start", "invalid start time (HH:MM)").
		Check(validate.TimeFormat(trackEnd), "end", "invalid end time (HH:MM)").
		Check(validate.ValidTimeRange(trackStart, trackEnd), "end", "start must precede end")
	if trackLunchStart != "" || trackLunchEnd != "" {
		errs.Check(validate.TimeFormat(trackLunchStart), "lunch-start", "invalid lunch start (HH:MM)").
			Check(validate.TimeFormat(trackLunchEnd), "lunch-end", "invalid lunch end (HH:MM)")
	}
	if !errs.Valid() {
		return fieldError(errs)
	}

	hours := trackHours
	if hours == 0 {
		hours = intervalHours(trackStart, trackEnd) - intervalHours(trackLunchStart, trackLunchEnd)
	}

	id := trackID
	if id == 0 {
		id = time.Now().UnixMilli()
	}

	a := newApp()
	entry := model.TimeEntry{
		ID:             id,
		Date:           trackDate,
		StartTime:      trackStart,
		EndTime:        trackEnd,
		Description:    trackDesc,
		DurationHours:  hours,
		EntryType:      trackType,
		LunchStartTime: trackLunchStart,
		LunchEndTime:   trackLunchEnd,
	}
	if err := a.entries.Add(entry); err != nil {
		return err
	}
	fmt.Printf("recorded entry %d (%s)\n", id, timesheet.FormatHours(hours))
	return nil
}

// intervalHours returns the span of an HH:MM interval in hours; empty or
// unparseable bounds count as zero.
func intervalHours(start, end string) float64 {
	st, err1 := time.Parse("15:04", start)
	en, err2 := time.Parse("15:04", end)
	if err1 != nil || err2 != nil {
		return 0
	}
	return en.Sub(st).Hours()
}

func runTrackList(cmd *cobra.Command, args []string) error {
	a := newApp()
	sorted := a.entries.Sorted()
	if len(sorted) == 0 {
		fmt.Println("no entries recorded")
		return nil
	}
	for _, e := range sorted {
		tag := ""
		if e.EntryType != "" {
			tag = "  [" + e.EntryType + "]"
		}
		fmt.Printf("%d  %s %s–%s  %s  %s%s\n",
			e.ID, e.Date, e.StartTime, e.EndTime,
			timesheet.FormatHours(e.DurationHours), e.Description, tag)
	}
	fmt.Printf("total: %s\n", a.entries.FormattedTotal())
	return nil
}

func runTrackRm(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	a := newApp()
	a.entries.Delete(id)
	fmt.Printf("deleted entry %d (total now %s)\n", id, a.entries.FormattedTotal())
	return nil
}
