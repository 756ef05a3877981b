package cli

import (
	"fmt"

	"github.com/aminakh/trk/internal/models"
	"github.com/aminakh/trk/internal/tracking"
)

type DayCmd struct {
	Date string `arg:"" optional:"" help:"Date to show (YYYY-MM-DD, 'today' or 'yesterday')." default:"today"`
}

func (c *DayCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	date, err := parseDate(c.Date)
	if err != nil {
		return err
	}

	view, err := ctx.Service.ViewOn(date)
	if err != nil {
		return err
	}

	header := view.Date.Format("Mon, 02 Jan 2006")
	if view.Filter != models.FilterAll {
		header += fmt.Sprintf("  [%s]", view.Filter)
	}
	fmt.Printf("%s\n\n", header)

	if view.IsEmpty() {
		fmt.Println("  Nothing to track on this day.")
		return nil
	}

	records, err := ctx.Service.Records()
	if err != nil {
		return err
	}

	day := models.Day(view.Date)
	for _, category := range view.Categories {
		fmt.Printf("%s\n", category.Title)
		for _, tracker := range category.Trackers {
			done := tracking.CompletedOn(records, tracker.ID, day)
			fmt.Println(renderTracker(tracker, done))
		}
		fmt.Println()
	}

	fmt.Printf("Completed: %d\n", tracking.CompletionCount(records, day))
	return nil
}
