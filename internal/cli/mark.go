package cli

import (
	"fmt"
	"time"

	"github.com/aminakh/trk/internal/models"
	"github.com/aminakh/trk/internal/tracking"
)

type MarkCmd struct {
	Tracker string `arg:"" help:"Tracker title or ID prefix."`
	Date    string `short:"d" help:"Day to toggle (YYYY-MM-DD, 'today' or 'yesterday')." default:"today"`
}

func (c *MarkCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	date, err := parseDate(c.Date)
	if err != nil {
		return err
	}

	categories, err := ctx.Service.Categories()
	if err != nil {
		return err
	}
	tracker, err := findTracker(categories, c.Tracker)
	if err != nil {
		return err
	}

	if models.Day(date) > models.Day(time.Now()) {
		return fmt.Errorf("cannot mark a future day")
	}

	if err := ctx.Service.ToggleCompletion(tracker.ID, date); err != nil {
		return err
	}

	records, err := ctx.Service.Records()
	if err != nil {
		return err
	}
	day := models.Day(date)
	if tracking.CompletedOn(records, tracker.ID, day) {
		fmt.Printf("✓ %s marked done on %s\n", tracker.Title, day)
	} else {
		fmt.Printf("· %s unmarked on %s\n", tracker.Title, day)
	}
	return nil
}
