package cli

import (
	"fmt"

	"github.com/aminakh/trk/internal/validation"
)

type TrackerAddCmd struct {
	Title    string `arg:"" help:"Tracker title."`
	Category string `short:"c" help:"Category to file the tracker under." default:"General"`
	Schedule string `short:"s" help:"Weekdays (mon,wed,fri), or 'daily'/'weekdays'/'weekends'. Omit for a one-off event."`
	Color    string `help:"Palette color token (selection1..selection18)."`
	Emoji    string `help:"Palette emoji."`
}

func (c *TrackerAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	schedule, err := validation.ParseWeekdays(c.Schedule)
	if err != nil {
		return err
	}

	tracker, err := ctx.Service.CreateTracker(c.Title, c.Color, c.Emoji, schedule, c.Category)
	if err != nil {
		return err
	}

	kind := "habit"
	if tracker.IsEvent() {
		kind = "event"
	}
	fmt.Printf("Added %s: %s %s (ID: %s)\n", kind, tracker.Emoji, tracker.Title, shortID(tracker.ID))
	return nil
}

type TrackerListCmd struct{}

func (c *TrackerListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	categories, err := ctx.Service.Categories()
	if err != nil {
		return err
	}

	total := 0
	for _, category := range categories {
		if len(category.Trackers) == 0 {
			continue
		}
		fmt.Printf("%s\n", category.Title)
		for _, tracker := range category.Trackers {
			fmt.Printf("  %s %-24s %-20s %s\n",
				tracker.Emoji, tracker.Title, validation.FormatWeekdays(tracker.Schedule), shortID(tracker.ID))
			total++
		}
		fmt.Println()
	}

	if total == 0 {
		fmt.Println("No trackers yet. Add one with 'trk tracker add'.")
	}
	return nil
}

type TrackerEditCmd struct {
	Tracker  string `arg:"" help:"Tracker title or ID prefix."`
	Title    string `help:"New title."`
	Schedule string `short:"s" help:"New weekday schedule; 'none' turns the tracker into an event."`
	Color    string `help:"New palette color token."`
	Emoji    string `help:"New palette emoji."`
}

func (c *TrackerEditCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
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

	if c.Title != "" {
		tracker.Title = c.Title
	}
	if c.Color != "" {
		tracker.Color = c.Color
	}
	if c.Emoji != "" {
		tracker.Emoji = c.Emoji
	}
	if c.Schedule != "" {
		if c.Schedule == "none" {
			tracker.Schedule = nil
		} else {
			schedule, err := validation.ParseWeekdays(c.Schedule)
			if err != nil {
				return err
			}
			tracker.Schedule = schedule
		}
	}

	if err := ctx.Service.UpdateTracker(tracker); err != nil {
		return err
	}
	fmt.Printf("Updated tracker: %s\n", tracker.Title)
	return nil
}

type TrackerMoveCmd struct {
	Tracker string `arg:"" help:"Tracker title or ID prefix."`
	To      string `arg:"" help:"Destination category."`
}

func (c *TrackerMoveCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
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

	if err := ctx.Service.MoveTracker(tracker.ID, c.To); err != nil {
		return err
	}
	fmt.Printf("Moved %s to %s\n", tracker.Title, c.To)
	return nil
}

type TrackerDeleteCmd struct {
	Tracker string `arg:"" help:"Tracker title or ID prefix."`
}

func (c *TrackerDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
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

	if err := ctx.Service.DeleteTracker(tracker.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted tracker: %s\n", tracker.Title)
	return nil
}
