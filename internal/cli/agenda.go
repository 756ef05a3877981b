package cli

import (
	"fmt"
	"time"

	"github.com/aminakh/trk/internal/models"
	"github.com/aminakh/trk/internal/scheduler"
)

type AgendaCmd struct {
	Days int    `short:"n" default:"7" help:"Number of days to plan ahead."`
	From string `help:"Start date (YYYY-MM-DD, 'today' or 'yesterday')." default:"today"`
}

func (c *AgendaCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	from, err := parseDate(c.From)
	if err != nil {
		return err
	}
	if c.Days < 1 || c.Days > 90 {
		return fmt.Errorf("--days must be between 1 and 90")
	}

	categories, err := ctx.Service.Categories()
	if err != nil {
		return err
	}
	records, err := ctx.Service.Records()
	if err != nil {
		return err
	}

	plans := scheduler.New().Plan(categories, records, from, c.Days)
	for _, plan := range plans {
		label := plan.Date.Format("Mon, 02 Jan")
		if plan.Date.Equal(models.StartOfDay(time.Now())) {
			label += " (today)"
		}
		fmt.Println(label)

		if len(plan.Entries) == 0 {
			fmt.Println("  -")
		}
		for _, entry := range plan.Entries {
			line := renderTracker(entry.Tracker, entry.Done)
			fmt.Printf("%s  (%s)\n", line, entry.Category)
		}
		fmt.Println()
	}
	return nil
}
