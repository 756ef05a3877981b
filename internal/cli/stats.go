package cli

import "fmt"

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	stats, err := ctx.Service.Statistics()
	if err != nil {
		return err
	}

	if stats.Completed == 0 {
		fmt.Println("Nothing to analyze yet. Mark something done first.")
		return nil
	}

	fmt.Printf("Best streak:      %d\n", stats.BestStreak)
	fmt.Printf("Perfect days:     %d\n", stats.PerfectDays)
	fmt.Printf("Completed:        %d\n", stats.Completed)
	fmt.Printf("Average per day:  %d\n", stats.AveragePerDay)
	return nil
}
