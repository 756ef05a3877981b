package cli

import (
	"fmt"

	"github.com/aminakh/trk/internal/models"
)

type FilterCmd struct {
	Name string `arg:"" optional:"" help:"Filter to select (all|today|completed|incomplete). Omit to show the current one."`
}

func (c *FilterCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if c.Name == "" {
		current, err := ctx.Service.SelectedFilter()
		if err != nil {
			return err
		}
		for _, f := range models.Filters {
			marker := " "
			if f == current {
				marker = "*"
			}
			fmt.Printf("%s %s\n", marker, f)
		}
		return nil
	}

	filter, err := models.ParseFilter(c.Name)
	if err != nil {
		return err
	}
	if err := ctx.Service.SetFilter(filter); err != nil {
		return err
	}
	fmt.Printf("Filter set to %s\n", filter)
	return nil
}
