package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

type CategoryAddCmd struct {
	Title string `arg:"" help:"Category title."`
}

func (c *CategoryAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	if err := ctx.Service.CreateCategory(c.Title); err != nil {
		return err
	}
	fmt.Printf("Added category: %s\n", strings.TrimSpace(c.Title))
	return nil
}

type CategoryRenameCmd struct {
	From string `arg:"" help:"Current title."`
	To   string `arg:"" help:"New title."`
}

func (c *CategoryRenameCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	if err := ctx.Service.RenameCategory(c.From, c.To); err != nil {
		return err
	}
	fmt.Printf("Renamed category %q to %q\n", c.From, strings.TrimSpace(c.To))
	return nil
}

type CategoryDeleteCmd struct {
	Title string `arg:"" help:"Category title."`
	Force bool   `short:"f" help:"Delete without confirmation even when the category has trackers."`
}

func (c *CategoryDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	categories, err := ctx.Service.Categories()
	if err != nil {
		return err
	}

	trackerCount := 0
	for _, category := range categories {
		if category.Title == strings.TrimSpace(c.Title) {
			trackerCount = len(category.Trackers)
		}
	}

	// Deleting a populated category takes its trackers and records with it
	if trackerCount > 0 && !c.Force {
		fmt.Printf("Category %q has %d tracker(s). Deleting it removes them and their history.\n", c.Title, trackerCount)
		fmt.Print("Continue? [y/N]: ")

		reader := bufio.NewReader(os.Stdin)
		response, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		response = strings.TrimSpace(strings.ToLower(response))
		if response != "y" && response != "yes" {
			fmt.Println("Delete cancelled.")
			return nil
		}
	}

	if err := ctx.Service.DeleteCategory(c.Title); err != nil {
		return err
	}
	fmt.Printf("Deleted category: %s\n", strings.TrimSpace(c.Title))
	return nil
}

type CategoryListCmd struct{}

func (c *CategoryListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	categories, err := ctx.Service.Categories()
	if err != nil {
		return err
	}

	if len(categories) == 0 {
		fmt.Println("No categories yet.")
		return nil
	}

	for _, category := range categories {
		fmt.Printf("%s (%d)\n", category.Title, len(category.Trackers))
	}
	return nil
}
