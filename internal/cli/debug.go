package cli

import (
	"encoding/json"
	"fmt"
)

type DebugDBPathCmd struct{}

func (cmd *DebugDBPathCmd) Run(ctx *Context) error {
	fmt.Println(ctx.Store.GetConfigPath())
	return nil
}

type DebugDumpCmd struct{}

// Run dumps categories, trackers and records as JSON for inspection.
func (cmd *DebugDumpCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	categories, err := ctx.Store.GetAllCategories()
	if err != nil {
		return err
	}
	records, err := ctx.Store.GetAllRecords()
	if err != nil {
		return err
	}
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	dump := map[string]any{
		"categories": categories,
		"records":    records,
		"settings":   settings,
	}

	data, err := json.MarshalIndent(dump, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
