// Package main provides the CLI entry point for pillarbar-go.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"

	"github.com/mkondo9/pillarbar-go/pkg/pillarbar"
	"github.com/mkondo9/pillarbar-go/pkg/pillarbar/models"
	"github.com/mkondo9/pillarbar-go/pkg/pillarbar/workbook"
)

var (
	outputPath string
	pretty     bool
	dataPath   string
	sheetName  string
	group      string
	typeTag    string
	rowDepth   int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "pillarbar [state.(yaml|json)]",
		Short: "Resolve editable chart configuration options",
		Long: `pillarbar resolves which configuration options of a pillar bar chart
are editable for a given mode, state snapshot, and bound data, and outputs
the resulting property items as JSON.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().StringVar(&dataPath, "data", "", "Workbook (.xlsx) providing category records")
	rootCmd.Flags().StringVar(&sheetName, "sheet", "Sheet1", "Worksheet holding the category records")
	rootCmd.Flags().StringVar(&group, "group", "", "Option group to enumerate (default: all groups)")
	rootCmd.Flags().StringVar(&typeTag, "type", "static", "Host type tag: static, staticCategory, drillableCategory, or matrix")
	rootCmd.Flags().IntVar(&rowDepth, "depth", 1, "Row hierarchy depth for matrix data")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	statePath := args[0]

	if _, err := os.Stat(statePath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", statePath)
	}

	st, err := workbook.LoadState(statePath)
	if err != nil {
		return fmt.Errorf("state load failed: %w", err)
	}

	var cats []models.CategoryRecord
	if dataPath != "" {
		cats, err = loadCategories(dataPath, sheetName)
		if err != nil {
			return fmt.Errorf("category binding failed: %w", err)
		}
		if len(cats) == 0 {
			slog.Warn("workbook sheet produced no category records", "path", dataPath, "sheet", sheetName)
		}
	}

	if group != "" && !pillarbar.KnownGroup(group) {
		slog.Warn("unknown option group, result will be empty", "group", group)
	}

	mode := pillarbar.ClassifyMode(typeTag, rowDepth)
	engine := pillarbar.New(pillarbar.DefaultOptions())

	var result any
	if group != "" {
		result = engine.Enumerate(group, mode, st, cats)
	} else {
		result = engine.EnumerateAll(mode, st, cats)
	}

	jsonData, err := toJSON(result, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	fmt.Println(string(jsonData))
	return nil
}

func loadCategories(path, sheet string) ([]models.CategoryRecord, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return workbook.BindCategories(f, sheet)
}

func toJSON(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
