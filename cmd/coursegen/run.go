package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/HaploAW/Courseplay-FS22/pkg/course"
	"github.com/HaploAW/Courseplay-FS22/pkg/field"
	"github.com/HaploAW/Courseplay-FS22/pkg/validation"
)

// loadAndValidate loads the field spec and runs schema validation.
func loadAndValidate(projectPath string) (*field.FieldSpec, *validation.Report, error) {
	spec, err := field.LoadProject(projectPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading spec: %w", err)
	}
	report := validation.ValidateSpec(spec)
	return spec, report, nil
}

func runValidate(projectPath string) error {
	_, report, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}

	printValidationReport(report)

	if !report.Valid() {
		os.Exit(1)
	}
	return nil
}

func runGenerate(projectPath string, verbose bool) error {
	spec, report, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}
	if !report.Valid() {
		printValidationReport(report)
		return fmt.Errorf("spec has validation errors")
	}

	if verbose {
		course.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	c, err := course.Generate(spec.ToInput())
	if err != nil {
		return fmt.Errorf("generating course: %w", err)
	}
	if !c.OK {
		report.Warning(validation.Finding{
			Stage:   validation.StageCourse,
			Message: "decomposition looks implausible; check the boundary and islands",
			Hint:    "a field splitting into this many blocks usually means a bad boundary trace",
		})
	}

	output := map[string]any{
		"parameters": spec,
		"validation": report,
		"course":     c,
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}
