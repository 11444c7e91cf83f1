package main

import (
	"fmt"

	"github.com/HaploAW/Courseplay-FS22/pkg/validation"
)

func printValidationReport(r *validation.Report) {
	printFindings("ERRORS", r.BySeverity(validation.SeverityError))
	printFindings("WARNINGS", r.BySeverity(validation.SeverityWarning))
	printFindings("NOTES", r.BySeverity(validation.SeverityNote))

	if r.Valid() {
		fmt.Printf("Result: VALID (%s)\n", r.Summary())
	} else {
		fmt.Printf("Result: INVALID (%s)\n", r.Summary())
	}
}

func printFindings(heading string, findings []validation.Finding) {
	if len(findings) == 0 {
		return
	}
	fmt.Printf("%s (%d):\n", heading, len(findings))
	for _, f := range findings {
		fmt.Printf("  [%s] %s\n", f.Stage, f.Message)
		if f.Path != "" {
			fmt.Printf("    -> %s", f.Path)
			if f.Got != nil {
				fmt.Printf(" = %v", f.Got)
			}
			fmt.Println()
		}
		if f.Want != "" {
			fmt.Printf("    want: %s\n", f.Want)
		}
		if f.Hint != "" {
			fmt.Printf("    * %s\n", f.Hint)
		}
	}
	fmt.Println()
}
