package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	vpcnet "github.com/GraemeHosford/vpc-pluralsight"
	"github.com/GraemeHosford/vpc-pluralsight/internal/differ"
	"github.com/GraemeHosford/vpc-pluralsight/internal/synth"
	"github.com/GraemeHosford/vpc-pluralsight/stacks"
)

func newDiffCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "diff <old> <new>",
		Short: "Compare two templates",
		Long: `Diff compares two templates resource by resource. Each argument is
either a registered stack name (synthesized on the fly) or a template file
in JSON or YAML.

Examples:
    vpcnet diff base.json vpc-pluralsight-base
    vpcnet diff templates/old.yaml templates/new.yaml`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(args[0], args[1], outputFormat)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "Output format: text or json")

	return cmd
}

func runDiff(oldArg, newArg, format string) error {
	oldT, err := loadTemplateArg(oldArg)
	if err != nil {
		return err
	}
	newT, err := loadTemplateArg(newArg)
	if err != nil {
		return err
	}

	result := differ.Compare(oldT, newT)
	if err := outputDiffResult(result, format); err != nil {
		return err
	}

	if result.Summary.Total > 0 {
		os.Exit(2) // differences found
	}
	return nil
}

// loadTemplateArg resolves an argument as a stack name first, then as a
// template file.
func loadTemplateArg(arg string) (*vpcnet.Template, error) {
	if s := stacks.Lookup(arg); s != nil {
		return synth.Synthesize(s)
	}
	return differ.LoadTemplate(arg)
}

func outputDiffResult(result *differ.Result, format string) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))

	case "text":
		if result.Summary.Total == 0 {
			fmt.Println("No differences.")
			return nil
		}

		for _, entry := range result.Diff.Added {
			fmt.Printf("+ %s (%s)\n", entry.Resource, entry.Type)
		}
		for _, entry := range result.Diff.Removed {
			fmt.Printf("- %s (%s)\n", entry.Resource, entry.Type)
		}
		for _, entry := range result.Diff.Modified {
			fmt.Printf("~ %s (%s)\n", entry.Resource, entry.Type)
			for _, change := range entry.Changes {
				fmt.Printf("    %s: %v -> %v\n", change.Property, change.Old, change.New)
			}
		}
		fmt.Printf("\n%d added, %d removed, %d modified\n",
			result.Summary.Added, result.Summary.Removed, result.Summary.Modified)

	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	return nil
}
