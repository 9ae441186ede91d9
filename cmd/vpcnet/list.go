package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	vpcnet "github.com/GraemeHosford/vpc-pluralsight"
	"github.com/GraemeHosford/vpc-pluralsight/internal/synth"
)

func newListCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "list [stacks...]",
		Short: "List stacks and their resources",
		Long: `List shows the registered stacks and the resources each one declares.

Examples:
    vpcnet list
    vpcnet list vpc-pluralsight-base --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(args, outputFormat)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "Output format: text or json")

	return cmd
}

func runList(args []string, format string) error {
	targets, err := resolveStacks(args)
	if err != nil {
		return err
	}

	result := vpcnet.ListResult{}
	for _, s := range targets {
		ls := vpcnet.ListStack{
			Name:        s.Name,
			Description: s.Description,
		}
		for _, name := range s.ResourceNames() {
			info, err := synth.Describe(s, name)
			if err != nil {
				return err
			}
			ls.Resources = append(ls.Resources, vpcnet.ListResource{
				Name: name,
				Type: info.Type,
			})
		}
		result.Stacks = append(result.Stacks, ls)
	}

	return outputListResult(result, format)
}

func outputListResult(result vpcnet.ListResult, format string) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))

	case "text":
		for _, s := range result.Stacks {
			fmt.Printf("%s (%d resources)\n", s.Name, len(s.Resources))
			for _, res := range s.Resources {
				fmt.Printf("  %s: %s\n", res.Name, res.Type)
			}
			fmt.Println()
		}

	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	return nil
}
