package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	vpcnet "github.com/GraemeHosford/vpc-pluralsight"
	"github.com/GraemeHosford/vpc-pluralsight/internal/lint"
)

func newLintCmd() *cobra.Command {
	var (
		outputFormat string
		rules        []string
	)

	cmd := &cobra.Command{
		Use:   "lint [stacks...]",
		Short: "Check stacks for networking issues",
		Long: `Lint checks the stack declarations for networking mistakes.

Rules:
    NET001: Subnet CIDR must lie within its VPC CIDR
    NET002: Sibling subnet CIDRs must not overlap
    NET003: Security group open to the world on SSH or RDP
    NET004: Security group open to the world on all protocols
    NET005: Route table with no subnet association
    NET006: Internet gateway default route on a subnet without public IPs
    NET007: Resource missing a Name tag
    NET008: VPN connection without matching routes or propagation
    NET009: Flow log group without a retention policy
    NET010: Network ACL rule number collision

Examples:
    vpcnet lint
    vpcnet lint vpc-pluralsight-base --rules NET001,NET002`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(args, outputFormat, rules)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "Output format: text or json")
	cmd.Flags().StringSliceVar(&rules, "rules", nil, "Restrict the run to these rule IDs")

	return cmd
}

func runLint(args []string, format string, rules []string) error {
	targets, err := resolveStacks(args)
	if err != nil {
		return err
	}

	result := lint.Run(targets, lint.Options{EnabledRules: rules})
	return outputLintResult(result, format)
}

func outputLintResult(result vpcnet.LintResult, format string) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))

	case "text":
		if len(result.Issues) == 0 {
			fmt.Println("No issues found.")
			return nil
		}

		for _, issue := range result.Issues {
			fmt.Printf("%s/%s: %s: %s [%s]\n",
				issue.Stack, issue.Resource, issue.Severity, issue.Message, issue.Rule)
		}

	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	if !result.Success {
		os.Exit(2) // issues at error severity
	}

	return nil
}
