package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	vpcnet "github.com/GraemeHosford/vpc-pluralsight"
	"github.com/GraemeHosford/vpc-pluralsight/internal/deploy"
	"github.com/GraemeHosford/vpc-pluralsight/internal/synth"
)

func newValidateCmd() *cobra.Command {
	var (
		outputFormat string
		remote       bool
		region       string
	)

	cmd := &cobra.Command{
		Use:   "validate [stacks...]",
		Short: "Validate stack declarations",
		Long: `Validate checks each stack locally: required properties, reference
integrity and dependency cycles. With --remote the synthesized template is
also sent to the CloudFormation ValidateTemplate API.

Examples:
    vpcnet validate
    vpcnet validate vpc-pluralsight-base --remote`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args, outputFormat, remote, region)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "Output format: text or json")
	cmd.Flags().BoolVar(&remote, "remote", false, "Also validate with the CloudFormation API")
	cmd.Flags().StringVar(&region, "region", "", "AWS region for --remote (default: from config)")

	return cmd
}

func runValidate(cmd *cobra.Command, args []string, format string, remote bool, region string) error {
	targets, err := resolveStacks(args)
	if err != nil {
		return err
	}

	var deployer *deploy.Deployer
	if remote {
		client, err := deploy.NewCloudFormationClient(cmd.Context(), region)
		if err != nil {
			return err
		}
		deployer = deploy.NewDeployer(client)
	}

	failed := false
	for _, s := range targets {
		result := validateStack(cmd, s, deployer)
		if !result.Success {
			failed = true
		}
		if err := outputValidateResult(result, format); err != nil {
			return err
		}
	}

	if failed {
		os.Exit(2)
	}
	return nil
}

func validateStack(cmd *cobra.Command, s *vpcnet.Stack, deployer *deploy.Deployer) vpcnet.ValidateResult {
	result := vpcnet.ValidateResult{
		Stack:     s.Name,
		Resources: len(s.ResourceNames()),
	}

	m, err := synth.Discover(s)
	if err != nil {
		result.Errors = append(result.Errors, err.Error())
		return result
	}
	for _, err := range synth.Validate(m) {
		result.Errors = append(result.Errors, err.Error())
	}

	if deployer != nil && len(result.Errors) == 0 {
		tmpl, err := synth.Synthesize(s)
		if err != nil {
			result.Errors = append(result.Errors, err.Error())
			return result
		}
		body, err := synth.ToJSON(tmpl)
		if err != nil {
			result.Errors = append(result.Errors, err.Error())
			return result
		}
		if err := deployer.Validate(cmd.Context(), string(body)); err != nil {
			result.Errors = append(result.Errors, err.Error())
		}
	}

	result.Success = len(result.Errors) == 0
	return result
}

func outputValidateResult(result vpcnet.ValidateResult, format string) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))

	case "text":
		if result.Success {
			fmt.Printf("%s: ok (%d resources)\n", result.Stack, result.Resources)
		} else {
			fmt.Printf("%s: %d error(s)\n", result.Stack, len(result.Errors))
			for _, e := range result.Errors {
				fmt.Printf("  %s\n", e)
			}
		}

	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	return nil
}
