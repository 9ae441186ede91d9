package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GraemeHosford/vpc-pluralsight/internal/deploy"
	"github.com/GraemeHosford/vpc-pluralsight/internal/lint"
	"github.com/GraemeHosford/vpc-pluralsight/internal/synth"
)

func newDeployCmd() *cobra.Command {
	var (
		region     string
		parameters map[string]string
		noWait     bool
		skipLint   bool
	)

	cmd := &cobra.Command{
		Use:   "deploy [stacks...]",
		Short: "Push stacks to CloudFormation",
		Long: `Deploy synthesizes the named stacks and creates or updates them in
CloudFormation, in registration order. With no arguments every stack is
deployed, base VPC first.

Stacks are linted before anything is pushed; issues at error severity
abort the deploy.

Examples:
    vpcnet deploy vpc-pluralsight-base
    vpcnet deploy vpc-pluralsight-web -p KeyName=course-key
    vpcnet deploy --region eu-west-1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDeploy(cmd, args, region, parameters, !noWait, skipLint)
		},
	}

	cmd.Flags().StringVar(&region, "region", "", "AWS region (default: from config)")
	cmd.Flags().StringToStringVarP(&parameters, "parameter", "p", nil, "Stack parameter as Key=Value (repeatable)")
	cmd.Flags().BoolVar(&noWait, "no-wait", false, "Do not wait for the operation to finish")
	cmd.Flags().BoolVar(&skipLint, "skip-lint", false, "Skip the pre-deploy lint run")

	return cmd
}

func runDeploy(cmd *cobra.Command, args []string, region string, parameters map[string]string, wait, skipLint bool) error {
	targets, err := resolveStacks(args)
	if err != nil {
		return err
	}

	if !skipLint {
		result := lint.Run(targets, lint.Options{})
		for _, issue := range result.Issues {
			fmt.Printf("%s/%s: %s: %s [%s]\n",
				issue.Stack, issue.Resource, issue.Severity, issue.Message, issue.Rule)
		}
		if !result.Success {
			return fmt.Errorf("lint found errors, not deploying")
		}
	}

	client, err := deploy.NewCloudFormationClient(cmd.Context(), region)
	if err != nil {
		return err
	}
	deployer := deploy.NewDeployer(client)

	for _, s := range targets {
		tmpl, err := synth.Synthesize(s)
		if err != nil {
			return fmt.Errorf("building %s: %w", s.Name, err)
		}
		body, err := synth.ToJSON(tmpl)
		if err != nil {
			return err
		}

		fmt.Printf("deploying %s...\n", s.Name)
		result, err := deployer.Deploy(cmd.Context(), s.Name, string(body), deploy.Options{
			Parameters: parameters,
			Wait:       wait,
		})
		if err != nil {
			return err
		}

		fmt.Printf("%s: %s", result.StackName, result.Outcome)
		if result.Status != "" {
			fmt.Printf(" (%s)", result.Status)
		}
		fmt.Println()
		for key, value := range result.Outputs {
			fmt.Printf("  %s = %s\n", key, value)
		}
	}
	return nil
}

func newDestroyCmd() *cobra.Command {
	var (
		region string
		noWait bool
	)

	cmd := &cobra.Command{
		Use:   "destroy [stacks...]",
		Short: "Delete stacks from CloudFormation",
		Long: `Destroy deletes the named stacks in reverse registration order, so
dependents go before the base VPC. With no arguments every stack is
deleted.

Examples:
    vpcnet destroy vpc-pluralsight-peering
    vpcnet destroy`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDestroy(cmd, args, region, !noWait)
		},
	}

	cmd.Flags().StringVar(&region, "region", "", "AWS region (default: from config)")
	cmd.Flags().BoolVar(&noWait, "no-wait", false, "Do not wait for deletion to finish")

	return cmd
}

func runDestroy(cmd *cobra.Command, args []string, region string, wait bool) error {
	targets, err := resolveStacks(args)
	if err != nil {
		return err
	}

	client, err := deploy.NewCloudFormationClient(cmd.Context(), region)
	if err != nil {
		return err
	}
	deployer := deploy.NewDeployer(client)

	// Reverse order: the base stack's exports are imported by the others,
	// so it must go last.
	for i := len(targets) - 1; i >= 0; i-- {
		s := targets[i]
		fmt.Printf("destroying %s...\n", s.Name)
		result, err := deployer.Destroy(cmd.Context(), s.Name, wait)
		if err != nil {
			return err
		}
		fmt.Printf("%s: %s (%s)\n", result.StackName, result.Outcome, result.Status)
	}
	return nil
}
