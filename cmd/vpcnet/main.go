// Command vpcnet synthesizes, checks and deploys the course's CloudFormation
// stacks.
//
// Usage:
//
//	vpcnet build vpc-pluralsight-base     Generate CloudFormation template
//	vpcnet list                           List stacks and resources
//	vpcnet lint                           Check stacks for networking issues
//	vpcnet deploy vpc-pluralsight-base    Push a stack to CloudFormation
//	vpcnet version                        Show version
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "vpcnet",
		Short: "Synthesize and deploy the course VPC stacks",
		Long: `vpcnet generates CloudFormation templates from the Go stack declarations
in this repository and pushes them to AWS.

The stacks build on each other and deploy in order:

    vpc-pluralsight-base        VPC, subnets, gateways, routing
    vpc-pluralsight-web         security groups, NACL, instances
    vpc-pluralsight-hybrid      site-to-site VPN to a simulated on-prem VPC
    vpc-pluralsight-peering     second VPC peered with the base VPC
    vpc-pluralsight-flowlogs    flow logs to CloudWatch Logs

Generate a template:

    vpcnet build vpc-pluralsight-base -o base.json`,
	}

	rootCmd.AddCommand(
		newBuildCmd(),
		newListCmd(),
		newLintCmd(),
		newValidateCmd(),
		newGraphCmd(),
		newDiffCmd(),
		newDeployCmd(),
		newDestroyCmd(),
		newWatchCmd(),
		newVersionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
