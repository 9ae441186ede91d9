package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/GraemeHosford/vpc-pluralsight/internal/graph"
	"github.com/GraemeHosford/vpc-pluralsight/internal/synth"
	"github.com/GraemeHosford/vpc-pluralsight/stacks"
)

func newGraphCmd() *cobra.Command {
	var (
		format            string
		outputFile        string
		includeParameters bool
		cluster           bool
	)

	cmd := &cobra.Command{
		Use:   "graph <stack>",
		Short: "Render a stack's dependency graph",
		Long: `Graph renders the resource dependency graph of a stack in Graphviz DOT
or Mermaid format. GetAtt references are drawn in blue.

Examples:
    vpcnet graph vpc-pluralsight-base
    vpcnet graph vpc-pluralsight-base --format mermaid
    vpcnet graph vpc-pluralsight-base --cluster -o base.dot`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGraph(args[0], format, outputFile, includeParameters, cluster)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "dot", "Output format: dot or mermaid")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().BoolVar(&includeParameters, "parameters", false, "Include parameter references")
	cmd.Flags().BoolVar(&cluster, "cluster", false, "Group resources by AWS service")

	return cmd
}

func runGraph(stackName, format, outputFile string, includeParameters, cluster bool) error {
	s := stacks.Lookup(stackName)
	if s == nil {
		return fmt.Errorf("unknown stack %q (known: %v)", stackName, stacks.Names())
	}

	m, err := synth.Discover(s)
	if err != nil {
		return err
	}

	gen := &graph.Generator{
		Format:            graph.Format(format),
		IncludeParameters: includeParameters,
		ClusterByService:  cluster,
	}

	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			return err
		}
		defer f.Close()
		return gen.Generate(m, f)
	}

	return gen.Generate(m, os.Stdout)
}
