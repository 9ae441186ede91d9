package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	vpcnet "github.com/GraemeHosford/vpc-pluralsight"
	"github.com/GraemeHosford/vpc-pluralsight/internal/synth"
	"github.com/GraemeHosford/vpc-pluralsight/stacks"
)

func newBuildCmd() *cobra.Command {
	var (
		outputFormat string
		outputFile   string
		outputDir    string
	)

	cmd := &cobra.Command{
		Use:   "build [stacks...]",
		Short: "Generate CloudFormation templates",
		Long: `Build synthesizes the named stacks to CloudFormation templates. With no
arguments every registered stack is built.

Examples:
    vpcnet build vpc-pluralsight-base
    vpcnet build vpc-pluralsight-base -o base.json
    vpcnet build --format yaml --output-dir templates/`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(args, outputFormat, outputFile, outputDir)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "Output format: json or yaml")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (single stack only; default: stdout)")
	cmd.Flags().StringVar(&outputDir, "output-dir", "", "Write one template per stack into this directory")

	return cmd
}

func runBuild(args []string, format, outputFile, outputDir string) error {
	targets, err := resolveStacks(args)
	if err != nil {
		return err
	}
	if outputFile != "" && len(targets) != 1 {
		return fmt.Errorf("--output needs exactly one stack, got %d", len(targets))
	}

	for _, s := range targets {
		tmpl, err := synth.Synthesize(s)
		if err != nil {
			return fmt.Errorf("building %s: %w", s.Name, err)
		}

		data, err := renderTemplate(tmpl, format)
		if err != nil {
			return err
		}

		switch {
		case outputFile != "":
			return os.WriteFile(outputFile, data, 0644)
		case outputDir != "":
			if err := os.MkdirAll(outputDir, 0755); err != nil {
				return err
			}
			path := filepath.Join(outputDir, s.Name+"."+format)
			if err := os.WriteFile(path, data, 0644); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", path)
		default:
			fmt.Println(string(data))
		}
	}
	return nil
}

func renderTemplate(tmpl *vpcnet.Template, format string) ([]byte, error) {
	switch format {
	case "json":
		return synth.ToJSON(tmpl)
	case "yaml":
		return synth.ToYAML(tmpl)
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}

// resolveStacks maps stack name arguments to registered stacks. No
// arguments means every stack, in deployment order.
func resolveStacks(args []string) ([]*vpcnet.Stack, error) {
	if len(args) == 0 {
		return stacks.All(), nil
	}
	var targets []*vpcnet.Stack
	for _, name := range args {
		s := stacks.Lookup(name)
		if s == nil {
			return nil, fmt.Errorf("unknown stack %q (known: %v)", name, stacks.Names())
		}
		targets = append(targets, s)
	}
	return targets, nil
}
