// Package deploy pushes synthesized templates to CloudFormation: create or
// update, delete, wait for a terminal status and read back stack outputs.
package deploy

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
)

// NewCloudFormationClient builds a CloudFormation client from the default
// credential chain, optionally overriding the region.
func NewCloudFormationClient(ctx context.Context, region string) (*cloudformation.Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}

	if region != "" {
		cfg.Region = region
	}

	return cloudformation.NewFromConfig(cfg), nil
}
