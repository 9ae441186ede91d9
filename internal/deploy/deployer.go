package deploy

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
)

// API is the subset of the CloudFormation client the deployer calls.
type API interface {
	DescribeStacks(ctx context.Context, in *cloudformation.DescribeStacksInput, opts ...func(*cloudformation.Options)) (*cloudformation.DescribeStacksOutput, error)
	CreateStack(ctx context.Context, in *cloudformation.CreateStackInput, opts ...func(*cloudformation.Options)) (*cloudformation.CreateStackOutput, error)
	UpdateStack(ctx context.Context, in *cloudformation.UpdateStackInput, opts ...func(*cloudformation.Options)) (*cloudformation.UpdateStackOutput, error)
	DeleteStack(ctx context.Context, in *cloudformation.DeleteStackInput, opts ...func(*cloudformation.Options)) (*cloudformation.DeleteStackOutput, error)
	ValidateTemplate(ctx context.Context, in *cloudformation.ValidateTemplateInput, opts ...func(*cloudformation.Options)) (*cloudformation.ValidateTemplateOutput, error)
}

// Deployer drives CloudFormation stack operations.
type Deployer struct {
	client API

	// PollInterval controls how often stack status is checked while
	// waiting. Defaults to 5 seconds.
	PollInterval time.Duration
}

// NewDeployer wraps a CloudFormation client.
func NewDeployer(client API) *Deployer {
	return &Deployer{client: client, PollInterval: 5 * time.Second}
}

// Outcome says what a Deploy call did.
type Outcome string

const (
	OutcomeCreated   Outcome = "created"
	OutcomeUpdated   Outcome = "updated"
	OutcomeUnchanged Outcome = "unchanged"
	OutcomeDeleted   Outcome = "deleted"
)

// Result describes a finished stack operation.
type Result struct {
	StackName string
	Outcome   Outcome
	Status    string
	Outputs   map[string]string
}

// Options carries the per-deploy settings.
type Options struct {
	// Parameters are passed through to the stack as parameter overrides.
	Parameters map[string]string
	// Wait blocks until the operation reaches a terminal status.
	Wait bool
}

// Deploy creates the stack if it does not exist, updates it otherwise. An
// update with no changes reports OutcomeUnchanged rather than an error.
func (d *Deployer) Deploy(ctx context.Context, stackName, templateBody string, opts Options) (*Result, error) {
	exists, err := d.stackExists(ctx, stackName)
	if err != nil {
		return nil, err
	}

	params := toParameters(opts.Parameters)
	capabilities := []types.Capability{types.CapabilityCapabilityNamedIam}

	outcome := OutcomeCreated
	if exists {
		outcome = OutcomeUpdated
		_, err = d.client.UpdateStack(ctx, &cloudformation.UpdateStackInput{
			StackName:    aws.String(stackName),
			TemplateBody: aws.String(templateBody),
			Parameters:   params,
			Capabilities: capabilities,
		})
		if err != nil {
			if isNoUpdateError(err) {
				status, _ := d.stackStatus(ctx, stackName)
				outputs, _ := d.Outputs(ctx, stackName)
				return &Result{StackName: stackName, Outcome: OutcomeUnchanged, Status: status, Outputs: outputs}, nil
			}
			return nil, fmt.Errorf("updating stack %s: %w", stackName, err)
		}
	} else {
		_, err = d.client.CreateStack(ctx, &cloudformation.CreateStackInput{
			StackName:    aws.String(stackName),
			TemplateBody: aws.String(templateBody),
			Parameters:   params,
			Capabilities: capabilities,
			OnFailure:    types.OnFailureRollback,
		})
		if err != nil {
			return nil, fmt.Errorf("creating stack %s: %w", stackName, err)
		}
	}

	result := &Result{StackName: stackName, Outcome: outcome}
	if !opts.Wait {
		return result, nil
	}

	status, err := d.waitForTerminal(ctx, stackName)
	if err != nil {
		return nil, err
	}
	result.Status = status
	if !successStatus(status) {
		return result, fmt.Errorf("stack %s finished in status %s", stackName, status)
	}

	result.Outputs, err = d.Outputs(ctx, stackName)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Destroy deletes the stack. Deleting a stack that does not exist is not an
// error.
func (d *Deployer) Destroy(ctx context.Context, stackName string, wait bool) (*Result, error) {
	exists, err := d.stackExists(ctx, stackName)
	if err != nil {
		return nil, err
	}
	if !exists {
		return &Result{StackName: stackName, Outcome: OutcomeDeleted, Status: "DELETE_COMPLETE"}, nil
	}

	_, err = d.client.DeleteStack(ctx, &cloudformation.DeleteStackInput{
		StackName: aws.String(stackName),
	})
	if err != nil {
		return nil, fmt.Errorf("deleting stack %s: %w", stackName, err)
	}

	result := &Result{StackName: stackName, Outcome: OutcomeDeleted}
	if !wait {
		return result, nil
	}

	status, err := d.waitForDeleted(ctx, stackName)
	if err != nil {
		return nil, err
	}
	result.Status = status
	if status != "DELETE_COMPLETE" {
		return result, fmt.Errorf("stack %s finished in status %s", stackName, status)
	}
	return result, nil
}

// Validate asks CloudFormation to validate the template body.
func (d *Deployer) Validate(ctx context.Context, templateBody string) error {
	_, err := d.client.ValidateTemplate(ctx, &cloudformation.ValidateTemplateInput{
		TemplateBody: aws.String(templateBody),
	})
	if err != nil {
		return fmt.Errorf("validating template: %w", err)
	}
	return nil
}

// Outputs reads the stack's output values.
func (d *Deployer) Outputs(ctx context.Context, stackName string) (map[string]string, error) {
	out, err := d.client.DescribeStacks(ctx, &cloudformation.DescribeStacksInput{
		StackName: aws.String(stackName),
	})
	if err != nil {
		return nil, fmt.Errorf("describing stack %s: %w", stackName, err)
	}
	if len(out.Stacks) == 0 {
		return nil, fmt.Errorf("stack %s not found", stackName)
	}

	outputs := make(map[string]string)
	for _, o := range out.Stacks[0].Outputs {
		outputs[aws.ToString(o.OutputKey)] = aws.ToString(o.OutputValue)
	}
	return outputs, nil
}

func (d *Deployer) stackExists(ctx context.Context, stackName string) (bool, error) {
	_, err := d.client.DescribeStacks(ctx, &cloudformation.DescribeStacksInput{
		StackName: aws.String(stackName),
	})
	if err != nil {
		if isNotFoundError(err, stackName) {
			return false, nil
		}
		return false, fmt.Errorf("describing stack %s: %w", stackName, err)
	}
	return true, nil
}

func (d *Deployer) stackStatus(ctx context.Context, stackName string) (string, error) {
	out, err := d.client.DescribeStacks(ctx, &cloudformation.DescribeStacksInput{
		StackName: aws.String(stackName),
	})
	if err != nil {
		return "", err
	}
	if len(out.Stacks) == 0 {
		return "", fmt.Errorf("stack %s not found", stackName)
	}
	return string(out.Stacks[0].StackStatus), nil
}

func (d *Deployer) waitForTerminal(ctx context.Context, stackName string) (string, error) {
	for {
		status, err := d.stackStatus(ctx, stackName)
		if err != nil {
			return "", err
		}
		if terminalStatus(status) {
			return status, nil
		}
		select {
		case <-ctx.Done():
			return status, ctx.Err()
		case <-time.After(d.interval()):
		}
	}
}

func (d *Deployer) waitForDeleted(ctx context.Context, stackName string) (string, error) {
	for {
		status, err := d.stackStatus(ctx, stackName)
		if err != nil {
			if isNotFoundError(err, stackName) {
				return "DELETE_COMPLETE", nil
			}
			return "", err
		}
		if terminalStatus(status) {
			return status, nil
		}
		select {
		case <-ctx.Done():
			return status, ctx.Err()
		case <-time.After(d.interval()):
		}
	}
}

func (d *Deployer) interval() time.Duration {
	if d.PollInterval > 0 {
		return d.PollInterval
	}
	return 5 * time.Second
}

func toParameters(params map[string]string) []types.Parameter {
	if len(params) == 0 {
		return nil
	}
	out := make([]types.Parameter, 0, len(params))
	for key, value := range params {
		out = append(out, types.Parameter{
			ParameterKey:   aws.String(key),
			ParameterValue: aws.String(value),
		})
	}
	return out
}

// terminalStatus reports whether a stack status is final. In-progress
// statuses all end in _IN_PROGRESS.
func terminalStatus(status string) bool {
	return !strings.HasSuffix(status, "_IN_PROGRESS")
}

func successStatus(status string) bool {
	switch status {
	case "CREATE_COMPLETE", "UPDATE_COMPLETE":
		return true
	}
	return false
}

// isNoUpdateError detects the sentinel UpdateStack failure for templates
// identical to what is deployed.
func isNoUpdateError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "No updates are to be performed")
}

// isNotFoundError detects the ValidationError DescribeStacks returns for a
// stack that does not exist. The SDK has no typed error for it.
func isNotFoundError(err error, stackName string) bool {
	if err == nil {
		return false
	}
	var apiErr interface{ ErrorCode() string }
	if errors.As(err, &apiErr) && apiErr.ErrorCode() == "ValidationError" {
		return strings.Contains(err.Error(), "does not exist")
	}
	return strings.Contains(err.Error(), fmt.Sprintf("Stack with id %s does not exist", stackName))
}
