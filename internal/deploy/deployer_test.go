package deploy

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCFN scripts DescribeStacks responses and records the calls made.
type fakeCFN struct {
	statuses    []types.StackStatus
	exists      bool
	outputs     []types.Output
	updateErr   error
	describeIdx int

	createCalls   int
	updateCalls   int
	deleteCalls   int
	validateCalls int
	lastCreate    *cloudformation.CreateStackInput
}

type notFoundErr struct{ msg string }

func (e notFoundErr) Error() string     { return e.msg }
func (e notFoundErr) ErrorCode() string { return "ValidationError" }

func (f *fakeCFN) DescribeStacks(ctx context.Context, in *cloudformation.DescribeStacksInput, opts ...func(*cloudformation.Options)) (*cloudformation.DescribeStacksOutput, error) {
	if !f.exists {
		return nil, notFoundErr{msg: fmt.Sprintf("Stack with id %s does not exist", aws.ToString(in.StackName))}
	}
	status := f.statuses[len(f.statuses)-1]
	if f.describeIdx < len(f.statuses) {
		status = f.statuses[f.describeIdx]
		f.describeIdx++
	}
	return &cloudformation.DescribeStacksOutput{
		Stacks: []types.Stack{{
			StackName:   in.StackName,
			StackStatus: status,
			Outputs:     f.outputs,
		}},
	}, nil
}

func (f *fakeCFN) CreateStack(ctx context.Context, in *cloudformation.CreateStackInput, opts ...func(*cloudformation.Options)) (*cloudformation.CreateStackOutput, error) {
	f.createCalls++
	f.lastCreate = in
	f.exists = true
	return &cloudformation.CreateStackOutput{StackId: aws.String("stack-id")}, nil
}

func (f *fakeCFN) UpdateStack(ctx context.Context, in *cloudformation.UpdateStackInput, opts ...func(*cloudformation.Options)) (*cloudformation.UpdateStackOutput, error) {
	f.updateCalls++
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return &cloudformation.UpdateStackOutput{StackId: aws.String("stack-id")}, nil
}

func (f *fakeCFN) DeleteStack(ctx context.Context, in *cloudformation.DeleteStackInput, opts ...func(*cloudformation.Options)) (*cloudformation.DeleteStackOutput, error) {
	f.deleteCalls++
	f.exists = false
	return &cloudformation.DeleteStackOutput{}, nil
}

func (f *fakeCFN) ValidateTemplate(ctx context.Context, in *cloudformation.ValidateTemplateInput, opts ...func(*cloudformation.Options)) (*cloudformation.ValidateTemplateOutput, error) {
	f.validateCalls++
	return &cloudformation.ValidateTemplateOutput{}, nil
}

func newTestDeployer(fake *fakeCFN) *Deployer {
	d := NewDeployer(fake)
	d.PollInterval = time.Millisecond
	return d
}

func TestDeployCreatesNewStack(t *testing.T) {
	fake := &fakeCFN{
		statuses: []types.StackStatus{
			types.StackStatusCreateInProgress,
			types.StackStatusCreateComplete,
		},
		outputs: []types.Output{
			{OutputKey: aws.String("VpcId"), OutputValue: aws.String("vpc-123")},
		},
	}
	d := newTestDeployer(fake)

	result, err := d.Deploy(context.Background(), "vpc-pluralsight-base", "{}", Options{Wait: true})
	require.NoError(t, err)

	assert.Equal(t, OutcomeCreated, result.Outcome)
	assert.Equal(t, "CREATE_COMPLETE", result.Status)
	assert.Equal(t, "vpc-123", result.Outputs["VpcId"])
	assert.Equal(t, 1, fake.createCalls)
	assert.Equal(t, 0, fake.updateCalls)
}

func TestDeployUpdatesExistingStack(t *testing.T) {
	fake := &fakeCFN{
		exists: true,
		statuses: []types.StackStatus{
			types.StackStatusUpdateComplete,
			types.StackStatusUpdateComplete,
		},
	}
	d := newTestDeployer(fake)

	result, err := d.Deploy(context.Background(), "vpc-pluralsight-base", "{}", Options{Wait: true})
	require.NoError(t, err)

	assert.Equal(t, OutcomeUpdated, result.Outcome)
	assert.Equal(t, 1, fake.updateCalls)
	assert.Equal(t, 0, fake.createCalls)
}

func TestDeployNoChanges(t *testing.T) {
	fake := &fakeCFN{
		exists:    true,
		statuses:  []types.StackStatus{types.StackStatusUpdateComplete},
		updateErr: errors.New("ValidationError: No updates are to be performed."),
	}
	d := newTestDeployer(fake)

	result, err := d.Deploy(context.Background(), "vpc-pluralsight-base", "{}", Options{Wait: true})
	require.NoError(t, err)

	assert.Equal(t, OutcomeUnchanged, result.Outcome)
}

func TestDeployRollbackIsAnError(t *testing.T) {
	fake := &fakeCFN{
		statuses: []types.StackStatus{
			types.StackStatusCreateInProgress,
			types.StackStatusRollbackComplete,
		},
	}
	d := newTestDeployer(fake)

	result, err := d.Deploy(context.Background(), "vpc-pluralsight-base", "{}", Options{Wait: true})
	require.Error(t, err)
	assert.Equal(t, "ROLLBACK_COMPLETE", result.Status)
}

func TestDeployPassesParameters(t *testing.T) {
	fake := &fakeCFN{
		statuses: []types.StackStatus{types.StackStatusCreateComplete},
	}
	d := newTestDeployer(fake)

	_, err := d.Deploy(context.Background(), "vpc-pluralsight-web", "{}", Options{
		Parameters: map[string]string{"KeyName": "course-key"},
	})
	require.NoError(t, err)

	require.NotNil(t, fake.lastCreate)
	require.Len(t, fake.lastCreate.Parameters, 1)
	assert.Equal(t, "KeyName", aws.ToString(fake.lastCreate.Parameters[0].ParameterKey))
	assert.Equal(t, "course-key", aws.ToString(fake.lastCreate.Parameters[0].ParameterValue))
}

func TestDestroyMissingStackIsNoop(t *testing.T) {
	fake := &fakeCFN{}
	d := newTestDeployer(fake)

	result, err := d.Destroy(context.Background(), "vpc-pluralsight-base", true)
	require.NoError(t, err)

	assert.Equal(t, OutcomeDeleted, result.Outcome)
	assert.Equal(t, "DELETE_COMPLETE", result.Status)
	assert.Equal(t, 0, fake.deleteCalls)
}

func TestDestroyWaitsForDeletion(t *testing.T) {
	fake := &fakeCFN{
		exists:   true,
		statuses: []types.StackStatus{types.StackStatusDeleteInProgress},
	}
	d := newTestDeployer(fake)

	// DeleteStack flips exists to false, so the next poll sees the stack
	// gone and reports DELETE_COMPLETE.
	result, err := d.Destroy(context.Background(), "vpc-pluralsight-base", true)
	require.NoError(t, err)

	assert.Equal(t, 1, fake.deleteCalls)
	assert.Equal(t, "DELETE_COMPLETE", result.Status)
}

func TestTerminalStatus(t *testing.T) {
	assert.False(t, terminalStatus("CREATE_IN_PROGRESS"))
	assert.False(t, terminalStatus("UPDATE_ROLLBACK_IN_PROGRESS"))
	assert.True(t, terminalStatus("CREATE_COMPLETE"))
	assert.True(t, terminalStatus("ROLLBACK_FAILED"))
}
