package flowlogs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GraemeHosford/vpc-pluralsight/internal/synth"
	"github.com/GraemeHosford/vpc-pluralsight/stacks/basevpc"
)

func TestStackSynthesizes(t *testing.T) {
	tmpl, err := synth.Synthesize(Stack)
	require.NoError(t, err)

	assert.Len(t, tmpl.Resources, 3)
	assert.Len(t, tmpl.Outputs, 1)
}

func TestFlowLogCapturesBaseVpc(t *testing.T) {
	tmpl, err := synth.Synthesize(Stack)
	require.NoError(t, err)

	fl := tmpl.Resources["VpcFlowLog"]
	require.Equal(t, "AWS::EC2::FlowLog", fl.Type)
	assert.Equal(t,
		map[string]any{"Fn::ImportValue": basevpc.ExportVpcID},
		fl.Properties["ResourceId"])
	assert.Equal(t, "VPC", fl.Properties["ResourceType"])
	assert.Equal(t, "ALL", fl.Properties["TrafficType"])
	assert.Equal(t, int64(60), fl.Properties["MaxAggregationInterval"])
	assert.Equal(t, map[string]any{"Ref": "FlowLogGroup"}, fl.Properties["LogGroupName"])
	assert.Equal(t,
		map[string]any{"Fn::GetAtt": []any{"DeliveryRole", "Arn"}},
		fl.Properties["DeliverLogsPermissionArn"])
}

func TestLogGroupRetentionIsBounded(t *testing.T) {
	tmpl, err := synth.Synthesize(Stack)
	require.NoError(t, err)

	group := tmpl.Resources["FlowLogGroup"]
	assert.Equal(t, int64(14), group.Properties["RetentionInDays"])
}

func TestDeliveryRoleScopedToLogGroup(t *testing.T) {
	tmpl, err := synth.Synthesize(Stack)
	require.NoError(t, err)

	role := tmpl.Resources["DeliveryRole"]
	assume := role.Properties["AssumeRolePolicyDocument"].(map[string]any)
	stmt := assume["Statement"].([]any)[0].(map[string]any)
	assert.Equal(t,
		map[string]any{"Service": "vpc-flow-logs.amazonaws.com"},
		stmt["Principal"])

	policies := role.Properties["Policies"].([]any)
	policy := policies[0].(map[string]any)
	doc := policy["PolicyDocument"].(map[string]any)
	inline := doc["Statement"].([]any)[0].(map[string]any)
	assert.Equal(t,
		map[string]any{"Fn::GetAtt": []any{"FlowLogGroup", "Arn"}},
		inline["Resource"])
}
