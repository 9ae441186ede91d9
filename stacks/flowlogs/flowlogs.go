// Package flowlogs enables VPC flow logs on the base VPC, delivering all
// accepted and rejected traffic records to a CloudWatch Logs group through a
// dedicated delivery role.
package flowlogs

import (
	. "github.com/GraemeHosford/vpc-pluralsight/intrinsics"
	"github.com/GraemeHosford/vpc-pluralsight/resources/ec2"
	"github.com/GraemeHosford/vpc-pluralsight/resources/iam"
	"github.com/GraemeHosford/vpc-pluralsight/resources/logs"
	"github.com/GraemeHosford/vpc-pluralsight/stacks/basevpc"
)

// FlowLogGroup receives the flow log records. Two weeks of retention keeps
// the course account's storage bill small.
var FlowLogGroup = logs.LogGroup{
	LogGroupName:    Sub{String: "/vpc/${AWS::StackName}/flow-logs"},
	RetentionInDays: 14,
}

// DeliveryRole lets the flow logs service write to the log group.
var DeliveryRole = iam.Role{
	AssumeRolePolicyDocument: PolicyDocument{
		Version: "2012-10-17",
		Statement: []any{
			PolicyStatement{
				Effect:    "Allow",
				Principal: ServicePrincipal{"vpc-flow-logs.amazonaws.com"},
				Action:    "sts:AssumeRole",
			},
		},
	},
	Policies: []any{
		iam.Role_Policy{
			PolicyName: "flow-log-delivery",
			PolicyDocument: PolicyDocument{
				Version: "2012-10-17",
				Statement: []any{
					PolicyStatement{
						Effect: "Allow",
						Action: []any{
							"logs:CreateLogGroup",
							"logs:CreateLogStream",
							"logs:PutLogEvents",
							"logs:DescribeLogGroups",
							"logs:DescribeLogStreams",
						},
						Resource: GetAtt{Resource: &FlowLogGroup, Attribute: "Arn"},
					},
				},
			},
		},
	},
}

// VpcFlowLog captures all traffic for the base VPC.
var VpcFlowLog = ec2.FlowLog{
	ResourceId:               ImportValue{Name: basevpc.ExportVpcID},
	MonitoredResourceType:    "VPC",
	TrafficType:              "ALL",
	LogGroupName:             &FlowLogGroup,
	DeliverLogsPermissionArn: GetAtt{Resource: &DeliveryRole, Attribute: "Arn"},
	MaxAggregationInterval:   60,
	Tags: []any{
		Tag{Key: "Name", Value: "base-vpc-flow-log"},
	},
}
