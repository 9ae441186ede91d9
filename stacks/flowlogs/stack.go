package flowlogs

import (
	vpcnet "github.com/GraemeHosford/vpc-pluralsight"
	"github.com/GraemeHosford/vpc-pluralsight/intrinsics"
)

// ExportLogGroupArn names the log group export for downstream tooling.
const ExportLogGroupArn = "flow-logs-LogGroupArn"

// Stack enables flow logs on the base VPC.
var Stack = vpcnet.NewStack("vpc-pluralsight-flowlogs", "VPC flow logs for the base VPC, delivered to CloudWatch Logs").
	Resource("FlowLogGroup", &FlowLogGroup).
	Resource("DeliveryRole", &DeliveryRole).
	Resource("VpcFlowLog", &VpcFlowLog).
	Output("LogGroupArn", vpcnet.Output{
		Description: "ARN of the flow log group",
		Value:       intrinsics.GetAtt{Resource: &FlowLogGroup, Attribute: "Arn"},
		Export:      &vpcnet.Export{Name: ExportLogGroupArn},
	})
