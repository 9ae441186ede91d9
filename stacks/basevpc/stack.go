package basevpc

import (
	vpcnet "github.com/GraemeHosford/vpc-pluralsight"
)

// Export names for cross-stack imports. The dependent course stacks
// reference these with Fn::ImportValue.
const (
	ExportVpcID               = "base-vpc-VpcId"
	ExportVpcCidr             = "base-vpc-VpcCidr"
	ExportPublicSubnetAID     = "base-vpc-PublicSubnetAId"
	ExportPublicSubnetBID     = "base-vpc-PublicSubnetBId"
	ExportPrivateSubnetAID    = "base-vpc-PrivateSubnetAId"
	ExportPrivateSubnetBID    = "base-vpc-PrivateSubnetBId"
	ExportPublicRouteTableID  = "base-vpc-PublicRouteTableId"
	ExportPrivateRouteTableID = "base-vpc-PrivateRouteTableId"
)

// Stack assembles the base VPC resources into a deployable stack.
var Stack = vpcnet.NewStack("vpc-pluralsight-base", "Base VPC with public and private subnets across two availability zones").
	Resource("Vpc", &Vpc).
	Resource("InternetGateway", &InternetGateway).
	Resource("GatewayAttachment", &GatewayAttachment).
	Resource("PublicSubnetA", &PublicSubnetA).
	Resource("PublicSubnetB", &PublicSubnetB).
	Resource("PrivateSubnetA", &PrivateSubnetA).
	Resource("PrivateSubnetB", &PrivateSubnetB).
	Resource("NatEip", &NatEip).
	Resource("NatGateway", &NatGateway).
	Resource("PublicRouteTable", &PublicRouteTable).
	Resource("PublicDefaultRoute", &PublicDefaultRoute).
	Resource("PublicSubnetAAssociation", &PublicSubnetAAssociation).
	Resource("PublicSubnetBAssociation", &PublicSubnetBAssociation).
	Resource("PrivateRouteTable", &PrivateRouteTable).
	Resource("PrivateDefaultRoute", &PrivateDefaultRoute).
	Resource("PrivateSubnetAAssociation", &PrivateSubnetAAssociation).
	Resource("PrivateSubnetBAssociation", &PrivateSubnetBAssociation).
	Output("VpcId", vpcnet.Output{
		Description: "ID of the base VPC",
		Value:       &Vpc,
		Export:      &vpcnet.Export{Name: ExportVpcID},
	}).
	Output("VpcCidr", vpcnet.Output{
		Description: "CIDR block of the base VPC",
		Value:       Vpc.CidrBlock,
		Export:      &vpcnet.Export{Name: ExportVpcCidr},
	}).
	Output("PublicSubnetAId", vpcnet.Output{
		Description: "ID of public subnet A",
		Value:       &PublicSubnetA,
		Export:      &vpcnet.Export{Name: ExportPublicSubnetAID},
	}).
	Output("PublicSubnetBId", vpcnet.Output{
		Description: "ID of public subnet B",
		Value:       &PublicSubnetB,
		Export:      &vpcnet.Export{Name: ExportPublicSubnetBID},
	}).
	Output("PrivateSubnetAId", vpcnet.Output{
		Description: "ID of private subnet A",
		Value:       &PrivateSubnetA,
		Export:      &vpcnet.Export{Name: ExportPrivateSubnetAID},
	}).
	Output("PrivateSubnetBId", vpcnet.Output{
		Description: "ID of private subnet B",
		Value:       &PrivateSubnetB,
		Export:      &vpcnet.Export{Name: ExportPrivateSubnetBID},
	}).
	Output("PublicRouteTableId", vpcnet.Output{
		Description: "ID of the public route table",
		Value:       &PublicRouteTable,
		Export:      &vpcnet.Export{Name: ExportPublicRouteTableID},
	}).
	Output("PrivateRouteTableId", vpcnet.Output{
		Description: "ID of the private route table",
		Value:       &PrivateRouteTable,
		Export:      &vpcnet.Export{Name: ExportPrivateRouteTableID},
	})
