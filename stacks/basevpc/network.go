// Package basevpc declares the base VPC the rest of the course builds on.
//
// Network Topology:
//
//	VPC (10.0.0.0/16)
//	|
//	+-- Public Subnet AZ-a (10.0.0.0/24)
//	|   +-- NAT Gateway -> Private Subnet routing
//	|
//	+-- Public Subnet AZ-b (10.0.1.0/24)
//	|
//	+-- Private Subnet AZ-a (10.0.10.0/24)
//	|
//	+-- Private Subnet AZ-b (10.0.11.0/24)
//
// The VPC ID, subnet IDs and route table IDs are exported so the web
// server, hybrid, peering and flow-log stacks can import them.
package basevpc

import (
	. "github.com/GraemeHosford/vpc-pluralsight/intrinsics"
	"github.com/GraemeHosford/vpc-pluralsight/resources/ec2"
)

// ----------------------------------------------------------------------------
// VPC
// ----------------------------------------------------------------------------

// Vpc is the main Virtual Private Cloud with DNS support enabled.
var Vpc = ec2.VPC{
	CidrBlock:          "10.0.0.0/16",
	EnableDnsHostnames: true,
	EnableDnsSupport:   true,
	InstanceTenancy:    "default",
	Tags: []any{
		Tag{Key: "Name", Value: Sub{String: "${AWS::StackName}-vpc"}},
	},
}

// ----------------------------------------------------------------------------
// Internet Gateway
// ----------------------------------------------------------------------------

// InternetGateway provides internet access for public subnets.
var InternetGateway = ec2.InternetGateway{
	Tags: []any{
		Tag{Key: "Name", Value: Sub{String: "${AWS::StackName}-igw"}},
	},
}

// GatewayAttachment attaches the Internet Gateway to the VPC.
var GatewayAttachment = ec2.VPCGatewayAttachment{
	InternetGatewayId: &InternetGateway,
	VpcId:             &Vpc,
}

// ----------------------------------------------------------------------------
// Public Subnets
// ----------------------------------------------------------------------------

// PublicSubnetA is a public subnet in the first availability zone.
var PublicSubnetA = ec2.Subnet{
	VpcId:               &Vpc,
	CidrBlock:           "10.0.0.0/24",
	AvailabilityZone:    Select{Index: 0, List: GetAZs{}},
	MapPublicIpOnLaunch: true,
	Tags: []any{
		Tag{Key: "Name", Value: Sub{String: "${AWS::StackName}-public-a"}},
	},
}

// PublicSubnetB is a public subnet in the second availability zone.
var PublicSubnetB = ec2.Subnet{
	VpcId:               &Vpc,
	CidrBlock:           "10.0.1.0/24",
	AvailabilityZone:    Select{Index: 1, List: GetAZs{}},
	MapPublicIpOnLaunch: true,
	Tags: []any{
		Tag{Key: "Name", Value: Sub{String: "${AWS::StackName}-public-b"}},
	},
}

// ----------------------------------------------------------------------------
// Private Subnets
// ----------------------------------------------------------------------------

// PrivateSubnetA is a private subnet in the first availability zone.
var PrivateSubnetA = ec2.Subnet{
	VpcId:               &Vpc,
	CidrBlock:           "10.0.10.0/24",
	AvailabilityZone:    Select{Index: 0, List: GetAZs{}},
	MapPublicIpOnLaunch: false,
	Tags: []any{
		Tag{Key: "Name", Value: Sub{String: "${AWS::StackName}-private-a"}},
	},
}

// PrivateSubnetB is a private subnet in the second availability zone.
var PrivateSubnetB = ec2.Subnet{
	VpcId:               &Vpc,
	CidrBlock:           "10.0.11.0/24",
	AvailabilityZone:    Select{Index: 1, List: GetAZs{}},
	MapPublicIpOnLaunch: false,
	Tags: []any{
		Tag{Key: "Name", Value: Sub{String: "${AWS::StackName}-private-b"}},
	},
}

// ----------------------------------------------------------------------------
// NAT Gateway (for private subnet internet access)
// ----------------------------------------------------------------------------

// NatEip is the Elastic IP for the NAT Gateway.
var NatEip = ec2.EIP{
	Domain: "vpc",
	Tags: []any{
		Tag{Key: "Name", Value: Sub{String: "${AWS::StackName}-nat-eip"}},
	},
}

// NatGateway provides outbound internet access for private subnets.
var NatGateway = ec2.NatGateway{
	AllocationId: GetAtt{Resource: &NatEip, Attribute: "AllocationId"},
	SubnetId:     &PublicSubnetA,
	Tags: []any{
		Tag{Key: "Name", Value: Sub{String: "${AWS::StackName}-nat"}},
	},
}
