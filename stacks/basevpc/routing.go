// Package basevpc declares the base VPC the rest of the course builds on.
//
// This file contains route tables, routes and subnet associations.
package basevpc

import (
	. "github.com/GraemeHosford/vpc-pluralsight/intrinsics"
	"github.com/GraemeHosford/vpc-pluralsight/resources/ec2"
)

// ----------------------------------------------------------------------------
// Route Tables - Public
// ----------------------------------------------------------------------------

// PublicRouteTable is the route table for public subnets.
var PublicRouteTable = ec2.RouteTable{
	VpcId: &Vpc,
	Tags: []any{
		Tag{Key: "Name", Value: Sub{String: "${AWS::StackName}-public-rt"}},
	},
}

// PublicDefaultRoute routes internet traffic through the Internet Gateway.
var PublicDefaultRoute = ec2.Route{
	RouteTableId:         &PublicRouteTable,
	DestinationCidrBlock: "0.0.0.0/0",
	GatewayId:            &InternetGateway,
}

// PublicSubnetAAssociation associates PublicSubnetA with the public route table.
var PublicSubnetAAssociation = ec2.SubnetRouteTableAssociation{
	SubnetId:     &PublicSubnetA,
	RouteTableId: &PublicRouteTable,
}

// PublicSubnetBAssociation associates PublicSubnetB with the public route table.
var PublicSubnetBAssociation = ec2.SubnetRouteTableAssociation{
	SubnetId:     &PublicSubnetB,
	RouteTableId: &PublicRouteTable,
}

// ----------------------------------------------------------------------------
// Route Tables - Private
// ----------------------------------------------------------------------------

// PrivateRouteTable is the route table for private subnets.
// The hybrid stack propagates VPN routes into this table.
var PrivateRouteTable = ec2.RouteTable{
	VpcId: &Vpc,
	Tags: []any{
		Tag{Key: "Name", Value: Sub{String: "${AWS::StackName}-private-rt"}},
	},
}

// PrivateDefaultRoute routes internet traffic through the NAT Gateway.
var PrivateDefaultRoute = ec2.Route{
	RouteTableId:         &PrivateRouteTable,
	DestinationCidrBlock: "0.0.0.0/0",
	NatGatewayId:         &NatGateway,
}

// PrivateSubnetAAssociation associates PrivateSubnetA with the private route table.
var PrivateSubnetAAssociation = ec2.SubnetRouteTableAssociation{
	SubnetId:     &PrivateSubnetA,
	RouteTableId: &PrivateRouteTable,
}

// PrivateSubnetBAssociation associates PrivateSubnetB with the private route table.
var PrivateSubnetBAssociation = ec2.SubnetRouteTableAssociation{
	SubnetId:     &PrivateSubnetB,
	RouteTableId: &PrivateRouteTable,
}
