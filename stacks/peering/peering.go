// Package peering declares a second VPC (10.1.0.0/16) and peers it with the
// base VPC. Routes are added on both sides so the private subnets of each
// VPC can reach one another. Peering is not transitive: the peered VPC gains
// no path to the on-prem network or the internet through the base VPC.
package peering

import (
	. "github.com/GraemeHosford/vpc-pluralsight/intrinsics"
	"github.com/GraemeHosford/vpc-pluralsight/resources/ec2"
	"github.com/GraemeHosford/vpc-pluralsight/stacks/basevpc"
)

// PeeredVpc is the second VPC. Its CIDR must not overlap the base VPC's.
var PeeredVpc = ec2.VPC{
	CidrBlock:          "10.1.0.0/16",
	EnableDnsSupport:   true,
	EnableDnsHostnames: true,
	Tags: []any{
		Tag{Key: "Name", Value: "peered-vpc"},
		Tag{Key: "Environment", Value: "pluralsight"},
	},
}

// PeeredSubnet is a private subnet in the peered VPC.
var PeeredSubnet = ec2.Subnet{
	VpcId:            &PeeredVpc,
	CidrBlock:        "10.1.0.0/24",
	AvailabilityZone: Select{Index: 0, List: GetAZs{}},
	Tags: []any{
		Tag{Key: "Name", Value: "peered-subnet"},
	},
}

// PeeredRouteTable routes traffic inside the peered VPC.
var PeeredRouteTable = ec2.RouteTable{
	VpcId: &PeeredVpc,
	Tags: []any{
		Tag{Key: "Name", Value: "peered-rt"},
	},
}

// PeeredSubnetAssociation associates the route table with the subnet.
var PeeredSubnetAssociation = ec2.SubnetRouteTableAssociation{
	SubnetId:     &PeeredSubnet,
	RouteTableId: &PeeredRouteTable,
}

// PeeringConnection peers the base VPC with the peered VPC. Both VPCs live
// in the same account and region, so the connection auto-accepts.
var PeeringConnection = ec2.VPCPeeringConnection{
	VpcId:     ImportValue{Name: basevpc.ExportVpcID},
	PeerVpcId: &PeeredVpc,
	Tags: []any{
		Tag{Key: "Name", Value: "base-to-peered"},
	},
}

// RouteToBase sends traffic for the base VPC over the peering connection.
var RouteToBase = ec2.Route{
	RouteTableId:           &PeeredRouteTable,
	DestinationCidrBlock:   "10.0.0.0/16",
	VpcPeeringConnectionId: &PeeringConnection,
}

// BasePrivateRouteToPeered gives the base VPC's private subnets a return
// path to the peered VPC.
var BasePrivateRouteToPeered = ec2.Route{
	RouteTableId:           ImportValue{Name: basevpc.ExportPrivateRouteTableID},
	DestinationCidrBlock:   "10.1.0.0/16",
	VpcPeeringConnectionId: &PeeringConnection,
}

// BasePublicRouteToPeered does the same for the public subnets.
var BasePublicRouteToPeered = ec2.Route{
	RouteTableId:           ImportValue{Name: basevpc.ExportPublicRouteTableID},
	DestinationCidrBlock:   "10.1.0.0/16",
	VpcPeeringConnectionId: &PeeringConnection,
}
