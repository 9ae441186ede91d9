package peering

import (
	vpcnet "github.com/GraemeHosford/vpc-pluralsight"
)

// Export names for values consumed outside the stack.
const (
	ExportPeeredVpcID         = "peering-PeeredVpcId"
	ExportPeeringConnectionID = "peering-PeeringConnectionId"
)

// Stack peers a second VPC with the base VPC and wires up routes in both
// directions.
var Stack = vpcnet.NewStack("vpc-pluralsight-peering", "Second VPC peered with the base VPC, with bidirectional routes").
	Resource("PeeredVpc", &PeeredVpc).
	Resource("PeeredSubnet", &PeeredSubnet).
	Resource("PeeredRouteTable", &PeeredRouteTable).
	Resource("PeeredSubnetAssociation", &PeeredSubnetAssociation).
	Resource("PeeringConnection", &PeeringConnection).
	Resource("RouteToBase", &RouteToBase).
	Resource("BasePrivateRouteToPeered", &BasePrivateRouteToPeered).
	Resource("BasePublicRouteToPeered", &BasePublicRouteToPeered).
	Output("PeeredVpcId", vpcnet.Output{
		Description: "ID of the peered VPC",
		Value:       &PeeredVpc,
		Export:      &vpcnet.Export{Name: ExportPeeredVpcID},
	}).
	Output("PeeringConnectionId", vpcnet.Output{
		Description: "ID of the peering connection",
		Value:       &PeeringConnection,
		Export:      &vpcnet.Export{Name: ExportPeeringConnectionID},
	})
