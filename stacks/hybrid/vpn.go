package hybrid

import (
	. "github.com/GraemeHosford/vpc-pluralsight/intrinsics"
	"github.com/GraemeHosford/vpc-pluralsight/resources/ec2"
	"github.com/GraemeHosford/vpc-pluralsight/stacks/basevpc"
)

// ----------------------------------------------------------------------------
// AWS Side of the VPN
// ----------------------------------------------------------------------------

// VpnGateway is the AWS endpoint of the VPN, attached to the base VPC.
var VpnGateway = ec2.VPNGateway{
	Type: "ipsec.1",
	Tags: []any{
		Tag{Key: "Name", Value: "base-vpc-vgw"},
	},
}

// VpnGatewayAttachment attaches the virtual private gateway to the base VPC.
var VpnGatewayAttachment = ec2.VPCGatewayAttachment{
	VpcId:        ImportValue{Name: basevpc.ExportVpcID},
	VpnGatewayId: &VpnGateway,
}

// CustomerGateway represents the on-prem router from the AWS side. The BGP
// ASN is required even though the connection uses static routing.
var CustomerGateway = ec2.CustomerGateway{
	Type:      "ipsec.1",
	BgpAsn:    65000,
	IpAddress: &RouterEIP,
	Tags: []any{
		Tag{Key: "Name", Value: "onprem-cgw"},
	},
}

// VpnConnection is the site-to-site tunnel. Static routes only, since the
// software router does not speak BGP in this course.
var VpnConnection = ec2.VPNConnection{
	Type:              "ipsec.1",
	CustomerGatewayId: &CustomerGateway,
	VpnGatewayId:      &VpnGateway,
	StaticRoutesOnly:  true,
	Tags: []any{
		Tag{Key: "Name", Value: "onprem-vpn"},
	},
}

// OnPremStaticRoute tells the tunnel which prefix lives on the far side.
var OnPremStaticRoute = ec2.VPNConnectionRoute{
	DestinationCidrBlock: "172.16.0.0/16",
	VpnConnectionId:      &VpnConnection,
}

// PrivateRoutePropagation propagates VPN routes into the base VPC's private
// route table, so the private subnets can reach the on-prem network.
var PrivateRoutePropagation = ec2.VPNGatewayRoutePropagation{
	RouteTableIds: []any{ImportValue{Name: basevpc.ExportPrivateRouteTableID}},
	VpnGatewayId:  &VpnGateway,
}
