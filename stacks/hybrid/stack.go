package hybrid

import (
	vpcnet "github.com/GraemeHosford/vpc-pluralsight"
)

// Export names for values consumed outside the stack.
const (
	ExportOnPremVpcID     = "hybrid-OnPremVpcId"
	ExportRouterIP        = "hybrid-RouterPublicIp"
	ExportVpnGatewayID    = "hybrid-VpnGatewayId"
	ExportVpnConnectionID = "hybrid-VpnConnectionId"
)

// Stack simulates a hybrid network: an on-prem VPC with a software VPN
// router, connected to the base VPC over a static site-to-site VPN.
var Stack = vpcnet.NewStack("vpc-pluralsight-hybrid", "Site-to-site VPN between the base VPC and a simulated on-premises network").
	Parameter("KeyName", &KeyName).
	Mapping("RegionAmi", RegionAmi).
	Resource("OnPremVpc", &OnPremVpc).
	Resource("OnPremSubnet", &OnPremSubnet).
	Resource("OnPremInternetGateway", &OnPremInternetGateway).
	Resource("OnPremGatewayAttachment", &OnPremGatewayAttachment).
	Resource("OnPremRouteTable", &OnPremRouteTable).
	Resource("OnPremDefaultRoute", &OnPremDefaultRoute).
	Resource("OnPremAwsRoute", &OnPremAwsRoute).
	Resource("OnPremSubnetAssociation", &OnPremSubnetAssociation).
	Resource("RouterSecurityGroup", &RouterSecurityGroup).
	Resource("Router", &Router).
	Resource("RouterEIP", &RouterEIP).
	Resource("VpnGateway", &VpnGateway).
	Resource("VpnGatewayAttachment", &VpnGatewayAttachment).
	Resource("CustomerGateway", &CustomerGateway).
	Resource("VpnConnection", &VpnConnection).
	Resource("OnPremStaticRoute", &OnPremStaticRoute).
	Resource("PrivateRoutePropagation", &PrivateRoutePropagation).
	Output("OnPremVpcId", vpcnet.Output{
		Description: "ID of the simulated on-premises VPC",
		Value:       &OnPremVpc,
		Export:      &vpcnet.Export{Name: ExportOnPremVpcID},
	}).
	Output("RouterPublicIp", vpcnet.Output{
		Description: "Elastic IP of the VPN router",
		Value:       &RouterEIP,
		Export:      &vpcnet.Export{Name: ExportRouterIP},
	}).
	Output("VpnGatewayId", vpcnet.Output{
		Description: "ID of the virtual private gateway",
		Value:       &VpnGateway,
		Export:      &vpcnet.Export{Name: ExportVpnGatewayID},
	}).
	Output("VpnConnectionId", vpcnet.Output{
		Description: "ID of the VPN connection",
		Value:       &VpnConnection,
		Export:      &vpcnet.Export{Name: ExportVpnConnectionID},
	})
