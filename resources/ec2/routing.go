package ec2

// RouteTable is an AWS::EC2::RouteTable resource.
//
// GetAtt attributes: RouteTableId.
type RouteTable struct {
	VpcId any
	Tags  []any
}

func (RouteTable) ResourceType() string { return "AWS::EC2::RouteTable" }

// Route is an AWS::EC2::Route resource.
// Exactly one target (GatewayId, NatGatewayId, VpcPeeringConnectionId,
// InstanceId or NetworkInterfaceId) must be set.
type Route struct {
	RouteTableId           any
	DestinationCidrBlock   string
	GatewayId              any
	NatGatewayId           any
	VpcPeeringConnectionId any
	InstanceId             any
	NetworkInterfaceId     any
}

func (Route) ResourceType() string { return "AWS::EC2::Route" }

// SubnetRouteTableAssociation is an AWS::EC2::SubnetRouteTableAssociation resource.
type SubnetRouteTableAssociation struct {
	SubnetId     any
	RouteTableId any
}

func (SubnetRouteTableAssociation) ResourceType() string {
	return "AWS::EC2::SubnetRouteTableAssociation"
}
