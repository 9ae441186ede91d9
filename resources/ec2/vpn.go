package ec2

// CustomerGateway is an AWS::EC2::CustomerGateway resource.
// IpAddress is the static, internet-routable address of the on-premises
// VPN device.
//
// GetAtt attributes: CustomerGatewayId.
type CustomerGateway struct {
	Type      string
	BgpAsn    int
	IpAddress any
	Tags      []any
}

func (CustomerGateway) ResourceType() string { return "AWS::EC2::CustomerGateway" }

// VPNGateway is an AWS::EC2::VPNGateway resource.
//
// GetAtt attributes: VPNGatewayId.
type VPNGateway struct {
	Type          string
	AmazonSideAsn int64
	Tags          []any
}

func (VPNGateway) ResourceType() string { return "AWS::EC2::VPNGateway" }

// VPNConnection is an AWS::EC2::VPNConnection resource.
//
// GetAtt attributes: VpnConnectionId.
type VPNConnection struct {
	Type              string
	CustomerGatewayId any
	VpnGatewayId      any
	StaticRoutesOnly  bool
	Tags              []any
}

func (VPNConnection) ResourceType() string { return "AWS::EC2::VPNConnection" }

// VPNConnectionRoute is an AWS::EC2::VPNConnectionRoute resource.
type VPNConnectionRoute struct {
	DestinationCidrBlock string
	VpnConnectionId      any
}

func (VPNConnectionRoute) ResourceType() string { return "AWS::EC2::VPNConnectionRoute" }

// VPNGatewayRoutePropagation is an AWS::EC2::VPNGatewayRoutePropagation resource.
type VPNGatewayRoutePropagation struct {
	RouteTableIds []any
	VpnGatewayId  any
}

func (VPNGatewayRoutePropagation) ResourceType() string {
	return "AWS::EC2::VPNGatewayRoutePropagation"
}

// VPCPeeringConnection is an AWS::EC2::VPCPeeringConnection resource.
//
// GetAtt attributes: Id.
type VPCPeeringConnection struct {
	VpcId       any
	PeerVpcId   any
	PeerRegion  string
	PeerOwnerId string
	Tags        []any
}

func (VPCPeeringConnection) ResourceType() string { return "AWS::EC2::VPCPeeringConnection" }

// FlowLog is an AWS::EC2::FlowLog resource.
//
// The CloudFormation property "ResourceType" collides with the Resource
// interface method, so it is declared as MonitoredResourceType with a json
// tag carrying the real property name.
//
// GetAtt attributes: Id.
type FlowLog struct {
	ResourceId               any
	MonitoredResourceType    string `json:"ResourceType"`
	TrafficType              string
	LogGroupName             any
	DeliverLogsPermissionArn any
	LogDestinationType       string
	MaxAggregationInterval   int
	Tags                     []any
}

func (FlowLog) ResourceType() string { return "AWS::EC2::FlowLog" }
