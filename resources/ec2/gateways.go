package ec2

// InternetGateway is an AWS::EC2::InternetGateway resource.
//
// GetAtt attributes: InternetGatewayId.
type InternetGateway struct {
	Tags []any
}

func (InternetGateway) ResourceType() string { return "AWS::EC2::InternetGateway" }

// VPCGatewayAttachment is an AWS::EC2::VPCGatewayAttachment resource.
// Exactly one of InternetGatewayId or VpnGatewayId must be set.
type VPCGatewayAttachment struct {
	VpcId             any
	InternetGatewayId any
	VpnGatewayId      any
}

func (VPCGatewayAttachment) ResourceType() string { return "AWS::EC2::VPCGatewayAttachment" }

// EIP is an AWS::EC2::EIP resource.
//
// GetAtt attributes: AllocationId, PublicIp. Ref returns the public IP.
type EIP struct {
	Domain     string
	InstanceId any
	Tags       []any
}

func (EIP) ResourceType() string { return "AWS::EC2::EIP" }

// NatGateway is an AWS::EC2::NatGateway resource.
//
// GetAtt attributes: NatGatewayId.
type NatGateway struct {
	AllocationId     any
	SubnetId         any
	ConnectivityType string
	Tags             []any
}

func (NatGateway) ResourceType() string { return "AWS::EC2::NatGateway" }
