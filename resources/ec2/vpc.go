// Package ec2 provides CloudFormation resource types for AWS::EC2.
//
// The set is curated to the networking resources this repository declares:
// VPCs, subnets, routing, gateways, security groups, network ACLs,
// instances, peering, VPN and flow logs. Field names mirror CloudFormation
// property names exactly; the synthesizer serializes them by reflection.
//
// Fields typed any accept literal values, intrinsics, registered resource
// pointers (resolved to Ref) and GetAtt references.
package ec2

// VPC is an AWS::EC2::VPC resource.
//
// GetAtt attributes: VpcId, CidrBlock, DefaultNetworkAcl,
// DefaultSecurityGroup.
type VPC struct {
	CidrBlock          string
	EnableDnsHostnames bool
	EnableDnsSupport   bool
	InstanceTenancy    string
	Tags               []any
}

func (VPC) ResourceType() string { return "AWS::EC2::VPC" }

// Subnet is an AWS::EC2::Subnet resource.
//
// GetAtt attributes: SubnetId, AvailabilityZone, CidrBlock, VpcId.
type Subnet struct {
	VpcId               any
	CidrBlock           string
	AvailabilityZone    any
	MapPublicIpOnLaunch bool
	Tags                []any
}

func (Subnet) ResourceType() string { return "AWS::EC2::Subnet" }

// DHCPOptions is an AWS::EC2::DHCPOptions resource.
type DHCPOptions struct {
	DomainName         string
	DomainNameServers  []any
	NtpServers         []any
	NetbiosNameServers []any
	NetbiosNodeType    int
	Tags               []any
}

func (DHCPOptions) ResourceType() string { return "AWS::EC2::DHCPOptions" }

// VPCDHCPOptionsAssociation is an AWS::EC2::VPCDHCPOptionsAssociation resource.
type VPCDHCPOptionsAssociation struct {
	DhcpOptionsId any
	VpcId         any
}

func (VPCDHCPOptionsAssociation) ResourceType() string {
	return "AWS::EC2::VPCDHCPOptionsAssociation"
}
