// Package webserver declares the course's security and compute layer on top
// of the base VPC: security groups, a network ACL for the public subnets,
// a web server and a host in a private subnet for testing NAT egress.
//
// The base VPC is consumed through its exported values, so this stack can
// only deploy after vpc-pluralsight-base.
package webserver

import (
	. "github.com/GraemeHosford/vpc-pluralsight/intrinsics"
	"github.com/GraemeHosford/vpc-pluralsight/resources/ec2"
	"github.com/GraemeHosford/vpc-pluralsight/stacks/basevpc"
)

// ----------------------------------------------------------------------------
// Web Tier Security Group
// ----------------------------------------------------------------------------

// WebHTTPIngress allows HTTP traffic from the internet.
var WebHTTPIngress = ec2.SecurityGroup_Ingress{
	Description: "Allow HTTP from internet",
	IpProtocol:  "tcp",
	FromPort:    80,
	ToPort:      80,
	CidrIp:      "0.0.0.0/0",
}

// WebHTTPSIngress allows HTTPS traffic from the internet.
var WebHTTPSIngress = ec2.SecurityGroup_Ingress{
	Description: "Allow HTTPS from internet",
	IpProtocol:  "tcp",
	FromPort:    443,
	ToPort:      443,
	CidrIp:      "0.0.0.0/0",
}

// WebSSHIngress allows SSH only from the admin CIDR.
var WebSSHIngress = ec2.SecurityGroup_Ingress{
	Description: "Allow SSH from admin network",
	IpProtocol:  "tcp",
	FromPort:    22,
	ToPort:      22,
	CidrIp:      &AdminCidr,
}

// WebEgressAll allows all outbound traffic.
var WebEgressAll = ec2.SecurityGroup_Egress{
	Description: "Allow all outbound",
	IpProtocol:  "-1",
	CidrIp:      "0.0.0.0/0",
}

// WebSecurityGroup fronts the web server.
var WebSecurityGroup = ec2.SecurityGroup{
	GroupDescription:     "Web tier - HTTP/HTTPS from internet, SSH from admin network",
	VpcId:                ImportValue{Name: basevpc.ExportVpcID},
	SecurityGroupIngress: []any{WebHTTPIngress, WebHTTPSIngress, WebSSHIngress},
	SecurityGroupEgress:  []any{WebEgressAll},
	Tags: []any{
		Tag{Key: "Name", Value: Sub{String: "${AWS::StackName}-web-sg"}},
	},
}

// ----------------------------------------------------------------------------
// Private Tier Security Group
// ----------------------------------------------------------------------------

// PrivateSSHIngress allows SSH from the web tier only.
var PrivateSSHIngress = ec2.SecurityGroup_Ingress{
	Description:           "Allow SSH from web tier",
	IpProtocol:            "tcp",
	FromPort:              22,
	ToPort:                22,
	SourceSecurityGroupId: GetAtt{Resource: &WebSecurityGroup, Attribute: "GroupId"},
}

// PrivatePingIngress allows ICMP echo from anywhere in the VPC, used in the
// course to verify routing over NAT, VPN and peering paths.
var PrivatePingIngress = ec2.SecurityGroup_Ingress{
	Description: "Allow ICMP echo from the VPC",
	IpProtocol:  "icmp",
	FromPort:    -1,
	ToPort:      -1,
	CidrIp:      ImportValue{Name: basevpc.ExportVpcCidr},
}

// PrivateEgressAll allows all outbound traffic.
var PrivateEgressAll = ec2.SecurityGroup_Egress{
	Description: "Allow all outbound",
	IpProtocol:  "-1",
	CidrIp:      "0.0.0.0/0",
}

// PrivateSecurityGroup protects the private host.
var PrivateSecurityGroup = ec2.SecurityGroup{
	GroupDescription:     "Private tier - SSH from web tier, ICMP from the VPC",
	VpcId:                ImportValue{Name: basevpc.ExportVpcID},
	SecurityGroupIngress: []any{PrivateSSHIngress, PrivatePingIngress},
	SecurityGroupEgress:  []any{PrivateEgressAll},
	Tags: []any{
		Tag{Key: "Name", Value: Sub{String: "${AWS::StackName}-private-sg"}},
	},
}

// ----------------------------------------------------------------------------
// Public Subnet Network ACL
// ----------------------------------------------------------------------------

// PublicNacl replaces the default NACL on the public subnets with explicit,
// numbered rules.
var PublicNacl = ec2.NetworkAcl{
	VpcId: ImportValue{Name: basevpc.ExportVpcID},
	Tags: []any{
		Tag{Key: "Name", Value: Sub{String: "${AWS::StackName}-public-nacl"}},
	},
}

// NaclIngressHTTP allows inbound HTTP.
var NaclIngressHTTP = ec2.NetworkAclEntry{
	NetworkAclId: &PublicNacl,
	RuleNumber:   100,
	Protocol:     6,
	RuleAction:   "allow",
	CidrBlock:    "0.0.0.0/0",
	PortRange:    &ec2.PortRange{From: 80, To: 80},
}

// NaclIngressHTTPS allows inbound HTTPS.
var NaclIngressHTTPS = ec2.NetworkAclEntry{
	NetworkAclId: &PublicNacl,
	RuleNumber:   110,
	Protocol:     6,
	RuleAction:   "allow",
	CidrBlock:    "0.0.0.0/0",
	PortRange:    &ec2.PortRange{From: 443, To: 443},
}

// NaclIngressSSH allows inbound SSH. NACLs cannot reference parameters per
// rule the way security groups can, so this stays open at the ACL layer and
// is restricted by the security group.
var NaclIngressSSH = ec2.NetworkAclEntry{
	NetworkAclId: &PublicNacl,
	RuleNumber:   120,
	Protocol:     6,
	RuleAction:   "allow",
	CidrBlock:    "0.0.0.0/0",
	PortRange:    &ec2.PortRange{From: 22, To: 22},
}

// NaclIngressEphemeral allows return traffic on ephemeral ports.
var NaclIngressEphemeral = ec2.NetworkAclEntry{
	NetworkAclId: &PublicNacl,
	RuleNumber:   140,
	Protocol:     6,
	RuleAction:   "allow",
	CidrBlock:    "0.0.0.0/0",
	PortRange:    &ec2.PortRange{From: 1024, To: 65535},
}

// NaclEgressAll allows all outbound traffic.
var NaclEgressAll = ec2.NetworkAclEntry{
	NetworkAclId: &PublicNacl,
	RuleNumber:   100,
	Protocol:     -1,
	RuleAction:   "allow",
	Egress:       true,
	CidrBlock:    "0.0.0.0/0",
}

// PublicSubnetANaclAssociation attaches the NACL to public subnet A.
var PublicSubnetANaclAssociation = ec2.SubnetNetworkAclAssociation{
	SubnetId:     ImportValue{Name: basevpc.ExportPublicSubnetAID},
	NetworkAclId: &PublicNacl,
}

// PublicSubnetBNaclAssociation attaches the NACL to public subnet B.
var PublicSubnetBNaclAssociation = ec2.SubnetNetworkAclAssociation{
	SubnetId:     ImportValue{Name: basevpc.ExportPublicSubnetBID},
	NetworkAclId: &PublicNacl,
}
