// Package hybrid declares the site-to-site VPN portion of the course. A
// second VPC (172.16.0.0/16) stands in for the on-premises network, with a
// software VPN router instance acting as the customer gateway device. The
// AWS side attaches a virtual private gateway to the base VPC and brings up
// a static-route VPN connection to the router's elastic IP.
//
// After deployment the VPN configuration must be downloaded from the console
// and applied to the router instance. The tunnel does not come up on its own.
//
//	+--------------------+            +-----------------------+
//	|  base VPC          |            |  "on-prem" VPC        |
//	|  10.0.0.0/16       |   VPN      |  172.16.0.0/16        |
//	|                    |  tunnel    |                       |
//	|  [VPN gateway] <===+============+==> [router instance]  |
//	|                    |            |                       |
//	+--------------------+            +-----------------------+
package hybrid

import (
	. "github.com/GraemeHosford/vpc-pluralsight/intrinsics"
	"github.com/GraemeHosford/vpc-pluralsight/resources/ec2"
)

// KeyName is the EC2 key pair for SSH access to the router instance.
var KeyName = Parameter{
	Type:        "AWS::EC2::KeyPair::KeyName",
	Description: "EC2 key pair for SSH access to the VPN router",
}

// RegionAmi maps regions to Amazon Linux 2 AMIs for the router instance.
var RegionAmi = Mapping{
	"us-east-1": {"AMI": "ami-0c02fb55956c7d316"},
	"us-west-2": {"AMI": "ami-0ceecbb0f30a902a6"},
	"eu-west-1": {"AMI": "ami-0d71ea30463e0ff8d"},
}

// ----------------------------------------------------------------------------
// Simulated On-Premises Network
// ----------------------------------------------------------------------------

// OnPremVpc simulates the on-premises network.
var OnPremVpc = ec2.VPC{
	CidrBlock:          "172.16.0.0/16",
	EnableDnsSupport:   true,
	EnableDnsHostnames: true,
	Tags: []any{
		Tag{Key: "Name", Value: "onprem-vpc"},
		Tag{Key: "Environment", Value: "pluralsight"},
	},
}

// OnPremSubnet holds the VPN router and any on-prem test hosts.
var OnPremSubnet = ec2.Subnet{
	VpcId:               &OnPremVpc,
	CidrBlock:           "172.16.0.0/24",
	AvailabilityZone:    Select{Index: 0, List: GetAZs{}},
	MapPublicIpOnLaunch: true,
	Tags: []any{
		Tag{Key: "Name", Value: "onprem-subnet"},
	},
}

// OnPremInternetGateway gives the router internet reachability so the VPN
// tunnel endpoints can be reached.
var OnPremInternetGateway = ec2.InternetGateway{
	Tags: []any{
		Tag{Key: "Name", Value: "onprem-igw"},
	},
}

// OnPremGatewayAttachment attaches the internet gateway to the on-prem VPC.
var OnPremGatewayAttachment = ec2.VPCGatewayAttachment{
	VpcId:             &OnPremVpc,
	InternetGatewayId: &OnPremInternetGateway,
}

// OnPremRouteTable routes on-prem traffic.
var OnPremRouteTable = ec2.RouteTable{
	VpcId: &OnPremVpc,
	Tags: []any{
		Tag{Key: "Name", Value: "onprem-rt"},
	},
}

// OnPremDefaultRoute sends internet traffic to the internet gateway.
var OnPremDefaultRoute = ec2.Route{
	RouteTableId:         &OnPremRouteTable,
	DestinationCidrBlock: "0.0.0.0/0",
	GatewayId:            &OnPremInternetGateway,
}

// OnPremAwsRoute sends traffic for the base VPC through the router instance,
// which forwards it over the tunnel.
var OnPremAwsRoute = ec2.Route{
	RouteTableId:         &OnPremRouteTable,
	DestinationCidrBlock: "10.0.0.0/16",
	InstanceId:           &Router,
}

// OnPremSubnetAssociation associates the route table with the subnet.
var OnPremSubnetAssociation = ec2.SubnetRouteTableAssociation{
	SubnetId:     &OnPremSubnet,
	RouteTableId: &OnPremRouteTable,
}

// ----------------------------------------------------------------------------
// VPN Router Instance
// ----------------------------------------------------------------------------

// RouterSecurityGroup admits IPsec traffic to the router. UDP 500 carries
// IKE, UDP 4500 carries NAT-T and protocol 50 is ESP.
var RouterSecurityGroup = ec2.SecurityGroup{
	GroupDescription: "VPN router: IPsec and SSH",
	VpcId:            &OnPremVpc,
	SecurityGroupIngress: []any{
		ec2.SecurityGroup_Ingress{
			Description: "IKE",
			IpProtocol:  "udp",
			FromPort:    500,
			ToPort:      500,
			CidrIp:      "0.0.0.0/0",
		},
		ec2.SecurityGroup_Ingress{
			Description: "NAT traversal",
			IpProtocol:  "udp",
			FromPort:    4500,
			ToPort:      4500,
			CidrIp:      "0.0.0.0/0",
		},
		ec2.SecurityGroup_Ingress{
			Description: "ESP",
			IpProtocol:  "50",
			CidrIp:      "0.0.0.0/0",
		},
		ec2.SecurityGroup_Ingress{
			Description: "SSH from the on-prem network",
			IpProtocol:  "tcp",
			FromPort:    22,
			ToPort:      22,
			CidrIp:      "172.16.0.0/16",
		},
	},
	SecurityGroupEgress: []any{
		ec2.SecurityGroup_Egress{
			Description: "all egress",
			IpProtocol:  "-1",
			CidrIp:      "0.0.0.0/0",
		},
	},
	Tags: []any{
		Tag{Key: "Name", Value: "onprem-router-sg"},
	},
}

// Router is the software VPN endpoint. Source/dest checking is disabled so
// it can forward traffic between the tunnel and the on-prem subnet.
var Router = ec2.Instance{
	ImageId:          FindInMap{MapName: "RegionAmi", TopLevelKey: AWS_REGION, SecondLevelKey: "AMI"},
	InstanceType:     "t3.small",
	SubnetId:         &OnPremSubnet,
	KeyName:          &KeyName,
	SecurityGroupIds: []any{&RouterSecurityGroup},
	SourceDestCheck:  BoolPtr(false),
	UserData: Base64{Value: Sub{String: `#!/bin/bash
yum update -y
yum install -y libreswan
sysctl -w net.ipv4.ip_forward=1
echo "net.ipv4.ip_forward = 1" >> /etc/sysctl.d/99-vpn.conf
systemctl enable ipsec
`}},
	Tags: []any{
		Tag{Key: "Name", Value: "onprem-router"},
	},
}

// RouterEIP is the router's static public address. The customer gateway on
// the AWS side points at it.
var RouterEIP = ec2.EIP{
	Domain:     "vpc",
	InstanceId: &Router,
	Tags: []any{
		Tag{Key: "Name", Value: "onprem-router-eip"},
	},
}
