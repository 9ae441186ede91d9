package webserver

import (
	. "github.com/GraemeHosford/vpc-pluralsight/intrinsics"
	"github.com/GraemeHosford/vpc-pluralsight/resources/ec2"
	"github.com/GraemeHosford/vpc-pluralsight/stacks/basevpc"
)

// ----------------------------------------------------------------------------
// Parameters
// ----------------------------------------------------------------------------

// KeyName is the EC2 key pair used for SSH access to both instances.
var KeyName = Parameter{
	Type:        "AWS::EC2::KeyPair::KeyName",
	Description: "EC2 key pair for SSH access",
}

// AdminCidr restricts SSH access to the web server.
var AdminCidr = Parameter{
	Type:                  "String",
	Description:           "CIDR block allowed to SSH to the web server",
	Default:               "10.0.0.0/16",
	AllowedPattern:        `^(\d{1,3}\.){3}\d{1,3}/\d{1,2}$`,
	ConstraintDescription: "must be a valid CIDR block (e.g. 203.0.113.0/24)",
}

// ----------------------------------------------------------------------------
// AMI Mapping
// ----------------------------------------------------------------------------

// RegionAmi maps regions to Amazon Linux 2 AMIs.
var RegionAmi = Mapping{
	"us-east-1": {"AMI": "ami-0c02fb55956c7d316"},
	"us-west-2": {"AMI": "ami-0ceecbb0f30a902a6"},
	"eu-west-1": {"AMI": "ami-0d71ea30463e0ff8d"},
}

// ----------------------------------------------------------------------------
// Instances
// ----------------------------------------------------------------------------

// WebUserData installs and starts Apache with a placeholder page.
var WebUserData = Base64{Value: Sub{String: `#!/bin/bash
yum update -y
yum install -y httpd
systemctl enable httpd
systemctl start httpd
echo "<h1>${AWS::StackName} web server</h1>" > /var/www/html/index.html
`}}

// WebServer is the public-facing web server in public subnet A.
var WebServer = ec2.Instance{
	ImageId:          FindInMap{MapName: "RegionAmi", TopLevelKey: AWS_REGION, SecondLevelKey: "AMI"},
	InstanceType:     "t3.micro",
	SubnetId:         ImportValue{Name: basevpc.ExportPublicSubnetAID},
	KeyName:          &KeyName,
	SecurityGroupIds: []any{&WebSecurityGroup},
	UserData:         WebUserData,
	Tags: []any{
		Tag{Key: "Name", Value: Sub{String: "${AWS::StackName}-web"}},
	},
}

// PrivateHost sits in private subnet A with no public IP. The course uses
// it to verify NAT egress and, later, VPN and peering reachability.
var PrivateHost = ec2.Instance{
	ImageId:          FindInMap{MapName: "RegionAmi", TopLevelKey: AWS_REGION, SecondLevelKey: "AMI"},
	InstanceType:     "t3.micro",
	SubnetId:         ImportValue{Name: basevpc.ExportPrivateSubnetAID},
	KeyName:          &KeyName,
	SecurityGroupIds: []any{&PrivateSecurityGroup},
	Tags: []any{
		Tag{Key: "Name", Value: Sub{String: "${AWS::StackName}-private-host"}},
	},
}
