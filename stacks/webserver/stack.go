package webserver

import (
	vpcnet "github.com/GraemeHosford/vpc-pluralsight"
	"github.com/GraemeHosford/vpc-pluralsight/intrinsics"
)

// Export names for values consumed by later course stacks.
const (
	ExportWebSecurityGroupID = "web-server-WebSecurityGroupId"
	ExportWebServerPublicIP  = "web-server-WebServerPublicIp"
	ExportPrivateHostIP      = "web-server-PrivateHostIp"
)

// Stack layers the web tier onto the base VPC: security groups, a network
// ACL on the public subnets and two EC2 instances.
var Stack = vpcnet.NewStack("vpc-pluralsight-web", "Web server tier: security groups, public subnet NACL and EC2 instances").
	Parameter("KeyName", &KeyName).
	Parameter("AdminCidr", &AdminCidr).
	Mapping("RegionAmi", RegionAmi).
	Resource("WebSecurityGroup", &WebSecurityGroup).
	Resource("PrivateSecurityGroup", &PrivateSecurityGroup).
	Resource("PublicNacl", &PublicNacl).
	Resource("NaclIngressHTTP", &NaclIngressHTTP).
	Resource("NaclIngressHTTPS", &NaclIngressHTTPS).
	Resource("NaclIngressSSH", &NaclIngressSSH).
	Resource("NaclIngressEphemeral", &NaclIngressEphemeral).
	Resource("NaclEgressAll", &NaclEgressAll).
	Resource("PublicSubnetANaclAssociation", &PublicSubnetANaclAssociation).
	Resource("PublicSubnetBNaclAssociation", &PublicSubnetBNaclAssociation).
	Resource("WebServer", &WebServer).
	Resource("PrivateHost", &PrivateHost).
	Output("WebSecurityGroupId", vpcnet.Output{
		Description: "ID of the web server security group",
		Value:       intrinsics.GetAtt{Resource: &WebSecurityGroup, Attribute: "GroupId"},
		Export:      &vpcnet.Export{Name: ExportWebSecurityGroupID},
	}).
	Output("WebServerPublicIp", vpcnet.Output{
		Description: "Public IP of the web server",
		Value:       intrinsics.GetAtt{Resource: &WebServer, Attribute: "PublicIp"},
		Export:      &vpcnet.Export{Name: ExportWebServerPublicIP},
	}).
	Output("PrivateHostIp", vpcnet.Output{
		Description: "Private IP of the backend host",
		Value:       intrinsics.GetAtt{Resource: &PrivateHost, Attribute: "PrivateIp"},
		Export:      &vpcnet.Export{Name: ExportPrivateHostIP},
	})
