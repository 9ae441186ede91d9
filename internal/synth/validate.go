package synth

import "fmt"

// requiredProps lists properties CloudFormation rejects a resource without.
// Only the types this repository declares are covered.
var requiredProps = map[string][]string{
	"AWS::EC2::VPC":                         {"CidrBlock"},
	"AWS::EC2::Subnet":                      {"VpcId", "CidrBlock"},
	"AWS::EC2::VPCGatewayAttachment":        {"VpcId"},
	"AWS::EC2::RouteTable":                  {"VpcId"},
	"AWS::EC2::Route":                       {"RouteTableId", "DestinationCidrBlock"},
	"AWS::EC2::SubnetRouteTableAssociation": {"SubnetId", "RouteTableId"},
	"AWS::EC2::NatGateway":                  {"SubnetId"},
	"AWS::EC2::SecurityGroup":               {"GroupDescription"},
	"AWS::EC2::NetworkAcl":                  {"VpcId"},
	"AWS::EC2::NetworkAclEntry":             {"NetworkAclId", "RuleNumber", "Protocol", "RuleAction", "CidrBlock"},
	"AWS::EC2::SubnetNetworkAclAssociation": {"SubnetId", "NetworkAclId"},
	"AWS::EC2::Instance":                    {"ImageId"},
	"AWS::EC2::CustomerGateway":             {"Type", "BgpAsn", "IpAddress"},
	"AWS::EC2::VPNGateway":                  {"Type"},
	"AWS::EC2::VPNConnection":               {"Type", "CustomerGatewayId", "VpnGatewayId"},
	"AWS::EC2::VPNConnectionRoute":          {"DestinationCidrBlock", "VpnConnectionId"},
	"AWS::EC2::VPNGatewayRoutePropagation":  {"RouteTableIds", "VpnGatewayId"},
	"AWS::EC2::VPCPeeringConnection":        {"VpcId", "PeerVpcId"},
	"AWS::EC2::FlowLog":                     {"ResourceId", "ResourceType", "TrafficType"},
	"AWS::IAM::Role":                        {"AssumeRolePolicyDocument"},
}

// exactlyOneOf lists property groups where CloudFormation requires exactly
// one member to be set.
var exactlyOneOf = map[string][][]string{
	"AWS::EC2::VPCGatewayAttachment": {
		{"InternetGatewayId", "VpnGatewayId"},
	},
	"AWS::EC2::Route": {
		{"GatewayId", "NatGatewayId", "VpcPeeringConnectionId", "InstanceId", "NetworkInterfaceId"},
	},
}

// Validate checks every resource in the model against the required-property
// tables. It returns one error per violation.
func Validate(m *Model) []error {
	var errs []error

	for _, name := range sortedInfoNames(m.Resources) {
		info := m.Resources[name]

		for _, prop := range requiredProps[info.Type] {
			if _, ok := info.Properties[prop]; !ok {
				errs = append(errs, fmt.Errorf("%s (%s): missing required property %s", name, info.Type, prop))
			}
		}

		for _, group := range exactlyOneOf[info.Type] {
			var set []string
			for _, prop := range group {
				if _, ok := info.Properties[prop]; ok {
					set = append(set, prop)
				}
			}
			switch {
			case len(set) == 0:
				errs = append(errs, fmt.Errorf("%s (%s): one of %v must be set", name, info.Type, group))
			case len(set) > 1:
				errs = append(errs, fmt.Errorf("%s (%s): only one of %v may be set, got %v", name, info.Type, group, set))
			}
		}
	}

	return errs
}

func sortedInfoNames(resources map[string]ResourceInfo) []string {
	return sortedKeys(toSet(resources))
}

func toSet(resources map[string]ResourceInfo) map[string]bool {
	set := make(map[string]bool, len(resources))
	for name := range resources {
		set[name] = true
	}
	return set
}
