package ec2

// SecurityGroup is an AWS::EC2::SecurityGroup resource.
//
// GetAtt attributes: GroupId, VpcId.
type SecurityGroup struct {
	GroupDescription     string
	GroupName            string
	VpcId                any
	SecurityGroupIngress []any
	SecurityGroupEgress  []any
	Tags                 []any
}

func (SecurityGroup) ResourceType() string { return "AWS::EC2::SecurityGroup" }

// SecurityGroup_Ingress is the ingress rule property type for SecurityGroup.
type SecurityGroup_Ingress struct {
	Description           string
	IpProtocol            string
	FromPort              int
	ToPort                int
	CidrIp                any
	CidrIpv6              string
	SourceSecurityGroupId any
}

// SecurityGroup_Egress is the egress rule property type for SecurityGroup.
type SecurityGroup_Egress struct {
	Description                string
	IpProtocol                 string
	FromPort                   int
	ToPort                     int
	CidrIp                     any
	CidrIpv6                   string
	DestinationSecurityGroupId any
}

// NetworkAcl is an AWS::EC2::NetworkAcl resource.
//
// GetAtt attributes: Id.
type NetworkAcl struct {
	VpcId any
	Tags  []any
}

func (NetworkAcl) ResourceType() string { return "AWS::EC2::NetworkAcl" }

// NetworkAclEntry is an AWS::EC2::NetworkAclEntry resource.
// Protocol -1 matches all protocols; 6 is TCP, 17 is UDP, 1 is ICMP.
type NetworkAclEntry struct {
	NetworkAclId any
	RuleNumber   int
	Protocol     int
	RuleAction   string
	Egress       bool
	CidrBlock    string
	PortRange    *PortRange
	Icmp         *Icmp
}

func (NetworkAclEntry) ResourceType() string { return "AWS::EC2::NetworkAclEntry" }

// PortRange is the port range property type for NetworkAclEntry.
type PortRange struct {
	From int
	To   int
}

// Icmp is the ICMP property type for NetworkAclEntry.
type Icmp struct {
	Code int
	Type int
}

// SubnetNetworkAclAssociation is an AWS::EC2::SubnetNetworkAclAssociation resource.
type SubnetNetworkAclAssociation struct {
	SubnetId     any
	NetworkAclId any
}

func (SubnetNetworkAclAssociation) ResourceType() string {
	return "AWS::EC2::SubnetNetworkAclAssociation"
}
