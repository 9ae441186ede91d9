package ec2

// Instance is an AWS::EC2::Instance resource.
//
// SourceDestCheck is a *bool because false is meaningful: an instance
// forwarding traffic between networks (a NAT or VPN router) must have the
// check explicitly disabled.
//
// GetAtt attributes: InstanceId, AvailabilityZone, PrivateIp, PublicIp,
// PrivateDnsName, PublicDnsName.
type Instance struct {
	ImageId            any
	InstanceType       string
	SubnetId           any
	KeyName            any
	SecurityGroupIds   []any
	PrivateIpAddress   string
	SourceDestCheck    *bool
	IamInstanceProfile any
	UserData           any
	Tags               []any
}

func (Instance) ResourceType() string { return "AWS::EC2::Instance" }
