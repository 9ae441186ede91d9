package synth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vpcnet "github.com/GraemeHosford/vpc-pluralsight"
	"github.com/GraemeHosford/vpc-pluralsight/resources/ec2"
)

func discoverOne(t *testing.T, name string, r vpcnet.Resource) *Model {
	t.Helper()
	s := vpcnet.NewStack("validate-fixture", "").Resource(name, r)
	m, err := Discover(s)
	require.NoError(t, err)
	return m
}

func TestValidateMissingRequiredProperties(t *testing.T) {
	m := discoverOne(t, "Subnet", &ec2.Subnet{CidrBlock: "10.0.0.0/24"})

	errs := Validate(m)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "missing required property VpcId")
}

func TestValidateRouteNeedsExactlyOneTarget(t *testing.T) {
	tests := []struct {
		name  string
		route *ec2.Route
		want  string
	}{
		{
			name: "no target",
			route: &ec2.Route{
				RouteTableId:         "rtb-123",
				DestinationCidrBlock: "0.0.0.0/0",
			},
			want: "one of",
		},
		{
			name: "two targets",
			route: &ec2.Route{
				RouteTableId:         "rtb-123",
				DestinationCidrBlock: "0.0.0.0/0",
				GatewayId:            "igw-123",
				NatGatewayId:         "nat-123",
			},
			want: "only one of",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := discoverOne(t, "Route", tt.route)

			errs := Validate(m)
			require.Len(t, errs, 1)
			assert.Contains(t, errs[0].Error(), tt.want)
		})
	}
}

func TestValidateGatewayAttachmentTargets(t *testing.T) {
	valid := &ec2.VPCGatewayAttachment{
		VpcId:             "vpc-123",
		InternetGatewayId: "igw-123",
	}
	m := discoverOne(t, "Attachment", valid)
	assert.Empty(t, Validate(m))

	both := &ec2.VPCGatewayAttachment{
		VpcId:             "vpc-123",
		InternetGatewayId: "igw-123",
		VpnGatewayId:      "vgw-123",
	}
	m = discoverOne(t, "Attachment", both)
	errs := Validate(m)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "only one of")
}

func TestValidateCleanResourcePasses(t *testing.T) {
	m := discoverOne(t, "Vpc", &ec2.VPC{CidrBlock: "10.0.0.0/16"})
	assert.Empty(t, Validate(m))
}

func TestValidateReportsEveryViolation(t *testing.T) {
	s := vpcnet.NewStack("validate-fixture", "").
		Resource("Vpc", &ec2.VPC{}).
		Resource("Acl", &ec2.NetworkAcl{})

	m, err := Discover(s)
	require.NoError(t, err)

	errs := Validate(m)
	assert.Len(t, errs, 2)
}
