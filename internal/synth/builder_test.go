package synth

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vpcnet "github.com/GraemeHosford/vpc-pluralsight"
	"github.com/GraemeHosford/vpc-pluralsight/intrinsics"
	"github.com/GraemeHosford/vpc-pluralsight/resources/ec2"
	"github.com/GraemeHosford/vpc-pluralsight/stacks/basevpc"
)

func layeredStack() (*vpcnet.Stack, *ec2.VPC, *ec2.Subnet, *ec2.RouteTable) {
	vpc := &ec2.VPC{CidrBlock: "10.0.0.0/16"}
	subnet := &ec2.Subnet{VpcId: vpc, CidrBlock: "10.0.0.0/24"}
	rt := &ec2.RouteTable{VpcId: vpc}

	// Registered deliberately out of dependency order.
	s := vpcnet.NewStack("layered", "ordering fixture").
		Resource("RouteTable", rt).
		Resource("Subnet", subnet).
		Resource("Vpc", vpc)

	return s, vpc, subnet, rt
}

func TestDiscoverOrdersDependenciesFirst(t *testing.T) {
	s, _, _, _ := layeredStack()

	m, err := Discover(s)
	require.NoError(t, err)

	pos := make(map[string]int, len(m.Order))
	for i, name := range m.Order {
		pos[name] = i
	}

	assert.Len(t, m.Order, 3)
	assert.Less(t, pos["Vpc"], pos["Subnet"])
	assert.Less(t, pos["Vpc"], pos["RouteTable"])
}

func TestDiscoverDetectsCycle(t *testing.T) {
	a := &ec2.Instance{ImageId: "ami-123"}
	b := &ec2.Instance{ImageId: "ami-456"}
	a.SubnetId = b
	b.SubnetId = a

	s := vpcnet.NewStack("cyclic", "").
		Resource("First", a).
		Resource("Second", b)

	_, err := Discover(s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "circular dependency")
	assert.Contains(t, err.Error(), "First")
}

func TestSynthesizeBaseStack(t *testing.T) {
	tmpl, err := Synthesize(basevpc.Stack)
	require.NoError(t, err)

	assert.Equal(t, "2010-09-09", tmpl.AWSTemplateFormatVersion)
	assert.NotEmpty(t, tmpl.Description)

	vpc, ok := tmpl.Resources["Vpc"]
	require.True(t, ok)
	assert.Equal(t, "AWS::EC2::VPC", vpc.Type)
	assert.Equal(t, "10.0.0.0/16", vpc.Properties["CidrBlock"])

	subnet := tmpl.Resources["PublicSubnetA"]
	assert.Equal(t, map[string]any{"Ref": "Vpc"}, subnet.Properties["VpcId"])

	out, ok := tmpl.Outputs["VpcId"]
	require.True(t, ok)
	assert.Equal(t, map[string]any{"Ref": "Vpc"}, out.Value)
	require.NotNil(t, out.Export)
	assert.Equal(t, basevpc.ExportVpcID, out.Export.Name)
}

func TestSynthesizeRejectsMissingRequiredProperty(t *testing.T) {
	s := vpcnet.NewStack("broken", "").
		Resource("Vpc", &ec2.VPC{})

	_, err := Synthesize(s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required property CidrBlock")
}

func TestSynthesizeParametersAndMappings(t *testing.T) {
	keyName := &intrinsics.Parameter{
		Type:        "AWS::EC2::KeyPair::KeyName",
		Description: "SSH key pair",
	}
	amis := intrinsics.Mapping{
		"us-east-1": {"Ami": "ami-123"},
	}
	instance := &ec2.Instance{
		ImageId: intrinsics.FindInMap{
			MapName:        "RegionAmi",
			TopLevelKey:    intrinsics.AWS_REGION,
			SecondLevelKey: "Ami",
		},
		KeyName: keyName,
	}

	s := vpcnet.NewStack("parameterized", "").
		Parameter("KeyName", keyName).
		Mapping("RegionAmi", amis).
		Resource("Host", instance)

	tmpl, err := Synthesize(s)
	require.NoError(t, err)

	param, ok := tmpl.Parameters["KeyName"]
	require.True(t, ok)
	assert.Equal(t, "AWS::EC2::KeyPair::KeyName", param.Type)
	assert.Equal(t, "SSH key pair", param.Description)

	require.Contains(t, tmpl.Mappings, "RegionAmi")

	host := tmpl.Resources["Host"]
	assert.Equal(t, map[string]any{"Ref": "KeyName"}, host.Properties["KeyName"])
	findInMap := host.Properties["ImageId"].(map[string]any)["Fn::FindInMap"].([]any)
	assert.Equal(t, "RegionAmi", findInMap[0])
	assert.Equal(t, map[string]any{"Ref": "AWS::Region"}, findInMap[1])
}

func TestToJSONRoundTrips(t *testing.T) {
	tmpl, err := Synthesize(basevpc.Stack)
	require.NoError(t, err)

	data, err := ToJSON(tmpl)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "Resources")
	assert.Contains(t, decoded, "Outputs")
	assert.NotContains(t, decoded, "Mappings")
}

func TestToYAMLSmoke(t *testing.T) {
	tmpl, err := Synthesize(basevpc.Stack)
	require.NoError(t, err)

	data, err := ToYAML(tmpl)
	require.NoError(t, err)
	assert.Contains(t, string(data), "AWS::EC2::VPC")
}
