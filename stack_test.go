package vpcnet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeResource struct {
	CidrBlock string
}

func (*fakeResource) ResourceType() string { return "AWS::EC2::VPC" }

func TestStackRegistration(t *testing.T) {
	vpc := &fakeResource{CidrBlock: "10.0.0.0/16"}
	subnet := &fakeResource{CidrBlock: "10.0.0.0/24"}

	s := NewStack("test", "a test stack").
		Resource("Vpc", vpc).
		Resource("Subnet", subnet)

	assert.Equal(t, []string{"Vpc", "Subnet"}, s.ResourceNames())

	got, ok := s.Get("Vpc")
	require.True(t, ok)
	assert.Same(t, vpc, got)

	_, ok = s.Get("Missing")
	assert.False(t, ok)
}

func TestStackNameOf(t *testing.T) {
	vpc := &fakeResource{}
	other := &fakeResource{}

	s := NewStack("test", "").Resource("Vpc", vpc)

	name, ok := s.NameOf(vpc)
	require.True(t, ok)
	assert.Equal(t, "Vpc", name)

	// A different pointer of the same type is not registered.
	_, ok = s.NameOf(other)
	assert.False(t, ok)
}

func TestStackDuplicateIDPanics(t *testing.T) {
	s := NewStack("test", "").Resource("Vpc", &fakeResource{})

	assert.Panics(t, func() {
		s.Resource("Vpc", &fakeResource{})
	})
}

func TestStackDuplicatePointerPanics(t *testing.T) {
	vpc := &fakeResource{}
	s := NewStack("test", "").Resource("Vpc", vpc)

	assert.Panics(t, func() {
		s.Resource("VpcAgain", vpc)
	})
}

func TestStackEmptyIDPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewStack("test", "").Resource("", &fakeResource{})
	})
}

func TestStackOutputsAndMappings(t *testing.T) {
	s := NewStack("test", "").
		Mapping("RegionAmi", map[string]any{"us-east-1": "ami-1"}).
		Output("VpcId", Output{Value: "vpc-123", Export: &Export{Name: "test-VpcId"}})

	assert.Equal(t, []string{"RegionAmi"}, s.MappingNames())
	assert.Equal(t, []string{"VpcId"}, s.OutputNames())

	out, ok := s.GetOutput("VpcId")
	require.True(t, ok)
	assert.Equal(t, "vpc-123", out.Value)
	require.NotNil(t, out.Export)
	assert.Equal(t, "test-VpcId", out.Export.Name)
}
