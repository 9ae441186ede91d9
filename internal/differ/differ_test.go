package differ

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vpcnet "github.com/GraemeHosford/vpc-pluralsight"
)

func vpcTemplate(cidr string) *vpcnet.Template {
	return &vpcnet.Template{
		AWSTemplateFormatVersion: "2010-09-09",
		Resources: map[string]vpcnet.ResourceDef{
			"Vpc": {
				Type: "AWS::EC2::VPC",
				Properties: map[string]any{
					"CidrBlock": cidr,
				},
			},
		},
	}
}

func TestCompareIdentical(t *testing.T) {
	result := Compare(vpcTemplate("10.0.0.0/16"), vpcTemplate("10.0.0.0/16"))

	assert.Equal(t, 0, result.Summary.Total)
	assert.Empty(t, result.Diff.Added)
	assert.Empty(t, result.Diff.Removed)
	assert.Empty(t, result.Diff.Modified)
}

func TestCompareModified(t *testing.T) {
	result := Compare(vpcTemplate("10.0.0.0/16"), vpcTemplate("10.1.0.0/16"))

	require.Len(t, result.Diff.Modified, 1)
	entry := result.Diff.Modified[0]
	assert.Equal(t, "Vpc", entry.Resource)
	require.Len(t, entry.Changes, 1)
	assert.Equal(t, "CidrBlock", entry.Changes[0].Property)
	assert.Equal(t, "10.0.0.0/16", entry.Changes[0].Old)
	assert.Equal(t, "10.1.0.0/16", entry.Changes[0].New)
	assert.Equal(t, 1, result.Summary.Modified)
}

func TestCompareAddedAndRemoved(t *testing.T) {
	oldT := vpcTemplate("10.0.0.0/16")
	newT := vpcTemplate("10.0.0.0/16")
	newT.Resources["Igw"] = vpcnet.ResourceDef{Type: "AWS::EC2::InternetGateway"}
	oldT.Resources["OldSubnet"] = vpcnet.ResourceDef{Type: "AWS::EC2::Subnet"}

	result := Compare(oldT, newT)

	require.Len(t, result.Diff.Added, 1)
	assert.Equal(t, "Igw", result.Diff.Added[0].Resource)
	require.Len(t, result.Diff.Removed, 1)
	assert.Equal(t, "OldSubnet", result.Diff.Removed[0].Resource)
	assert.Equal(t, 2, result.Summary.Total)
}

func TestComparePropertyAddedAndRemoved(t *testing.T) {
	oldT := vpcTemplate("10.0.0.0/16")
	oldT.Resources["Vpc"] = vpcnet.ResourceDef{
		Type: "AWS::EC2::VPC",
		Properties: map[string]any{
			"CidrBlock":        "10.0.0.0/16",
			"InstanceTenancy":  "default",
			"EnableDnsSupport": true,
		},
	}
	newT := vpcTemplate("10.0.0.0/16")
	newT.Resources["Vpc"] = vpcnet.ResourceDef{
		Type: "AWS::EC2::VPC",
		Properties: map[string]any{
			"CidrBlock":          "10.0.0.0/16",
			"EnableDnsSupport":   true,
			"EnableDnsHostnames": true,
		},
	}

	result := Compare(oldT, newT)

	require.Len(t, result.Diff.Modified, 1)
	changes := result.Diff.Modified[0].Changes
	require.Len(t, changes, 2)
	// Sorted by property name.
	assert.Equal(t, "EnableDnsHostnames", changes[0].Property)
	assert.Nil(t, changes[0].Old)
	assert.Equal(t, "InstanceTenancy", changes[1].Property)
	assert.Nil(t, changes[1].New)
}

func TestEqualValuesNumericTypes(t *testing.T) {
	// A template loaded from JSON decodes ints as float64. That must not
	// register as a change against a freshly synthesized template.
	assert.True(t, equalValues(14, float64(14)))
	assert.False(t, equalValues(14, 15))
}

func TestCompareFiles(t *testing.T) {
	dir := t.TempDir()

	oldPath := filepath.Join(dir, "old.json")
	newPath := filepath.Join(dir, "new.yaml")
	require.NoError(t, os.WriteFile(oldPath, []byte(`{
  "AWSTemplateFormatVersion": "2010-09-09",
  "Resources": {
    "Vpc": {"Type": "AWS::EC2::VPC", "Properties": {"CidrBlock": "10.0.0.0/16"}}
  }
}`), 0o644))
	require.NoError(t, os.WriteFile(newPath, []byte(`AWSTemplateFormatVersion: "2010-09-09"
Resources:
  Vpc:
    Type: AWS::EC2::VPC
    Properties:
      CidrBlock: 10.0.0.0/16
  Igw:
    Type: AWS::EC2::InternetGateway
`), 0o644))

	result, err := CompareFiles(oldPath, newPath)
	require.NoError(t, err)

	assert.Empty(t, result.Diff.Modified)
	require.Len(t, result.Diff.Added, 1)
	assert.Equal(t, "Igw", result.Diff.Added[0].Resource)
}

func TestLoadTemplateBadFile(t *testing.T) {
	_, err := LoadTemplate(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{{not json or yaml"), 0o644))
	_, err = LoadTemplate(bad)
	assert.Error(t, err)
}
