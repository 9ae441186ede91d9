package intrinsics

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func marshal(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return string(data)
}

func TestMarshalIntrinsics(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"Ref", Ref{Name: "Vpc"}, `{"Ref":"Vpc"}`},
		{"GetAtt", GetAtt{Resource: "NatEip", Attribute: "AllocationId"}, `{"Fn::GetAtt":["NatEip","AllocationId"]}`},
		{"Sub", Sub{String: "${AWS::StackName}-vpc"}, `{"Fn::Sub":"${AWS::StackName}-vpc"}`},
		{"Join", Join{Delimiter: ",", Values: []any{"a", "b"}}, `{"Fn::Join":[",",["a","b"]]}`},
		{"Select", Select{Index: 1, List: []any{"a", "b"}}, `{"Fn::Select":[1,["a","b"]]}`},
		{"Split", Split{Delimiter: ",", Source: "a,b"}, `{"Fn::Split":[",","a,b"]}`},
		{"GetAZsDefault", GetAZs{}, `{"Fn::GetAZs":""}`},
		{"GetAZsRegion", GetAZs{Region: "eu-west-1"}, `{"Fn::GetAZs":"eu-west-1"}`},
		{"Cidr", Cidr{IpBlock: "10.0.0.0/16", Count: 4, CidrBits: 8}, `{"Fn::Cidr":["10.0.0.0/16",4,8]}`},
		{"Base64", Base64{Value: "hello"}, `{"Fn::Base64":"hello"}`},
		{"ImportValue", ImportValue{Name: "base-vpc-VpcId"}, `{"Fn::ImportValue":"base-vpc-VpcId"}`},
		{"FindInMap", FindInMap{MapName: "RegionAmi", TopLevelKey: "us-east-1", SecondLevelKey: "AMI"}, `{"Fn::FindInMap":["RegionAmi","us-east-1","AMI"]}`},
		{"Tag", Tag{Key: "Name", Value: "base-vpc"}, `{"Key":"Name","Value":"base-vpc"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, marshal(t, tt.value))
		})
	}
}

func TestGetAttUnresolvedPointerErrors(t *testing.T) {
	target := struct{}{}
	_, err := json.Marshal(GetAtt{Resource: &target, Attribute: "Arn"})
	assert.Error(t, err)
}

func TestSubWithMap(t *testing.T) {
	got := marshal(t, SubWithMap{
		String: "${Prefix}-web",
		Vars:   map[string]any{"Prefix": "course"},
	})
	assert.JSONEq(t, `{"Fn::Sub":["${Prefix}-web",{"Prefix":"course"}]}`, got)
}

func TestPseudoParameters(t *testing.T) {
	assert.Equal(t, `{"Ref":"AWS::Region"}`, marshal(t, AWS_REGION))
	assert.Equal(t, `{"Ref":"AWS::StackName"}`, marshal(t, AWS_STACK_NAME))
	assert.Equal(t, `{"Ref":"AWS::AccountId"}`, marshal(t, AWS_ACCOUNT_ID))
}

func TestParameterMarshalsAsRef(t *testing.T) {
	p := Parameter{Type: "String", Default: "10.0.0.0/16"}
	p.SetName("AdminCidr")

	assert.Equal(t, `{"Ref":"AdminCidr"}`, marshal(t, p))
	assert.Equal(t, "AdminCidr", p.Name())
}

func TestParameterToDefinition(t *testing.T) {
	p := Parameter{
		Type:          "String",
		Description:   "allowed CIDR",
		Default:       "10.0.0.0/16",
		AllowedValues: []any{"10.0.0.0/16", "172.16.0.0/16"},
	}

	def := p.ToDefinition()
	assert.Equal(t, "String", def["Type"])
	assert.Equal(t, "allowed CIDR", def["Description"])
	assert.Equal(t, "10.0.0.0/16", def["Default"])
	assert.Len(t, def["AllowedValues"], 2)
	assert.NotContains(t, def, "NoEcho")
}

func TestPolicyPrincipals(t *testing.T) {
	assert.JSONEq(t, `{"Service":"vpc-flow-logs.amazonaws.com"}`,
		marshal(t, ServicePrincipal{"vpc-flow-logs.amazonaws.com"}))
	assert.JSONEq(t, `{"Service":["a","b"]}`, marshal(t, ServicePrincipal{"a", "b"}))
	assert.JSONEq(t, `{"AWS":"arn:aws:iam::123456789012:root"}`,
		marshal(t, AWSPrincipal{"arn:aws:iam::123456789012:root"}))
}

func TestPolicyDocument(t *testing.T) {
	doc := PolicyDocument{
		Version: "2012-10-17",
		Statement: []any{
			PolicyStatement{
				Effect:    "Allow",
				Principal: ServicePrincipal{"vpc-flow-logs.amazonaws.com"},
				Action:    "sts:AssumeRole",
			},
		},
	}

	got := marshal(t, doc)
	assert.Contains(t, got, `"Version":"2012-10-17"`)
	assert.Contains(t, got, `"sts:AssumeRole"`)
	assert.NotContains(t, got, `"Sid"`)
}

func TestPointerHelpers(t *testing.T) {
	assert.False(t, *BoolPtr(false))
	assert.Equal(t, 42, *IntPtr(42))
	assert.Equal(t, 1.5, *Float64Ptr(1.5))
}
