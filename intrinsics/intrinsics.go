// Package intrinsics provides CloudFormation intrinsic functions.
//
// Core intrinsic functions:
//
//	Ref{"BaseVpc"} → {"Ref": "BaseVpc"}
//	Sub{String: "${AWS::StackName}-vpc"} → {"Fn::Sub": "${AWS::StackName}-vpc"}
//	Join{",", []any{"a", "b"}} → {"Fn::Join": [",", ["a", "b"]]}
//
// Intrinsics that reference other resources (GetAtt, and values that hold a
// registered resource pointer) are resolved against the owning stack during
// synthesis; the MarshalJSON implementations here cover the literal forms.
//
// Pseudo-parameters:
//
//	AWS_REGION, AWS_ACCOUNT_ID, AWS_STACK_NAME, etc.
package intrinsics

import (
	"encoding/json"
	"fmt"
)

// Ref represents a CloudFormation Ref intrinsic function.
type Ref struct {
	Name string
}

// MarshalJSON serializes Ref to CloudFormation Ref syntax.
func (r Ref) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string{"Ref": r.Name})
}

// GetAtt represents a CloudFormation Fn::GetAtt intrinsic function.
//
// Resource may be a literal logical ID or a pointer to a resource registered
// in the same stack:
//
//	GetAtt{"NatEip", "AllocationId"}
//	GetAtt{&NatEip, "AllocationId"}
//
// The pointer form is resolved during synthesis.
type GetAtt struct {
	Resource  any
	Attribute string
}

// MarshalJSON serializes the literal form of GetAtt. Pointer targets must be
// resolved by the synthesizer first.
func (g GetAtt) MarshalJSON() ([]byte, error) {
	name, ok := g.Resource.(string)
	if !ok {
		return nil, fmt.Errorf("GetAtt target for attribute %s is not resolved to a logical ID", g.Attribute)
	}
	return json.Marshal(map[string][]string{
		"Fn::GetAtt": {name, g.Attribute},
	})
}

// Sub represents a CloudFormation Fn::Sub intrinsic function.
type Sub struct {
	String string
}

// MarshalJSON serializes Sub to CloudFormation Fn::Sub syntax.
func (s Sub) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string{"Fn::Sub": s.String})
}

// SubWithMap is Fn::Sub with a variable map.
type SubWithMap struct {
	String string
	Vars   map[string]any
}

// MarshalJSON serializes SubWithMap to the two-element Fn::Sub form.
func (s SubWithMap) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		"Fn::Sub": []any{s.String, s.Vars},
	})
}

// Join represents a CloudFormation Fn::Join intrinsic function.
type Join struct {
	Delimiter string
	Values    []any
}

// MarshalJSON serializes Join to CloudFormation Fn::Join syntax.
func (j Join) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		"Fn::Join": []any{j.Delimiter, j.Values},
	})
}

// Select represents a CloudFormation Fn::Select intrinsic function.
type Select struct {
	Index int
	List  any
}

// MarshalJSON serializes Select to CloudFormation Fn::Select syntax.
func (s Select) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		"Fn::Select": []any{s.Index, s.List},
	})
}

// Split represents a CloudFormation Fn::Split intrinsic function.
type Split struct {
	Delimiter string
	Source    any
}

// MarshalJSON serializes Split to CloudFormation Fn::Split syntax.
func (s Split) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		"Fn::Split": []any{s.Delimiter, s.Source},
	})
}

// GetAZs represents a CloudFormation Fn::GetAZs intrinsic function.
// The zero value lists availability zones for the stack's region.
type GetAZs struct {
	Region any
}

// MarshalJSON serializes GetAZs to CloudFormation Fn::GetAZs syntax.
func (g GetAZs) MarshalJSON() ([]byte, error) {
	region := g.Region
	if region == nil {
		region = ""
	}
	return json.Marshal(map[string]any{"Fn::GetAZs": region})
}

// Cidr represents a CloudFormation Fn::Cidr intrinsic function.
type Cidr struct {
	IpBlock  any
	Count    int
	CidrBits int
}

// MarshalJSON serializes Cidr to CloudFormation Fn::Cidr syntax.
func (c Cidr) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		"Fn::Cidr": []any{c.IpBlock, c.Count, c.CidrBits},
	})
}

// Base64 represents a CloudFormation Fn::Base64 intrinsic function.
type Base64 struct {
	Value any
}

// MarshalJSON serializes Base64 to CloudFormation Fn::Base64 syntax.
func (b Base64) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{"Fn::Base64": b.Value})
}

// ImportValue represents a CloudFormation Fn::ImportValue intrinsic function.
type ImportValue struct {
	Name any
}

// MarshalJSON serializes ImportValue to CloudFormation Fn::ImportValue syntax.
func (i ImportValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{"Fn::ImportValue": i.Name})
}

// FindInMap represents a CloudFormation Fn::FindInMap intrinsic function.
type FindInMap struct {
	MapName        string
	TopLevelKey    any
	SecondLevelKey any
}

// MarshalJSON serializes FindInMap to CloudFormation Fn::FindInMap syntax.
func (f FindInMap) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		"Fn::FindInMap": []any{f.MapName, f.TopLevelKey, f.SecondLevelKey},
	})
}

// Tag represents a CloudFormation resource tag.
type Tag struct {
	Key   string `json:"Key"`
	Value any    `json:"Value"`
}

// Mapping represents a CloudFormation Mappings table.
// It maps a top-level key to a second-level key to values.
//
// Example:
//
//	var RegionAMI = Mapping{
//	    "us-east-1": {"AMI": "ami-0abcdef1234567890"},
//	    "eu-west-1": {"AMI": "ami-0fedcba0987654321"},
//	}
type Mapping map[string]map[string]any

// Helper functions for creating pointers to primitive types, used in
// optional resource fields where the zero value is meaningful.

// BoolPtr returns a pointer to the given bool value.
func BoolPtr(b bool) *bool {
	return &b
}

// IntPtr returns a pointer to the given int value.
func IntPtr(i int) *int {
	return &i
}

// Float64Ptr returns a pointer to the given float64 value.
func Float64Ptr(f float64) *float64 {
	return &f
}
