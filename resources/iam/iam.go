// Package iam provides CloudFormation resource types for AWS::IAM.
//
// Only the types the networking stacks need: the flow-log delivery role and
// instance profiles for EC2 hosts.
package iam

// Role is an AWS::IAM::Role resource.
//
// GetAtt attributes: Arn, RoleId.
type Role struct {
	RoleName                 any
	AssumeRolePolicyDocument any
	Policies                 []any
	ManagedPolicyArns        []any
	Path                     string
	Tags                     []any
}

func (Role) ResourceType() string { return "AWS::IAM::Role" }

// Role_Policy is the inline policy property type for Role.
type Role_Policy struct {
	PolicyName     any
	PolicyDocument any
}

// InstanceProfile is an AWS::IAM::InstanceProfile resource.
//
// GetAtt attributes: Arn.
type InstanceProfile struct {
	InstanceProfileName any
	Path                string
	Roles               []any
}

func (InstanceProfile) ResourceType() string { return "AWS::IAM::InstanceProfile" }
