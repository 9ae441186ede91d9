package intrinsics

import "encoding/json"

// Parameter defines a CloudFormation template parameter with full metadata.
// When used as a value in resource properties, it serializes to
// {"Ref": "ParameterName"}.
//
// Example:
//
//	var AdminCidr = Parameter{
//	    Type:        "String",
//	    Description: "CIDR block allowed to SSH to the bastion",
//	    Default:     "10.0.0.0/16",
//	}
//
//	var BastionSSHIngress = ec2.SecurityGroup_Ingress{
//	    CidrIp: &AdminCidr,  // serializes to {"Ref": "AdminCidr"}
//	}
type Parameter struct {
	// Type is the CloudFormation parameter type (String, Number, AWS::EC2::KeyPair::KeyName, etc.)
	Type string
	// Description is optional documentation for the parameter
	Description string
	// Default is the default value if none is provided
	Default any
	// AllowedValues restricts the parameter to specific values
	AllowedValues []any
	// AllowedPattern is a regex pattern for String type validation
	AllowedPattern string
	// ConstraintDescription explains validation failures
	ConstraintDescription string
	// NoEcho masks the parameter value in console/logs
	NoEcho bool

	// name is set during stack registration to enable Ref serialization
	name string
}

// SetName sets the parameter name for Ref serialization.
// This is called by the stack when the parameter is registered.
func (p *Parameter) SetName(name string) {
	p.name = name
}

// Name returns the parameter name.
func (p Parameter) Name() string {
	return p.name
}

// MarshalJSON serializes Parameter as a CloudFormation Ref when used as a value.
func (p Parameter) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string{"Ref": p.name})
}

// ToDefinition returns the parameter as a map suitable for the Parameters section.
func (p Parameter) ToDefinition() map[string]any {
	def := map[string]any{
		"Type": p.Type,
	}
	if p.Description != "" {
		def["Description"] = p.Description
	}
	if p.Default != nil {
		def["Default"] = p.Default
	}
	if len(p.AllowedValues) > 0 {
		def["AllowedValues"] = p.AllowedValues
	}
	if p.AllowedPattern != "" {
		def["AllowedPattern"] = p.AllowedPattern
	}
	if p.ConstraintDescription != "" {
		def["ConstraintDescription"] = p.ConstraintDescription
	}
	if p.NoEcho {
		def["NoEcho"] = true
	}
	return def
}
