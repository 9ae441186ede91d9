// Package logs provides CloudFormation resource types for AWS::Logs.
package logs

// LogGroup is an AWS::Logs::LogGroup resource.
//
// GetAtt attributes: Arn.
type LogGroup struct {
	LogGroupName    any
	RetentionInDays int
	Tags            []any
}

func (LogGroup) ResourceType() string { return "AWS::Logs::LogGroup" }
