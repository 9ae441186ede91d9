// Package lint checks stack declarations for networking mistakes that
// CloudFormation accepts but that break or weaken the resulting network:
// subnets outside their VPC, overlapping CIDRs, world-open admin ports,
// orphaned route tables and the like.
//
// Rules:
//
//	NET001: Subnet CIDR must lie within its VPC CIDR
//	NET002: Sibling subnet CIDRs must not overlap
//	NET003: Security group open to the world on SSH or RDP
//	NET004: Security group open to the world on all protocols
//	NET005: Route table with no subnet association
//	NET006: Internet gateway default route on a subnet without public IPs
//	NET007: Resource missing a Name tag
//	NET008: VPN connection without matching routes or propagation
//	NET009: Flow log group without a retention policy
//	NET010: Network ACL rule number collision
package lint

import (
	vpcnet "github.com/GraemeHosford/vpc-pluralsight"
)

// Severity levels, ordered from most to least severe.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = "info"
)

// Rule checks one class of problem across a stack's resources.
type Rule interface {
	ID() string
	Description() string
	Check(s *vpcnet.Stack) []vpcnet.LintIssue
}

// Options configures a lint run.
type Options struct {
	// EnabledRules restricts the run to the named rule IDs. Empty means
	// all rules.
	EnabledRules []string
}

// AllRules returns every rule in ID order.
func AllRules() []Rule {
	return []Rule{
		SubnetOutsideVpc{},
		SubnetOverlap{},
		OpenAdminPort{},
		OpenAllTraffic{},
		UnassociatedRouteTable{},
		PublicRouteOnPrivateSubnet{},
		MissingNameTag{},
		VpnWithoutRoutes{},
		FlowLogRetention{},
		NaclRuleCollision{},
	}
}

// Run lints the given stacks. Success means no error-severity issues;
// warnings and info do not fail the run.
func Run(stacks []*vpcnet.Stack, opts Options) vpcnet.LintResult {
	rules := selectRules(opts)

	var issues []vpcnet.LintIssue
	for _, s := range stacks {
		for _, rule := range rules {
			issues = append(issues, rule.Check(s)...)
		}
	}

	success := true
	for _, issue := range issues {
		if issue.Severity == SeverityError {
			success = false
			break
		}
	}
	return vpcnet.LintResult{Success: success, Issues: issues}
}

func selectRules(opts Options) []Rule {
	all := AllRules()
	if len(opts.EnabledRules) == 0 {
		return all
	}
	enabled := make(map[string]bool, len(opts.EnabledRules))
	for _, id := range opts.EnabledRules {
		enabled[id] = true
	}
	var rules []Rule
	for _, r := range all {
		if enabled[r.ID()] {
			rules = append(rules, r)
		}
	}
	return rules
}
