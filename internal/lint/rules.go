package lint

import (
	"fmt"
	"net/netip"
	"reflect"

	vpcnet "github.com/GraemeHosford/vpc-pluralsight"
	"github.com/GraemeHosford/vpc-pluralsight/intrinsics"
	"github.com/GraemeHosford/vpc-pluralsight/resources/ec2"
	"github.com/GraemeHosford/vpc-pluralsight/resources/logs"
)

// SubnetOutsideVpc reports subnets whose CIDR block does not lie within the
// CIDR of the VPC they reference. Only checked when the subnet references a
// VPC declared in the same stack; imported VPC IDs carry no CIDR to check
// against.
type SubnetOutsideVpc struct{}

func (SubnetOutsideVpc) ID() string { return "NET001" }
func (SubnetOutsideVpc) Description() string {
	return "Subnet CIDR must lie within its VPC CIDR"
}

func (r SubnetOutsideVpc) Check(s *vpcnet.Stack) []vpcnet.LintIssue {
	var issues []vpcnet.LintIssue
	for _, name := range s.ResourceNames() {
		res, _ := s.Get(name)
		subnet, ok := res.(*ec2.Subnet)
		if !ok {
			continue
		}
		vpc, ok := subnet.VpcId.(*ec2.VPC)
		if !ok {
			continue
		}
		vpcCidr, okV := parsePrefix(vpc.CidrBlock)
		subCidr, okS := parsePrefix(subnet.CidrBlock)
		if !okV || !okS {
			continue
		}
		if !prefixContains(vpcCidr, subCidr) {
			issues = append(issues, vpcnet.LintIssue{
				Stack:    s.Name,
				Resource: name,
				Severity: SeverityError,
				Message:  fmt.Sprintf("subnet CIDR %s is not within VPC CIDR %s", subnet.CidrBlock, vpc.CidrBlock),
				Rule:     r.ID(),
			})
		}
	}
	return issues
}

// SubnetOverlap reports pairs of subnets in the same VPC whose CIDR blocks
// overlap.
type SubnetOverlap struct{}

func (SubnetOverlap) ID() string { return "NET002" }
func (SubnetOverlap) Description() string {
	return "Sibling subnet CIDRs must not overlap"
}

func (r SubnetOverlap) Check(s *vpcnet.Stack) []vpcnet.LintIssue {
	type entry struct {
		name   string
		prefix netip.Prefix
	}
	byVpc := make(map[any][]entry)
	var vpcOrder []any
	for _, name := range s.ResourceNames() {
		res, _ := s.Get(name)
		subnet, ok := res.(*ec2.Subnet)
		if !ok {
			continue
		}
		prefix, ok := parsePrefix(subnet.CidrBlock)
		if !ok {
			continue
		}
		if _, seen := byVpc[subnet.VpcId]; !seen {
			vpcOrder = append(vpcOrder, subnet.VpcId)
		}
		byVpc[subnet.VpcId] = append(byVpc[subnet.VpcId], entry{name, prefix})
	}

	var issues []vpcnet.LintIssue
	for _, vpc := range vpcOrder {
		siblings := byVpc[vpc]
		for i := 0; i < len(siblings); i++ {
			for j := i + 1; j < len(siblings); j++ {
				if prefixOverlaps(siblings[i].prefix, siblings[j].prefix) {
					issues = append(issues, vpcnet.LintIssue{
						Stack:    s.Name,
						Resource: siblings[j].name,
						Severity: SeverityError,
						Message: fmt.Sprintf("subnet CIDR %s overlaps %s (%s)",
							siblings[j].prefix, siblings[i].name, siblings[i].prefix),
						Rule: r.ID(),
					})
				}
			}
		}
	}
	return issues
}

// OpenAdminPort reports security group ingress rules that admit SSH or RDP
// from anywhere.
type OpenAdminPort struct{}

func (OpenAdminPort) ID() string { return "NET003" }
func (OpenAdminPort) Description() string {
	return "Security group open to the world on SSH or RDP"
}

func (r OpenAdminPort) Check(s *vpcnet.Stack) []vpcnet.LintIssue {
	var issues []vpcnet.LintIssue
	forEachIngress(s, func(name string, rule ec2.SecurityGroup_Ingress) {
		if !worldOpen(rule.CidrIp) {
			return
		}
		for _, port := range []int{22, 3389} {
			if rule.IpProtocol == "tcp" && rule.FromPort <= port && port <= rule.ToPort {
				issues = append(issues, vpcnet.LintIssue{
					Stack:    s.Name,
					Resource: name,
					Severity: SeverityWarning,
					Message:  fmt.Sprintf("ingress on port %d is open to 0.0.0.0/0", port),
					Rule:     r.ID(),
				})
			}
		}
	})
	return issues
}

// OpenAllTraffic reports security group ingress rules that admit every
// protocol from anywhere.
type OpenAllTraffic struct{}

func (OpenAllTraffic) ID() string { return "NET004" }
func (OpenAllTraffic) Description() string {
	return "Security group open to the world on all protocols"
}

func (r OpenAllTraffic) Check(s *vpcnet.Stack) []vpcnet.LintIssue {
	var issues []vpcnet.LintIssue
	forEachIngress(s, func(name string, rule ec2.SecurityGroup_Ingress) {
		if worldOpen(rule.CidrIp) && rule.IpProtocol == "-1" {
			issues = append(issues, vpcnet.LintIssue{
				Stack:    s.Name,
				Resource: name,
				Severity: SeverityError,
				Message:  "ingress admits all protocols from 0.0.0.0/0",
				Rule:     r.ID(),
			})
		}
	})
	return issues
}

// UnassociatedRouteTable reports route tables that no subnet association
// references. VPN route propagation does not count as an association.
type UnassociatedRouteTable struct{}

func (UnassociatedRouteTable) ID() string { return "NET005" }
func (UnassociatedRouteTable) Description() string {
	return "Route table with no subnet association"
}

func (r UnassociatedRouteTable) Check(s *vpcnet.Stack) []vpcnet.LintIssue {
	associated := make(map[any]bool)
	for _, name := range s.ResourceNames() {
		res, _ := s.Get(name)
		if assoc, ok := res.(*ec2.SubnetRouteTableAssociation); ok {
			associated[assoc.RouteTableId] = true
		}
	}

	var issues []vpcnet.LintIssue
	for _, name := range s.ResourceNames() {
		res, _ := s.Get(name)
		rt, ok := res.(*ec2.RouteTable)
		if !ok {
			continue
		}
		if !associated[rt] {
			issues = append(issues, vpcnet.LintIssue{
				Stack:    s.Name,
				Resource: name,
				Severity: SeverityWarning,
				Message:  "route table has no subnet association",
				Rule:     r.ID(),
			})
		}
	}
	return issues
}

// PublicRouteOnPrivateSubnet reports subnets routed through an internet
// gateway without mapping public IPs on launch. Instances on such subnets
// get a default route to the internet but no address the internet can
// answer to.
type PublicRouteOnPrivateSubnet struct{}

func (PublicRouteOnPrivateSubnet) ID() string { return "NET006" }
func (PublicRouteOnPrivateSubnet) Description() string {
	return "Internet gateway default route on a subnet without public IPs"
}

func (r PublicRouteOnPrivateSubnet) Check(s *vpcnet.Stack) []vpcnet.LintIssue {
	igwRouteTables := make(map[any]bool)
	for _, name := range s.ResourceNames() {
		res, _ := s.Get(name)
		route, ok := res.(*ec2.Route)
		if !ok || route.DestinationCidrBlock != "0.0.0.0/0" {
			continue
		}
		if _, ok := route.GatewayId.(*ec2.InternetGateway); ok {
			igwRouteTables[route.RouteTableId] = true
		}
	}

	var issues []vpcnet.LintIssue
	for _, name := range s.ResourceNames() {
		res, _ := s.Get(name)
		assoc, ok := res.(*ec2.SubnetRouteTableAssociation)
		if !ok || !igwRouteTables[assoc.RouteTableId] {
			continue
		}
		subnet, ok := assoc.SubnetId.(*ec2.Subnet)
		if !ok || subnet.MapPublicIpOnLaunch {
			continue
		}
		subnetName, _ := s.NameOf(subnet)
		issues = append(issues, vpcnet.LintIssue{
			Stack:    s.Name,
			Resource: subnetName,
			Severity: SeverityWarning,
			Message:  "subnet routes to an internet gateway but does not map public IPs on launch",
			Rule:     r.ID(),
		})
	}
	return issues
}

// MissingNameTag reports EC2 network resources without a Name tag. The
// VPC console shows raw IDs for anything unnamed.
type MissingNameTag struct{}

func (MissingNameTag) ID() string { return "NET007" }
func (MissingNameTag) Description() string {
	return "Resource missing a Name tag"
}

func (r MissingNameTag) Check(s *vpcnet.Stack) []vpcnet.LintIssue {
	var issues []vpcnet.LintIssue
	for _, name := range s.ResourceNames() {
		res, _ := s.Get(name)
		if !nameTagExpected(res) {
			continue
		}
		tags, ok := tagsOf(res)
		if !ok || hasNameTag(tags) {
			continue
		}
		issues = append(issues, vpcnet.LintIssue{
			Stack:    s.Name,
			Resource: name,
			Severity: SeverityInfo,
			Message:  "resource has no Name tag",
			Rule:     r.ID(),
		})
	}
	return issues
}

// VpnWithoutRoutes reports VPN connections that cannot carry traffic: static
// connections with no static route, and dynamic connections with no route
// propagation.
type VpnWithoutRoutes struct{}

func (VpnWithoutRoutes) ID() string { return "NET008" }
func (VpnWithoutRoutes) Description() string {
	return "VPN connection without matching routes or propagation"
}

func (r VpnWithoutRoutes) Check(s *vpcnet.Stack) []vpcnet.LintIssue {
	staticRoutes := make(map[any]bool)
	propagated := make(map[any]bool)
	for _, name := range s.ResourceNames() {
		res, _ := s.Get(name)
		switch v := res.(type) {
		case *ec2.VPNConnectionRoute:
			staticRoutes[v.VpnConnectionId] = true
		case *ec2.VPNGatewayRoutePropagation:
			propagated[v.VpnGatewayId] = true
		}
	}

	var issues []vpcnet.LintIssue
	for _, name := range s.ResourceNames() {
		res, _ := s.Get(name)
		conn, ok := res.(*ec2.VPNConnection)
		if !ok {
			continue
		}
		if conn.StaticRoutesOnly && !staticRoutes[conn] {
			issues = append(issues, vpcnet.LintIssue{
				Stack:    s.Name,
				Resource: name,
				Severity: SeverityWarning,
				Message:  "static VPN connection has no VPNConnectionRoute",
				Rule:     r.ID(),
			})
		}
		if !conn.StaticRoutesOnly && !propagated[conn.VpnGatewayId] {
			issues = append(issues, vpcnet.LintIssue{
				Stack:    s.Name,
				Resource: name,
				Severity: SeverityWarning,
				Message:  "dynamic VPN connection has no route propagation",
				Rule:     r.ID(),
			})
		}
	}
	return issues
}

// FlowLogRetention reports flow logs delivering to a log group that keeps
// records forever.
type FlowLogRetention struct{}

func (FlowLogRetention) ID() string { return "NET009" }
func (FlowLogRetention) Description() string {
	return "Flow log group without a retention policy"
}

func (r FlowLogRetention) Check(s *vpcnet.Stack) []vpcnet.LintIssue {
	var issues []vpcnet.LintIssue
	for _, name := range s.ResourceNames() {
		res, _ := s.Get(name)
		fl, ok := res.(*ec2.FlowLog)
		if !ok {
			continue
		}
		group, ok := fl.LogGroupName.(*logs.LogGroup)
		if !ok || group.RetentionInDays != 0 {
			continue
		}
		groupName, _ := s.NameOf(group)
		issues = append(issues, vpcnet.LintIssue{
			Stack:    s.Name,
			Resource: groupName,
			Severity: SeverityInfo,
			Message:  "flow log group has no retention policy",
			Rule:     r.ID(),
		})
	}
	return issues
}

// NaclRuleCollision reports network ACL entries sharing a rule number in
// the same direction. CloudFormation deploys them; the ACL silently keeps
// only one.
type NaclRuleCollision struct{}

func (NaclRuleCollision) ID() string { return "NET010" }
func (NaclRuleCollision) Description() string {
	return "Network ACL rule number collision"
}

func (r NaclRuleCollision) Check(s *vpcnet.Stack) []vpcnet.LintIssue {
	type key struct {
		acl    any
		egress bool
		number int
	}
	seen := make(map[key]string)

	var issues []vpcnet.LintIssue
	for _, name := range s.ResourceNames() {
		res, _ := s.Get(name)
		entry, ok := res.(*ec2.NetworkAclEntry)
		if !ok {
			continue
		}
		k := key{entry.NetworkAclId, entry.Egress, entry.RuleNumber}
		if first, dup := seen[k]; dup {
			issues = append(issues, vpcnet.LintIssue{
				Stack:    s.Name,
				Resource: name,
				Severity: SeverityError,
				Message:  fmt.Sprintf("rule number %d collides with %s", entry.RuleNumber, first),
				Rule:     r.ID(),
			})
			continue
		}
		seen[k] = name
	}
	return issues
}

// ----------------------------------------------------------------------------
// Helpers
// ----------------------------------------------------------------------------

func parsePrefix(cidr string) (netip.Prefix, bool) {
	p, err := netip.ParsePrefix(cidr)
	if err != nil {
		return netip.Prefix{}, false
	}
	return p.Masked(), true
}

func prefixContains(outer, inner netip.Prefix) bool {
	return outer.Bits() <= inner.Bits() && outer.Contains(inner.Addr())
}

func prefixOverlaps(a, b netip.Prefix) bool {
	return a.Contains(b.Addr()) || b.Contains(a.Addr())
}

// worldOpen reports whether an ingress CidrIp value is the whole internet.
// Parameter references and imported values are not world-open.
func worldOpen(cidr any) bool {
	s, ok := cidr.(string)
	return ok && (s == "0.0.0.0/0" || s == "::/0")
}

// forEachIngress walks every inline ingress rule of every security group,
// whether declared as a value or by pointer.
func forEachIngress(s *vpcnet.Stack, fn func(groupName string, rule ec2.SecurityGroup_Ingress)) {
	for _, name := range s.ResourceNames() {
		res, _ := s.Get(name)
		sg, ok := res.(*ec2.SecurityGroup)
		if !ok {
			continue
		}
		for _, raw := range sg.SecurityGroupIngress {
			switch rule := raw.(type) {
			case ec2.SecurityGroup_Ingress:
				fn(name, rule)
			case *ec2.SecurityGroup_Ingress:
				fn(name, *rule)
			}
		}
	}
}

// nameTagExpected reports whether the resource shows up on the VPC console
// screens where an unnamed resource is a nuisance.
func nameTagExpected(res vpcnet.Resource) bool {
	switch res.(type) {
	case *ec2.VPC, *ec2.Subnet, *ec2.RouteTable, *ec2.InternetGateway,
		*ec2.NatGateway, *ec2.SecurityGroup, *ec2.NetworkAcl, *ec2.Instance,
		*ec2.EIP, *ec2.VPNGateway, *ec2.CustomerGateway, *ec2.VPNConnection,
		*ec2.VPCPeeringConnection:
		return true
	}
	return false
}

// tagsOf returns the Tags slice of a resource, and whether the resource
// type is taggable at all.
func tagsOf(res vpcnet.Resource) ([]any, bool) {
	v := reflect.ValueOf(res)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil, false
	}
	field := v.FieldByName("Tags")
	if !field.IsValid() || field.Kind() != reflect.Slice {
		return nil, false
	}
	tags, ok := field.Interface().([]any)
	return tags, ok
}

func hasNameTag(tags []any) bool {
	for _, raw := range tags {
		if tag, ok := raw.(intrinsics.Tag); ok && tag.Key == "Name" {
			return true
		}
	}
	return false
}
