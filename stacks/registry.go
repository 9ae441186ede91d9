// Package stacks registers the course stacks in deployment order.
package stacks

import (
	vpcnet "github.com/GraemeHosford/vpc-pluralsight"
	"github.com/GraemeHosford/vpc-pluralsight/stacks/basevpc"
	"github.com/GraemeHosford/vpc-pluralsight/stacks/flowlogs"
	"github.com/GraemeHosford/vpc-pluralsight/stacks/hybrid"
	"github.com/GraemeHosford/vpc-pluralsight/stacks/peering"
	"github.com/GraemeHosford/vpc-pluralsight/stacks/webserver"
)

// All returns the course stacks in the order they must deploy. The base VPC
// comes first; every other stack imports its exports.
func All() []*vpcnet.Stack {
	return []*vpcnet.Stack{
		basevpc.Stack,
		webserver.Stack,
		hybrid.Stack,
		peering.Stack,
		flowlogs.Stack,
	}
}

// Lookup returns the stack with the given name, or nil if none is
// registered under it.
func Lookup(name string) *vpcnet.Stack {
	for _, s := range All() {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// Names returns the registered stack names in deployment order.
func Names() []string {
	all := All()
	names := make([]string, len(all))
	for i, s := range all {
		names[i] = s.Name
	}
	return names
}
