package peering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GraemeHosford/vpc-pluralsight/internal/synth"
	"github.com/GraemeHosford/vpc-pluralsight/stacks/basevpc"
)

func TestStackSynthesizes(t *testing.T) {
	tmpl, err := synth.Synthesize(Stack)
	require.NoError(t, err)

	assert.Len(t, tmpl.Resources, 8)
	assert.Len(t, tmpl.Outputs, 2)
}

func TestPeeredVpcDoesNotOverlapBase(t *testing.T) {
	assert.Equal(t, "10.1.0.0/16", PeeredVpc.CidrBlock)
	assert.NotEqual(t, basevpc.Vpc.CidrBlock, PeeredVpc.CidrBlock)
}

func TestPeeringConnectionSpansBothVpcs(t *testing.T) {
	tmpl, err := synth.Synthesize(Stack)
	require.NoError(t, err)

	peering := tmpl.Resources["PeeringConnection"]
	assert.Equal(t,
		map[string]any{"Fn::ImportValue": basevpc.ExportVpcID},
		peering.Properties["VpcId"])
	assert.Equal(t, map[string]any{"Ref": "PeeredVpc"}, peering.Properties["PeerVpcId"])
}

func TestRoutesRunBothDirections(t *testing.T) {
	tests := []struct {
		name        string
		destination string
		routeTable  any
	}{
		{"RouteToBase", "10.0.0.0/16", map[string]any{"Ref": "PeeredRouteTable"}},
		{"BasePrivateRouteToPeered", "10.1.0.0/16", map[string]any{"Fn::ImportValue": basevpc.ExportPrivateRouteTableID}},
		{"BasePublicRouteToPeered", "10.1.0.0/16", map[string]any{"Fn::ImportValue": basevpc.ExportPublicRouteTableID}},
	}

	tmpl, err := synth.Synthesize(Stack)
	require.NoError(t, err)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			route, ok := tmpl.Resources[tt.name]
			require.True(t, ok)
			assert.Equal(t, tt.destination, route.Properties["DestinationCidrBlock"])
			assert.Equal(t, tt.routeTable, route.Properties["RouteTableId"])
			assert.Equal(t,
				map[string]any{"Ref": "PeeringConnection"},
				route.Properties["VpcPeeringConnectionId"])
		})
	}
}
