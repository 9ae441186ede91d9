package hybrid

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

	assert.Len(t, tmpl.Resources, 17)
	assert.Len(t, tmpl.Outputs, 4)
}

func TestOnPremNetworkIsSelfContained(t *testing.T) {
	tmpl, err := synth.Synthesize(Stack)
	require.NoError(t, err)

	vpc := tmpl.Resources["OnPremVpc"]
	assert.Equal(t, "172.16.0.0/16", vpc.Properties["CidrBlock"])

	subnet := tmpl.Resources["OnPremSubnet"]
	assert.Equal(t, "172.16.0.0/24", subnet.Properties["CidrBlock"])
	assert.Equal(t, map[string]any{"Ref": "OnPremVpc"}, subnet.Properties["VpcId"])

	awsRoute := tmpl.Resources["OnPremAwsRoute"]
	assert.Equal(t, "10.0.0.0/16", awsRoute.Properties["DestinationCidrBlock"])
	assert.Equal(t, map[string]any{"Ref": "Router"}, awsRoute.Properties["InstanceId"])
}

func TestRouterForwardsTraffic(t *testing.T) {
	tmpl, err := synth.Synthesize(Stack)
	require.NoError(t, err)

	router := tmpl.Resources["Router"]
	assert.Equal(t, false, router.Properties["SourceDestCheck"])
	assert.Contains(t, router.Properties, "UserData")

	eip := tmpl.Resources["RouterEIP"]
	assert.Equal(t, map[string]any{"Ref": "Router"}, eip.Properties["InstanceId"])
}

func TestIpsecPortsOpenToWorld(t *testing.T) {
	tmpl, err := synth.Synthesize(Stack)
	require.NoError(t, err)

	sg := tmpl.Resources["RouterSecurityGroup"]
	rules := sg.Properties["SecurityGroupIngress"].([]any)

	udpPorts := make(map[int64]bool)
	protocols := make(map[string]bool)
	for _, raw := range rules {
		rule := raw.(map[string]any)
		protocols[rule["IpProtocol"].(string)] = true
		if rule["IpProtocol"] == "udp" {
			udpPorts[rule["FromPort"].(int64)] = true
		}
	}

	assert.True(t, udpPorts[500], "IKE")
	assert.True(t, udpPorts[4500], "NAT traversal")
	assert.True(t, protocols["50"], "ESP")
}

func TestVpnSideAttachesToBaseVpc(t *testing.T) {
	tmpl, err := synth.Synthesize(Stack)
	require.NoError(t, err)

	attachment := tmpl.Resources["VpnGatewayAttachment"]
	assert.Equal(t,
		map[string]any{"Fn::ImportValue": basevpc.ExportVpcID},
		attachment.Properties["VpcId"])
	assert.Equal(t, map[string]any{"Ref": "VpnGateway"}, attachment.Properties["VpnGatewayId"])

	cgw := tmpl.Resources["CustomerGateway"]
	assert.Equal(t, int64(65000), cgw.Properties["BgpAsn"])
	assert.Equal(t, map[string]any{"Ref": "RouterEIP"}, cgw.Properties["IpAddress"])
}

func TestStaticVpnRouting(t *testing.T) {
	tmpl, err := synth.Synthesize(Stack)
	require.NoError(t, err)

	conn := tmpl.Resources["VpnConnection"]
	assert.Equal(t, true, conn.Properties["StaticRoutesOnly"])

	static := tmpl.Resources["OnPremStaticRoute"]
	assert.Equal(t, "172.16.0.0/16", static.Properties["DestinationCidrBlock"])
	assert.Equal(t, map[string]any{"Ref": "VpnConnection"}, static.Properties["VpnConnectionId"])

	propagation := tmpl.Resources["PrivateRoutePropagation"]
	assert.Equal(t,
		[]any{map[string]any{"Fn::ImportValue": basevpc.ExportPrivateRouteTableID}},
		propagation.Properties["RouteTableIds"])
}
