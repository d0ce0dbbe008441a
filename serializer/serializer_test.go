package serializer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbcgo/dbc"
	"github.com/dbcgo/dbc/parser"
)

const minimalDBC = `VERSION ""

NS_ :

BS_:

BU_: A B

BO_ 100 Msg: 8 A
 SG_ S : 0|8@1+ (1,0) [0|255] "" B

`

func TestEmit_MinimalRoundTripsByteForByte(t *testing.T) {
	net, diags, err := parser.Parse(strings.NewReader(minimalDBC))
	require.NoError(t, err)
	require.Empty(t, diags)

	var buf bytes.Buffer
	_, err = Emit(&buf, net)
	require.NoError(t, err)

	assert.Equal(t, minimalDBC, buf.String())
}

func TestEmit_ParseEmitParse_PreservesStructure(t *testing.T) {
	src := `VERSION "1.0"
NS_ :
BS_: 500000:1,2
BU_: ECU BCM

BO_ 10 Status: 8 ECU
 SG_ Mode M : 0|8@1+ (1,0) [0|255] "" Vector__XXX
 SG_ Speed m1 : 8|16@1+ (0.1,-40) [0|6553.5] "km/h" BCM

CM_ BO_ 10 "A status message.";
VAL_ 10 Mode 0 "Off" 1 "On" ;
`
	net1, diags1, err := parser.Parse(strings.NewReader(src))
	require.NoError(t, err)
	require.False(t, diags1.HasErrors())

	var buf bytes.Buffer
	_, err = Emit(&buf, net1)
	require.NoError(t, err)

	net2, diags2, err := parser.Parse(&buf)
	require.NoError(t, err)
	require.False(t, diags2.HasErrors())

	assert.Equal(t, net1.Version, net2.Version)
	assert.Equal(t, net1.BitTiming, net2.BitTiming)
	assert.Equal(t, net1.Nodes.Keys(), net2.Nodes.Keys())

	msg1, ok := net1.LookupMessage(10)
	require.True(t, ok)
	msg2, ok := net2.LookupMessage(10)
	require.True(t, ok)
	assert.Equal(t, msg1.Comment, msg2.Comment)

	speed1, _ := msg1.Signal("Speed")
	speed2, _ := msg2.Signal("Speed")
	assert.Equal(t, speed1.Factor, speed2.Factor)
	assert.Equal(t, speed1.Offset, speed2.Offset)
	assert.Equal(t, speed1.Receivers, speed2.Receivers)

	mode2, _ := msg2.Signal("Mode")
	label, ok := mode2.ValueDescriptions.Label(1)
	assert.True(t, ok)
	assert.Equal(t, "On", label)
}

func TestEmit_AttributeRelationRoundTrips(t *testing.T) {
	src := `VERSION ""
NS_ :
BS_:
BU_: ECU

BO_ 10 Status: 8 ECU
 SG_ Speed : 0|16@1+ (1,0) [0|65535] "km/h" Vector__XXX

BA_DEF_REL_ BU_BO_REL_ "GenMsgCycleTime" INT 0 65535;
BA_REL_ "GenMsgCycleTime" BU_BO_REL_ ECU 10 50;
`
	net1, diags1, err := parser.Parse(strings.NewReader(src))
	require.NoError(t, err)
	require.False(t, diags1.HasErrors())

	var buf bytes.Buffer
	_, err = Emit(&buf, net1)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `BA_DEF_REL_ BU_BO_REL_ "GenMsgCycleTime" INT 0 65535;`)

	net2, diags2, err := parser.Parse(&buf)
	require.NoError(t, err)
	require.False(t, diags2.HasErrors())

	def, ok := net2.LookupAttributeDefinition("GenMsgCycleTime")
	require.True(t, ok)
	assert.True(t, def.IsRelation)
	assert.Equal(t, dbc.RelationNodeTxMessage, def.RelationObjectType)

	rels1 := net1.AttributeRelations.All()
	rels2 := net2.AttributeRelations.All()
	require.Len(t, rels2, len(rels1))
	assert.Equal(t, rels1[0].Node, rels2[0].Node)
	assert.Equal(t, rels1[0].MessageID, rels2[0].MessageID)
	assert.Equal(t, rels1[0].Value.Int, rels2[0].Value.Int)
}

func TestFormatFloat_ShortestRoundTrip(t *testing.T) {
	assert.Equal(t, "0", formatFloat(0))
	assert.Equal(t, "1.5", formatFloat(1.5))
	assert.Equal(t, "-40", formatFloat(-40))
}

func TestQuote_EscapesBackslashAndQuote(t *testing.T) {
	assert.Equal(t, `"a\"b\\c"`, quote(`a"b\c`))
}
