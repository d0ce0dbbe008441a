package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbcgo/dbc"
)

const minimalDBC = `VERSION ""

NS_ :

BS_:

BU_: A B

BO_ 100 Msg: 8 A
 SG_ S : 0|8@1+ (1,0) [0|255] "" B

`

func TestParse_Minimal(t *testing.T) {
	net, diags, err := Parse(strings.NewReader(minimalDBC))
	require.NoError(t, err)
	assert.Empty(t, diags)

	assert.Equal(t, "", net.Version)
	assert.Equal(t, []string{"A", "B"}, net.Nodes.Keys())

	msg, ok := net.LookupMessage(100)
	require.True(t, ok)
	assert.Equal(t, "Msg", msg.Name)
	assert.Equal(t, uint8(8), msg.Size)
	assert.Equal(t, "A", msg.Transmitter)

	sig, ok := msg.Signal("S")
	require.True(t, ok)
	assert.Equal(t, uint16(0), sig.StartBit)
	assert.Equal(t, uint16(8), sig.BitSize)
	assert.Equal(t, dbc.LittleEndian, sig.ByteOrder)
	assert.Equal(t, dbc.Unsigned, sig.ValueType)
	assert.Equal(t, []string{"B"}, sig.Receivers)
}

func TestParse_SignalWithMultiplexingAndValueDescriptions(t *testing.T) {
	src := `VERSION ""
NS_ :
BS_:
BU_: ECU

BO_ 10 Status: 8 ECU
 SG_ Mode M : 0|8@1+ (1,0) [0|255] "" Vector__XXX
 SG_ Speed m1 : 8|16@1+ (0.1,0) [0|6553.5] "km/h" Vector__XXX

VAL_ 10 Mode 0 "Off" 1 "On" ;
`
	net, diags, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	assert.False(t, diags.HasErrors())

	msg, ok := net.LookupMessage(10)
	require.True(t, ok)

	mode, ok := msg.Signal("Mode")
	require.True(t, ok)
	assert.Equal(t, dbc.MultiplexerIsSwitch, mode.Multiplexer.Kind)
	assert.Nil(t, mode.Receivers)
	label, ok := mode.ValueDescriptions.Label(1)
	assert.True(t, ok)
	assert.Equal(t, "On", label)

	speed, ok := msg.Signal("Speed")
	require.True(t, ok)
	assert.Equal(t, dbc.MultiplexerIsMultiplexed, speed.Multiplexer.Kind)
	assert.Equal(t, uint32(1), speed.Multiplexer.SwitchValue)
}

func TestParse_CommentsAndAttributes(t *testing.T) {
	src := `VERSION ""
NS_ :
BS_:
BU_: ECU

BO_ 10 Status: 8 ECU
 SG_ Speed : 0|16@1+ (1,0) [0|65535] "km/h" Vector__XXX

CM_ BO_ 10 "A status message.";
CM_ SG_ 10 Speed "Vehicle speed.";
BA_DEF_ SG_ "GenSigStartValue" INT 0 65535;
BA_DEF_DEF_ "GenSigStartValue" 0;
BA_ "GenSigStartValue" SG_ 10 Speed 42;
`
	net, diags, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	assert.False(t, diags.HasErrors())

	msg, _ := net.LookupMessage(10)
	assert.Equal(t, "A status message.", msg.Comment)

	sig, _ := msg.Signal("Speed")
	assert.Equal(t, "Vehicle speed.", sig.Comment)

	def, ok := net.LookupAttributeDefinition("GenSigStartValue")
	require.True(t, ok)
	assert.Equal(t, dbc.AttributeObjectSignal, def.ObjectType)

	deflt, ok := net.AttributeDefaults.Get("GenSigStartValue")
	require.True(t, ok)
	assert.Equal(t, int64(0), deflt.Int)

	v, ok := sig.AttributeValues["GenSigStartValue"]
	require.True(t, ok)
	assert.Equal(t, int64(42), v.Int)
}

func TestParse_AttributeRelation(t *testing.T) {
	src := `VERSION ""
NS_ :
BS_:
BU_: ECU

BO_ 10 Status: 8 ECU
 SG_ Speed : 0|16@1+ (1,0) [0|65535] "km/h" Vector__XXX

BA_DEF_REL_ BU_BO_REL_ "GenMsgCycleTime" INT 0 65535;
BA_DEF_DEF_REL_ "GenMsgCycleTime" 0;
BA_REL_ "GenMsgCycleTime" BU_BO_REL_ ECU 10 50;
`
	net, diags, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	assert.False(t, diags.HasErrors())

	def, ok := net.LookupAttributeDefinition("GenMsgCycleTime")
	require.True(t, ok)
	assert.True(t, def.IsRelation)
	assert.Equal(t, dbc.RelationNodeTxMessage, def.RelationObjectType)

	rels := net.AttributeRelations.All()
	require.Len(t, rels, 1)
	assert.Equal(t, "ECU", rels[0].Node)
	assert.Equal(t, uint32(10), rels[0].MessageID)
	assert.Equal(t, int64(50), rels[0].Value.Int)
}

func TestParse_DanglingSignalReferenceReportsWarning(t *testing.T) {
	src := `VERSION ""
NS_ :
BS_:
BU_: ECU

VAL_ 999 Missing 0 "Zero" ;
`
	_, diags, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, diags, 1)
	assert.True(t, diags[0].Status.IsWarning())
	assert.Equal(t, dbc.KindWarnDanglingReference, diags[0].Status.Kind())
}

func TestParse_MalformedLineReportsErrorAndContinues(t *testing.T) {
	src := `VERSION ""
NS_ :
BS_:
BU_: ECU

BO_ 10 Status: 8 ECU
 SG_ this line is not a valid signal
 SG_ Speed : 0|16@1+ (1,0) [0|65535] "km/h" Vector__XXX
`
	net, diags, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	require.True(t, diags.HasErrors())

	msg, ok := net.LookupMessage(10)
	require.True(t, ok)
	_, ok = msg.Signal("Speed")
	assert.True(t, ok, "parser should resume after the malformed line")
}
