package parser

import "github.com/dbcgo/dbc"

// statement is the parsed representation of one DBC source line. Every
// concrete type below corresponds to exactly one row of spec.md §4.2's tag
// table. pass1 statements are structural declarations (create an entity);
// pass2 statements are attachments that reference an entity declared
// elsewhere in the file, possibly later in the source (spec.md's
// forward-reference policy).
type statement interface {
	// pass reports which resolution pass (1 or 2) this statement belongs to.
	pass() int
}

type versionStmt struct{ version string }

func (versionStmt) pass() int { return 1 }

type newSymbolsStmt struct{ symbols []string }

func (newSymbolsStmt) pass() int { return 1 }

type bitTimingStmt struct{ timing dbc.BitTiming }

func (bitTimingStmt) pass() int { return 1 }

type nodesStmt struct{ names []string }

func (nodesStmt) pass() int { return 1 }

type valueTableStmt struct {
	name         string
	descriptions dbc.ValueDescriptions
}

func (valueTableStmt) pass() int { return 1 }

type messageStmt struct {
	id          uint32
	name        string
	size        uint8
	transmitter string
}

func (messageStmt) pass() int { return 1 }

type signalStmt struct {
	messageID uint32
	signal    *dbc.Signal
}

func (signalStmt) pass() int { return 1 }

type messageTransmittersStmt struct {
	messageID uint32
	nodes     []string
}

func (messageTransmittersStmt) pass() int { return 1 }

type envVarStmt struct{ envVar *dbc.EnvironmentVariable }

func (envVarStmt) pass() int { return 1 }

type envVarDataStmt struct {
	name string
	size uint32
}

func (envVarDataStmt) pass() int { return 1 }

type signalTypeDefStmt struct{ signalType *dbc.SignalType }

func (signalTypeDefStmt) pass() int { return 1 }

type signalTypeRefStmt struct {
	messageID  uint32
	signalName string
	typeName   string
}

func (signalTypeRefStmt) pass() int { return 1 }

type attributeDefStmt struct{ def *dbc.AttributeDefinition }

func (attributeDefStmt) pass() int { return 1 }

// commentTarget identifies which entity a CM_/BA_/VAL_/... attachment
// statement names, across the several object-kinded forms the grammar
// allows (network / node / message / signal / env-var).
type commentTarget struct {
	objectType dbc.AttributeObjectType
	node       string
	messageID  uint32
	signalName string
	envVar     string
}

type commentStmt struct {
	target commentTarget
	text   string
}

func (commentStmt) pass() int { return 2 }

type attributeDefaultStmt struct {
	name       string
	def        *dbc.AttributeDefinition
	raw        string
	isRelation bool
}

func (attributeDefaultStmt) pass() int { return 2 }

type attributeValueStmt struct {
	target commentTarget
	name   string
	raw    string
}

func (attributeValueStmt) pass() int { return 2 }

type attributeRelationStmt struct {
	relation dbc.AttributeRelation
	name     string
	raw      string
}

func (attributeRelationStmt) pass() int { return 2 }

type valueDescriptionsStmt struct {
	target       commentTarget
	isEnvVar     bool
	descriptions dbc.ValueDescriptions
}

func (valueDescriptionsStmt) pass() int { return 2 }

type signalValueTypeStmt struct {
	messageID  uint32
	signalName string
	valueType  dbc.ExtendedValueType
}

func (signalValueTypeStmt) pass() int { return 2 }

type signalGroupStmt struct{ group *dbc.SignalGroup }

func (signalGroupStmt) pass() int { return 2 }

type extendedMultiplexorStmt struct {
	messageID  uint32
	signalName string
	mux        *dbc.ExtendedMultiplexor
}

func (extendedMultiplexorStmt) pass() int { return 2 }
