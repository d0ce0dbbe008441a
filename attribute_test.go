package dbc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAttributeRelations_OrderedByLexicographicKey(t *testing.T) {
	var rels AttributeRelations
	rels.Insert(AttributeRelation{Name: "GenMsgCycleTime", ObjectType: RelationNodeTxMessage, Node: "ECU", MessageID: 200})
	rels.Insert(AttributeRelation{Name: "GenMsgCycleTime", ObjectType: RelationNodeTxMessage, Node: "ECU", MessageID: 100})
	rels.Insert(AttributeRelation{Name: "GenSigStartValue", ObjectType: RelationNodeMappedRxSignal, Node: "BCM", MessageID: 100, Signal: "Speed"})
	rels.Insert(AttributeRelation{Name: "GenMsgCycleTime", ObjectType: RelationControlUnitEnvVar, Node: "ECU", EnvVar: "Temp"})

	all := rels.All()
	assert.Equal(t, 4, rels.Len())

	for i := 1; i < len(all); i++ {
		assert.True(t, newRelationKey(all[i-1]).less(newRelationKey(all[i])),
			"relation %d should sort before %d", i-1, i)
	}
}

func TestAttributeRelations_InsertReplacesEqualKey(t *testing.T) {
	var rels AttributeRelations
	rels.Insert(AttributeRelation{Name: "A", ObjectType: RelationNodeTxMessage, Node: "N", MessageID: 1, Value: &AttributeValue{Int: 1}})
	rels.Insert(AttributeRelation{Name: "A", ObjectType: RelationNodeTxMessage, Node: "N", MessageID: 1, Value: &AttributeValue{Int: 2}})

	assert.Equal(t, 1, rels.Len())
	assert.Equal(t, int64(2), rels.All()[0].Value.Int)
}

func TestAttributeValue_EnumLabel(t *testing.T) {
	def := &AttributeDefinition{Name: "GenMsgSendType", ValueType: AttributeTypeEnum, EnumValues: []string{"cyclic", "event"}}
	v := NewAttributeValue(def, "1", uint32(1))

	label, ok := v.EnumLabel(def)
	assert.True(t, ok)
	assert.Equal(t, "event", label)

	_, ok = v.EnumLabel(&AttributeDefinition{EnumValues: nil})
	assert.False(t, ok)
}
