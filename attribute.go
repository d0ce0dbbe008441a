package dbc

import "sort"

// AttributeDefinition is the declared shape of a user attribute (a BA_DEF_ or
// BA_DEF_REL_ statement): which object class it attaches to and what values
// it may carry.
type AttributeDefinition struct {
	Name       string
	ObjectType AttributeObjectType
	ValueType  AttributeValueType

	// Min/Max bound AttributeTypeInt, AttributeTypeHex and AttributeTypeFloat.
	Min float64
	Max float64

	// EnumValues is the ordered label set for AttributeTypeEnum; an
	// AttributeValue of this definition carries an index into this slice.
	EnumValues []string

	// IsRelation is true for definitions declared with BA_DEF_REL_, whose
	// values attach to an AttributeRelation rather than a plain object.
	IsRelation bool

	// RelationObjectType carries which of BU_EV_REL_/BU_BO_REL_/BU_SG_REL_
	// the definition was declared with. Meaningful only when IsRelation is
	// true; ObjectType alone can't distinguish the three relation kinds.
	RelationObjectType RelationObjectType
}

// AttributeValue is a single attribute's typed payload, attached to a Node,
// Message, Signal, EnvironmentVariable, Network, or AttributeRelation.
type AttributeValue struct {
	Name string
	Kind AttributeValueKind

	Int    int64
	Hex    uint64
	Float  float64
	String string
	// Enum is an index into the owning AttributeDefinition.EnumValues.
	Enum uint32
}

// NewAttributeValue constructs an AttributeValue from a raw token already
// split off the statement line, routing construction through def the way
// spec.md §9 requires (the payload type is always dictated by the
// definition, never guessed from the token's own syntax).
func NewAttributeValue(def *AttributeDefinition, raw string, parsed any) *AttributeValue {
	v := &AttributeValue{Name: def.Name}
	switch def.ValueType {
	case AttributeTypeInt:
		v.Kind = AttributeValueInt
		if n, ok := parsed.(int64); ok {
			v.Int = n
		}
	case AttributeTypeHex:
		v.Kind = AttributeValueHex
		if n, ok := parsed.(uint64); ok {
			v.Hex = n
		}
	case AttributeTypeFloat:
		v.Kind = AttributeValueFloat
		if f, ok := parsed.(float64); ok {
			v.Float = f
		}
	case AttributeTypeString:
		v.Kind = AttributeValueString
		v.String = raw
	case AttributeTypeEnum:
		v.Kind = AttributeValueEnum
		if n, ok := parsed.(uint32); ok {
			v.Enum = n
		}
	}
	return v
}

// EnumLabel resolves an AttributeValueEnum payload against its definition's
// EnumValues, returning ("", false) if the index is out of range.
func (v *AttributeValue) EnumLabel(def *AttributeDefinition) (string, bool) {
	if v.Kind != AttributeValueEnum || int(v.Enum) >= len(def.EnumValues) {
		return "", false
	}
	return def.EnumValues[int(v.Enum)], true
}

// AttributeRelation is an attribute attached to a relationship between
// entities rather than to a single object (a BA_REL_ statement): node↔env-var,
// node↔message (as transmitter), or node↔message↔signal (as receiver).
type AttributeRelation struct {
	Name       string
	ObjectType RelationObjectType
	Node       string

	// EnvVar is set for RelationControlUnitEnvVar.
	EnvVar string
	// MessageID is set for RelationNodeTxMessage and RelationNodeMappedRxSignal.
	MessageID uint32
	// Signal is set for RelationNodeMappedRxSignal.
	Signal string

	Value *AttributeValue
}

// relationKey is the precomputed, always-total sort key for an
// AttributeRelation, replacing the in-comparator switch the original source
// used (which had no default case and so silently treated unknown object
// types as equal — see spec.md §9). Every RelationObjectType populates
// exactly the tuple fields its kind defines and leaves the rest at their zero
// value, so two keys of different ObjectType are still totally ordered by
// the (Name, ObjectType) prefix alone.
type relationKey struct {
	Name       string
	ObjectType RelationObjectType
	Node       string
	MessageID  uint32
	Signal     string
	EnvVar     string
}

func newRelationKey(r AttributeRelation) relationKey {
	k := relationKey{Name: r.Name, ObjectType: r.ObjectType, Node: r.Node}
	switch r.ObjectType {
	case RelationControlUnitEnvVar:
		k.EnvVar = r.EnvVar
	case RelationNodeTxMessage:
		k.MessageID = r.MessageID
	case RelationNodeMappedRxSignal:
		k.MessageID = r.MessageID
		k.Signal = r.Signal
	}
	return k
}

// less implements the total order: lexicographic by (Name, ObjectType, then
// the object-type-specific key tuple), per spec.md's Invariants.
func (a relationKey) less(b relationKey) bool {
	if a.Name != b.Name {
		return a.Name < b.Name
	}
	if a.ObjectType != b.ObjectType {
		return a.ObjectType < b.ObjectType
	}
	if a.Node != b.Node {
		return a.Node < b.Node
	}
	if a.MessageID != b.MessageID {
		return a.MessageID < b.MessageID
	}
	if a.Signal != b.Signal {
		return a.Signal < b.Signal
	}
	return a.EnvVar < b.EnvVar
}

// AttributeRelations is the ordered set of AttributeRelation values owned by
// a Network, always kept sorted by relationKey.
type AttributeRelations struct {
	items []AttributeRelation
}

// Insert adds r to the set, keeping it sorted; it replaces any existing
// relation with an equal key.
func (s *AttributeRelations) Insert(r AttributeRelation) {
	key := newRelationKey(r)
	i := sort.Search(len(s.items), func(i int) bool {
		return !newRelationKey(s.items[i]).less(key)
	})
	if i < len(s.items) && newRelationKey(s.items[i]) == key {
		s.items[i] = r
		return
	}
	s.items = append(s.items, AttributeRelation{})
	copy(s.items[i+1:], s.items[i:])
	s.items[i] = r
}

// All returns the relations in sorted order. The returned slice is owned by
// the caller and safe to range over without aliasing concerns.
func (s *AttributeRelations) All() []AttributeRelation {
	out := make([]AttributeRelation, len(s.items))
	copy(out, s.items)
	return out
}

// Len reports the number of relations in the set.
func (s *AttributeRelations) Len() int { return len(s.items) }
