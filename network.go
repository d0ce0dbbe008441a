package dbc

import "sort"

// Network is the root aggregate of a DBC model: it exclusively owns every
// Node, Message, Signal, EnvironmentVariable, and attribute collection, and
// every cross-entity reference elsewhere in the model is a plain string
// resolved back through one of Network's lookup methods (see spec.md §9 —
// no back-pointers, no cycles).
type Network struct {
	Version    string
	NewSymbols []string
	BitTiming  BitTiming

	Nodes       *OrderedMap[string, *Node]
	ValueTables *OrderedMap[string, *ValueTable]
	Messages    map[uint32]*Message
	EnvVars     *OrderedMap[string, *EnvironmentVariable]
	SignalTypes *OrderedMap[string, *SignalType]

	AttributeDefinitions *OrderedMap[string, *AttributeDefinition]
	AttributeDefaults    *OrderedMap[string, *AttributeValue]
	NetworkAttributes    *OrderedMap[string, *AttributeValue]
	AttributeRelations   AttributeRelations

	Comment string
}

// NewNetwork builds an empty Network with every collection initialized.
func NewNetwork() *Network {
	return &Network{
		Nodes:                NewOrderedMap[string, *Node](),
		ValueTables:          NewOrderedMap[string, *ValueTable](),
		Messages:             map[uint32]*Message{},
		EnvVars:              NewOrderedMap[string, *EnvironmentVariable](),
		SignalTypes:          NewOrderedMap[string, *SignalType](),
		AttributeDefinitions: NewOrderedMap[string, *AttributeDefinition](),
		AttributeDefaults:    NewOrderedMap[string, *AttributeValue](),
		NetworkAttributes:    NewOrderedMap[string, *AttributeValue](),
	}
}

// AddNode registers a node, keyed by name and kept in insertion order.
func (n *Network) AddNode(node *Node) { n.Nodes.Set(node.Name, node) }

// LookupNode returns the node named name, if it exists.
func (n *Network) LookupNode(name string) (*Node, bool) { return n.Nodes.Get(name) }

// AddMessage registers a message, keyed by its wire ID (including the
// extended-frame-flag bit, per Message.ID's documented layout).
func (n *Network) AddMessage(msg *Message) { n.Messages[msg.ID] = msg }

// LookupMessage returns the message with the given wire ID, if it exists.
func (n *Network) LookupMessage(id uint32) (*Message, bool) {
	m, ok := n.Messages[id]
	return m, ok
}

// LookupSignal returns the named signal of the message with the given wire
// ID, if both exist.
func (n *Network) LookupSignal(messageID uint32, name string) (*Signal, bool) {
	m, ok := n.Messages[messageID]
	if !ok {
		return nil, false
	}
	return m.Signal(name)
}

// AddValueTable registers a named, reusable value table.
func (n *Network) AddValueTable(vt *ValueTable) { n.ValueTables.Set(vt.Name, vt) }

// LookupValueTable returns the value table named name, if it exists.
func (n *Network) LookupValueTable(name string) (*ValueTable, bool) {
	return n.ValueTables.Get(name)
}

// AddEnvVar registers an environment variable.
func (n *Network) AddEnvVar(ev *EnvironmentVariable) { n.EnvVars.Set(ev.Name, ev) }

// LookupEnvVar returns the environment variable named name, if it exists.
func (n *Network) LookupEnvVar(name string) (*EnvironmentVariable, bool) {
	return n.EnvVars.Get(name)
}

// AddSignalType registers a named, reusable signal-layout template.
func (n *Network) AddSignalType(st *SignalType) { n.SignalTypes.Set(st.Name, st) }

// LookupSignalType returns the signal type named name, if it exists.
func (n *Network) LookupSignalType(name string) (*SignalType, bool) {
	return n.SignalTypes.Get(name)
}

// AddAttributeDefinition registers an attribute definition (BA_DEF_ or
// BA_DEF_REL_).
func (n *Network) AddAttributeDefinition(def *AttributeDefinition) {
	n.AttributeDefinitions.Set(def.Name, def)
}

// LookupAttributeDefinition returns the attribute definition named name, if
// it exists.
func (n *Network) LookupAttributeDefinition(name string) (*AttributeDefinition, bool) {
	return n.AttributeDefinitions.Get(name)
}

// SetAttributeDefault registers a BA_DEF_DEF_/BA_DEF_DEF_REL_ default value
// for an attribute.
func (n *Network) SetAttributeDefault(v *AttributeValue) { n.AttributeDefaults.Set(v.Name, v) }

// SetNetworkAttribute registers a network-scoped BA_ value (an attribute
// attached to the Network itself rather than to any Node/Message/Signal).
func (n *Network) SetNetworkAttribute(v *AttributeValue) { n.NetworkAttributes.Set(v.Name, v) }

// AddAttributeRelation appends a BA_REL_ relation, maintaining the ordered
// set's invariant (see AttributeRelations).
func (n *Network) AddAttributeRelation(r AttributeRelation) { n.AttributeRelations.Insert(r) }

// MessagesSortedByID returns every message sorted by ascending wire ID, the
// order spec.md §4.3 mandates for BO_ block emission.
func (n *Network) MessagesSortedByID() []*Message {
	out := make([]*Message, 0, len(n.Messages))
	for _, m := range n.Messages {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
