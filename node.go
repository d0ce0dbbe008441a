package dbc

// Node is a CAN network participant declared in a BU_: statement.
type Node struct {
	Name            string
	Comment         string
	AttributeValues map[string]*AttributeValue
}

// NewNode builds a Node with an initialized attribute-value map.
func NewNode(name string) *Node {
	return &Node{Name: name, AttributeValues: map[string]*AttributeValue{}}
}
