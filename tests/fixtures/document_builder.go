// Package fixtures provides builders for document trees used across the
// test suites.
package fixtures

import (
	"designaudit/domain/audit"
)

// NodeBuilder builds DocumentNode values fluently for tests.
type NodeBuilder struct {
	node audit.DocumentNode
}

// NewNodeBuilder creates a builder with sensible defaults.
func NewNodeBuilder() *NodeBuilder {
	return &NodeBuilder{
		node: audit.DocumentNode{
			ID:   "0:0",
			Name: "node",
			Type: "FRAME",
		},
	}
}

// WithID sets the node id.
func (b *NodeBuilder) WithID(id string) *NodeBuilder {
	b.node.ID = id
	return b
}

// WithName sets the display name.
func (b *NodeBuilder) WithName(name string) *NodeBuilder {
	b.node.Name = name
	return b
}

// WithType sets the raw type tag.
func (b *NodeBuilder) WithType(nodeType string) *NodeBuilder {
	b.node.Type = nodeType
	return b
}

// WithDescription sets the description.
func (b *NodeBuilder) WithDescription(description string) *NodeBuilder {
	b.node.Description = description
	return b
}

// WithProperty adds one component property definition.
func (b *NodeBuilder) WithProperty(name, propType string) *NodeBuilder {
	if b.node.ComponentProperties == nil {
		b.node.ComponentProperties = make(map[string]audit.PropertyDefinition)
	}
	b.node.ComponentProperties[name] = audit.PropertyDefinition{Type: propType}
	return b
}

// WithChildren appends child nodes.
func (b *NodeBuilder) WithChildren(children ...audit.DocumentNode) *NodeBuilder {
	b.node.Children = append(b.node.Children, children...)
	return b
}

// Build returns the assembled node.
func (b *NodeBuilder) Build() audit.DocumentNode {
	return b.node
}

// Component is a shorthand for a COMPONENT node.
func Component(id, name string) audit.DocumentNode {
	return audit.DocumentNode{ID: id, Name: name, Type: audit.TypeComponent}
}

// ComponentSet is a shorthand for a COMPONENT_SET node with variant
// children.
func ComponentSet(id, name string, children ...audit.DocumentNode) audit.DocumentNode {
	return audit.DocumentNode{ID: id, Name: name, Type: audit.TypeComponentSet, Children: children}
}

// Frame is a shorthand for a plain container node.
func Frame(id, name string, children ...audit.DocumentNode) audit.DocumentNode {
	return audit.DocumentNode{ID: id, Name: name, Type: "FRAME", Children: children}
}

// Document wraps pages under a DOCUMENT root.
func Document(pages ...audit.DocumentNode) *audit.DocumentNode {
	return &audit.DocumentNode{ID: "0:0", Name: "Document", Type: "DOCUMENT", Children: pages}
}

// DeepDocument builds a single chain of frames of the given depth, useful
// for exercising the traversal depth guard.
func DeepDocument(depth int) *audit.DocumentNode {
	node := Component("leaf", "leaf")
	for i := depth; i > 0; i-- {
		node = audit.DocumentNode{
			ID:       "frame",
			Name:     "frame",
			Type:     "FRAME",
			Children: []audit.DocumentNode{node},
		}
	}
	return &node
}
