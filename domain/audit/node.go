// Package audit implements the design tree audit engine: component
// extraction, style token classification, substring search and
// naming-convention analysis over a document snapshot.
//
// Every function in this package is a pure computation over an
// already-materialized tree. Nothing here performs I/O, holds locks or
// mutates its input; fetching the snapshot is the job of the
// infrastructure layer.
package audit

// NodeKind is the closed set of node categories the engine distinguishes.
// Every type tag the file API may emit outside this set maps to KindOther.
type NodeKind int

const (
	KindOther NodeKind = iota
	KindComponent
	KindComponentSet
)

// Raw type tags as emitted by the design file API.
const (
	TypeComponent    = "COMPONENT"
	TypeComponentSet = "COMPONENT_SET"
)

// ParseNodeKind maps a raw type tag onto the engine's node taxonomy.
func ParseNodeKind(raw string) NodeKind {
	switch raw {
	case TypeComponent:
		return KindComponent
	case TypeComponentSet:
		return KindComponentSet
	default:
		return KindOther
	}
}

// String returns the raw tag for known kinds and "OTHER" for the fallback.
func (k NodeKind) String() string {
	switch k {
	case KindComponent:
		return TypeComponent
	case KindComponentSet:
		return TypeComponentSet
	default:
		return "OTHER"
	}
}

// PropertyDefinition describes a single component property as declared on
// a component or component set. The engine only counts these; the shape is
// kept for detail passthrough.
type PropertyDefinition struct {
	Type         string      `json:"type"`
	DefaultValue interface{} `json:"defaultValue,omitempty"`
}

// DocumentNode is one node of a design document tree. The engine receives
// a read-only snapshot per call; children are held by value so a decoded
// document can never contain a reference cycle.
type DocumentNode struct {
	ID                  string                        `json:"id"`
	Name                string                        `json:"name"`
	Type                string                        `json:"type"`
	Description         string                        `json:"description,omitempty"`
	ComponentProperties map[string]PropertyDefinition `json:"componentProperties,omitempty"`
	Children            []DocumentNode                `json:"children,omitempty"`
}

// Kind returns the node's place in the engine taxonomy.
func (n *DocumentNode) Kind() NodeKind {
	return ParseNodeKind(n.Type)
}

// ComponentRecord is the flat, derived view of one matched node. Records
// are created fresh on every extraction and carry no identity across calls.
type ComponentRecord struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Type          string `json:"type"`
	Description   string `json:"description"`
	PropertyCount int    `json:"propertyCount"`
	HasProperties bool   `json:"hasProperties"`
}

// StyleRecord is one entry of a file's style registry, keyed externally by
// the style identifier.
type StyleRecord struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	StyleType   string `json:"styleType"`
}
