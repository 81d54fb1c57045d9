package audit

import (
	pkgerrors "designaudit/pkg/errors"
)

// maxTreeDepth bounds recursion for pathologically deep documents. Real
// design files nest a few dozen levels at most.
const maxTreeDepth = 1000

// ErrDocumentTooDeep is returned when traversal exceeds maxTreeDepth.
var ErrDocumentTooDeep = pkgerrors.NewValidationError("malformed document: tree exceeds maximum depth")

// ExtractComponents walks the tree rooted at root in pre-order and returns
// one ComponentRecord per COMPONENT or COMPONENT_SET node, parents before
// children, siblings in their given order. A matched component set's
// children are still traversed, so a set and its variant components each
// appear as separate records.
//
// A nil root yields an empty slice. Nodes without children are leaves,
// never an error. The output order is the iteration contract every derived
// report depends on.
func ExtractComponents(root *DocumentNode) ([]ComponentRecord, error) {
	records := make([]ComponentRecord, 0)
	if root == nil {
		return records, nil
	}
	if err := collect(root, 0, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func collect(node *DocumentNode, depth int, out *[]ComponentRecord) error {
	if depth > maxTreeDepth {
		return ErrDocumentTooDeep
	}

	switch node.Kind() {
	case KindComponent, KindComponentSet:
		*out = append(*out, newComponentRecord(node))
	}

	for i := range node.Children {
		if err := collect(&node.Children[i], depth+1, out); err != nil {
			return err
		}
	}
	return nil
}

func newComponentRecord(node *DocumentNode) ComponentRecord {
	return ComponentRecord{
		ID:            node.ID,
		Name:          node.Name,
		Type:          node.Type,
		Description:   node.Description,
		PropertyCount: len(node.ComponentProperties),
		HasProperties: len(node.ComponentProperties) > 0,
	}
}
