package cvsym

// ScopeNode is one record in the scope tree, holding the records nested
// between it and its matching scope end.
type ScopeNode struct {
	Symbol   Symbol
	Children []*ScopeNode
}

// BuildScopeTree walks the rest of the iterator and arranges records into a
// tree following scope-opening and scope-closing kinds. Records outside any
// scope become roots. Scope ends are consumed, not represented as nodes; a
// stray end closes nothing and is ignored, and scopes left open at the end
// of the stream stay attached where they were opened.
func BuildScopeTree(iter *Iter) ([]*ScopeNode, error) {
	var roots []*ScopeNode
	var stack []*ScopeNode

	attach := func(node *ScopeNode) {
		if len(stack) > 0 {
			parent := stack[len(stack)-1]
			parent.Children = append(parent.Children, node)
			return
		}
		roots = append(roots, node)
	}

	for iter.Next() {
		sym := iter.Symbol()
		switch {
		case sym.EndsScope():
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		case sym.StartsScope():
			node := &ScopeNode{Symbol: sym}
			attach(node)
			stack = append(stack, node)
		default:
			attach(&ScopeNode{Symbol: sym})
		}
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return roots, nil
}
