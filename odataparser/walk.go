package odataparser

// Uniform child iteration over the heterogeneous payloads, so that
// consumers can traverse the tree without probing payload shapes.

// Children returns the direct child tokens of t in source order. Tokens whose
// payload holds no child token (literals, identifiers, $format, $skiptoken,
// $levels and custom options) return nil; $top, $skip and $count return
// their inner literal.
func Children(t *Token) []*Token {
	if t == nil {
		return nil
	}
	switch v := t.Value.(type) {
	case BinaryValue:
		return []*Token{v.Left, v.Right}
	case UnaryValue:
		return []*Token{v.Operand}
	case ListValue:
		return v.Items
	case OptionsValue:
		return v.Options
	case OptionValue:
		return []*Token{v.Value}
	case MethodValue:
		return v.Parameters
	case LambdaValue:
		children := make([]*Token, 0, 3)
		if v.Collection != nil {
			children = append(children, v.Collection)
		}
		if v.Variable != nil {
			children = append(children, v.Variable)
		}
		if v.Predicate != nil {
			children = append(children, v.Predicate)
		}
		return children
	case OrderByItemValue:
		return []*Token{v.Expr}
	case ExpandItemValue:
		children := make([]*Token, 0, 1+len(v.Options))
		children = append(children, v.Path)
		children = append(children, v.Options...)
		return children
	case KeyPairValue:
		return []*Token{v.Key, v.Value}
	}
	return nil
}

// Walk visits t and its descendants in pre-order. The visitor returns false
// to skip the subtree below the current node.
func Walk(t *Token, visit func(*Token) bool) {
	if t == nil {
		return
	}
	if !visit(t) {
		return
	}
	for _, c := range Children(t) {
		Walk(c, visit)
	}
}
