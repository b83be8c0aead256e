package expr

import "strings"

// Unparse renders ast back to an equivalent (fully parenthesized) formula
// string. It is mainly useful for diagnostics and golden-file tests; it does
// not attempt to reproduce the original token spacing or redundant parens.
func Unparse(ast *AST) string {
	var b strings.Builder
	writeNode(&b, ast.root)
	return b.String()
}

func writeNode(b *strings.Builder, n Node) {
	switch v := n.(type) {
	case litNode:
		b.WriteString(v.raw)
	case varNode:
		if needsBraces(v.name) {
			b.WriteByte('{')
			b.WriteString(v.name)
			b.WriteByte('}')
		} else {
			b.WriteString(v.name)
		}
	case unaryNode:
		b.WriteString(v.op)
		writeNode(b, v.x)
	case callNode:
		b.WriteString(v.fn)
		b.WriteByte('(')
		writeNode(b, v.arg)
		b.WriteByte(')')
	case binNode:
		b.WriteByte('(')
		writeNode(b, v.l)
		b.WriteByte(' ')
		b.WriteString(v.op)
		b.WriteByte(' ')
		writeNode(b, v.r)
		b.WriteByte(')')
	}
}

func needsBraces(name string) bool {
	if name == "" {
		return true
	}
	for i, r := range name {
		isLetter := r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		isDigit := r >= '0' && r <= '9'
		if i == 0 && !isLetter {
			return true
		}
		if !isLetter && !isDigit {
			return true
		}
	}
	return false
}
