package render

import (
	"io"
	"strings"

	"cuelang.org/go/cue/ast"
	"cuelang.org/go/cue/format"
	"cuelang.org/go/cue/token"
	"github.com/flarebyte/getitem/internal/catalog"
)

func writeCUE(w io.Writer, v catalog.Value) error {
	b, err := MarshalCUE(v)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

// MarshalCUE returns v formatted as a CUE expression. Object fields keep
// their catalog order and every label is quoted.
func MarshalCUE(v catalog.Value) ([]byte, error) {
	b, err := format.Node(cueExpr(v))
	if err != nil {
		return nil, err
	}
	if len(b) == 0 || b[len(b)-1] != '\n' {
		b = append(b, '\n')
	}
	return b, nil
}

func cueExpr(v catalog.Value) ast.Expr {
	switch x := v.(type) {
	case catalog.Null:
		return ast.NewNull()
	case catalog.Bool:
		return ast.NewBool(bool(x))
	case catalog.Number:
		tok := token.INT
		if strings.ContainsAny(string(x), ".eE") {
			tok = token.FLOAT
		}
		return ast.NewLit(tok, string(x))
	case catalog.String:
		return ast.NewString(string(x))
	case catalog.List:
		elems := make([]ast.Expr, 0, len(x))
		for _, it := range x {
			elems = append(elems, cueExpr(it))
		}
		return ast.NewList(elems...)
	case *catalog.Object:
		st := &ast.StructLit{}
		for _, k := range x.Keys() {
			val, _ := x.Get(k)
			st.Elts = append(st.Elts, &ast.Field{Label: ast.NewString(k), Value: cueExpr(val)})
		}
		return st
	}
	return ast.NewNull()
}
