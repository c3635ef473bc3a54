// Package contenttype reports string literals used where a content.Type is expected.
// Content types must come from the declared constants or from content.ParseType.
package contenttype

import (
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/analysis"
)

const (
	typePackage = "content"
	typeName    = "Type"
)

var Analyzer = &analysis.Analyzer{
	Name: "contenttype",
	Doc:  "checks that content.Type values only use defined constants, not string literals",
	Run:  run,
}

func run(pass *analysis.Pass) (interface{}, error) {
	for _, file := range pass.Files {
		ast.Inspect(file, func(n ast.Node) bool {
			switch node := n.(type) {
			case *ast.AssignStmt:
				for i, lhs := range node.Lhs {
					if i >= len(node.Rhs) {
						continue
					}
					if sel, ok := lhs.(*ast.SelectorExpr); ok && isContentType(pass, sel) && isStringLiteral(node.Rhs[i]) {
						pass.Reportf(node.Pos(),
							"content type field %s assigned string literal; use defined constant instead",
							sel.Sel.Name)
					}
				}
			case *ast.KeyValueExpr:
				if key, ok := node.Key.(*ast.Ident); ok && isContentType(pass, key) && isStringLiteral(node.Value) {
					pass.Reportf(node.Pos(),
						"content type field %s set to string literal; use defined constant instead",
						key.Name)
				}
			case *ast.BinaryExpr:
				if node.Op != token.EQL && node.Op != token.NEQ {
					return true
				}
				if (isContentType(pass, node.X) && isStringLiteral(node.Y)) ||
					(isContentType(pass, node.Y) && isStringLiteral(node.X)) {
					pass.Reportf(node.Pos(), "content type compared to string literal; use defined constant instead")
				}
			}
			return true
		})
	}
	return nil, nil
}

func isContentType(pass *analysis.Pass, expr ast.Expr) bool {
	named, ok := pass.TypesInfo.TypeOf(expr).(*types.Named)
	if !ok {
		return false
	}
	obj := named.Obj()
	return obj.Name() == typeName && obj.Pkg() != nil && obj.Pkg().Name() == typePackage
}

func isStringLiteral(expr ast.Expr) bool {
	lit, ok := expr.(*ast.BasicLit)
	return ok && lit.Kind == token.STRING
}
