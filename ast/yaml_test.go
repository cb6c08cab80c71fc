package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestProgram_MarshalYAML(t *testing.T) {
	x := Token{TokenType: TokenIdentifier, Lexeme: "x"}
	program := &Program{Statements: []Stmt{
		AssignStmt{Name: x, Value: BinaryExpr{
			Left:     VariableExpr{Name: x},
			Operator: Token{TokenType: TokenOperator, Lexeme: "+"},
			Right:    LiteralExpr{Value: 2},
		}},
		ExpressionStmt{Expr: CallExpr{Name: Token{TokenType: TokenIdentifier, Lexeme: "f"}}},
	}}

	b, err := yaml.Marshal(program)
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, yaml.Unmarshal(b, &doc))

	want := map[string]interface{}{
		"statements": []interface{}{
			map[string]interface{}{
				"kind":   "assign",
				"target": "x",
				"value": map[string]interface{}{
					"kind":     "binary",
					"operator": "+",
					"left":     map[string]interface{}{"kind": "variable", "name": "x"},
					"right":    map[string]interface{}{"kind": "literal", "value": 2},
				},
			},
			map[string]interface{}{
				"kind":      "call",
				"name":      "f",
				"arguments": []interface{}{},
			},
		},
	}
	assert.Equal(t, want, doc)
}

func TestLiteralExpr_MarshalYAMLString(t *testing.T) {
	b, err := yaml.Marshal(LiteralExpr{Value: "10"})
	require.NoError(t, err)
	assert.Equal(t, "kind: literal\nvalue: \"10\"\n", string(b))
}
