package ast

// The YAML form of a node is a mapping tagged with its kind, for example
//
//	kind: binary
//	operator: +
//	left: {kind: variable, name: x}
//	right: {kind: literal, value: 2}

type programDoc struct {
	Statements []Stmt `yaml:"statements"`
}

type assignDoc struct {
	Kind   string `yaml:"kind"`
	Target string `yaml:"target"`
	Value  Expr   `yaml:"value"`
}

type binaryDoc struct {
	Kind     string `yaml:"kind"`
	Operator string `yaml:"operator"`
	Left     Expr   `yaml:"left"`
	Right    Expr   `yaml:"right"`
}

type callDoc struct {
	Kind      string `yaml:"kind"`
	Name      string `yaml:"name"`
	Arguments []Expr `yaml:"arguments"`
}

type literalDoc struct {
	Kind  string      `yaml:"kind"`
	Value interface{} `yaml:"value"`
}

type variableDoc struct {
	Kind string `yaml:"kind"`
	Name string `yaml:"name"`
}

func (p Program) MarshalYAML() (interface{}, error) {
	return programDoc{Statements: p.Statements}, nil
}

func (b AssignStmt) MarshalYAML() (interface{}, error) {
	return assignDoc{Kind: "assign", Target: b.Target(), Value: b.Value}, nil
}

// An expression statement marshals as its expression.
func (b ExpressionStmt) MarshalYAML() (interface{}, error) {
	return b.Expr, nil
}

func (b BinaryExpr) MarshalYAML() (interface{}, error) {
	return binaryDoc{Kind: "binary", Operator: b.Operator.Lexeme, Left: b.Left, Right: b.Right}, nil
}

func (b CallExpr) MarshalYAML() (interface{}, error) {
	args := b.Arguments
	if args == nil {
		args = []Expr{}
	}
	return callDoc{Kind: "call", Name: b.Name.Lexeme, Arguments: args}, nil
}

func (b LiteralExpr) MarshalYAML() (interface{}, error) {
	return literalDoc{Kind: "literal", Value: b.Value}, nil
}

func (b VariableExpr) MarshalYAML() (interface{}, error) {
	return variableDoc{Kind: "variable", Name: b.Name.Lexeme}, nil
}
