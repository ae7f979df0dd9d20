// Package expr parses and evaluates the Boolean expressions accepted by
// qmin --expr. Operators may be written as glyphs (¬ ∧ ∨) or in the ASCII
// forms ! & | and $ for exclusive or.
package expr

// Expr AST

type Expr interface{ isExpr() }

type Ident struct{ Name string }

func (Ident) isExpr() {}

type Not struct{ X Expr }

func (Not) isExpr() {}

type And struct{ A, B Expr }

func (And) isExpr() {}

type Or struct{ A, B Expr }

func (Or) isExpr() {}

type Xor struct{ A, B Expr }

func (Xor) isExpr() {}

type Const struct{ Value bool }

func (Const) isExpr() {}
