package lp

import (
	"fmt"
	"strings"
)

// VariableId identifies a decision variable registered with a ModelBuilder.
type VariableId int

// ConstraintId identifies a constraint registered with a ModelBuilder.
type ConstraintId int

// term is one (variable, coefficient) pair inside an Expression.
type term struct {
	id    VariableId
	coeff float64
}

// Expression is a constant plus a linear combination of variables, terms
// kept sorted by VariableId with no zero coefficients, which makes Plus a
// linear merge instead of a map-keyed accumulation.
type Expression struct {
	constant float64
	terms    []term
}

// Const builds a constant expression.
func Const(v float64) Expression {
	return Expression{constant: v}
}

// Expr builds the trivial expression "1 * vid".
func (vid VariableId) Expr() Expression {
	return Expression{terms: []term{{id: vid, coeff: 1}}}
}

// Scale returns c * e.
func (e Expression) Scale(c float64) Expression {
	out := Expression{constant: e.constant * c}
	if c == 0 {
		return out
	}
	out.terms = make([]term, len(e.terms))
	for i, t := range e.terms {
		out.terms[i] = term{id: t.id, coeff: t.coeff * c}
	}
	return out
}

// Negate returns -e.
func (e Expression) Negate() Expression {
	return e.Scale(-1)
}

// Plus merges two expressions, summing coefficients of shared variables and
// dropping any term whose combined coefficient is exactly zero.
func (e Expression) Plus(other Expression) Expression {
	out := Expression{constant: e.constant + other.constant}
	i, j := 0, 0
	for i < len(e.terms) && j < len(other.terms) {
		a, b := e.terms[i], other.terms[j]
		switch {
		case a.id < b.id:
			out.terms = append(out.terms, a)
			i++
		case a.id > b.id:
			out.terms = append(out.terms, b)
			j++
		default:
			if sum := a.coeff + b.coeff; sum != 0 {
				out.terms = append(out.terms, term{id: a.id, coeff: sum})
			}
			i++
			j++
		}
	}
	out.terms = append(out.terms, e.terms[i:]...)
	out.terms = append(out.terms, other.terms[j:]...)
	return out
}

// Minus returns e - other.
func (e Expression) Minus(other Expression) Expression {
	return e.Plus(other.Negate())
}

// LessEq builds the Inequality "e <= rhs".
func (e Expression) LessEq(rhs Expression) Inequality {
	return Inequality{body: e.Minus(rhs)}
}

// GreaterEq builds the Inequality "e >= rhs".
func (e Expression) GreaterEq(rhs Expression) Inequality {
	return Inequality{body: rhs.Minus(e)}
}

// Sum adds every expression in es together, left to right.
func Sum(es ...Expression) Expression {
	out := Const(0)
	for _, e := range es {
		out = out.Plus(e)
	}
	return out
}

// Inequality represents "body <= 0", matching the original model's
// normalised representation of every constraint.
type Inequality struct {
	body Expression
}

// coefficients returns the dense coefficient row over variables 0..nvar-1
// together with the right-hand side b such that the inequality reads
// row . x <= b.
func (ineq Inequality) coefficients(nvar int) (row []float64, b float64) {
	row = make([]float64, nvar)
	for _, t := range ineq.body.terms {
		row[int(t.id)] = t.coeff
	}
	return row, -ineq.body.constant
}

func (e Expression) String() string {
	var sb strings.Builder
	for _, t := range e.terms {
		sb.WriteString(" ")
		switch {
		case t.coeff > 0:
			sb.WriteString("+")
		case t.coeff < 0:
			sb.WriteString("-")
		}
		if abs := t.coeff; abs != 1 && abs != -1 {
			fmt.Fprintf(&sb, "%g*", t.coeff)
		}
		fmt.Fprintf(&sb, "x%d", t.id)
	}
	if e.constant != 0 {
		sb.WriteString(" ")
		if e.constant > 0 {
			sb.WriteString("+")
		}
		fmt.Fprintf(&sb, "%g", e.constant)
	}
	return sb.String()
}

func (ineq Inequality) String() string {
	return fmt.Sprintf("%s <= 0", ineq.body)
}
