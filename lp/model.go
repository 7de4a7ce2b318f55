package lp

import "fmt"

// VarKind distinguishes a continuous variable from one restricted to
// non-negative integers by the simplex's rounding-free relaxation.
type VarKind int

const (
	// Continuous variables take any value within their bounds.
	Continuous VarKind = iota
	// Integer variables are solved as a relaxation; the simplex never
	// enforces integrality, matching the original's own relaxation-only
	// solver (integrality was advisory metadata, not a branching hint).
	Integer
)

// variable records the metadata ModelBuilder.AddVar attaches to a VariableId.
type variable struct {
	name string
	kind VarKind
	lb   float64
	ub   float64
}

// constraint pairs an Inequality with the human-readable name it was added
// under, so Model.String can label each row by name.
type constraint struct {
	name string
	ineq Inequality
}

// ModelBuilder accumulates variables and constraints before compiling them
// into a Model ready for Solve. It mirrors the original's builder struct,
// which grew an expression tree incrementally via operator overloading;
// here the same incremental growth happens through explicit methods.
type ModelBuilder struct {
	vars        []variable
	constraints []constraint
	minimize    Expression
	maximized   bool
}

// NewModelBuilder returns an empty builder.
func NewModelBuilder() *ModelBuilder {
	return &ModelBuilder{}
}

// AddVar registers a new variable with bounds [lb, ub] and returns its id.
// Panics if ub < lb.
func (b *ModelBuilder) AddVar(name string, kind VarKind, lb, ub float64) VariableId {
	if ub < lb {
		panic(fmt.Sprintf("lp: AddVar(%q): upper bound %g below lower bound %g", name, ub, lb))
	}
	id := VariableId(len(b.vars))
	b.vars = append(b.vars, variable{name: name, kind: kind, lb: lb, ub: ub})
	return id
}

// AddConstraint registers ineq under name and returns its id.
func (b *ModelBuilder) AddConstraint(name string, ineq Inequality) ConstraintId {
	id := ConstraintId(len(b.constraints))
	b.constraints = append(b.constraints, constraint{name: name, ineq: ineq})
	return id
}

// Minimize sets the objective to minimize e. The last call wins.
func (b *ModelBuilder) Minimize(e Expression) {
	b.minimize = e
}

// Maximize sets the objective to maximize e, internally stored as
// minimizing -e so the solver only ever needs one direction.
func (b *ModelBuilder) Maximize(e Expression) {
	b.minimize = e.Negate()
	b.maximized = true
}

// Model is the compiled, immutable form of a ModelBuilder ready to solve.
type Model struct {
	nvar      int
	varNames  []string
	lb, ub    []float64
	rows      [][]float64
	rhs       []float64
	rowNames  []string
	objective []float64
	maximized bool
}

// Compile freezes the builder into a Model. The objective row is read back
// out as minimizing, with maximized recorded so Solve can report the
// original-sense objective value.
func (b *ModelBuilder) Compile() *Model {
	nvar := len(b.vars)
	m := &Model{
		nvar:      nvar,
		varNames:  make([]string, nvar),
		lb:        make([]float64, nvar),
		ub:        make([]float64, nvar),
		objective: make([]float64, nvar),
	}
	for i, v := range b.vars {
		m.varNames[i] = v.name
		m.lb[i] = v.lb
		m.ub[i] = v.ub
	}
	for _, t := range b.minimize.terms {
		m.objective[int(t.id)] = t.coeff
	}
	m.maximized = b.maximized
	for _, c := range b.constraints {
		row, rhs := c.ineq.coefficients(nvar)
		m.rows = append(m.rows, row)
		m.rhs = append(m.rhs, rhs)
		m.rowNames = append(m.rowNames, c.name)
	}
	return m
}

// NVar returns the number of decision variables in the model.
func (m *Model) NVar() int { return m.nvar }

// String renders the model in a human-readable "minimize ... subject to ..."
// form, useful for debugging a built Model before calling Solve.
func (m *Model) String() string {
	s := "minimize"
	for i, c := range m.objective {
		if c == 0 {
			continue
		}
		s += fmt.Sprintf(" %+g*%s", c, m.varNames[i])
	}
	s += "\nsubject to:\n"
	for i, row := range m.rows {
		s += fmt.Sprintf("  %s:", m.rowNames[i])
		for j, c := range row {
			if c == 0 {
				continue
			}
			s += fmt.Sprintf(" %+g*%s", c, m.varNames[j])
		}
		s += fmt.Sprintf(" <= %g\n", m.rhs[i])
	}
	return s
}
