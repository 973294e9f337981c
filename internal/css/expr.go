package css

import "strings"

// Op is an arithmetic operator inside a calc() expression.
type Op int

const (
	OpAdd Op = iota
	OpSub
)

func (o Op) String() string {
	if o == OpSub {
		return "-"
	}
	return "+"
}

type term struct {
	op      Op
	operand Length
}

// Expr is a deferred arithmetic expression over lengths. Operands keep
// their declared units; nothing is converted at composition time, so an
// expression built from mixed units stays correct however the underlying
// stylesheet is written. Conversion happens either in Resolve, against an
// explicit Context, or downstream in whatever consumes the serialized
// calc() text.
type Expr struct {
	first Length
	terms []term
}

// Calc starts an expression from a single length.
func Calc(first Length) Expr {
	return Expr{first: first}
}

// Sub returns the expression minus l.
func (e Expr) Sub(l Length) Expr {
	e.terms = append(e.terms[:len(e.terms):len(e.terms)], term{op: OpSub, operand: l})
	return e
}

// Add returns the expression plus l.
func (e Expr) Add(l Length) Expr {
	e.terms = append(e.terms[:len(e.terms):len(e.terms)], term{op: OpAdd, operand: l})
	return e
}

// Operands returns every length in the expression, first operand included.
func (e Expr) Operands() []Length {
	out := make([]Length, 0, len(e.terms)+1)
	out = append(out, e.first)
	for _, t := range e.terms {
		out = append(out, t.operand)
	}
	return out
}

// String serializes the expression to CSS text. This is the single point
// where the composition turns into a string: "calc(600px - 240px - 0px)".
// An expression with no operations serializes as the bare length.
func (e Expr) String() string {
	if len(e.terms) == 0 {
		return e.first.String()
	}
	var b strings.Builder
	b.WriteString("calc(")
	b.WriteString(e.first.String())
	for _, t := range e.terms {
		b.WriteByte(' ')
		b.WriteString(t.op.String())
		b.WriteByte(' ')
		b.WriteString(t.operand.String())
	}
	b.WriteByte(')')
	return b.String()
}

// Resolve evaluates the expression to pixels within ctx. Mixed units are
// fine; each operand normalizes independently before the arithmetic runs.
func (e Expr) Resolve(ctx Context) (float64, error) {
	total, err := e.first.ResolvePx(ctx)
	if err != nil {
		return 0, err
	}
	for _, t := range e.terms {
		v, err := t.operand.ResolvePx(ctx)
		if err != nil {
			return 0, err
		}
		if t.op == OpSub {
			total -= v
		} else {
			total += v
		}
	}
	return total, nil
}
