package query

import "strings"

// Predicate is one node of the boolean filter tree. The tree is built by
// the compiler and lowered to SQL in one separate step so the compiler can
// be tested without a database. Placeholders are gorm-style "?"; slice
// arguments rely on gorm's IN expansion.
type Predicate interface {
	lower(sb *strings.Builder, args *[]any)
}

// And is true when every child is. Lowering an empty And yields TRUE.
type And []Predicate

// Or is true when any child is. Lowering an empty Or yields FALSE.
type Or []Predicate

// Not negates its child.
type Not struct {
	Inner Predicate
}

// Compare is a single column comparison, e.g. {"posts.rating", "=", "s"}.
type Compare struct {
	Column string
	Op     string
	Value  any
}

// In restricts Column to a value set. Negate turns it into NOT IN. An empty
// value set matches nothing (or everything, when negated), which is what an
// unknown rating pseudo-value should do.
type In struct {
	Column string
	Values []string
	Negate bool
}

// InSubquery restricts Column against a subquery given as raw SQL with its
// own arguments. Negate turns it into NOT IN.
type InSubquery struct {
	Column string
	SQL    string
	Args   []any
	Negate bool
}

// ToSQL lowers the predicate into a WHERE fragment plus arguments. A nil
// predicate lowers to "TRUE".
func ToSQL(p Predicate) (string, []any) {
	if p == nil {
		return "TRUE", nil
	}
	var sb strings.Builder
	args := []any{}
	p.lower(&sb, &args)
	return sb.String(), args
}

func (a And) lower(sb *strings.Builder, args *[]any) {
	if len(a) == 0 {
		sb.WriteString("TRUE")
		return
	}
	sb.WriteString("(")
	for i, child := range a {
		if i > 0 {
			sb.WriteString(" AND ")
		}
		child.lower(sb, args)
	}
	sb.WriteString(")")
}

func (o Or) lower(sb *strings.Builder, args *[]any) {
	if len(o) == 0 {
		sb.WriteString("FALSE")
		return
	}
	sb.WriteString("(")
	for i, child := range o {
		if i > 0 {
			sb.WriteString(" OR ")
		}
		child.lower(sb, args)
	}
	sb.WriteString(")")
}

func (n Not) lower(sb *strings.Builder, args *[]any) {
	sb.WriteString("NOT (")
	n.Inner.lower(sb, args)
	sb.WriteString(")")
}

func (c Compare) lower(sb *strings.Builder, args *[]any) {
	sb.WriteString(c.Column)
	sb.WriteString(" ")
	sb.WriteString(c.Op)
	sb.WriteString(" ?")
	*args = append(*args, c.Value)
}

func (in In) lower(sb *strings.Builder, args *[]any) {
	if len(in.Values) == 0 {
		if in.Negate {
			sb.WriteString("TRUE")
		} else {
			sb.WriteString("FALSE")
		}
		return
	}
	sb.WriteString(in.Column)
	if in.Negate {
		sb.WriteString(" NOT IN ?")
	} else {
		sb.WriteString(" IN ?")
	}
	*args = append(*args, in.Values)
}

func (in InSubquery) lower(sb *strings.Builder, args *[]any) {
	sb.WriteString(in.Column)
	if in.Negate {
		sb.WriteString(" NOT IN (")
	} else {
		sb.WriteString(" IN (")
	}
	sb.WriteString(in.SQL)
	sb.WriteString(")")
	*args = append(*args, in.Args...)
}
