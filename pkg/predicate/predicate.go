// Copyright (c) 2026 Boardbuddy. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package predicate provides a small condition tree for building dynamic SQL
WHERE clauses.

A [Cond] is one of four variants: [Equals], [InSet], [And] and [AlwaysTrue].
Repositories compose optional filters into a tree and lower it into PostgreSQL
text with positional ($N) placeholders via [Cond.Lower].

Semantics:

  - An [InSet] with no values places no restriction on its column and lowers to
    TRUE. It never renders `IN ()`.
  - An [And] drops always-true children. An empty [And] is always true.

Usage:

	args := predicate.NewArgs()
	where := predicate.All(
	    predicate.In("ga.sido", sidos),
	    predicate.Eq("ga.status", "OPEN"),
	).Lower(args)
	rows, err := pool.Query(ctx, "SELECT ... WHERE "+where, args.Values()...)
*/
package predicate

import (
	"fmt"
	"strings"
)

// # Placeholder Arguments

// Args accumulates positional query arguments while a tree is lowered.
type Args struct {
	values []any
}

// NewArgs returns an empty argument list. Placeholders start at $1.
func NewArgs(initial ...any) *Args {
	return &Args{values: append([]any(nil), initial...)}
}

// Add appends value and returns its placeholder (e.g. "$3").
func (a *Args) Add(value any) string {
	a.values = append(a.values, value)
	return fmt.Sprintf("$%d", len(a.values))
}

// Values returns the arguments in placeholder order.
func (a *Args) Values() []any {
	return a.values
}

// Len reports how many arguments have been bound so far.
func (a *Args) Len() int {
	return len(a.values)
}

// # Condition Tree

// Cond is a node of the condition tree.
type Cond interface {
	// Lower renders the condition as SQL, binding its values into args.
	Lower(args *Args) string

	// Trivial reports whether the condition matches every row.
	Trivial() bool
}

// AlwaysTrue matches every row.
type AlwaysTrue struct{}

// Lower implements [Cond].
func (AlwaysTrue) Lower(*Args) string { return "TRUE" }

// Trivial implements [Cond].
func (AlwaysTrue) Trivial() bool { return true }

// Equals matches rows whose Column equals Value.
type Equals struct {
	Column string
	Value  any
}

// Lower implements [Cond].
func (e Equals) Lower(args *Args) string {
	return e.Column + " = " + args.Add(e.Value)
}

// Trivial implements [Cond].
func (Equals) Trivial() bool { return false }

// InSet matches rows whose Column is one of Values.
type InSet struct {
	Column string
	Values []string
}

// Lower implements [Cond]. The list is bound as a single array parameter.
func (s InSet) Lower(args *Args) string {
	if s.Trivial() {
		return "TRUE"
	}
	return s.Column + " = ANY(" + args.Add(s.Values) + ")"
}

// Trivial implements [Cond].
func (s InSet) Trivial() bool { return len(s.Values) == 0 }

// And matches rows satisfying every child condition.
type And []Cond

// Lower implements [Cond].
func (and And) Lower(args *Args) string {
	var parts []string
	for _, child := range and {
		if child == nil || child.Trivial() {
			continue
		}
		parts = append(parts, child.Lower(args))
	}

	switch len(parts) {
	case 0:
		return "TRUE"
	case 1:
		return parts[0]
	}
	return "(" + strings.Join(parts, " AND ") + ")"
}

// Trivial implements [Cond].
func (and And) Trivial() bool {
	for _, child := range and {
		if child != nil && !child.Trivial() {
			return false
		}
	}
	return true
}

// # Constructors

// Eq is shorthand for [Equals].
func Eq(column string, value any) Cond {
	return Equals{Column: column, Value: value}
}

// In is shorthand for [InSet].
func In(column string, values []string) Cond {
	return InSet{Column: column, Values: values}
}

// All is shorthand for [And]. Nil conditions are ignored.
func All(conds ...Cond) Cond {
	return And(conds)
}
