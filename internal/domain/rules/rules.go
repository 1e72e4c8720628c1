// Package rules maps each stat type to the effects it has on the acting
// player and, optionally, on an opposing player.
package rules

import (
	"fmt"

	"github.com/okian/pelada/internal/domain/model"
)

// Effect is one record/rating impact: which stat gets recorded and its sign.
type Effect struct {
	Type   model.StatType
	Impact model.Impact
}

// Rule pairs the primary effect with an optional counterpart effect that
// applies to the opponent named in the event.
type Rule struct {
	Primary     Effect
	Counterpart *Effect
}

// HasCounterpart reports whether the rule defines an opponent effect.
func (r Rule) HasCounterpart() bool {
	return r.Counterpart != nil
}

// Lookup returns the rule for st and whether one exists.
func Lookup(st model.StatType) (Rule, bool) {
	r, ok := table[st]
	if !ok {
		return Rule{}, false
	}
	if r.Counterpart != nil {
		cp := *r.Counterpart
		r.Counterpart = &cp
	}
	return r, true
}

// For returns the rule for st. Every model.StatType has an entry, so an
// unknown type is a programming error and panics.
func For(st model.StatType) Rule {
	r, ok := Lookup(st)
	if !ok {
		panic(fmt.Sprintf("rules: no rule for stat type %q", st))
	}
	return r
}
