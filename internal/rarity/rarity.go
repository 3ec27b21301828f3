// Package rarity implements rarity classes and the weighted inclusion filter
// applied to every candidate pool before selection.
//
// A parameter may carry a trailing tag of one to three word characters in
// parentheses, e.g. "Elf(r)". The tag names a rarity class declared in the
// configuration as "r_by_10", or is itself a literal weight such as "(35)".
// Untagged parameters and unknown tags weigh 100 and are always kept.
package rarity

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/npc-generator/internal/errors"
)

const (
	// MaxWeight is the weight of an always-included parameter
	MaxWeight = 100

	// declarationSeparator splits a declaration into its subject and arguments
	declarationSeparator = "_by_"
)

var tagPattern = regexp.MustCompile(`\((\w{1,3})\)$`)

// Classes maps rarity codes to inclusion weights
type Classes map[string]int

// LoadClasses parses "Code_by_Weight" declarations. Declarations without an
// integer weight are skipped and returned as MalformedModifier errors.
func LoadClasses(declarations []string) (Classes, []error) {
	classes := make(Classes, len(declarations))
	var skipped []error

	for _, decl := range declarations {
		code, args, ok := SplitDeclaration(decl)
		if !ok || len(args) == 0 {
			skipped = append(skipped, errors.MalformedModifier(decl, "expected Code_by_Weight"))
			continue
		}

		weight, err := strconv.Atoi(args[0])
		if err != nil {
			skipped = append(skipped, errors.MalformedModifier(decl, "weight is not an integer"))
			continue
		}
		classes[code] = weight
	}

	return classes, skipped
}

// SplitDeclaration splits "Subject_by_A_B" into "Subject" and ["A", "B"]
func SplitDeclaration(decl string) (subject string, args []string, ok bool) {
	subject, rest, found := strings.Cut(strings.TrimSpace(decl), declarationSeparator)
	if !found || subject == "" {
		return "", nil, false
	}

	for _, arg := range strings.Split(rest, "_") {
		if arg = strings.TrimSpace(arg); arg != "" {
			args = append(args, arg)
		}
	}
	return subject, args, true
}

// SplitTag separates a parameter's text from its rarity tag
func SplitTag(param string) (text, tag string) {
	loc := tagPattern.FindStringSubmatchIndex(param)
	if loc == nil {
		return param, ""
	}
	return param[:loc[0]], param[loc[2]:loc[3]]
}

// Strip removes the rarity tag from a parameter
func Strip(param string) string {
	text, _ := SplitTag(param)
	return text
}

// Weight resolves a tag: declared class first, then a literal integer, then
// MaxWeight
func (c Classes) Weight(tag string) int {
	if tag == "" {
		return MaxWeight
	}
	if weight, ok := c[tag]; ok {
		return weight
	}
	if weight, err := strconv.Atoi(tag); err == nil {
		return weight
	}
	return MaxWeight
}

// Filter draws once in [1,100] per parameter and keeps the stripped parameter
// when its weight is at least the draw. The size of the result is random.
func (c Classes) Filter(params []string, roller dice.Roller) ([]string, error) {
	kept := make([]string, 0, len(params))

	for _, param := range params {
		text, tag := SplitTag(param)

		draw, err := roller.Roll(MaxWeight)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to roll rarity for %q", param)
		}

		if c.Weight(tag) >= draw {
			kept = append(kept, text)
		}
	}

	return kept, nil
}
