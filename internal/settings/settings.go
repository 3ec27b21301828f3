// Package settings turns the configuration corpus into the named modifier
// declarations the engine applies on every resolution.
package settings

import (
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/npc-generator/internal/corpus"
	"github.com/KirkDiggler/npc-generator/internal/errors"
	"github.com/KirkDiggler/npc-generator/internal/rarity"
)

// Reserved configuration group names
const (
	SectionRarityClasses     = "RarityClasses"
	SectionOptionalGroups    = "OptionalGroups"
	SectionMultipleGroups    = "MultipleGroups"
	SectionConditionedGroups = "ConditionedGroups"

	// Disabled turns a whole modifier category off
	Disabled = "None"

	// MaxSlots bounds the slot range of a multiple group
	MaxSlots = 1000
)

var countPattern = regexp.MustCompile(`\d+`)

// sectionAliases maps normalized group names to their section
var sectionAliases = map[string]string{
	"rarityclasses":     SectionRarityClasses,
	"rarity":            SectionRarityClasses,
	"optionalgroups":    SectionOptionalGroups,
	"optional":          SectionOptionalGroups,
	"multiplegroups":    SectionMultipleGroups,
	"multiple":          SectionMultipleGroups,
	"conditionedgroups": SectionConditionedGroups,
	"conditioned":       SectionConditionedGroups,
}

// Optional is a group included with probability Weight/100
type Optional struct {
	Group  string
	Weight int
}

// Multiple is a group that receives between Min and Max slots. Every slot
// past Min is added by an independent trial at Weight.
type Multiple struct {
	Group  string
	Weight int
	Min    int
	Max    int
}

// Conditioned is a group whose candidates depend on the resolved values of
// the groups in DependsOn
type Conditioned struct {
	Group     string
	DependsOn []string
}

// Settings holds every modifier declaration of a configuration
type Settings struct {
	Rarity      rarity.Classes
	Optional    []Optional
	Multiple    []Multiple
	Conditioned []Conditioned

	// Skipped lists the declarations dropped as malformed
	Skipped []error
}

// Declarations holds the raw declaration lines of each section
type Declarations struct {
	RarityClasses     []string
	OptionalGroups    []string
	MultipleGroups    []string
	ConditionedGroups []string
}

// FromCorpus reads the four reserved sections of a configuration corpus.
// Sections are matched by name, a missing section disables its category.
func FromCorpus(c corpus.Corpus) *Settings {
	var decls Declarations

	for _, group := range c.Groups() {
		section, ok := sectionAliases[normalize(group)]
		if !ok {
			slog.Warn("ignoring unknown configuration group", "group", group)
			continue
		}

		lines, err := c.Parameters(group)
		if err != nil {
			continue
		}

		switch section {
		case SectionRarityClasses:
			decls.RarityClasses = lines
		case SectionOptionalGroups:
			decls.OptionalGroups = lines
		case SectionMultipleGroups:
			decls.MultipleGroups = lines
		case SectionConditionedGroups:
			decls.ConditionedGroups = lines
		}
	}

	return Parse(decls)
}

// Parse builds Settings from raw declarations. Malformed declarations are
// skipped, logged and collected in Skipped.
func Parse(decls Declarations) *Settings {
	s := &Settings{Rarity: rarity.Classes{}}

	if !disabled(decls.RarityClasses) {
		classes, skipped := rarity.LoadClasses(decls.RarityClasses)
		s.Rarity = classes
		s.Skipped = append(s.Skipped, skipped...)
	}

	if !disabled(decls.OptionalGroups) {
		for _, decl := range decls.OptionalGroups {
			opt, err := parseOptional(decl)
			if err != nil {
				s.Skipped = append(s.Skipped, err)
				continue
			}
			s.Optional = append(s.Optional, opt)
		}
	}

	if !disabled(decls.MultipleGroups) {
		for _, decl := range decls.MultipleGroups {
			mult, err := parseMultiple(decl)
			if err != nil {
				s.Skipped = append(s.Skipped, err)
				continue
			}
			s.Multiple = append(s.Multiple, mult)
		}
	}

	if !disabled(decls.ConditionedGroups) {
		for _, decl := range decls.ConditionedGroups {
			cond, err := parseConditioned(decl)
			if err != nil {
				s.Skipped = append(s.Skipped, err)
				continue
			}
			s.Conditioned = append(s.Conditioned, cond)
		}
	}

	for _, err := range s.Skipped {
		slog.Warn("skipping malformed configuration declaration",
			"declaration", errors.GetMeta(err)[errors.MetaDeclaration],
			"error", errors.GetMessage(err))
	}

	return s
}

func parseOptional(decl string) (Optional, error) {
	group, args, ok := rarity.SplitDeclaration(decl)
	if !ok || len(args) == 0 {
		return Optional{}, errors.MalformedModifier(decl, "expected Group_by_Weight")
	}

	weight, err := strconv.Atoi(args[0])
	if err != nil {
		return Optional{}, errors.MalformedModifier(decl, "weight is not an integer")
	}

	return Optional{Group: group, Weight: weight}, nil
}

func parseMultiple(decl string) (Multiple, error) {
	group, args, ok := rarity.SplitDeclaration(decl)
	if !ok || len(args) < 2 {
		return Multiple{}, errors.MalformedModifier(decl, "expected Group_by_Weight_minAmaxB")
	}

	weight, err := strconv.Atoi(args[0])
	if err != nil {
		return Multiple{}, errors.MalformedModifier(decl, "weight is not an integer")
	}

	bounds := countPattern.FindAllString(strings.Join(args[1:], ""), -1)
	if len(bounds) < 2 {
		return Multiple{}, errors.MalformedModifier(decl, "range must be minAmaxB")
	}

	// Both bounds are digit runs so Atoi only fails on overflow
	minCount, errMin := strconv.Atoi(bounds[0])
	maxCount, errMax := strconv.Atoi(bounds[1])
	if errMin != nil || errMax != nil {
		return Multiple{}, errors.MalformedModifier(decl, "range bounds out of range")
	}
	if minCount > maxCount {
		return Multiple{}, errors.MalformedModifier(decl, "min is greater than max")
	}
	if maxCount > MaxSlots {
		return Multiple{}, errors.MalformedModifier(decl, fmt.Sprintf("max exceeds %d slots", MaxSlots))
	}

	return Multiple{Group: group, Weight: weight, Min: minCount, Max: maxCount}, nil
}

func parseConditioned(decl string) (Conditioned, error) {
	group, deps, ok := rarity.SplitDeclaration(decl)
	if !ok || len(deps) == 0 {
		return Conditioned{}, errors.MalformedModifier(decl, "expected Group_by_Dependency")
	}

	return Conditioned{Group: group, DependsOn: deps}, nil
}

func disabled(lines []string) bool {
	if len(lines) == 0 {
		return true
	}
	for _, line := range lines {
		if strings.TrimSpace(line) == Disabled {
			return true
		}
	}
	return false
}

func normalize(name string) string {
	r := strings.NewReplacer("_", "", "-", "", " ", "")
	return strings.ToLower(r.Replace(name))
}
