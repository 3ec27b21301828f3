package settings

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/npc-generator/internal/corpus"
	"github.com/KirkDiggler/npc-generator/internal/errors"
)

// declarationList accepts either a YAML sequence or a single scalar such as
// "None"
type declarationList []string

// UnmarshalYAML implements yaml.Unmarshaler
func (d *declarationList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.ShortTag() == "!!null" || value.Value == "" {
			*d = nil
			return nil
		}
		*d = declarationList{value.Value}
		return nil
	case yaml.SequenceNode:
		var lines []string
		if err := value.Decode(&lines); err != nil {
			return err
		}
		*d = lines
		return nil
	default:
		return errors.InvalidArgumentf("line %d: expected a list of declarations", value.Line)
	}
}

type yamlDocument struct {
	RarityClasses     declarationList `yaml:"rarity_classes"`
	OptionalGroups    declarationList `yaml:"optional_groups"`
	MultipleGroups    declarationList `yaml:"multiple_groups"`
	ConditionedGroups declarationList `yaml:"conditioned_groups"`
}

// ParseYAML reads settings from a YAML document with one named list per
// modifier category:
//
//	rarity_classes: [c_by_50, r_by_10]
//	optional_groups: [Fear_by_80]
//	multiple_groups: [Race_by_20_min1max2]
//	conditioned_groups: None
func ParseYAML(data []byte) (*Settings, error) {
	var doc yamlDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse settings YAML")
	}

	return Parse(Declarations{
		RarityClasses:     doc.RarityClasses,
		OptionalGroups:    doc.OptionalGroups,
		MultipleGroups:    doc.MultipleGroups,
		ConditionedGroups: doc.ConditionedGroups,
	}), nil
}

// Load reads settings from a .yaml/.yml file or from a configuration corpus
func Load(path string) (*Settings, error) {
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.CorpusUnavailable(path, err)
		}
		return ParseYAML(data)
	}

	c, err := corpus.Load(path)
	if err != nil {
		return nil, err
	}
	return FromCorpus(c), nil
}
