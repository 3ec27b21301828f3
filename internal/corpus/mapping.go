package corpus

import (
	"github.com/KirkDiggler/npc-generator/internal/errors"
)

// Mapping is the directory-shaped corpus form: one text body per group
type Mapping struct {
	order []string
	docs  map[string]*document
	subs  map[string]Corpus
}

// NewMapping creates an empty mapping
func NewMapping() *Mapping {
	return &Mapping{
		docs: make(map[string]*document),
		subs: make(map[string]Corpus),
	}
}

// Ensure Mapping implements Corpus
var _ Corpus = (*Mapping)(nil)

// Add registers the body of a group. Re-adding a group replaces its body and
// keeps its original position.
func (m *Mapping) Add(group, body string) *Mapping {
	if _, exists := m.docs[group]; !exists {
		m.order = append(m.order, group)
	}
	m.docs[group] = parseDocument(body)
	return m
}

// Attach registers the nested sub-corpus of a group
func (m *Mapping) Attach(group string, sub Corpus) *Mapping {
	m.subs[group] = sub
	return m
}

// Groups returns the group names in the order they were added
func (m *Mapping) Groups() []string {
	return append([]string(nil), m.order...)
}

// Parameters returns the top-level lines of a group's body
func (m *Mapping) Parameters(group string) ([]string, error) {
	doc, ok := m.docs[group]
	if !ok {
		return nil, errors.GroupNotFound(group)
	}
	return append([]string(nil), doc.top...), nil
}

// Sub returns the attached sub-corpus, or a "==" view of the group's own body
// when it carries nested blocks
func (m *Mapping) Sub(group string) (Corpus, error) {
	if sub, ok := m.subs[group]; ok {
		return sub, nil
	}
	if doc, ok := m.docs[group]; ok && len(doc.names[SubgroupDelimiter]) > 0 {
		return &Blob{doc: doc, delimiter: SubgroupDelimiter}, nil
	}
	return nil, errors.NotFoundf("no sub-corpus for group %q", group).WithMeta(errors.MetaGroup, group)
}
