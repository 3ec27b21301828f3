// Package corpus parses the plain-text group database and configuration files
// the generator draws from.
//
// A corpus comes in one of two shapes. The legacy blob form is a single
// document of delimiter-wrapped blocks:
//
//	__Race__
//	Human
//	Elf(r)
//	/end
//
// The mapping form is a directory where every <Group>.txt file holds the
// parameters of one group and every <Group>/ sub-directory holds the nested
// sub-corpus used by conditioned groups. Sub-corpus blocks use the "=="
// delimiter when they live inside a document.
package corpus

//go:generate mockgen -destination=mock/mock_corpus.go -package=corpusmock github.com/KirkDiggler/npc-generator/internal/corpus Corpus

const (
	// GroupDelimiter wraps top-level group names
	GroupDelimiter = "__"

	// SubgroupDelimiter wraps sub-corpus block names
	SubgroupDelimiter = "=="
)

// Corpus is a read-only source of group-keyed parameter lists
type Corpus interface {
	// Groups lists group names in document order
	Groups() []string

	// Parameters returns the non-blank lines of a group. Unknown groups
	// return a NotFound error.
	Parameters(group string) ([]string, error)

	// Sub returns the nested sub-corpus consulted for a conditioned group.
	// A missing sub-corpus returns a NotFound error.
	Sub(group string) (Corpus, error)
}
