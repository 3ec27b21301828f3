package corpus

import (
	"github.com/KirkDiggler/npc-generator/internal/errors"
)

// Blob is the single-document corpus form
type Blob struct {
	doc       *document
	delimiter string
}

// NewBlob parses text and exposes the blocks wrapped by delimiter
func NewBlob(text, delimiter string) *Blob {
	if delimiter == "" {
		delimiter = GroupDelimiter
	}
	return &Blob{
		doc:       parseDocument(text),
		delimiter: delimiter,
	}
}

// Ensure Blob implements Corpus
var _ Corpus = (*Blob)(nil)

// Groups lists the block names for the blob's delimiter
func (b *Blob) Groups() []string {
	return b.doc.groupNames(b.delimiter)
}

// Parameters returns the lines between a block header and its /end, nested
// blocks excluded
func (b *Blob) Parameters(group string) ([]string, error) {
	lines, ok := b.doc.block(b.delimiter, group)
	if !ok {
		return nil, errors.GroupNotFound(group)
	}
	return lines, nil
}

// Sub returns a "==" view of the same document. The legacy form keeps every
// sub-block in the one file, so the group name does not narrow the view.
func (b *Blob) Sub(group string) (Corpus, error) {
	if b.delimiter == SubgroupDelimiter || len(b.doc.names[SubgroupDelimiter]) == 0 {
		return nil, errors.NotFoundf("no sub-corpus for group %q", group).WithMeta(errors.MetaGroup, group)
	}
	return &Blob{doc: b.doc, delimiter: SubgroupDelimiter}, nil
}
