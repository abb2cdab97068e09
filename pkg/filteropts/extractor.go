// Package filteropts derives the distinct, sorted set of selectable filter
// values from a flat row set, so dropdowns do not need a dedicated catalog
// round trip. Options reflect only the rows currently loaded; values filtered
// out upstream will not appear.
package filteropts

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Option is one selectable (id, label) pair for a filter dimension.
type Option struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Extractor dedupes and sorts options with locale-aware collation.
type Extractor struct {
	col *collate.Collator
}

// NewExtractor builds an extractor collating for the given locale.
func NewExtractor(tag language.Tag) *Extractor {
	return &Extractor{col: collate.New(tag)}
}

// NewFrenchExtractor is the default for the dashboard's locale.
func NewFrenchExtractor() *Extractor {
	return NewExtractor(language.French)
}

// Sort orders options by label with the extractor's collation. Missing
// labels compare as empty strings and therefore sort first.
func (e *Extractor) Sort(opts []Option) {
	sort.SliceStable(opts, func(i, j int) bool {
		return e.col.CompareString(opts[i].Label, opts[j].Label) < 0
	})
}

// Options walks rows once, keeps the first occurrence of every distinct id
// produced by dim, and returns the collected options sorted by label.
func Options[Row any](e *Extractor, rows []Row, dim func(Row) Option) []Option {
	seen := make(map[string]struct{}, len(rows))
	opts := make([]Option, 0, len(rows))
	for _, row := range rows {
		o := dim(row)
		if _, ok := seen[o.ID]; ok {
			continue
		}
		seen[o.ID] = struct{}{}
		opts = append(opts, o)
	}
	e.Sort(opts)
	return opts
}
