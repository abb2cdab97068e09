// Package aggregate folds ordered flat row sets into grouped parent records.
// The fold is pure: identical input always produces identical output and no
// I/O happens here.
package aggregate

// Group produces one record per distinct key, in order of first appearance
// of the key in rows. seed builds a record from the first row of its group;
// fold is then applied to every row of the group, the seeding row included,
// in input order. An empty input yields an empty, non-nil result.
func Group[Row any, Key comparable, Rec any](
	rows []Row,
	key func(Row) Key,
	seed func(Row) *Rec,
	fold func(*Rec, Row),
) []Rec {
	index := make(map[Key]*Rec, len(rows))
	order := make([]*Rec, 0, len(rows))

	for _, row := range rows {
		k := key(row)
		rec, ok := index[k]
		if !ok {
			rec = seed(row)
			index[k] = rec
			order = append(order, rec)
		}
		fold(rec, row)
	}

	out := make([]Rec, len(order))
	for i, rec := range order {
		out[i] = *rec
	}
	return out
}
