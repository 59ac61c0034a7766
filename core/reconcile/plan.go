package reconcile

// NewRecord builds the record proving that work was exported to imageLink.
func NewRecord(work WorkItem, imageLink string) Record {
	return Record{
		ID:        work.Item.ID,
		Name:      work.Item.Name,
		ImageLink: imageLink,
		Crc32:     work.Entry.CRC32,
		Size:      work.Entry.Length,
		FullPath:  work.Entry.FullPath(),
	}
}

// Commit appends exported records to prior and returns the new set.
//
// Existing records are never changed or removed. An exported record whose
// identity is already present (in prior or earlier in exported) is dropped, so
// the result holds at most one record per (Crc32, Size, FullPath) triple as
// long as prior did. prior itself is not modified.
func Commit(prior []Record, exported []Record) []Record {
	out := make([]Record, 0, len(prior)+len(exported))
	out = append(out, prior...)

	seen := NewIndex(prior)
	for _, r := range exported {
		key := r.Key()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, r)
	}
	return out
}
