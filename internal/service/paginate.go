package service

// Paginate returns the 1-based page of items of size limit. Pages outside
// the sequence, non-positive pages and non-positive limits yield an empty,
// non-nil slice.
func Paginate[T any](items []T, page, limit int) []T {
	if page < 1 || limit < 1 {
		return []T{}
	}
	// (page-1)*limit may overflow; compare by division first
	if page-1 > (len(items)-1)/limit || len(items) == 0 {
		return []T{}
	}

	start := (page - 1) * limit
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
