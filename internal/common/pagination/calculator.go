package pagination

// CalculateOffset converts a 1-based page number into a row offset:
// offset = (page - 1) * limit.
func CalculateOffset(page, limit int) int {
	return (page - 1) * limit
}

// CalculateTotalPages returns ceil(total/limit), with a minimum of one page
// so that an empty result set still renders as page 1 of 1.
func CalculateTotalPages(total int64, limit int) int {
	if total == 0 {
		return 1
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
