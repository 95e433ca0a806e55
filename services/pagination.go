package services

// Pages are 1-based at the edge; page 0 or below clamps to the first page
// rather than erroring.

func saturatePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

func pageOffset(page, pageSize int) int {
	return (saturatePage(page) - 1) * pageSize
}

// pageCount is ceiling division of total by pageSize.
func pageCount(total int64, pageSize int) int64 {
	if pageSize < 1 {
		return 0
	}
	return (total + int64(pageSize) - 1) / int64(pageSize)
}
