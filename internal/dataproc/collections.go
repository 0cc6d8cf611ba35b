package dataproc

// FindDuplicates returns each value that occurs more than once in items,
// reported once and ordered by its first occurrence.
func FindDuplicates[T comparable](items []T) []T {
	counts := make(map[T]int, len(items))
	for _, item := range items {
		counts[item]++
	}

	duplicates := make([]T, 0)
	for _, item := range items {
		if counts[item] > 1 {
			duplicates = append(duplicates, item)
			// report once
			counts[item] = 0
		}
	}

	return duplicates
}
