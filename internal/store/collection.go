package store

// replaceByID swaps the element whose id matches, leaving the slice
// untouched when no element matches.
func replaceByID[T any](items []T, id string, idOf func(T) string, replacement T) []T {
	for i, item := range items {
		if idOf(item) == id {
			items[i] = replacement
			break
		}
	}
	return items
}

// removeByID drops the element whose id matches, preserving order.
func removeByID[T any](items []T, id string, idOf func(T) string) []T {
	for i, item := range items {
		if idOf(item) == id {
			return append(items[:i], items[i+1:]...)
		}
	}
	return items
}
