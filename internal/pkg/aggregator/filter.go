package aggregator

// FilterByCategory narrows a collection to the items whose resolved
// category set contains categoryID. A zero id means no filter and returns
// the input unchanged. Toggle behaviour (re-selecting the active category
// clears it) is the caller's business, not this function's.
func FilterByCategory(items []NewsWithDetails, categoryID uint) []NewsWithDetails {
	if categoryID == 0 {
		return items
	}

	filtered := make([]NewsWithDetails, 0, len(items))
	for i := range items {
		if items[i].HasCategory(categoryID) {
			filtered = append(filtered, items[i])
		}
	}
	return filtered
}
