package activity

import "github.com/alexanderramin/readcal/internal/domain"

// BuildIndexMap maps each title to its position in books. The map is only
// meaningful for the exact slice it was built from.
func BuildIndexMap(books []domain.BookAggregate) domain.BookIndexMap {
	index := make(domain.BookIndexMap, len(books))
	for i, b := range books {
		index[b.Title] = i
	}
	return index
}
