package activity

import (
	"fmt"
	"sort"

	"github.com/alexanderramin/readcal/internal/domain"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type BookOrder string

const (
	OrderTitle   BookOrder = "title"
	OrderMinutes BookOrder = "minutes"
	OrderRecent  BookOrder = "recent"
	OrderFirst   BookOrder = "first"
)

// ParseBookOrder validates a user-supplied sort key.
func ParseBookOrder(s string) (BookOrder, error) {
	switch o := BookOrder(s); o {
	case OrderTitle, OrderMinutes, OrderRecent, OrderFirst:
		return o, nil
	case "":
		return OrderFirst, nil
	default:
		return "", fmt.Errorf("unknown sort order %q (want title, minutes, recent or first)", s)
	}
}

// SortBooks returns a sorted copy of books. OrderFirst keeps pass order,
// which is the order each title was first read. Titles compare with
// locale-aware collation so accented and CJK titles sort naturally.
func SortBooks(books []domain.BookAggregate, order BookOrder, tag language.Tag) []domain.BookAggregate {
	out := append([]domain.BookAggregate(nil), books...)
	col := collate.New(tag, collate.IgnoreCase)
	byTitle := func(a, b domain.BookAggregate) bool {
		return col.CompareString(a.Title, b.Title) < 0
	}

	switch order {
	case OrderTitle:
		sort.SliceStable(out, func(i, j int) bool { return byTitle(out[i], out[j]) })
	case OrderMinutes:
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].TotalMinutes != out[j].TotalMinutes {
				return out[i].TotalMinutes > out[j].TotalMinutes
			}
			return byTitle(out[i], out[j])
		})
	case OrderRecent:
		sort.SliceStable(out, func(i, j int) bool {
			if !out[i].LastDate.Equal(out[j].LastDate) {
				return out[i].LastDate.After(out[j].LastDate)
			}
			return byTitle(out[i], out[j])
		})
	}
	return out
}
