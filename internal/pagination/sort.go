package pagination

import "strings"

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Order is one (field, direction) pair of a sort specification.
type Order struct {
	Field     string
	Direction Direction
}

func (o Order) Descending() bool {
	return o.Direction == Desc
}

// SortSpec is the set of fields a resource can be ordered by, plus the
// order used when the client asks for nothing usable.
type SortSpec struct {
	Allowed map[string]struct{}
	Default Order
}

func NewSortSpec(def Order, fields ...string) SortSpec {
	allowed := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		allowed[f] = struct{}{}
	}
	return SortSpec{Allowed: allowed, Default: def}
}

func (s SortSpec) Parse(raw string) []Order {
	return ParseSort(raw, s.Allowed, s.Default)
}

// ParseSort turns "field,dir[,field,dir...]" into orders. Fields outside the
// allow-list are dropped, a trailing unpaired token is ignored, and when
// nothing survives the default is returned. It never fails.
func ParseSort(raw string, allowed map[string]struct{}, def Order) []Order {
	if strings.TrimSpace(raw) == "" {
		return []Order{def}
	}

	parts := strings.Split(raw, ",")
	if len(parts) < 2 {
		return []Order{def}
	}

	var orders []Order
	for i := 0; i+1 < len(parts); i += 2 {
		field := strings.TrimSpace(parts[i])
		if _, ok := allowed[field]; !ok {
			continue
		}
		dir := Desc
		if strings.EqualFold(strings.TrimSpace(parts[i+1]), "asc") {
			dir = Asc
		}
		orders = append(orders, Order{Field: field, Direction: dir})
	}

	if len(orders) == 0 {
		return []Order{def}
	}
	return orders
}
