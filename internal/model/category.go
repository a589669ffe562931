package model

// CategoryNone is the sentinel returned when no category matches an
// item and no default is configured.
const CategoryNone = 0

// Link types stored per item in the catalog.
const (
	LinkManufacturer   = "manufacturer"
	LinkExternalSeller = "external-seller"
)

// Category is a business classification for backordered items. The ID
// is a small positive integer; member items are opaque identifier
// strings.
type Category struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Action      string   `json:"action"`
	Color       string   `json:"color"` // RRGGBB hex, no leading #
	Items       []string `json:"items"`
	ID          int      `json:"-"`
}

// HasItem reports whether itemNo is in the category's member list.
func (c Category) HasItem(itemNo string) bool {
	for _, it := range c.Items {
		if it == itemNo {
			return true
		}
	}
	return false
}

// Classification is a backorder row annotated with its resolved
// category.
type Classification struct {
	CategoryName string
	Action       string
	Row          Row
	CategoryID   int
}
