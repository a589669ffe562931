// Package email renders notification drafts for backorder lines whose
// category requires outbound contact. Drafts are written to the email
// report; nothing is ever sent from here.
package email

import "github.com/qwicdev/backorder-analyzer/internal/model"

// Template describes how drafts are rendered for one category.
// LinkType selects which per-item override to resolve from the store;
// DefaultLink is used when no override exists.
type Template struct {
	Subject     string
	Body        string
	LinkType    string
	DefaultLink string
}

// DefaultTemplates returns the built-in templates. Only categories 1
// (order at manufacturer) and 3 (no stock outlook) notify the dealer;
// category 2 backorders stay untouched and get no draft.
func DefaultTemplates() map[int]Template {
	return map[int]Template{
		1: {
			Subject:     `Backorder artikel niet meer leverbaar - {{.Description}}`,
			LinkType:    model.LinkManufacturer,
			DefaultLink: "https://www.original-equipment-parts.com",
			Body: `Beste {{.Customer}},

Uw backorder artikel "{{.Description}}" (artikelnummer {{.ItemNo}}) is helaas niet meer leverbaar.

Wij raden u aan om dit artikel direct bij de fabrikant te bestellen:
{{.Link}}

Ordergegevens:
- Ordernummer: {{.OrderNo}}
- Artikel: {{.Description}}
- Aantal: {{.Quantity}}

Voor vragen kunt u contact opnemen met onze klantenservice.

Met vriendelijke groet,
Het backorder team`,
		},
		3: {
			Subject:     `Backorder artikel niet meer beschikbaar - {{.Description}}`,
			LinkType:    model.LinkExternalSeller,
			DefaultLink: "https://www.autodoc.nl",
			Body: `Beste {{.Customer}},

Uw backorder artikel "{{.Description}}" (artikelnummer {{.ItemNo}}) is helaas niet meer beschikbaar.

Wij raden u aan om dit artikel bij een externe verkoper te bestellen:
{{.Link}}

Ordergegevens:
- Ordernummer: {{.OrderNo}}
- Artikel: {{.Description}}
- Aantal: {{.Quantity}}

Voor vragen kunt u contact opnemen met onze klantenservice.

Met vriendelijke groet,
Het backorder team`,
		},
	}
}
