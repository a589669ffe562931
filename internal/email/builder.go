package email

import (
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"github.com/qwicdev/backorder-analyzer/internal/model"
	"github.com/qwicdev/backorder-analyzer/internal/service"
)

// Builder renders email drafts for classified backorder rows.
type Builder struct {
	store     service.CategoryStore
	templates map[int]parsedTemplate
}

type parsedTemplate struct {
	subject     *template.Template
	body        *template.Template
	linkType    string
	defaultLink string
}

// templateData is what the subject and body templates can reference.
type templateData struct {
	Customer    string
	ItemNo      string
	Description string
	OrderNo     string
	Quantity    string
	Link        string
}

// NewBuilder parses the given templates and returns a Builder. Pass
// DefaultTemplates() unless config overrides them.
func NewBuilder(store service.CategoryStore, templates map[int]Template) (*Builder, error) {
	parsed := make(map[int]parsedTemplate, len(templates))
	for id, tpl := range templates {
		subject, err := template.New("subject").Parse(tpl.Subject)
		if err != nil {
			return nil, fmt.Errorf("invalid subject template for category %d: %w", id, err)
		}
		body, err := template.New("body").Parse(tpl.Body)
		if err != nil {
			return nil, fmt.Errorf("invalid body template for category %d: %w", id, err)
		}
		parsed[id] = parsedTemplate{
			subject:     subject,
			body:        body,
			linkType:    tpl.LinkType,
			defaultLink: tpl.DefaultLink,
		}
	}
	return &Builder{store: store, templates: parsed}, nil
}

// Build renders a draft for one classified row. A nil draft with a nil
// error means the category has no template and needs no notification.
func (b *Builder) Build(c model.Classification) (*model.EmailDraft, error) {
	tpl, ok := b.templates[c.CategoryID]
	if !ok {
		return nil, nil
	}

	link := b.store.LinkFor(c.Row.ItemNo, tpl.linkType)
	if link == "" {
		link = tpl.defaultLink
	}

	data := templateData{
		Customer:    c.Row.Customer,
		ItemNo:      c.Row.ItemNo,
		Description: c.Row.Description,
		OrderNo:     c.Row.OrderNo,
		Quantity:    formatQuantity(c.Row),
		Link:        ShortenURL(link),
	}

	var subject, body strings.Builder
	if err := tpl.subject.Execute(&subject, data); err != nil {
		return nil, fmt.Errorf("failed to render subject for item %s: %w", c.Row.ItemNo, err)
	}
	if err := tpl.body.Execute(&body, data); err != nil {
		return nil, fmt.Errorf("failed to render body for item %s: %w", c.Row.ItemNo, err)
	}

	return &model.EmailDraft{
		To:         c.Row.Customer,
		Subject:    subject.String(),
		Body:       strings.TrimSpace(body.String()),
		CategoryID: c.CategoryID,
		Row:        c.Row,
	}, nil
}

func formatQuantity(r model.Row) string {
	if r.Quantity.IsInteger() {
		return strconv.FormatInt(r.Quantity.IntPart(), 10)
	}
	return r.Quantity.String()
}
