package model

// EmailDraft is a rendered notification for one backorder line.
// Drafts are never sent by this tool; they only exist in the email
// report workbook.
type EmailDraft struct {
	To         string
	Subject    string
	Body       string
	Row        Row
	CategoryID int
}
