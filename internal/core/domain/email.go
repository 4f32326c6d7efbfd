package domain

// Content types understood by the mail adapters.
const (
	ContentTypeHTML  = "text/html"
	ContentTypePlain = "text/plain"
)

// EmailMessage is one outgoing transactional mail.
type EmailMessage struct {
	To          string
	Subject     string
	Body        string
	ContentType string
}
