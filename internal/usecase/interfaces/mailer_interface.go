package interfaces

import "context"

// Email is one outbound message handed to the mail transport. Text is the
// plain rendering; HTML, when present, is the alternative rendering of the
// same content.
type Email struct {
	To      string
	ReplyTo string
	Subject string
	Text    string
	HTML    string
}

// IMailer abstracts the SMTP relay.
//
// Send is invoked exactly once per notification; it does not retry, and the
// transport error is surfaced unchanged so the caller decides whether the
// failure is fatal.
type IMailer interface {
	Send(ctx context.Context, msg Email) error
}
