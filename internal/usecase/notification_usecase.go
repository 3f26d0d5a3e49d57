package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/tukang-design/tukang-api/internal/config"
	"github.com/tukang-design/tukang-api/internal/domain/entities"
	"github.com/tukang-design/tukang-api/internal/pricing"
	"github.com/tukang-design/tukang-api/internal/usecase/interfaces"
)

var (
	ErrMailerNotConfigured = errors.New("mail transport not configured")
	ErrInvalidNotification = errors.New("invalid notification input")
)

// ServiceSelection is one service line on a price-estimate notification.
type ServiceSelection struct {
	Name  string
	Price float64
}

// EstimateNotification is the input of the /send-notification endpoint: a
// price estimate the visitor asked to receive by email.
type EstimateNotification struct {
	Name           string
	Email          string
	Company        string
	Phone          string
	Services       []ServiceSelection
	EstimatedPrice float64
	Region         pricing.Region
	Message        string
}

// INotificationUseCase formats and dispatches transactional email.
//
// Each method renders a subject plus a plain-text and an HTML body for one
// event and hands them to the mail transport exactly once. Transport errors
// are returned to the caller unswallowed; callers decide whether the
// failure is fatal (for the quote pipeline it never is).

type INotificationUseCase interface {
	NotifyQuoteSubmitted(ctx context.Context, s entities.Submission) error
	NotifyEstimate(ctx context.Context, in EstimateNotification) error
	NotifyBookingFollowUp(ctx context.Context, b entities.Booking) error
}

type NotificationUseCase struct {
	mailer interfaces.IMailer
	cfg    *config.MailConfig
}

var _ INotificationUseCase = (*NotificationUseCase)(nil)

func NewNotificationUseCase(mailer interfaces.IMailer, cfg *config.MailConfig) *NotificationUseCase {
	return &NotificationUseCase{mailer: mailer, cfg: cfg}
}

func (u *NotificationUseCase) NotifyQuoteSubmitted(ctx context.Context, s entities.Submission) error {
	if u.mailer == nil || u.cfg == nil || !u.cfg.Configured() {
		return ErrMailerNotConfigured
	}

	subject := fmt.Sprintf("New quote request %s — %s", s.ID, s.Contact.Name)

	var text, html strings.Builder

	text.WriteString("New quote request\n\n")
	writeField(&text, &html, "Reference", s.ID)
	writeField(&text, &html, "Name", s.Contact.Name)
	writeField(&text, &html, "Email", s.Contact.Email)
	if s.Contact.Company != "" {
		writeField(&text, &html, "Company", s.Contact.Company)
	}
	if s.Contact.Phone != "" {
		writeField(&text, &html, "Phone", s.Contact.Phone)
	}
	writeField(&text, &html, "Region", s.Region)
	if s.Timeline != "" {
		writeField(&text, &html, "Timeline", s.Timeline)
	}
	if s.ProjectType != "" {
		writeField(&text, &html, "Project type", s.ProjectType)
	}

	for _, g := range s.SelectedGoals {
		writeField(&text, &html, "Goal", fmt.Sprintf("%s (%s)", g.Title, formatAmount(g.Price)))
	}
	for _, f := range s.SelectedFeatures {
		label := f.Name
		if f.Complexity != "" {
			label = fmt.Sprintf("%s [%s]", f.Name, f.Complexity)
		}
		writeField(&text, &html, "Feature", fmt.Sprintf("%s (%s)", label, formatAmount(f.Price)))
	}

	writeField(&text, &html, "Total", formatAmount(s.TotalPrice))
	if s.ProjectBrief != "" {
		writeField(&text, &html, "Brief", s.ProjectBrief)
	}
	writeField(&text, &html, "Submitted", s.SubmittedAt.UTC().Format(time.RFC3339))

	msg := interfaces.Email{
		To:      u.cfg.NotifyTo,
		ReplyTo: s.Contact.Email,
		Subject: subject,
		Text:    text.String(),
		HTML:    wrapHTML(subject, html.String()),
	}

	log.Printf("[notify][usecase] quote-submitted send start submission_id=%s to=%s", s.ID, msg.To)
	if err := u.mailer.Send(ctx, msg); err != nil {
		log.Printf("[notify][usecase] quote-submitted send failed submission_id=%s err=%v", s.ID, err)
		return err
	}
	log.Printf("[notify][usecase] quote-submitted send success submission_id=%s", s.ID)
	return nil
}

func (u *NotificationUseCase) NotifyEstimate(ctx context.Context, in EstimateNotification) error {
	if u.mailer == nil || u.cfg == nil || !u.cfg.Configured() {
		return ErrMailerNotConfigured
	}
	if strings.TrimSpace(in.Email) == "" {
		return ErrInvalidNotification
	}

	region := in.Region
	if _, ok := pricing.ParseRegion(string(region)); !ok {
		region = pricing.DefaultRegion
	}

	set, err := pricing.RegionalPrices(in.EstimatedPrice)
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("Price estimate enquiry — %s", in.Name)

	var text, html strings.Builder
	text.WriteString("Price estimate enquiry\n\n")
	writeField(&text, &html, "Name", in.Name)
	writeField(&text, &html, "Email", in.Email)
	if in.Company != "" {
		writeField(&text, &html, "Company", in.Company)
	}
	if in.Phone != "" {
		writeField(&text, &html, "Phone", in.Phone)
	}
	for _, svc := range in.Services {
		writeField(&text, &html, "Service", fmt.Sprintf("%s (%s)", svc.Name, formatAmount(svc.Price)))
	}
	writeField(&text, &html, "Region", string(region))
	writeField(&text, &html, "Estimate", strconv.FormatInt(set.For(region), 10))
	writeField(&text, &html, "All regions", fmt.Sprintf("MY %d / SG %d / INT %d", set.MY, set.SG, set.INT))
	if in.Message != "" {
		writeField(&text, &html, "Message", in.Message)
	}

	msg := interfaces.Email{
		To:      u.cfg.NotifyTo,
		ReplyTo: in.Email,
		Subject: subject,
		Text:    text.String(),
		HTML:    wrapHTML(subject, html.String()),
	}

	log.Printf("[notify][usecase] estimate send start to=%s region=%s", msg.To, region)
	if err := u.mailer.Send(ctx, msg); err != nil {
		log.Printf("[notify][usecase] estimate send failed err=%v", err)
		return err
	}
	log.Printf("[notify][usecase] estimate send success region=%s", region)
	return nil
}

func (u *NotificationUseCase) NotifyBookingFollowUp(ctx context.Context, b entities.Booking) error {
	if u.mailer == nil || u.cfg == nil || !u.cfg.Configured() {
		return ErrMailerNotConfigured
	}

	subject := fmt.Sprintf("Your Tukang booking %s is awaiting payment", b.ID)

	var text, html strings.Builder
	fmt.Fprintf(&text, "Hi %s,\n\n", b.Contact.Name)
	text.WriteString("Your project booking is still awaiting its deposit payment. ")
	text.WriteString("Reply to this email if anything is unclear and we will sort it out.\n\n")
	writeField(&text, &html, "Booking", b.ID)
	writeField(&text, &html, "Deposit", formatAmount(b.DepositAmount))
	writeField(&text, &html, "Booked", b.SubmittedAt.UTC().Format("2 Jan 2006"))

	msg := interfaces.Email{
		To:      b.Contact.Email,
		ReplyTo: u.cfg.NotifyTo,
		Subject: subject,
		Text:    text.String(),
		HTML:    wrapHTML(subject, html.String()),
	}

	log.Printf("[notify][usecase] follow-up send start booking_id=%s to=%s", b.ID, b.Contact.Email)
	if err := u.mailer.Send(ctx, msg); err != nil {
		log.Printf("[notify][usecase] follow-up send failed booking_id=%s err=%v", b.ID, err)
		return err
	}
	log.Printf("[notify][usecase] follow-up send success booking_id=%s", b.ID)
	return nil
}

// escapeHTML neutralises user-supplied strings interpolated into the HTML
// rendering. Only & < > need replacing; values are never placed inside
// attributes.
var htmlReplacer = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func escapeHTML(s string) string {
	return htmlReplacer.Replace(s)
}

func writeField(text, html *strings.Builder, label, value string) {
	fmt.Fprintf(text, "%s: %s\n", label, value)
	fmt.Fprintf(html, "<p><strong>%s:</strong> %s</p>", escapeHTML(label), escapeHTML(value))
}

func wrapHTML(title, body string) string {
	return fmt.Sprintf("<html><body><h2>%s</h2>%s</body></html>", escapeHTML(title), body)
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
