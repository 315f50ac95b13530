package order

import (
	"regexp"
	"unicode/utf8"

	"gift-shop/internal/model"
)

// Field names a GiftOrder field for updates and validation errors.
type Field string

// GiftOrder fields.
const (
	FieldSenderName    Field = "senderName"
	FieldRecipientName Field = "recipientName"
	FieldMessage       Field = "message"
	FieldEmail         Field = "email"
)

// MaxMessageLength is the message length bound, in characters.
const MaxMessageLength = 150

// A permissive syntactic check, not full RFC validation: it catches obviously
// malformed input without rejecting legitimate addresses.
var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

// FieldErrors maps a field name to a human-readable validation message.
// An empty map means the order is valid.
type FieldErrors map[Field]string

// ValidationError carries field-level validation failures across the service
// boundary as a typed error.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	return "gift order validation failed"
}

// Collector holds an in-progress gift order and validates it at submit time.
type Collector struct {
	order model.GiftOrder
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{}
}

// UpdateField sets one field of the in-progress order. No validation is
// performed; validation runs only at submit time.
func (c *Collector) UpdateField(field Field, value string) {
	switch field {
	case FieldSenderName:
		c.order.SenderName = value
	case FieldRecipientName:
		c.order.RecipientName = value
	case FieldMessage:
		c.order.Message = value
	case FieldEmail:
		c.order.Email = value
	}
}

// Order returns a copy of the in-progress order.
func (c *Collector) Order() model.GiftOrder {
	return c.order
}

// Submit validates the held order. On success it returns the order unchanged
// for forwarding to the reservation service; on failure it returns the field
// errors and leaves the held order untouched so the user can correct it.
func (c *Collector) Submit() (model.GiftOrder, FieldErrors) {
	if errs := Validate(c.order); len(errs) > 0 {
		return model.GiftOrder{}, errs
	}
	return c.order, nil
}

// Validate checks the two submit-time constraints: email must be present and
// syntactically plausible, and the message must fit the length bound. Sender
// and recipient names are never validated; empty is acceptable. The full check
// is re-run on every call.
func Validate(order model.GiftOrder) FieldErrors {
	errs := FieldErrors{}

	if order.Email == "" {
		errs[FieldEmail] = "Email is required"
	} else if !emailPattern.MatchString(order.Email) {
		errs[FieldEmail] = "Invalid email address"
	}

	if utf8.RuneCountInString(order.Message) > MaxMessageLength {
		errs[FieldMessage] = "Message is too long"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
