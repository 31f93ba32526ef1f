package validator

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/polidog/web/internal/domain"
)

var (
	slugRegex   = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	validStatus = []interface{}{string(domain.PostStatusDraft), string(domain.PostStatusPublished)}
)

// PostInput is the editable part of a post as submitted by a form or
// JSON body.
type PostInput struct {
	Title       string     `form:"title" json:"title"`
	Slug        string     `form:"slug" json:"slug"`
	Content     string     `form:"content" json:"content"`
	Excerpt     string     `form:"excerpt" json:"excerpt"`
	Status      string     `form:"status" json:"status"`
	PublishedAt *time.Time `form:"-" json:"published_at"`
	CategoryIDs []int64    `form:"category_ids" json:"category_ids"`
	TagIDs      []int64    `form:"tag_ids" json:"tag_ids"`

	// PublishedAtText is the raw form value; see ResolvePublishedAt.
	PublishedAtText string `form:"published_at" json:"-"`
}

var dateLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ResolvePublishedAt parses PublishedAtText in loc into PublishedAt.
// An empty text leaves PublishedAt untouched. RFC 3339 values carry
// their own offset.
func (in *PostInput) ResolvePublishedAt(loc *time.Location) error {
	text := strings.TrimSpace(in.PublishedAtText)
	if text == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, text); err == nil {
		in.PublishedAt = &t
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, text, loc); err == nil {
			in.PublishedAt = &t
			return nil
		}
	}
	return (&FieldErrors{}).Add("published_at", "invalid_date")
}

// Normalize trims text fields and defaults the status to draft.
func (in *PostInput) Normalize() {
	in.Title = strings.TrimSpace(in.Title)
	in.Slug = strings.TrimSpace(in.Slug)
	in.Excerpt = strings.TrimSpace(in.Excerpt)
	in.Status = strings.TrimSpace(in.Status)
	if in.Status == "" {
		in.Status = string(domain.PostStatusDraft)
	}
}

// ExcerptPtr returns the excerpt, or nil when it is empty.
func (in *PostInput) ExcerptPtr() *string {
	if in.Excerpt == "" {
		return nil
	}
	e := in.Excerpt
	return &e
}

// TermInput is a category or tag as submitted by a form.
type TermInput struct {
	Name string `form:"name" json:"name"`
	Slug string `form:"slug" json:"slug"`
}

// Normalize trims both fields.
func (in *TermInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Slug = strings.TrimSpace(in.Slug)
}

// UserInput is the body accepted by the users API and CLI.
type UserInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Normalize trims both fields.
func (in *UserInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
}

// Validator provides validation methods for submitted inputs.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidatePost validates a PostInput. Failures are *FieldErrors.
func (v *Validator) ValidatePost(in *PostInput) error {
	err := validation.ValidateStruct(in,
		validation.Field(&in.Title,
			validation.Required.Error("title_required"),
			validation.RuneLength(0, 255).Error("title_too_long"),
		),
		validation.Field(&in.Slug,
			validation.Required.Error("slug_required"),
			validation.Match(slugRegex).Error("invalid_slug_format"),
		),
		validation.Field(&in.Content,
			validation.By(notBlank("content_required")),
		),
		validation.Field(&in.Status,
			validation.Required.Error("status_required"),
			validation.In(validStatus...).Error("invalid_status"),
		),
	)
	return ConvertValidationErrors(err)
}

// ValidateTerm validates a TermInput.
func (v *Validator) ValidateTerm(in *TermInput) error {
	err := validation.ValidateStruct(in,
		validation.Field(&in.Name,
			validation.Required.Error("name_required"),
			validation.RuneLength(0, 100).Error("name_too_long"),
		),
		validation.Field(&in.Slug,
			validation.Required.Error("slug_required"),
			validation.Match(slugRegex).Error("invalid_slug_format"),
		),
	)
	return ConvertValidationErrors(err)
}

// ValidateUser validates a UserInput.
func (v *Validator) ValidateUser(in *UserInput) error {
	err := validation.ValidateStruct(in,
		validation.Field(&in.Name,
			validation.Required.Error("name_required"),
		),
		validation.Field(&in.Email,
			validation.Required.Error("email_required"),
			is.Email.Error("invalid_email_format"),
		),
	)
	return ConvertValidationErrors(err)
}

// notBlank rejects strings that are empty after trimming. Markdown
// content keeps its surrounding whitespace, so it is not normalized.
func notBlank(code string) validation.RuleFunc {
	return func(value interface{}) error {
		s, _ := value.(string)
		if strings.TrimSpace(s) == "" {
			return validation.NewError(code, code)
		}
		return nil
	}
}

// Rule messages are short codes; describe turns them into banner text.
var messages = map[string]string{
	"title_required":       "Title is required.",
	"title_too_long":       "Title must be at most 255 characters.",
	"slug_required":        "Slug is required.",
	"invalid_slug_format":  "Slug may only contain lowercase letters, digits and single hyphens.",
	"slug_taken":           "Slug is already in use.",
	"content_required":     "Content is required.",
	"status_required":      "Status is required.",
	"invalid_status":       "Status must be draft or published.",
	"name_required":        "Name is required.",
	"name_too_long":        "Name must be at most 100 characters.",
	"email_required":       "Email is required.",
	"invalid_email_format": "Email address is not valid.",
	"invalid_date":         "Publication date is not a valid date.",
	"invalid_id":           "Selection contains an invalid id.",
}

func describe(code string) string {
	if m, ok := messages[code]; ok {
		return m
	}
	return code
}

// FieldError is a single failed field.
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// FieldErrors is returned when an input fails validation.
type FieldErrors struct {
	Errors []FieldError `json:"errors"`
}

func (e *FieldErrors) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return strings.Join(parts, "; ")
}

// Has reports whether field failed.
func (e *FieldErrors) Has(field string) bool {
	for _, fe := range e.Errors {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// Add appends a failure for a known code and returns e for chaining.
func (e *FieldErrors) Add(field, code string) *FieldErrors {
	e.Errors = append(e.Errors, FieldError{Field: field, Code: code, Message: describe(code)})
	return e
}

// AsFieldErrors unwraps err into *FieldErrors.
func AsFieldErrors(err error) (*FieldErrors, bool) {
	var fe *FieldErrors
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}

// ConvertValidationErrors converts ozzo validation errors to
// *FieldErrors, ordered by field name. A nil error stays nil.
func ConvertValidationErrors(err error) error {
	if err == nil {
		return nil
	}

	var ve validation.Errors
	if !errors.As(err, &ve) {
		return &FieldErrors{Errors: []FieldError{{Field: "unknown", Code: "invalid", Message: err.Error()}}}
	}

	fields := make([]string, 0, len(ve))
	for field := range ve {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	out := &FieldErrors{Errors: make([]FieldError, 0, len(fields))}
	for _, field := range fields {
		fieldErr := ve[field]
		code := fieldErr.Error()
		var verr validation.Error
		if errors.As(fieldErr, &verr) {
			code = verr.Message()
		}
		out.Errors = append(out.Errors, FieldError{Field: field, Code: code, Message: describe(code)})
	}
	return out
}
