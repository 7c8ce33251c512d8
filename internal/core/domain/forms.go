// internal/core/domain/forms.go
package domain

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

var (
	namePattern  = regexp.MustCompile(`^[A-Za-z][A-Za-z '.-]{1,49}$`)
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\+?[0-9\s()-]{8,20}$`)
	vinPattern   = regexp.MustCompile(`^[A-HJ-NPR-Z0-9]{17}$`)
	yearPattern  = regexp.MustCompile(`^(19|20)\d{2}$`)
)

const (
	minMessageLength = 10
	maxMessageLength = 1000
	maxQuantity      = 99
)

// FieldErrors collects validation messages keyed by form field
type FieldErrors map[string]string

// Add records msg for field unless the field already has a message
func (e FieldErrors) Add(field, msg string) {
	if _, exists := e[field]; !exists {
		e[field] = msg
	}
}

// OrNil returns the receiver as an error, or nil when nothing was recorded
func (e FieldErrors) OrNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// Error implements error with fields listed in sorted order
func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, e[f]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func validateName(errs FieldErrors, field, v string) {
	v = strings.TrimSpace(v)
	switch {
	case v == "":
		errs.Add(field, "Name is required")
	case !namePattern.MatchString(v):
		errs.Add(field, "Please enter a valid name")
	}
}

func validateEmail(errs FieldErrors, field, v string) {
	v = strings.TrimSpace(v)
	switch {
	case v == "":
		errs.Add(field, "Email is required")
	case !emailPattern.MatchString(v):
		errs.Add(field, "Please enter a valid email address")
	}
}

func validatePhone(errs FieldErrors, field, v string) {
	v = strings.TrimSpace(v)
	switch {
	case v == "":
		errs.Add(field, "Phone number is required")
	case !phonePattern.MatchString(v):
		errs.Add(field, "Please enter a valid phone number")
	}
}

func validateMessage(errs FieldErrors, field, v string) {
	n := len(strings.TrimSpace(v))
	switch {
	case n == 0:
		errs.Add(field, "Message is required")
	case n < minMessageLength:
		errs.Add(field, fmt.Sprintf("Message must be at least %d characters", minMessageLength))
	case n > maxMessageLength:
		errs.Add(field, fmt.Sprintf("Message must be at most %d characters", maxMessageLength))
	}
}

func validateYear(errs FieldErrors, field, v string) {
	if !yearPattern.MatchString(strings.TrimSpace(v)) {
		errs.Add(field, "Please enter a valid year")
	}
}

func validateVIN(errs FieldErrors, field, v string) {
	if !vinPattern.MatchString(strings.ToUpper(strings.TrimSpace(v))) {
		errs.Add(field, "VIN must be 17 characters (no I, O or Q)")
	}
}

// ContactForm is the general enquiry form
type ContactForm struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone,omitempty"`
	Subject        string `json:"subject,omitempty"`
	Message        string `json:"message"`
	RecaptchaToken string `json:"recaptchaToken"`
}

// Validate checks the contact form
func (f *ContactForm) Validate() error {
	errs := FieldErrors{}
	validateName(errs, "name", f.Name)
	validateEmail(errs, "email", f.Email)
	if f.Phone != "" {
		validatePhone(errs, "phone", f.Phone)
	}
	validateMessage(errs, "message", f.Message)
	return errs.OrNil()
}

// Token returns the reCAPTCHA token attached to the form
func (f *ContactForm) Token() string { return f.RecaptchaToken }

// QuoteRequest asks the yard to quote a part that is not listed
type QuoteRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Make           string `json:"make"`
	Model          string `json:"model"`
	Year           string `json:"year"`
	VIN            string `json:"vin,omitempty"`
	PartName       string `json:"partName"`
	Quantity       int    `json:"quantity"`
	Message        string `json:"message,omitempty"`
	RecaptchaToken string `json:"recaptchaToken"`
}

// Validate checks the quote form
func (q *QuoteRequest) Validate() error {
	errs := FieldErrors{}
	validateName(errs, "name", q.Name)
	validateEmail(errs, "email", q.Email)
	validatePhone(errs, "phone", q.Phone)
	if strings.TrimSpace(q.Make) == "" {
		errs.Add("make", "Make is required")
	}
	if strings.TrimSpace(q.Model) == "" {
		errs.Add("model", "Model is required")
	}
	validateYear(errs, "year", q.Year)
	if q.VIN != "" {
		validateVIN(errs, "vin", q.VIN)
	}
	if strings.TrimSpace(q.PartName) == "" {
		errs.Add("partName", "Part name is required")
	}
	if q.Quantity < 1 || q.Quantity > maxQuantity {
		errs.Add("quantity", fmt.Sprintf("Quantity must be between 1 and %d", maxQuantity))
	}
	if len(q.Message) > maxMessageLength {
		errs.Add("message", fmt.Sprintf("Message must be at most %d characters", maxMessageLength))
	}
	return errs.OrNil()
}

// Token returns the reCAPTCHA token attached to the form
func (q *QuoteRequest) Token() string { return q.RecaptchaToken }

// SellCarForm is a customer offering a vehicle to the yard
type SellCarForm struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Make           string `json:"make"`
	Model          string `json:"model"`
	Year           string `json:"year"`
	VIN            string `json:"vin,omitempty"`
	Odometer       string `json:"odometer,omitempty"`
	Condition      string `json:"condition,omitempty"`
	Location       string `json:"location,omitempty"`
	Message        string `json:"message,omitempty"`
	RecaptchaToken string `json:"recaptchaToken"`
}

// Validate checks the sell-your-car form
func (s *SellCarForm) Validate() error {
	errs := FieldErrors{}
	validateName(errs, "name", s.Name)
	validateEmail(errs, "email", s.Email)
	validatePhone(errs, "phone", s.Phone)
	if strings.TrimSpace(s.Make) == "" {
		errs.Add("make", "Make is required")
	}
	if strings.TrimSpace(s.Model) == "" {
		errs.Add("model", "Model is required")
	}
	validateYear(errs, "year", s.Year)
	if s.VIN != "" {
		validateVIN(errs, "vin", s.VIN)
	}
	if len(s.Message) > maxMessageLength {
		errs.Add("message", fmt.Sprintf("Message must be at most %d characters", maxMessageLength))
	}
	return errs.OrNil()
}

// Token returns the reCAPTCHA token attached to the form
func (s *SellCarForm) Token() string { return s.RecaptchaToken }

// WarrantyValidateRequest looks up an invoice before a claim
type WarrantyValidateRequest struct {
	InvoiceNumber  string `json:"invoiceNumber"`
	Email          string `json:"email"`
	RecaptchaToken string `json:"recaptchaToken"`
}

// Validate checks the warranty lookup form
func (w *WarrantyValidateRequest) Validate() error {
	errs := FieldErrors{}
	if strings.TrimSpace(w.InvoiceNumber) == "" {
		errs.Add("invoiceNumber", "Invoice number is required")
	}
	validateEmail(errs, "email", w.Email)
	return errs.OrNil()
}

// Token returns the reCAPTCHA token attached to the form
func (w *WarrantyValidateRequest) Token() string { return w.RecaptchaToken }

// WarrantyValidation is the backend's answer to a warranty lookup
type WarrantyValidation struct {
	Valid         bool       `json:"valid"`
	InvoiceNumber FlexString `json:"invoiceNumber,omitempty"`
	PartTitle     FlexString `json:"partTitle,omitempty"`
	PurchaseDate  FlexString `json:"purchaseDate,omitempty"`
	ExpiresAt     FlexString `json:"expiresAt,omitempty"`
	Message       FlexString `json:"message,omitempty"`
}

// WarrantyClaim is a claim against a validated invoice
type WarrantyClaim struct {
	InvoiceNumber  string `json:"invoiceNumber"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	VIN            string `json:"vin,omitempty"`
	PartTitle      string `json:"partTitle,omitempty"`
	Issue          string `json:"issue"`
	RecaptchaToken string `json:"recaptchaToken"`
}

// Validate checks the warranty claim form
func (w *WarrantyClaim) Validate() error {
	errs := FieldErrors{}
	if strings.TrimSpace(w.InvoiceNumber) == "" {
		errs.Add("invoiceNumber", "Invoice number is required")
	}
	validateName(errs, "name", w.Name)
	validateEmail(errs, "email", w.Email)
	validatePhone(errs, "phone", w.Phone)
	if w.VIN != "" {
		validateVIN(errs, "vin", w.VIN)
	}
	validateMessage(errs, "issue", w.Issue)
	return errs.OrNil()
}

// Token returns the reCAPTCHA token attached to the form
func (w *WarrantyClaim) Token() string { return w.RecaptchaToken }

// SubmissionResult is the generic acknowledgement the backend returns for forms
type SubmissionResult struct {
	Success bool       `json:"success"`
	Message FlexString `json:"message,omitempty"`
	ID      FlexString `json:"id,omitempty"`
}
