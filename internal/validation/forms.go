package validation

import (
	"strconv"
	"strings"
)

// SignupForm is the account creation form. Passwords are taken verbatim.
type SignupForm struct {
	FullName        string
	Email           string
	Password        string
	ConfirmPassword string
}

func (f SignupForm) Clean() SignupForm {
	f.FullName = strings.TrimSpace(f.FullName)
	f.Email = strings.TrimSpace(f.Email)
	return f
}

func (f SignupForm) Validate() error {
	f = f.Clean()
	var e Errors
	e.field(FieldFullName, f.FullName)
	e.field(FieldEmail, f.Email)
	e.field(FieldPassword, f.Password)
	if msg := ValidateConfirmPassword(f.Password, f.ConfirmPassword); msg != "" {
		e.Add(FieldConfirmPassword, msg)
	}
	return e.Err()
}

type LoginForm struct {
	Email    string
	Password string
}

func (f LoginForm) Clean() LoginForm {
	f.Email = strings.TrimSpace(f.Email)
	return f
}

func (f LoginForm) Validate() error {
	f = f.Clean()
	var e Errors
	e.field(FieldLoginEmail, f.Email)
	e.field(FieldLoginPassword, f.Password)
	return e.Err()
}

// ProfileForm edits the signed-in user. An empty Password keeps the
// current one.
type ProfileForm struct {
	FullName string
	Email    string
	Password string
}

func (f ProfileForm) Clean() ProfileForm {
	f.FullName = strings.TrimSpace(f.FullName)
	f.Email = strings.TrimSpace(f.Email)
	f.Password = strings.TrimSpace(f.Password)
	return f
}

func (f ProfileForm) Validate() error {
	f = f.Clean()
	var e Errors
	e.field(FieldProfileName, f.FullName)
	e.field(FieldProfileEmail, f.Email)
	e.field(FieldProfilePassword, f.Password)
	return e.Err()
}

type ContactForm struct {
	Name    string
	Email   string
	Subject string
	Message string
}

func (f ContactForm) Clean() ContactForm {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	f.Subject = strings.TrimSpace(f.Subject)
	f.Message = strings.TrimSpace(f.Message)
	return f
}

func (f ContactForm) Validate() error {
	f = f.Clean()
	var e Errors
	e.field(FieldContactName, f.Name)
	e.field(FieldContactEmail, f.Email)
	e.field(FieldContactSubject, f.Subject)
	e.field(FieldContactMessage, f.Message)
	return e.Err()
}

// CourseForm carries raw input; Price is parsed by PriceValue after
// validation.
type CourseForm struct {
	Title       string
	Description string
	Level       string
	Category    string
	Price       string
	Icon        string
}

func (f CourseForm) Clean() CourseForm {
	f.Title = strings.TrimSpace(f.Title)
	f.Description = strings.TrimSpace(f.Description)
	f.Level = strings.TrimSpace(f.Level)
	f.Category = strings.TrimSpace(f.Category)
	f.Price = strings.TrimSpace(f.Price)
	f.Icon = strings.TrimSpace(f.Icon)
	return f
}

func (f CourseForm) Validate() error {
	f = f.Clean()
	var e Errors
	e.field(FieldCourseTitle, f.Title)
	e.field(FieldCourseDescription, f.Description)
	e.field(FieldCourseLevel, f.Level)
	e.field(FieldCourseCategory, f.Category)
	e.field(FieldCoursePrice, f.Price)
	return e.Err()
}

// PriceValue returns the parsed price, 0 if it does not parse.
func (f CourseForm) PriceValue() float64 {
	v, _ := strconv.ParseFloat(strings.TrimSpace(f.Price), 64)
	return v
}

type EbookForm struct {
	Title       string
	Description string
	Category    string
	URL         string
	Icon        string
}

func (f EbookForm) Clean() EbookForm {
	f.Title = strings.TrimSpace(f.Title)
	f.Description = strings.TrimSpace(f.Description)
	f.Category = strings.TrimSpace(f.Category)
	f.URL = strings.TrimSpace(f.URL)
	f.Icon = strings.TrimSpace(f.Icon)
	return f
}

func (f EbookForm) Validate() error {
	f = f.Clean()
	var e Errors
	e.field(FieldEbookTitle, f.Title)
	e.field(FieldEbookDescription, f.Description)
	e.field(FieldEbookCategory, f.Category)
	e.field(FieldEbookURL, f.URL)
	return e.Err()
}

type VideoForm struct {
	Title       string
	Description string
	Category    string
	Duration    string
	URL         string
}

func (f VideoForm) Clean() VideoForm {
	f.Title = strings.TrimSpace(f.Title)
	f.Description = strings.TrimSpace(f.Description)
	f.Category = strings.TrimSpace(f.Category)
	f.Duration = strings.TrimSpace(f.Duration)
	f.URL = strings.TrimSpace(f.URL)
	return f
}

func (f VideoForm) Validate() error {
	f = f.Clean()
	var e Errors
	e.field(FieldVideoTitle, f.Title)
	e.field(FieldVideoDescription, f.Description)
	e.field(FieldVideoCategory, f.Category)
	e.field(FieldVideoDuration, f.Duration)
	e.field(FieldVideoURL, f.URL)
	return e.Err()
}

// DurationValue returns the parsed duration in minutes, 0 if it does not
// parse.
func (f VideoForm) DurationValue() int {
	v, _ := strconv.Atoi(strings.TrimSpace(f.Duration))
	return v
}
