package validation

import (
	"math"
	"strconv"
	"strings"
)

// Field identifiers understood by the presentation layer.
const (
	FieldFullName        = "fullName"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirmPassword"

	FieldLoginEmail    = "loginEmail"
	FieldLoginPassword = "loginPassword"

	FieldProfileName     = "profileName"
	FieldProfileEmail    = "profileEmail"
	FieldProfilePassword = "profilePassword"

	FieldContactName    = "contactName"
	FieldContactEmail   = "contactEmail"
	FieldContactSubject = "contactSubject"
	FieldContactMessage = "contactMessage"

	FieldCourseTitle       = "courseTitle"
	FieldCourseDescription = "courseDescription"
	FieldCourseLevel       = "courseLevel"
	FieldCourseCategory    = "courseCategory"
	FieldCoursePrice       = "coursePrice"

	FieldEbookTitle       = "ebookTitle"
	FieldEbookDescription = "ebookDescription"
	FieldEbookCategory    = "ebookCategory"
	FieldEbookURL         = "ebookUrl"

	FieldVideoTitle       = "videoTitle"
	FieldVideoDescription = "videoDescription"
	FieldVideoCategory    = "videoCategory"
	FieldVideoDuration    = "videoDuration"
	FieldVideoURL         = "videoUrl"
)

const (
	MinNameLength        = 2
	MinMessageLength     = 10
	MaxMessageLength     = 500
	MinTitleLength       = 3
	MinDescriptionLength = 20
)

const (
	msgFullName       = "Please enter a valid full name (at least 2 characters)"
	msgEmail          = "Please enter a valid email address"
	msgPassword       = "Password must be at least 6 characters long"
	msgPasswordsMatch = "Passwords do not match"
	msgLoginPassword  = "Please enter your password"
	msgContactName    = "Please enter a valid name (at least 2 characters)"
	msgSubject        = "Please select a subject"
	msgMessageShort   = "Please enter a message (at least 10 characters)"
	msgMessageLong    = "Message must be at most 500 characters"
	msgDescription    = "Description must be at least 20 characters long"
)

type rule struct {
	check   func(string) bool
	message string
}

func minLen(n int) func(string) bool {
	return func(s string) bool { return textLen(strings.TrimSpace(s)) >= n }
}

func maxLen(n int) func(string) bool {
	return func(s string) bool { return textLen(strings.TrimSpace(s)) <= n }
}

func nonEmpty(s string) bool { return strings.TrimSpace(s) != "" }

func email(s string) bool { return IsValidEmail(strings.TrimSpace(s)) }

func optionalPassword(s string) bool { return s == "" || IsValidPassword(s) }

// IsValidPrice reports whether s parses as a finite number >= 0.
func IsValidPrice(s string) bool {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return err == nil && !math.IsInf(v, 0) && !math.IsNaN(v) && v >= 0
}

// IsValidDuration reports whether s parses as a whole number of minutes >= 1.
func IsValidDuration(s string) bool {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	return err == nil && v >= 1
}

// rules maps each field to its checks, evaluated in order.
var rules = map[string][]rule{
	FieldFullName: {{minLen(MinNameLength), msgFullName}},
	FieldEmail:    {{email, msgEmail}},
	FieldPassword: {{IsValidPassword, msgPassword}},

	FieldLoginEmail:    {{email, msgEmail}},
	FieldLoginPassword: {{nonEmpty, msgLoginPassword}},

	FieldProfileName:     {{minLen(MinNameLength), "Please enter a valid full name"}},
	FieldProfileEmail:    {{email, msgEmail}},
	FieldProfilePassword: {{optionalPassword, msgPassword}},

	FieldContactName:    {{minLen(MinNameLength), msgContactName}},
	FieldContactEmail:   {{email, msgEmail}},
	FieldContactSubject: {{nonEmpty, msgSubject}},
	FieldContactMessage: {{minLen(MinMessageLength), msgMessageShort}, {maxLen(MaxMessageLength), msgMessageLong}},

	FieldCourseTitle:       {{minLen(MinTitleLength), "Course title must be at least 3 characters long"}},
	FieldCourseDescription: {{minLen(MinDescriptionLength), msgDescription}},
	FieldCourseLevel:       {{nonEmpty, "Please select a course level"}},
	FieldCourseCategory:    {{nonEmpty, "Please select a programming category"}},
	FieldCoursePrice:       {{IsValidPrice, "Please enter a valid price"}},

	FieldEbookTitle:       {{minLen(MinTitleLength), "E-book title must be at least 3 characters long"}},
	FieldEbookDescription: {{minLen(MinDescriptionLength), msgDescription}},
	FieldEbookCategory:    {{nonEmpty, "Please select a category"}},
	FieldEbookURL:         {{nonEmpty, "Please enter an e-book URL"}},

	FieldVideoTitle:       {{minLen(MinTitleLength), "Video title must be at least 3 characters long"}},
	FieldVideoDescription: {{minLen(MinDescriptionLength), msgDescription}},
	FieldVideoCategory:    {{nonEmpty, "Please select a category"}},
	FieldVideoDuration:    {{IsValidDuration, "Please enter a valid duration"}},
	FieldVideoURL:         {{nonEmpty, "Please enter a video URL"}},
}

// ValidateField checks a single field value. It returns "" when the value
// passes or when field has no rules.
func ValidateField(field, value string) string {
	for _, r := range rules[field] {
		if !r.check(value) {
			return r.message
		}
	}
	return ""
}

// ValidateConfirmPassword checks the confirmation against the password.
func ValidateConfirmPassword(password, confirm string) string {
	if password != confirm {
		return msgPasswordsMatch
	}
	return ""
}

func (e *Errors) field(field, value string) {
	if msg := ValidateField(field, value); msg != "" {
		e.Add(field, msg)
	}
}
