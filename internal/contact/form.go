// Package contact holds the contact form state, its validation rules and
// the mail-compose hand-off performed on a valid submit.
package contact

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf16"
)

// Field names one of the form inputs.
type Field string

const (
	Name    Field = "name"
	Email   Field = "email"
	Message Field = "message"
)

// Fields lists the inputs in form order.
var Fields = []Field{Name, Email, Message}

const (
	ErrNameRequired  = "Name is required"
	ErrEmailInvalid  = "Valid email is required"
	ErrMessageLength = "Please provide a bit more detail"
)

// MinMessageLength is the minimum trimmed message length, counted in
// UTF-16 code units the way browsers report an input's length.
const MinMessageLength = 10

// A shape check only: something@something.something with no spaces or
// extra @ in any part.
var emailPattern = regexp.MustCompile(`^[^@\s\v\p{Z}\x{FEFF}]+@[^@\s\v\p{Z}\x{FEFF}]+\.[^@\s\v\p{Z}\x{FEFF}]+$`)

// isBlank matches the class the email pattern excludes. U+0085 is not
// blank.
func isBlank(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ', '\uFEFF':
		return true
	}
	return unicode.Is(unicode.Z, r)
}

func trimBlank(s string) string { return strings.TrimFunc(s, isBlank) }

// inputLength counts UTF-16 code units, so a character outside the BMP
// counts as two.
func inputLength(s string) int { return len(utf16.Encode([]rune(s))) }

// State is the content of the three form inputs.
type State struct {
	Name    string
	Email   string
	Message string
}

// Errors maps an invalid field to its message. Valid fields are absent.
type Errors map[Field]string

// Valid reports whether no field failed validation.
func (e Errors) Valid() bool { return len(e) == 0 }

// Error joins the messages in form order so Errors can travel as an error.
func (e Errors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, f := range Fields {
		if m, ok := e[f]; ok {
			msgs = append(msgs, string(f)+": "+m)
		}
	}
	return strings.Join(msgs, "; ")
}

// Validate checks s against the form rules.
func Validate(s State) Errors {
	errs := Errors{}
	if trimBlank(s.Name) == "" {
		errs[Name] = ErrNameRequired
	}
	if !emailPattern.MatchString(s.Email) {
		errs[Email] = ErrEmailInvalid
	}
	if inputLength(trimBlank(s.Message)) < MinMessageLength {
		errs[Message] = ErrMessageLength
	}
	return errs
}

// Opener hands a compose target to the platform's default handler.
type Opener interface {
	Open(target string)
}

// OpenerFunc adapts a function to an Opener.
type OpenerFunc func(string)

func (f OpenerFunc) Open(target string) { f(target) }

// Controller owns one form. Not safe for concurrent use.
type Controller struct {
	recipient string
	opener    Opener
	state     State
	errors    Errors
}

// NewController returns an empty form that composes mail to recipient.
func NewController(recipient string, opener Opener) *Controller {
	return &Controller{recipient: recipient, opener: opener, errors: Errors{}}
}

// UpdateField overwrites one input. Unknown fields are ignored.
func (c *Controller) UpdateField(f Field, value string) {
	switch f {
	case Name:
		c.state.Name = value
	case Email:
		c.state.Email = value
	case Message:
		c.state.Message = value
	}
}

// State returns a snapshot of the inputs.
func (c *Controller) State() State { return c.state }

// Errors returns a copy of the error mapping computed by the last
// validation.
func (c *Controller) Errors() Errors {
	out := make(Errors, len(c.errors))
	for k, v := range c.errors {
		out[k] = v
	}
	return out
}

// Validate recomputes the error mapping from the current inputs.
func (c *Controller) Validate() bool {
	c.errors = Validate(c.state)
	return c.errors.Valid()
}

// Submit validates the form and, when valid, hands the compose target to
// the opener. The inputs are left as they are either way.
func (c *Controller) Submit() (ComposeRequest, bool) {
	if !c.Validate() {
		return ComposeRequest{}, false
	}
	req := NewComposeRequest(c.recipient, c.state)
	if c.opener != nil {
		c.opener.Open(req.URI())
	}
	return req, true
}
