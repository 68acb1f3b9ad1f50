package contact

import "strings"

// ComposeRequest is a prepared message for the platform's mail client.
type ComposeRequest struct {
	Recipient string
	Subject   string
	Body      string
}

// NewComposeRequest builds the message for a submitted form.
func NewComposeRequest(recipient string, s State) ComposeRequest {
	return ComposeRequest{
		Recipient: recipient,
		Subject:   "Portfolio contact from " + s.Name,
		Body:      s.Message + "\n\n— " + s.Name + " (" + s.Email + ")",
	}
}

// URI renders the request as a mailto target.
func (r ComposeRequest) URI() string {
	return "mailto:" + r.Recipient +
		"?subject=" + EncodeComponent(r.Subject) +
		"&body=" + EncodeComponent(r.Body)
}

const upperhex = "0123456789ABCDEF"

// EncodeComponent percent-encodes s for use inside a URI component. Only
// ASCII letters, digits and -_.!~*'() pass through; every other byte of
// the UTF-8 encoding becomes %XX. Spaces are %20, never '+'.
func EncodeComponent(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}
	return b.String()
}

func unreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}
