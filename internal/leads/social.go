package leads

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/presspilot/presspilot/internal/model"
)

// Social profile bases for handle normalization
const (
	twitterBase   = "https://twitter.com/"
	linkedInBase  = "https://linkedin.com/in/"
	instagramBase = "https://instagram.com/"
)

// TwitterURL converts a Twitter handle or URL into a canonical profile URL
func TwitterURL(handle string) string {
	return profileURL(twitterBase, handle)
}

// LinkedInURL converts a LinkedIn handle or URL into a canonical profile URL
func LinkedInURL(handle string) string {
	return profileURL(linkedInBase, handle)
}

// InstagramURL converts an Instagram handle or URL into a canonical profile URL
func InstagramURL(handle string) string {
	return profileURL(instagramBase, handle)
}

// profileURL normalizes a raw handle: full URLs pass through unchanged, a
// leading "@" is stripped, and bare handles get the platform base prefixed.
// Empty input yields empty output (no link rendered).
func profileURL(base, handle string) string {
	h := strings.TrimSpace(handle)
	if h == "" {
		return ""
	}
	if strings.HasPrefix(h, "http://") || strings.HasPrefix(h, "https://") {
		return h
	}
	return base + strings.TrimPrefix(h, "@")
}

// MailtoURL builds a mailto link prefilled with a subject referencing the
// company and the drafted email body. Spaces are percent-encoded: mail
// clients do not decode '+' in mailto URLs.
func MailtoURL(journalist model.Journalist, companyName, emailBody string) string {
	if journalist.Email == "" {
		return ""
	}

	subject := fmt.Sprintf("Story idea: %s", companyName)
	return fmt.Sprintf("mailto:%s?subject=%s&body=%s",
		journalist.Email, mailtoEscape(subject), mailtoEscape(emailBody))
}

func mailtoEscape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
