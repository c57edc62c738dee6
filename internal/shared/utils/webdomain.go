package utils

import (
	"net/url"
	"strings"
)

// ExtractWebsiteDomain derives the registrable host from a website URL,
// lowercased with any leading "www." removed. Returns an empty string when
// the URL cannot be parsed into a host.
func ExtractWebsiteDomain(website string) string {
	if website == "" {
		return ""
	}

	raw := website
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	parsed, err := url.Parse(raw)
	if err != nil || parsed.Hostname() == "" {
		return ""
	}

	host := strings.ToLower(parsed.Hostname())
	return strings.TrimPrefix(host, "www.")
}

// ExtractEmailDomain returns the lowercased domain portion of an email
// address, or an empty string when the address has no domain part.
func ExtractEmailDomain(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return ""
	}
	return strings.ToLower(email[at+1:])
}
