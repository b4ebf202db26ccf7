package render

import "strings"

// WebsiteDisplay strips the http:// or https:// scheme prefix for display.
// The stored URL is never modified.
func WebsiteDisplay(url string) string {
	url = strings.TrimSpace(url)
	url = strings.TrimPrefix(url, "https://")
	url = strings.TrimPrefix(url, "http://")
	return url
}

// WebsiteHref returns a navigable href for a stored URL, prepending
// https:// when the stored value lacks a scheme. Normalization happens
// only here, at navigation time; the model keeps the raw value.
func WebsiteHref(url string) string {
	url = strings.TrimSpace(url)
	if url == "" {
		return ""
	}
	if strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") {
		return url
	}
	return "https://" + url
}
