package markup

import "strings"

var (
	escaper   = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	unescaper = strings.NewReplacer("&amp;", "&", "&lt;", "<", "&gt;", ">")
)

// Escape makes raw text safe to embed in markup. It must be applied exactly
// once; escaping twice turns "&lt;" into "&amp;lt;".
func Escape(raw string) string {
	return escaper.Replace(raw)
}

// Unescape reverses Escape.
func Unescape(escaped string) string {
	return unescaper.Replace(escaped)
}
