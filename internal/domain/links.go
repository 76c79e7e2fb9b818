package domain

import "strings"

// Default link templates for blu-ray.com
const (
	DefaultCoverURLTemplate  URLTemplate = "https://images.static-bluray.com/movies/covers/{{id}}_front.jpg"
	DefaultDetailURLTemplate URLTemplate = "https://www.blu-ray.com/movies/x-Blu-ray/{{id}}/"
)

// URLTemplate is a URL with an {{id}} placeholder
type URLTemplate string

// Expand substitutes id for every {{id}} placeholder
func (t URLTemplate) Expand(id string) string {
	return strings.ReplaceAll(string(t), "{{id}}", id)
}

// ResolveImageURL returns the disc's explicit image URL, falling back to the
// cover template when the disc has an external ID. Empty means no image.
func ResolveImageURL(d Disc, cover URLTemplate) string {
	if d.ImageURL != "" {
		return d.ImageURL
	}
	if strings.TrimSpace(d.ExternalID) == "" || cover == "" {
		return ""
	}
	return cover.Expand(d.ExternalID)
}
