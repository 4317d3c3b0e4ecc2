package tmdb

import "strings"

// Image sizes accepted by the image CDN.
const (
	SizeW92      = "w92"
	SizeW154     = "w154"
	SizeW185     = "w185"
	SizeW342     = "w342"
	SizeW500     = "w500"
	SizeW780     = "w780"
	SizeOriginal = "original"
)

// Images builds CDN URLs for image paths returned by the API.
type Images struct {
	BaseURL string
}

// NewImages returns an Images rooted at baseURL, or DefaultImageBaseURL
// when baseURL is empty.
func NewImages(baseURL string) Images {
	if baseURL == "" {
		baseURL = DefaultImageBaseURL
	}
	return Images{BaseURL: strings.TrimRight(baseURL, "/")}
}

// URL returns the image URL for path at size.  An empty path yields an
// empty string so callers can render a placeholder.
func (i Images) URL(path, size string) string {
	if path == "" {
		return ""
	}
	if size == "" {
		size = SizeW500
	}
	return i.BaseURL + "/" + size + path
}

func (i Images) Poster(path string) string    { return i.URL(path, SizeW500) }
func (i Images) Backdrop(path string) string  { return i.URL(path, SizeW780) }
func (i Images) Thumbnail(path string) string { return i.URL(path, SizeW185) }
