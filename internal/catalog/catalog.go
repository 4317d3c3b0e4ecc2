// Package catalog holds the static data the app ships with: the mock search
// index, the browse categories and the booking showtimes.  None of it comes
// from the movie metadata API.
package catalog

import (
	"strings"

	"github.com/iliyamo/cinema-showcase/internal/model"
)

// Category is a browse tile on the search screen.
type Category struct {
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
}

// SearchResult pairs a mock movie with its artwork.
type SearchResult struct {
	model.Movie
	ImageURL string `json:"image_url"`
}

var searchIndex = []model.Movie{
	{
		ID: 1, Title: "Timeless", Overview: "A fantasy adventure movie",
		PosterPath: "/path/to/poster1.jpg", BackdropPath: "/path/to/backdrop1.jpg",
		ReleaseDate: "2023-01-01", VoteAverage: 8.5, VoteCount: 1000, Popularity: 100,
		GenreIDs: []int{1, 2}, OriginalLanguage: "en", OriginalTitle: "Timeless",
	},
	{
		ID: 2, Title: "In Time", Overview: "A sci-fi thriller",
		PosterPath: "/path/to/poster2.jpg", BackdropPath: "/path/to/backdrop2.jpg",
		ReleaseDate: "2023-02-01", VoteAverage: 7.8, VoteCount: 800, Popularity: 90,
		GenreIDs: []int{3, 4}, OriginalLanguage: "en", OriginalTitle: "In Time",
	},
	{
		ID: 3, Title: "A Time To Kill", Overview: "A crime drama",
		PosterPath: "/path/to/poster3.jpg", BackdropPath: "/path/to/backdrop3.jpg",
		ReleaseDate: "2023-03-01", VoteAverage: 8.2, VoteCount: 1200, Popularity: 110,
		GenreIDs: []int{5, 6}, OriginalLanguage: "en", OriginalTitle: "A Time To Kill",
	},
}

var searchImages = map[string]string{
	"Timeless":       "https://images.unsplash.com/photo-1489599162110-8c1c4d02e9b3?w=400&h=300&fit=crop",
	"In Time":        "https://images.unsplash.com/photo-1446776877081-d282a0f896e2?w=400&h=300&fit=crop",
	"A Time To Kill": "https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=400&h=300&fit=crop",
}

var categories = []Category{
	{"Comedies", "https://images.unsplash.com/photo-1527224857830-43a7acc85260?w=400&h=300&fit=crop"},
	{"Crime", "https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=400&h=300&fit=crop"},
	{"Family", "https://images.unsplash.com/photo-1511895426328-dc8714191300?w=400&h=300&fit=crop"},
	{"Documentaries", "https://images.unsplash.com/photo-1489599162110-8c1c4d02e9b3?w=400&h=300&fit=crop"},
	{"Dramas", "https://images.unsplash.com/photo-1440404653325-ab127d49abc1?w=400&h=300&fit=crop"},
	{"Fantasy", "https://images.unsplash.com/photo-1518709268805-4e9042af2176?w=400&h=300&fit=crop"},
	{"Holidays", "https://images.unsplash.com/photo-1512389142860-9c449e58a543?w=400&h=300&fit=crop"},
	{"Horror", "https://images.unsplash.com/photo-1520637836862-4d197d17c35a?w=400&h=300&fit=crop"},
	{"Sci-Fi", "https://images.unsplash.com/photo-1446776877081-d282a0f896e2?w=400&h=300&fit=crop"},
	{"Thriller", "https://images.unsplash.com/photo-1489599162110-8c1c4d02e9b3?w=400&h=300&fit=crop"},
}

// Search returns the mock movies whose title contains query, ignoring
// case.  A blank query matches nothing.
func Search(query string) []SearchResult {
	q := strings.ToLower(strings.TrimSpace(query))
	out := []SearchResult{}
	if q == "" {
		return out
	}
	for _, m := range searchIndex {
		if strings.Contains(strings.ToLower(m.Title), q) {
			out = append(out, SearchResult{Movie: m, ImageURL: SearchImage(m.Title)})
		}
	}
	return out
}

// SearchImage returns the artwork for a mock search result, or "".
func SearchImage(title string) string {
	return searchImages[title]
}

// Categories returns the browse categories in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}
