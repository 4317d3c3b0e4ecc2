package catalog

import "github.com/iliyamo/cinema-showcase/internal/seatmap"

// Showtime is a bookable slot on the booking screen.  Price is the entry
// price in dollars; Bonus is the loyalty-point alternative.
type Showtime struct {
	Time      string  `json:"time"`
	Hall      string  `json:"hall"`
	TheaterID string  `json:"theater_id"`
	Price     float64 `json:"price"`
	Bonus     int     `json:"bonus"`
}

// BookingDates returns the selectable dates.
func BookingDates() []string {
	return []string{"5 Mar", "6 Mar", "7 Mar", "8 Mar", "9 Mar"}
}

// Showtimes returns the slots offered on every booking date.
func Showtimes() []Showtime {
	return []Showtime{
		{Time: "12:30", Hall: "Cinetech + Hall 1", TheaterID: seatmap.DefaultTheaterID, Price: 50, Bonus: 2500},
		{Time: "13:30", Hall: "Cinetech", TheaterID: seatmap.DefaultTheaterID, Price: 75, Bonus: 300},
		{Time: "14:30", Hall: "Cinetech + Hall 2", TheaterID: seatmap.DefaultTheaterID, Price: 60, Bonus: 2000},
	}
}

// FindShowtime returns the slot starting at t.
func FindShowtime(t string) (Showtime, bool) {
	for _, s := range Showtimes() {
		if s.Time == t {
			return s, true
		}
	}
	return Showtime{}, false
}

// IsBookingDate reports whether d is one of BookingDates.
func IsBookingDate(d string) bool {
	for _, v := range BookingDates() {
		if v == d {
			return true
		}
	}
	return false
}
