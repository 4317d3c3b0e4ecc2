package seatmap

// Default business values of the reference theater.
const (
	DefaultVIPRowThreshold = 10
	DefaultRegularPrice    = 50
	DefaultVIPPrice        = 150
)

// Coord addresses a seat for the classifier: RowIndex is 0-based, Column is
// the 1-based column number (gaps included).
type Coord struct {
	RowIndex int `json:"row_index" yaml:"row_index"`
	Column   int `json:"column" yaml:"column"`
}

// Rules carries everything the classifier and pricing need.  The occupied
// and selected lists are plain configuration so that any scenario can be
// expressed without touching code.
type Rules struct {
	VIPRowThreshold int     `json:"vip_row_threshold" yaml:"vip_row_threshold"`
	RegularPrice    float64 `json:"regular_price" yaml:"regular_price"`
	VIPPrice        float64 `json:"vip_price" yaml:"vip_price"`
	Selected        []Coord `json:"selected,omitempty" yaml:"selected"`
	Occupied        []Coord `json:"occupied,omitempty" yaml:"occupied"`
}

// DefaultRules returns the thresholds and prices of the reference theater
// with empty membership lists.
func DefaultRules() Rules {
	return Rules{
		VIPRowThreshold: DefaultVIPRowThreshold,
		RegularPrice:    DefaultRegularPrice,
		VIPPrice:        DefaultVIPPrice,
	}
}

// IsVIPRow reports whether the 0-based row index is at or past the VIP
// threshold.
func (r Rules) IsVIPRow(rowIndex int) bool {
	return rowIndex >= r.VIPRowThreshold
}

// Classify maps a coordinate to its status.  The checks run in a fixed
// order: VIP row, then selected, then occupied, then available.  A
// coordinate listed as both selected and occupied is therefore selected,
// and any coordinate in a VIP row is VIP.
func (r Rules) Classify(rowIndex, column int) Status {
	if r.IsVIPRow(rowIndex) {
		return StatusVIP
	}
	if contains(r.Selected, rowIndex, column) {
		return StatusSelected
	}
	if contains(r.Occupied, rowIndex, column) {
		return StatusOccupied
	}
	return StatusAvailable
}

// Price returns the price of a real seat in the given 0-based row.
func (r Rules) Price(rowIndex int) float64 {
	if r.IsVIPRow(rowIndex) {
		return r.VIPPrice
	}
	return r.RegularPrice
}

func contains(list []Coord, rowIndex, column int) bool {
	for _, c := range list {
		if c.RowIndex == rowIndex && c.Column == column {
			return true
		}
	}
	return false
}
