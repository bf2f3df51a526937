package model

// Page describes a result window. Next is always offset+limit, an offset
// hint rather than a promise of more data; callers detect end-of-data by an
// empty page. Limit reports the count actually returned, which lets a
// caller spot a short final page. Previous floors at zero, so a request at
// offset 0 reports previous 0 (a known quirk of the contract).
type Page struct {
	Next     int `json:"next"`
	Limit    int `json:"limit"`
	Previous int `json:"previous"`
}

// NewPage builds the pagination descriptor for a page that returned count
// records for the given offset/limit pair.
func NewPage(offset, limit, count int) Page {
	previous := offset - limit
	if previous < 0 {
		previous = 0
	}

	return Page{
		Next:     offset + limit,
		Limit:    count,
		Previous: previous,
	}
}
