package utils

import "time"

// Italian weekday abbreviations as the ordering API spells them.
var giorni = map[time.Weekday]string{
	time.Monday:    "lun",
	time.Tuesday:   "mar",
	time.Wednesday: "mer",
	time.Thursday:  "gio",
	time.Friday:    "ven",
	time.Saturday:  "sab",
	time.Sunday:    "dom",
}

// GiornoAbbrev returns the lowercase 3-letter Italian weekday token for t.
func GiornoAbbrev(t time.Time) string {
	return giorni[t.Weekday()]
}

// FormatDate renders t in the YYYY-MM-DD form the API expects.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}
