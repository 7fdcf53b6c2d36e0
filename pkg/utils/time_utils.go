package utils

import "time"

// West Africa Time (+01:00); the studio books in Lagos time.
var watLoc = func() *time.Location {
	if loc, err := time.LoadLocation("Africa/Lagos"); err == nil {
		return loc
	}
	return time.FixedZone("WAT", 1*3600)
}()

// FormatLedgerTime renders t the way rows are written to the order sheet.
func FormatLedgerTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(watLoc).Format("2006-01-02 15:04:05")
}

func FormatRFC3339WAT(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(watLoc).Format(time.RFC3339)
}
