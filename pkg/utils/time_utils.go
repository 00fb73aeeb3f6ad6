package utils

import "time"

// Export timestamps are always rendered in UTC with an explicit suffix,
// e.g. "2026-08-28 09:15:00 UTC".
const exportLayout = "2006-01-02 15:04:05 UTC"

func ExportTimestampUTC(t time.Time) string {
	return t.UTC().Format(exportLayout)
}

// Vietnam time location (ICT, +07:00), used for log display.
var vnLoc = func() *time.Location {
	if loc, err := time.LoadLocation("Asia/Ho_Chi_Minh"); err == nil {
		return loc
	}
	return time.FixedZone("ICT", 7*3600)
}()

func FormatDisplayVN(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(vnLoc).Format("2006-01-02 15:04:05 -0700 MST")
}
