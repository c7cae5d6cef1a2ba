package timezone

import "time"

var Location = time.UTC

// force capture timestamps into one timezone because the scheduler may
// run the binary on machines in different regions, and rows appended to
// the historical stores must stay comparable across runs
func Now() time.Time {
	return time.Now().In(Location)
}

// the timestamp format shared by the csv log and the workbook,
// e.g. "2026-08-25 14:03:07"
func Stamp(t time.Time) string {
	return t.In(Location).Format(time.DateTime)
}
