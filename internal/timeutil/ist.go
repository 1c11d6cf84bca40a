package timeutil

import "time"

// IST is the Indian Standard Time location (UTC+5:30). Agency-facing
// documents and timestamps are rendered in IST.
var IST *time.Location

func init() {
	var err error
	IST, err = time.LoadLocation("Asia/Kolkata")
	if err != nil {
		// Fallback: fixed zone if the tz database is unavailable
		IST = time.FixedZone("IST", 5*60*60+30*60)
	}
}

// FormatDate renders a date the way the agency's documents show it (dd/mm/yyyy).
func FormatDate(t time.Time) string {
	return t.In(IST).Format("02/01/2006")
}

// DateLayout is the wire format for dates in API payloads.
const DateLayout = "2006-01-02"
