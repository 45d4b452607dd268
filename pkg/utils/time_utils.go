package utils

import "time"

// Turkey time (TRT, +03:00). Subscription periods and premium expiries are
// computed against the user's wall-clock timezone.
var trLoc = func() *time.Location {
	if loc, err := time.LoadLocation("Europe/Istanbul"); err == nil {
		return loc
	}
	return time.FixedZone("TRT", 3*3600)
}()

func NowTR() time.Time { return time.Now().In(trLoc) }

func NowUnixSeconds() int64 { return time.Now().Unix() }
