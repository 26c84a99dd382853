package handlers

import "time"

// tokyoLocation returns the business timezone. Field scheduling runs on
// Japan time regardless of server locale.
func tokyoLocation() *time.Location {
	loc, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		return time.FixedZone("JST", 9*60*60)
	}
	return loc
}
