package utils

import "time"

type zodiacRange struct {
	sign     string
	endMonth time.Month
	endDay   int
}

// Ranges are keyed by the last day each sign covers, walked in calendar order.
// Capricorn spans the year boundary, hence the two entries.
var zodiacTable = []zodiacRange{
	{"Oğlak", time.January, 19},
	{"Kova", time.February, 18},
	{"Balık", time.March, 20},
	{"Koç", time.April, 19},
	{"Boğa", time.May, 20},
	{"İkizler", time.June, 20},
	{"Yengeç", time.July, 22},
	{"Aslan", time.August, 22},
	{"Başak", time.September, 22},
	{"Terazi", time.October, 22},
	{"Akrep", time.November, 21},
	{"Yay", time.December, 21},
	{"Oğlak", time.December, 31},
}

// ZodiacSignFromDate maps a YYYY-MM-DD birth date to its Turkish zodiac sign.
// Returns "" when the date does not parse, so callers can omit the field.
func ZodiacSignFromDate(birthDate string) string {
	t, err := time.Parse("2006-01-02", birthDate)
	if err != nil {
		return ""
	}
	for _, r := range zodiacTable {
		if t.Month() < r.endMonth || (t.Month() == r.endMonth && t.Day() <= r.endDay) {
			return r.sign
		}
	}
	return ""
}
