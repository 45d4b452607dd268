package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZodiacSignFromDate(t *testing.T) {
	cases := []struct {
		birthDate string
		want      string
	}{
		{"1990-05-15", "Boğa"},
		{"1985-03-20", "Balık"},
		{"1985-03-21", "Koç"},
		{"2000-12-22", "Oğlak"},
		{"2000-01-19", "Oğlak"},
		{"2000-01-20", "Kova"},
		{"1999-08-23", "Başak"},
		{"1999-11-21", "Akrep"},
		{"1999-11-22", "Yay"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, ZodiacSignFromDate(tc.birthDate), "birth date %s", tc.birthDate)
	}
}

func TestZodiacSignFromDate_Unparsable(t *testing.T) {
	assert.Equal(t, "", ZodiacSignFromDate("not-a-date"))
	assert.Equal(t, "", ZodiacSignFromDate(""))
	assert.Equal(t, "", ZodiacSignFromDate("Bilinmiyor"))
	assert.Equal(t, "", ZodiacSignFromDate("15.05.1990"))
}
