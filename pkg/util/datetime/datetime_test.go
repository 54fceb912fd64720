package datetime_test

import (
	"portfolio-go-backend/pkg/util/datetime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name    string
		arrange func() time.Time
		act     func(time time.Time) string
		assert  func(t *testing.T, time string)
	}{{
		name: "Should format time with time zone",
		arrange: func() time.Time {
			parisTimeZone := time.FixedZone("CET", 1*3600)
			return time.Date(2024, time.February, 11, 10, 30, 40, 40, parisTimeZone)
		},
		act: func(time time.Time) string {
			return datetime.FormatDate(time)
		},
		assert: func(t *testing.T, time string) {
			assert.Equal(t, time, "2024-02-11T10:30:40+01:00")
		},
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			datetime := tt.arrange()
			formattedDateTime := tt.act(datetime)
			tt.assert(t, formattedDateTime)
		})
	}
}

func TestDuration(t *testing.T) {
	date := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name   string
		start  time.Time
		end    time.Time
		assert func(t *testing.T, got string)
	}{
		{
			name:  "Should combine years and months",
			start: date(2020, time.September, 1),
			end:   date(2022, time.June, 30),
			assert: func(t *testing.T, got string) {
				assert.Equal(t, "1 an et 9 mois", got)
			},
		},
		{
			name:  "Should pluralize years",
			start: date(2019, time.January, 1),
			end:   date(2022, time.March, 1),
			assert: func(t *testing.T, got string) {
				assert.Equal(t, "3 ans et 2 mois", got)
			},
		},
		{
			name:  "Should render whole years without months",
			start: date(2020, time.January, 1),
			end:   date(2021, time.January, 1),
			assert: func(t *testing.T, got string) {
				assert.Equal(t, "1 an", got)
			},
		},
		{
			name:  "Should render months only",
			start: date(2021, time.January, 1),
			end:   date(2021, time.June, 1),
			assert: func(t *testing.T, got string) {
				assert.Equal(t, "5 mois", got)
			},
		},
		{
			name:  "Should borrow a year when end month precedes start month",
			start: date(2020, time.November, 1),
			end:   date(2021, time.February, 1),
			assert: func(t *testing.T, got string) {
				assert.Equal(t, "3 mois", got)
			},
		},
		{
			name:  "Should render less than a month",
			start: date(2021, time.January, 1),
			end:   date(2021, time.January, 15),
			assert: func(t *testing.T, got string) {
				assert.Equal(t, "Moins d'un mois", got)
			},
		},
		{
			name:  "Should render empty for a zero start date",
			start: time.Time{},
			end:   date(2021, time.January, 1),
			assert: func(t *testing.T, got string) {
				assert.Equal(t, "", got)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := datetime.Duration(tt.start, tt.end)
			tt.assert(t, got)
		})
	}
}
