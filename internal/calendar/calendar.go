// Package calendar expands months into the business days a school operates.
package calendar

import "time"

// BusinessDays returns every Monday through Friday of the given month in
// calendar order. Dates are midnight UTC. month must be 1-12.
func BusinessDays(year, month int) []time.Time {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, 0).AddDate(0, 0, -1).Day()

	days := make([]time.Time, 0, 23)
	for d := 1; d <= last; d++ {
		day := time.Date(year, time.Month(month), d, 0, 0, 0, 0, time.UTC)
		switch day.Weekday() {
		case time.Saturday, time.Sunday:
			continue
		}
		days = append(days, day)
	}
	return days
}

// Window concatenates BusinessDays for each month in the order given.
func Window(year int, months ...int) []time.Time {
	var days []time.Time
	for _, m := range months {
		days = append(days, BusinessDays(year, m)...)
	}
	return days
}
