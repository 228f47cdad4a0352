package stats

import (
	"fmt"
	"strings"
)

// Format renders the report as the HTML message sent to the user.
func (r Report) Format() string {
	var b strings.Builder

	section := func(title string, br Breakdown) {
		fmt.Fprintf(&b, "<b>%s</b>\n", title)
		fmt.Fprintf(&b, "Total: <b>%s</b>\nDay: <b>%s</b>\nNight: <b>%s</b>\n\n", br.All, br.Day, br.Night)
	}

	b.WriteString("\U0001F4C8 ")
	section("Total flight time (all time)", r.AllTime)
	section("Current year", r.Year)
	section("Current month", r.Month)
	section("Last 3 months", r.Last3Months)
	section("Combat flight time", r.Combat)
	section("Training flight time", r.Training)

	return strings.TrimRight(b.String(), "\n")
}
