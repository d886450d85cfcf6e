package volume

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatPounds renders a volume with thousands separators, e.g. "1,550 lbs".
func FormatPounds(v float64) string {
	p := message.NewPrinter(language.English)
	return p.Sprintf("%.0f lbs", v)
}
