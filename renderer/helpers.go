package renderer

import (
	"fmt"
	"math"
	"strings"
	"text/template"
)

// sparkBars are the glyphs of a sparkline, lowest first.
var sparkBars = []rune("▁▂▃▄▅▆▇█")

// Sparkline draws values as a line of bar glyphs scaled between their
// minimum and maximum. A flat series is drawn with the lowest bar.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		lo, hi = math.Min(lo, v), math.Max(hi, v)
	}
	var b strings.Builder
	for _, v := range values {
		i := 0
		if hi > lo {
			i = int(math.Round((v - lo) / (hi - lo) * float64(len(sparkBars)-1)))
		}
		b.WriteRune(sparkBars[i])
	}
	return b.String()
}

// escape makes free text safe inside a markdown table cell.
func escape(s string) string {
	return strings.NewReplacer("|", `\|`, "\n", " ").Replace(s)
}

// percent formats a percentage with two decimals.
func percent(p float64) string { return fmt.Sprintf("%.2f%%", p) }

// funcs are the functions available to every template.
var funcs = template.FuncMap{
	"escape":  escape,
	"percent": percent,
}
