package charts

import (
	"fmt"
	"strconv"
	"strings"

	"neuronutrition-service/internal/app/models"
)

// renderBarSVG produces a self-contained SVG document for the radar and bar
// kinds. Output depends only on the descriptor, so the same input always
// yields the same bytes.
func renderBarSVG(descriptor *models.ChartDescriptor) string {
	width, height := 500, 400
	titleY, titleSize := 25, 16
	labelSize := 9
	if descriptor.AgeVariant == models.AgeVariantKid {
		width = 400
		titleY, titleSize = 30, 18
		labelSize = 10
	}

	maxValue := 0
	for _, value := range descriptor.Values {
		if value > maxValue {
			maxValue = value
		}
	}
	if maxValue == 0 {
		maxValue = 1
	}

	var svg strings.Builder
	fmt.Fprintf(&svg, `<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">`, width, height)
	fmt.Fprintf(&svg, `<text x="%d" y="%d" text-anchor="middle" font-size="%d" font-weight="bold">%s</text>`,
		width/2, titleY, titleSize, descriptor.Title)

	barWidth := float64(width-60) / float64(len(descriptor.Labels))
	graphHeight := float64(height - 80)

	for i, label := range descriptor.Labels {
		value := 0
		if i < len(descriptor.Values) {
			value = descriptor.Values[i]
		}
		barHeight := float64(value) / float64(maxValue) * graphHeight * 0.8
		x := 30 + float64(i)*barWidth
		y := float64(height) - 50 - barHeight

		color := "#3B82F6"
		if i < len(descriptor.Palette) {
			color = descriptor.Palette[i]
		}

		fmt.Fprintf(&svg, `<rect x="%s" y="%s" width="%s" height="%s" fill="%s" rx="2"/>`,
			fmtNum(x+barWidth*0.1), fmtNum(y), fmtNum(barWidth*0.8), fmtNum(barHeight), color)
		fmt.Fprintf(&svg, `<text x="%s" y="%d" text-anchor="middle" font-size="%d">%s</text>`,
			fmtNum(x+barWidth/2), height-30, labelSize, label)
		fmt.Fprintf(&svg, `<text x="%s" y="%s" text-anchor="middle" font-size="12" font-weight="bold">%d%%</text>`,
			fmtNum(x+barWidth/2), fmtNum(y-5), value)
	}

	svg.WriteString("</svg>")
	return svg.String()
}

func fmtNum(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
