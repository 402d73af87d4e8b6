package card

// Card geometry. The square size is a hard contract: link unfurlers cache
// by declared dimensions, so every payload (success or placeholder) uses it.
const (
	CardSize = 1200

	contentMaxWidth = CardSize * 8 / 10

	photoAlpha = 0.30

	badgeFontSize  = 18.0
	badgeTracking  = 1.8
	badgePadX      = 24.0
	badgePadY      = 10.0
	badgeIconSize  = 12.0
	badgeIconGap   = 10.0
	badgeGapBelow  = 40.0

	quoteFontSize    = 60.0
	quoteLineSpacing = 1.2
	quoteShadowDrop  = 4.0
	quoteGapBelow    = 40.0

	ruleWidth    = 60.0
	ruleHeight   = 4.0
	ruleGapBelow = 20.0

	referenceFontSize = 28.0

	footerFontSize = 16.0
	footerTracking = 3.2
	footerBottom   = 40.0
)

// Brand palette, matching the marketing site.
var (
	gradientTop    = rgb(0x1E, 0x3A, 0x8A) // rustic blue
	gradientMiddle = rgb(0x17, 0x25, 0x54) // rustic blue dark
	warmCream      = rgb(0xFD, 0xF6, 0xE3)
)

type colorRGB struct {
	r, g, b float64
}

func rgb(r, g, b int) colorRGB {
	return colorRGB{float64(r) / 255, float64(g) / 255, float64(b) / 255}
}
