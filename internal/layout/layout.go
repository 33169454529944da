// Package layout computes the responsive layout policy: which breakpoint a
// viewport width falls into and how large product images should render.
// Everything here is a pure function of the width; nothing is retained
// between calls.
package layout

import "github.com/mdanwarhossen/emajohn/internal/domain"

const (
	desktopMinWidth = 1200
	tabletMinWidth  = 900

	// horizontalPadding approximates the product column's left+right
	// container padding.
	horizontalPadding = 24

	// minColumnWidth floors the usable column width estimate.
	minColumnWidth = 200

	maxImageSize = 360
	minImageSize = 100
)

// BreakpointFor selects the active layout mode for a viewport width.
func BreakpointFor(widthPx int) domain.Breakpoint {
	switch {
	case widthPx >= desktopMinWidth:
		return domain.BreakpointDesktop
	case widthPx >= tabletMinWidth:
		return domain.BreakpointTablet
	default:
		return domain.BreakpointMobile
	}
}

// ColumnShare returns the fraction of the viewport the product column
// occupies at a breakpoint: 9/12 desktop, 8/12 tablet, full width on mobile.
func ColumnShare(bp domain.Breakpoint) float64 {
	switch bp {
	case domain.BreakpointDesktop:
		return 9.0 / 12.0
	case domain.BreakpointTablet:
		return 8.0 / 12.0
	default:
		return 1.0
	}
}

// ImageSizePx computes the pixel size for product images at a viewport
// width. On mobile the image stacks above the details and takes most of the
// column; on tablet/desktop it sits beside the details at ~30% of the
// column, bounded to [100, 360].
func ImageSizePx(widthPx int) int {
	bp := BreakpointFor(widthPx)
	share := ColumnShare(bp)

	available := int(float64(widthPx)*share) - horizontalPadding
	if available < minColumnWidth {
		available = minColumnWidth
	}

	if bp == domain.BreakpointMobile {
		if img := available - 16; img < maxImageSize {
			return img
		}
		return maxImageSize
	}

	img := int(float64(available) * 0.30)
	if img < minImageSize {
		return minImageSize
	}
	if img > maxImageSize {
		return maxImageSize
	}
	return img
}

// LayoutFor bundles the full layout policy for a viewport width.
func LayoutFor(widthPx int) domain.Layout {
	bp := BreakpointFor(widthPx)
	return domain.Layout{
		Breakpoint:  bp,
		ColumnShare: ColumnShare(bp),
		ImageSizePx: ImageSizePx(widthPx),
	}
}
