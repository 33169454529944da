package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mdanwarhossen/emajohn/internal/domain"
)

func TestBreakpointFor(t *testing.T) {
	tests := []struct {
		widthPx   int
		want      domain.Breakpoint
		wantShare float64
	}{
		{widthPx: 1300, want: domain.BreakpointDesktop, wantShare: 9.0 / 12.0},
		{widthPx: 1200, want: domain.BreakpointDesktop, wantShare: 9.0 / 12.0},
		{widthPx: 1199, want: domain.BreakpointTablet, wantShare: 8.0 / 12.0},
		{widthPx: 900, want: domain.BreakpointTablet, wantShare: 8.0 / 12.0},
		{widthPx: 899, want: domain.BreakpointMobile, wantShare: 1.0},
		{widthPx: 850, want: domain.BreakpointMobile, wantShare: 1.0},
		{widthPx: 0, want: domain.BreakpointMobile, wantShare: 1.0},
	}

	for _, tt := range tests {
		bp := BreakpointFor(tt.widthPx)
		assert.Equal(t, tt.want, bp, "width %d", tt.widthPx)
		assert.Equal(t, tt.wantShare, ColumnShare(bp), "width %d", tt.widthPx)
	}
}

func TestImageSizePx(t *testing.T) {
	tests := []struct {
		name    string
		widthPx int
		want    int
	}{
		// mobile: available = max(200, width-24); image = min(available-16, 360)
		{name: "small mobile floors at min column width", widthPx: 100, want: 184},
		{name: "mid mobile", widthPx: 400, want: 360},
		{name: "narrow mobile", widthPx: 300, want: 260},
		{name: "wide mobile maxes out", widthPx: 850, want: 360}, // 850-24=826 -> min(810,360)=360
		{name: "tablet 1000", widthPx: 1000, want: 192},          // 1000*2/3-24 = 642; 642*0.3 = 192
		{name: "desktop 1300", widthPx: 1300, want: 285},             // 1300*0.75-24 = 951; 951*0.3 = 285
		{name: "very wide caps at 360", widthPx: 2000, want: 360},    // 2000*0.75-24 = 1476; *0.3 = 442 -> 360
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ImageSizePx(tt.widthPx))
		})
	}
}

func TestImageSizePx_Bounds(t *testing.T) {
	for w := 0; w <= 3000; w += 25 {
		img := ImageSizePx(w)
		assert.LessOrEqual(t, img, 360, "width %d", w)
		if BreakpointFor(w) != domain.BreakpointMobile {
			assert.GreaterOrEqual(t, img, 100, "width %d", w)
		}
	}
}

func TestLayoutFor(t *testing.T) {
	l := LayoutFor(1300)
	assert.Equal(t, domain.BreakpointDesktop, l.Breakpoint)
	assert.Equal(t, 9.0/12.0, l.ColumnShare)
	assert.Equal(t, ImageSizePx(1300), l.ImageSizePx)
}
