package components

import "github.com/yohamta/donburi"

// BannerData is the transient message shown at the top of the screen
type BannerData struct {
	Text  string
	Timer int // frames remaining, zero hides the banner
}

var Banner = donburi.NewComponentType[BannerData]()

// Visible reports whether the banner should be drawn.
func (b *BannerData) Visible() bool {
	return b.Timer > 0 && b.Text != ""
}
