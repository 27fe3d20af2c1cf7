package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// BannerData drives the overlay banner presentation: the current text
// and a pop tween that settles the banner onto its final scale.
type BannerData struct {
	Text  string
	Pop   *gween.Tween
	Scale float64
}

var Banner = donburi.NewComponentType[BannerData]()
