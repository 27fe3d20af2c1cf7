package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

type FontName string

const (
	Banner FontName = "banner"
	HUD    FontName = "hud"
	Small  FontName = "small"
)

func (f FontName) Get() font.Face {
	return getFace(f)
}

var faces = map[FontName]font.Face{}

// Load parses ttf and registers a face under name at the given size.
func Load(name FontName, ttf []byte, size float64) {
	fontData, _ := truetype.Parse(ttf)
	faces[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
}

func getFace(name FontName) font.Face {
	f, ok := faces[name]
	if !ok {
		panic(fmt.Sprintf("font %s not loaded", name))
	}
	return f
}
