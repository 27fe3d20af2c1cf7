package ui

import (
	"bytes"
	"image/color"

	"github.com/ebitenui/ebitenui"
	euiimage "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// TitleUI is the intro overlay: the game title and a START button that
// raises the external match-start signal.
type TitleUI struct {
	UI      *ebitenui.UI
	OnStart func()

	titleFace  text.Face
	buttonFace text.Face
}

func NewTitleUI(onStart func()) *TitleUI {
	t := &TitleUI{OnStart: onStart}
	t.loadFonts()
	t.buildUI()
	return t
}

func (t *TitleUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	t.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   42,
	}
	t.buttonFace = &text.GoTextFace{
		Source: fontSource,
		Size:   20,
	}
}

func (t *TitleUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(euiimage.NewNineSliceColor(color.RGBA{20, 16, 32, 230})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(24),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("STREET DUEL", &t.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	contentContainer.AddChild(titleLabel)

	buttonImage := &widget.ButtonImage{
		Idle:    euiimage.NewNineSliceColor(color.RGBA{60, 60, 90, 255}),
		Hover:   euiimage.NewNineSliceColor(color.RGBA{80, 80, 120, 255}),
		Pressed: euiimage.NewNineSliceColor(color.RGBA{40, 40, 70, 255}),
	}
	startButton := widget.NewButton(
		widget.ButtonOpts.Image(buttonImage),
		widget.ButtonOpts.Text("START", &t.buttonFace, &widget.ButtonTextColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
		widget.ButtonOpts.TextPadding(widget.NewInsetsSimple(12)),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if t.OnStart != nil {
				t.OnStart()
			}
		}),
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
	)
	contentContainer.AddChild(startButton)

	hintLabel := widget.NewLabel(
		widget.LabelOpts.Text("A/D move   J attack   K taunt", &t.buttonFace, &widget.LabelColor{
			Idle: color.RGBA{180, 180, 180, 255},
		}),
	)
	contentContainer.AddChild(hintLabel)

	rootContainer.AddChild(contentContainer)
	t.UI = &ebitenui.UI{Container: rootContainer}
}

func (t *TitleUI) Update() {
	t.UI.Update()
}

func (t *TitleUI) Draw(screen *ebiten.Image) {
	t.UI.Draw(screen)
}
