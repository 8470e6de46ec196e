package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/automoto/driftcircuit/records"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/rs/zerolog/log"
	"golang.org/x/image/font/gofont/goregular"
)

// GarageUI is the pre-race screen: car selection, records and navigation
type GarageUI struct {
	UI *ebitenui.UI

	OnRace      func()
	OnChangeCar func()
	OnQuit      func()

	trackLabel   *widget.Label
	carLabel     *widget.Label
	bestLabel    *widget.Label
	resultsPanel *widget.Container

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func NewGarageUI(onRace, onChangeCar, onQuit func()) *GarageUI {
	ui := &GarageUI{
		OnRace:      onRace,
		OnChangeCar: onChangeCar,
		OnQuit:      onQuit,
	}
	ui.loadFonts()
	ui.buildUI()
	return ui
}

func (ui *GarageUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load UI font")
	}

	ui.titleFace = &text.GoTextFace{Source: fontSource, Size: 28}
	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 16}
	ui.smallFace = &text.GoTextFace{Source: fontSource, Size: 12}
}

func (ui *GarageUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{0x1a, 0x4a, 0x3a, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("DRIFT CIRCUIT", &ui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	))

	ui.trackLabel = ui.newInfoLabel(color.RGBA{200, 200, 200, 255})
	contentContainer.AddChild(ui.trackLabel)
	ui.carLabel = ui.newInfoLabel(color.RGBA{255, 255, 255, 255})
	contentContainer.AddChild(ui.carLabel)
	ui.bestLabel = ui.newInfoLabel(color.RGBA{0x06, 0xa5, 0x0c, 255})
	contentContainer.AddChild(ui.bestLabel)

	padding := widget.Insets{Top: 6, Bottom: 6, Left: 8, Right: 8}
	ui.resultsPanel = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{0, 0, 0, 120})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(4),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.MinSize(320, 40)),
	)
	contentContainer.AddChild(ui.resultsPanel)

	contentContainer.AddChild(ui.buildButtons())

	rootContainer.AddChild(contentContainer)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *GarageUI) newInfoLabel(c color.Color) *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text("", &ui.normalFace, &widget.LabelColor{Idle: c}),
	)
}

func (ui *GarageUI) buildButtons() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)

	buttons := []struct {
		label   string
		idle    color.RGBA
		hover   color.RGBA
		pressed color.RGBA
		onClick func()
	}{
		{"Race", color.RGBA{40, 100, 40, 255}, color.RGBA{60, 140, 60, 255}, color.RGBA{30, 80, 30, 255}, func() { call(ui.OnRace) }},
		{"Change Car", color.RGBA{60, 60, 80, 255}, color.RGBA{80, 80, 100, 255}, color.RGBA{40, 40, 60, 255}, func() { call(ui.OnChangeCar) }},
		{"Quit", color.RGBA{100, 40, 40, 255}, color.RGBA{140, 60, 60, 255}, color.RGBA{80, 30, 30, 255}, func() { call(ui.OnQuit) }},
	}

	for _, b := range buttons {
		onClick := b.onClick
		container.AddChild(widget.NewButton(
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(110, 32)),
			widget.ButtonOpts.Image(&widget.ButtonImage{
				Idle:    image.NewNineSliceColor(b.idle),
				Hover:   image.NewNineSliceColor(b.hover),
				Pressed: image.NewNineSliceColor(b.pressed),
			}),
			widget.ButtonOpts.Text(b.label, &ui.normalFace, &widget.ButtonTextColor{
				Idle:    color.RGBA{255, 255, 255, 255},
				Hover:   color.RGBA{255, 255, 200, 255},
				Pressed: color.RGBA{200, 200, 150, 255},
			}),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				onClick()
			}),
		))
	}

	return container
}

func call(fn func()) {
	if fn != nil {
		fn()
	}
}

// SetTrack shows the selected circuit name.
func (ui *GarageUI) SetTrack(name string) {
	ui.trackLabel.Label = "Track: " + name
}

// SetCar shows the selected car name.
func (ui *GarageUI) SetCar(name string) {
	ui.carLabel.Label = "Car: " + name
}

// SetBestTime shows the stored best time, or a placeholder when none exists.
func (ui *GarageUI) SetBestTime(best float64, ok bool) {
	if !ok {
		ui.bestLabel.Label = "Best: --"
		return
	}
	ui.bestLabel.Label = fmt.Sprintf("Best: %.2fs", best)
}

// SetResults replaces the recent results list.
func (ui *GarageUI) SetResults(results []records.Result) {
	ui.resultsPanel.RemoveChildren()

	if len(results) == 0 {
		ui.resultsPanel.AddChild(ui.resultLabel("No races yet", color.RGBA{160, 160, 160, 255}))
		return
	}
	for _, r := range results {
		c := color.Color(color.RGBA{220, 220, 220, 255})
		line := fmt.Sprintf("%s  %-16s %7.2fs", r.FinishedAt.Format("Jan 02 15:04"), r.Car, r.Time)
		if r.NewRecord {
			c = color.RGBA{0x06, 0xa5, 0x0c, 255}
			line += "  record"
		}
		ui.resultsPanel.AddChild(ui.resultLabel(line, c))
	}
}

func (ui *GarageUI) resultLabel(s string, c color.Color) *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text(s, &ui.smallFace, &widget.LabelColor{Idle: c}),
	)
}

func (ui *GarageUI) Update() {
	ui.UI.Update()
}
