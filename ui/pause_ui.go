package ui

import (
	"bytes"
	"log"

	"github.com/automoto/canteenrun/components"
	cfg "github.com/automoto/canteenrun/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

// PauseUI is the pause overlay: one button per pause menu option.
// OnSelect receives the option when a button is clicked.
type PauseUI struct {
	UI *ebitenui.UI

	OnSelect func(option components.PauseMenuOption)

	buttons []*widget.Button
	face    text.Face
}

func NewPauseUI(onSelect func(option components.PauseMenuOption)) *PauseUI {
	ui := &PauseUI{OnSelect: onSelect}
	ui.loadFonts()
	ui.buildUI()
	return ui
}

func (ui *PauseUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}
	ui.face = &text.GoTextFace{Source: fontSource, Size: cfg.Pause.FontSize}
}

func (ui *PauseUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Pause.OverlayColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	column := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(cfg.Pause.ButtonSpacing),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	for i, label := range cfg.Pause.MenuOptions {
		option := components.PauseMenuOption(i)
		btn := widget.NewButton(
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(cfg.Pause.ButtonWidth, cfg.Pause.ButtonHeight)),
			widget.ButtonOpts.Image(&widget.ButtonImage{
				Idle:     image.NewNineSliceColor(cfg.Pause.ButtonIdleColor),
				Hover:    image.NewNineSliceColor(cfg.Pause.ButtonHoverColor),
				Pressed:  image.NewNineSliceColor(cfg.Pause.ButtonPressColor),
				Disabled: image.NewNineSliceColor(cfg.Pause.ButtonIdleColor),
			}),
			widget.ButtonOpts.Text(label, &ui.face, &widget.ButtonTextColor{
				Idle:     cfg.Pause.TextColorNormal,
				Hover:    cfg.Pause.TextColorNormal,
				Pressed:  cfg.Pause.TextColorNormal,
				Disabled: cfg.Pause.TextColorDisabled,
			}),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				if ui.OnSelect != nil {
					ui.OnSelect(option)
				}
			}),
		)
		ui.buttons = append(ui.buttons, btn)
		column.AddChild(btn)
	}

	rootContainer.AddChild(column)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *PauseUI) Update() {
	ui.UI.Update()
}

// Draw renders the overlay and outlines the keyboard-selected button.
func (ui *PauseUI) Draw(screen *ebiten.Image, selected components.PauseMenuOption) {
	ui.UI.Draw(screen)

	idx := int(selected)
	if idx < 0 || idx >= len(ui.buttons) {
		return
	}
	r := ui.buttons[idx].GetWidget().Rect
	vector.StrokeRect(screen,
		float32(r.Min.X-3), float32(r.Min.Y-3),
		float32(r.Dx()+6), float32(r.Dy()+6),
		2, cfg.Pause.ButtonPressColor, false)
}
