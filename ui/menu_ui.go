package ui

import (
	"bytes"
	"image/color"
	"log"

	cfg "github.com/automoto/wallkick/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// MenuItem is one entry of the title menu.
type MenuItem int

const (
	MenuStart MenuItem = iota
	MenuCredits
	MenuExit
)

// MenuUI is the title menu: Start, Credits and Exit. Credits toggles an
// in-place credits view where only the credits lines and a Go Back button
// show.
type MenuUI struct {
	UI *ebitenui.UI

	OnStart func()
	OnExit  func()

	content  *widget.Container
	credits  bool
	selected int
	clicked  *MenuItem // applied after the widget tree finishes updating

	normalFace text.Face
	smallFace  text.Face
}

func NewMenuUI(onStart, onExit func()) *MenuUI {
	ui := &MenuUI{
		OnStart: onStart,
		OnExit:  onExit,
	}
	ui.loadFonts()
	ui.buildUI()
	return ui
}

func (ui *MenuUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 14}
	ui.smallFace = &text.GoTextFace{Source: fontSource, Size: 11}
}

func (ui *MenuUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(&widget.Insets{Top: int(cfg.Menu.MenuStartY)}),
		)),
	)

	ui.content = widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(int(cfg.Menu.MenuItemGap)),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)
	rootContainer.AddChild(ui.content)

	ui.UI = &ebitenui.UI{Container: rootContainer}
	ui.refresh()
}

// Items lists what is currently on screen, top to bottom.
func (ui *MenuUI) Items() []MenuItem {
	if ui.credits {
		return []MenuItem{MenuCredits}
	}
	return []MenuItem{MenuStart, MenuCredits, MenuExit}
}

// CreditsShown reports whether the credits view is open.
func (ui *MenuUI) CreditsShown() bool {
	return ui.credits
}

// Title is the heading drawn above the buttons.
func (ui *MenuUI) Title() string {
	if ui.credits {
		return cfg.Credits.Title
	}
	return cfg.Menu.Title
}

// Move shifts the keyboard selection by delta, wrapping around.
func (ui *MenuUI) Move(delta int) {
	n := len(ui.Items())
	ui.selected = ((ui.selected+delta)%n + n) % n
	ui.refresh()
}

// Activate runs the selected item, as if it had been clicked.
func (ui *MenuUI) Activate() {
	ui.activate(ui.Items()[ui.selected])
}

// ToggleCredits switches between the main entries and the credits view.
func (ui *MenuUI) ToggleCredits() {
	ui.credits = !ui.credits
	ui.selected = 0
	ui.refresh()
}

func (ui *MenuUI) activate(item MenuItem) {
	switch item {
	case MenuStart:
		if ui.OnStart != nil {
			ui.OnStart()
		}
	case MenuCredits:
		ui.ToggleCredits()
	case MenuExit:
		if ui.OnExit != nil {
			ui.OnExit()
		}
	}
}

func (ui *MenuUI) label(item MenuItem) string {
	switch item {
	case MenuStart:
		return "Start"
	case MenuCredits:
		if ui.credits {
			return cfg.Credits.Back
		}
		return "Credits"
	case MenuExit:
		return "Exit"
	}
	return ""
}

// refresh rebuilds the visible entries for the current view and selection.
func (ui *MenuUI) refresh() {
	ui.content.RemoveChildren()

	if ui.credits {
		for _, line := range cfg.Credits.Lines {
			ui.content.AddChild(widget.NewLabel(
				widget.LabelOpts.Text(line, &ui.smallFace, &widget.LabelColor{
					Idle: cfg.Menu.TextColorNormal,
				}),
			))
		}
	}

	for i, item := range ui.Items() {
		ui.content.AddChild(ui.button(item, i == ui.selected))
	}
}

func (ui *MenuUI) button(item MenuItem, selected bool) *widget.Button {
	idle := cfg.Menu.ButtonColor
	textIdle := color.Color(cfg.Menu.TextColorNormal)
	if selected {
		idle = cfg.Menu.ButtonHoverColor
		textIdle = cfg.Menu.TitleColor
	}

	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(160, int(cfg.Menu.MenuItemHeight))),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(idle),
			Hover:   image.NewNineSliceColor(cfg.Menu.ButtonHoverColor),
			Pressed: image.NewNineSliceColor(cfg.Menu.ButtonColor),
		}),
		widget.ButtonOpts.Text(ui.label(item), &ui.normalFace, &widget.ButtonTextColor{
			Idle:    textIdle,
			Hover:   cfg.Menu.TextColorNormal,
			Pressed: cfg.Menu.TextColorSelected,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			ui.clicked = &item
		}),
	)
}

func (ui *MenuUI) Update() {
	ui.UI.Update()
	if item := ui.clicked; item != nil {
		ui.clicked = nil
		ui.activate(*item)
	}
}

func (ui *MenuUI) Draw(screen *ebiten.Image) {
	ui.UI.Draw(screen)
}
