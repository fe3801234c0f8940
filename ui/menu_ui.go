package ui

import (
	"bytes"
	"fmt"
	"image/color"

	cfg "github.com/automoto/skystrike/config"
	"github.com/automoto/skystrike/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// MenuUI holds the ebitenui interface for the title screen: one button
// per difficulty plus the persisted high-score table.
type MenuUI struct {
	UI *ebitenui.UI

	// Callbacks
	OnSelect func(cfg.Difficulty)

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewMenuUI creates the title screen UI.
func NewMenuUI(onSelect func(cfg.Difficulty)) *MenuUI {
	mui := &MenuUI{
		OnSelect: onSelect,
	}

	mui.loadFonts()
	mui.buildUI()

	return mui
}

func (mui *MenuUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	mui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   28,
	}
	mui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   14,
	}
	mui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   10,
	}
}

func (mui *MenuUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{8, 10, 24, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(10)),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text(cfg.C.Title, &mui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	contentContainer.AddChild(titleLabel)

	subtitle := widget.NewLabel(
		widget.LabelOpts.Text("SELECT SORTIE", &mui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{150, 170, 220, 255},
		}),
	)
	contentContainer.AddChild(subtitle)

	for _, d := range []cfg.Difficulty{cfg.Easy, cfg.Normal, cfg.Hardcore, cfg.Endless} {
		contentContainer.AddChild(mui.buildDifficultyButton(d))
	}

	contentContainer.AddChild(mui.buildScoreTable())

	rootContainer.AddChild(contentContainer)

	mui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (mui *MenuUI) buildDifficultyButton(d cfg.Difficulty) *widget.Button {
	diff := d // Capture for closure
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(180, 26),
		),
		widget.ButtonOpts.Image(mui.buttonImage()),
		widget.ButtonOpts.Text(d.String(), &mui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if mui.OnSelect != nil {
				mui.OnSelect(diff)
			}
		}),
	)
}

func (mui *MenuUI) buildScoreTable() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(2),
		)),
	)

	scores := systems.LoadHighScores()
	if len(scores) == 0 {
		return container
	}

	header := widget.NewLabel(
		widget.LabelOpts.Text("TOP SORTIES", &mui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{180, 180, 180, 255},
		}),
	)
	container.AddChild(header)

	for i, s := range scores {
		if i >= 5 {
			break
		}
		mark := ""
		if s.Won {
			mark = " *"
		}
		line := fmt.Sprintf("%d. %d  %s%s", i+1, s.Score, s.Difficulty, mark)
		container.AddChild(widget.NewLabel(
			widget.LabelOpts.Text(line, &mui.smallFace, &widget.LabelColor{
				Idle: color.RGBA{150, 170, 220, 255},
			}),
		))
	}

	return container
}

func (mui *MenuUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{40, 50, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{60, 75, 110, 255})
	pressed := image.NewNineSliceColor(color.RGBA{25, 35, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

// Update ticks the ebitenui widget tree.
func (mui *MenuUI) Update() {
	mui.UI.Update()
}
