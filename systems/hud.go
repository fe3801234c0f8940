package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/skystrike/components"
	cfg "github.com/automoto/skystrike/config"
	"github.com/automoto/skystrike/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudMargin      = 10
	hudSegWidth    = 24
	hudSegHeight   = 10
	hudSegGap      = 3
	bossBarHeight  = 8
	bossBarMargin  = 46
)

// DrawHUD renders the score, hull segments, weapon level, jam warning,
// and the boss health bar and alert banner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	session := GetSession(e)
	if session == nil {
		return
	}

	hudFont := fonts.HUD.Get()
	text.Draw(screen, fmt.Sprintf("SCORE %d", session.Score), hudFont, hudMargin, 20, cfg.White)

	playerEntry, ok := components.Player.First(e.World)
	if ok {
		hp := components.Health.Get(playerEntry)
		player := components.Player.Get(playerEntry)
		weapon := components.Weapon.Get(playerEntry)

		drawHullSegments(screen, hp)

		lvl := fmt.Sprintf("LV %d  S%d/D%d", weapon.Level(), weapon.SpreadLevel, weapon.Damage)
		text.Draw(screen, lvl, hudFont, hudMargin, 58, cfg.Cyan)

		if player.Jammed() {
			text.Draw(screen, "JAMMED", hudFont, hudMargin, 74, cfg.JamWaveColor)
		}
	}

	drawBossStatus(e, screen, session)

	text.Draw(screen, session.Difficulty.String(), hudFont,
		cfg.C.Width-hudMargin-len(session.Difficulty.String())*8, 20, cfg.LightBlue)
}

func drawHullSegments(screen *ebiten.Image, hp *components.HealthData) {
	for i := 0; i < hp.Max; i++ {
		x := float32(hudMargin + i*(hudSegWidth+hudSegGap))
		clr := color.RGBA{R: 40, G: 40, B: 40, A: 255}
		if i < hp.Current {
			clr = cfg.Green
		}
		vector.DrawFilledRect(screen, x, 30, hudSegWidth, hudSegHeight, clr, false)
	}
}

func drawBossStatus(e *ecs.ECS, screen *ebiten.Image, session *components.SessionData) {
	width := float64(cfg.C.Width)

	if session.AlertFrames > 0 {
		// Flashing warning banner before and during the descent.
		if int(session.AlertFrames/10)%2 == 0 {
			titleFont := fonts.Title.Get()
			msg := "WARNING"
			msgX := int((width - float64(len(msg)*20)) / 2)
			text.Draw(screen, msg, titleFont, msgX, 140, cfg.Red)
		}
	}

	bossEntry, ok := components.Boss.First(e.World)
	if !ok || bossEntry.HasComponent(components.Death) {
		return
	}
	hp := components.Health.Get(bossEntry)
	boss := components.Boss.Get(bossEntry)

	barW := float32(width) - 2*bossBarMargin
	ratio := float32(hp.Current) / float32(hp.Max)
	if ratio < 0 {
		ratio = 0
	}
	vector.DrawFilledRect(screen, bossBarMargin, 6,
		barW, bossBarHeight, color.RGBA{R: 40, G: 40, B: 40, A: 255}, false)
	vector.DrawFilledRect(screen, bossBarMargin, 6,
		barW*ratio, bossBarHeight, cfg.LightRed, false)

	smallFont := fonts.Small.Get()
	label := fmt.Sprintf("TIER %d", boss.Tier)
	text.Draw(screen, label, smallFont, int(width)-bossBarMargin-len(label)*7, 26, cfg.LightRed)
}
