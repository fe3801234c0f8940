package systems

import (
	"math"

	"github.com/automoto/skystrike/components"
	cfg "github.com/automoto/skystrike/config"
	"github.com/automoto/skystrike/fonts"
	"github.com/automoto/skystrike/gamemath"
	"github.com/automoto/skystrike/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawEntities renders the whole field back to front: items, enemies,
// the boss and its laser, projectiles, the player, then cosmetics.
// Screen shake is applied as a per-frame offset on every draw.
func DrawEntities(e *ecs.ECS, screen *ebiten.Image) {
	session := GetSession(e)
	if session == nil {
		return
	}

	screen.Fill(cfg.C.BackgroundColor)

	var ox, oy float32
	if session.ShakeFrames > 0 {
		ox = float32((session.Rand.Float64()*2 - 1) * session.ShakeIntensity)
		oy = float32((session.Rand.Float64()*2 - 1) * session.ShakeIntensity)
	}

	drawItems(e, screen, ox, oy)
	drawEnemies(e, screen, ox, oy)
	drawBoss(e, screen, ox, oy)
	drawProjectiles(e, screen, ox, oy)
	drawPlayer(e, screen, ox, oy)
	drawParticles(e, screen, ox, oy)
	drawFloatingTexts(e, screen, ox, oy)
}

func drawItems(e *ecs.ECS, screen *ebiten.Image, ox, oy float32) {
	tags.Item.Each(e.World, func(entry *donburi.Entry) {
		if entry.HasComponent(components.Death) {
			return
		}
		item := components.Item.Get(entry)
		o := components.Object.Get(entry)
		cx := float32(o.X+o.W/2) + ox
		cy := float32(o.Y+o.H/2) + oy
		r := float32(o.W / 2)

		clr := cfg.Cyan
		switch item.Type {
		case components.ItemHeal:
			clr = cfg.Green
		case components.ItemBossReward:
			clr = cfg.Yellow
		}
		vector.DrawFilledCircle(screen, cx, cy, r, clr, false)
		vector.StrokeCircle(screen, cx, cy, r+2, 1, cfg.White, false)
	})
}

func drawEnemies(e *ecs.ECS, screen *ebiten.Image, ox, oy float32) {
	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		if entry.HasComponent(components.Death) {
			return
		}
		enemy := components.Enemy.Get(entry)
		o := components.Object.Get(entry)
		x := float32(o.X) + ox
		y := float32(o.Y) + oy

		vector.DrawFilledRect(screen, x, y, float32(o.W), float32(o.H), enemy.TypeConfig.Color, false)

		// Damage tint strip once the hull is hurt.
		hp := components.Health.Get(entry)
		if hp.Current < hp.Max {
			ratio := float32(hp.Current) / float32(hp.Max)
			vector.DrawFilledRect(screen, x, y-4, float32(o.W)*ratio, 2, cfg.LightRed, false)
		}
	})
}

func drawBoss(e *ecs.ECS, screen *ebiten.Image, ox, oy float32) {
	bossEntry, ok := components.Boss.First(e.World)
	if !ok || bossEntry.HasComponent(components.Death) {
		return
	}
	boss := components.Boss.Get(bossEntry)
	o := components.Object.Get(bossEntry)
	x := float32(o.X) + ox
	y := float32(o.Y) + oy

	if boss.LaserActive() {
		bx := float32(o.X+o.W/2) + ox
		by := float32(o.Y+o.H/2) + oy
		ex := bx + float32(math.Cos(boss.LaserAngle)*cfg.Boss.LaserLength)
		ey := by + float32(math.Sin(boss.LaserAngle)*cfg.Boss.LaserLength)
		vector.StrokeLine(screen, bx, by, ex, ey, float32(cfg.Boss.BeamWidth), cfg.LightRed, false)
		vector.StrokeLine(screen, bx, by, ex, ey, float32(cfg.Boss.BeamWidth)/3, cfg.White, false)
	}

	vector.DrawFilledRect(screen, x, y, float32(o.W), float32(o.H), cfg.BossHullColor, false)
	vector.DrawFilledRect(screen, x+float32(o.W)*0.25, y+float32(o.H)*0.3,
		float32(o.W)*0.5, float32(o.H)*0.4, cfg.Red, false)
}

func drawProjectiles(e *ecs.ECS, screen *ebiten.Image, ox, oy float32) {
	tags.PlayerBullet.Each(e.World, func(entry *donburi.Entry) {
		if entry.HasComponent(components.Death) {
			return
		}
		o := components.Object.Get(entry)
		vector.DrawFilledCircle(screen,
			float32(o.X+o.W/2)+ox, float32(o.Y+o.H/2)+oy,
			float32(o.W/2), cfg.Cyan, false)
	})

	tags.EnemyBullet.Each(e.World, func(entry *donburi.Entry) {
		if entry.HasComponent(components.Death) {
			return
		}
		o := components.Object.Get(entry)
		vector.DrawFilledCircle(screen,
			float32(o.X+o.W/2)+ox, float32(o.Y+o.H/2)+oy,
			float32(o.W/2), cfg.Orange, false)
	})

	tags.EnemyMissile.Each(e.World, func(entry *donburi.Entry) {
		if entry.HasComponent(components.Death) {
			return
		}
		m := components.Missile.Get(entry)
		o := components.Object.Get(entry)
		cx := float32(o.X+o.W/2) + ox
		cy := float32(o.Y+o.H/2) + oy
		tx := cx - float32(math.Cos(m.Heading)*o.W)
		ty := cy - float32(math.Sin(m.Heading)*o.W)
		vector.StrokeLine(screen, cx, cy, tx, ty, 3, cfg.Yellow, false)
		vector.DrawFilledCircle(screen, cx, cy, float32(o.W/2), cfg.Red, false)
	})

	tags.EnemyWave.Each(e.World, func(entry *donburi.Entry) {
		if entry.HasComponent(components.Death) {
			return
		}
		w := components.Wave.Get(entry)
		vector.StrokeCircle(screen,
			float32(w.X)+ox, float32(w.Y)+oy,
			float32(w.Radius), float32(w.Thickness), cfg.JamWaveColor, false)
	})
}

func drawPlayer(e *ecs.ECS, screen *ebiten.Image, ox, oy float32) {
	playerEntry, ok := components.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	hp := components.Health.Get(playerEntry)
	if hp.Current <= 0 {
		return
	}

	// Blink through the grace period.
	if player.InvulnFrames > 0 && int(player.InvulnFrames/4)%2 == 0 {
		return
	}

	o := components.Object.Get(playerEntry)
	x := float32(o.X) + ox
	y := float32(o.Y) + oy
	w := float32(o.W)
	h := float32(o.H)

	hull := cfg.PlayerHullColor
	if player.Jammed() {
		hull = cfg.JamWaveColor
	}
	vector.DrawFilledRect(screen, x+w*0.4, y, w*0.2, h, hull, false)
	vector.DrawFilledRect(screen, x, y+h*0.45, w, h*0.3, hull, false)
	vector.DrawFilledCircle(screen, x+w/2, y+h*0.25, w*0.12, cfg.Cyan, false)
}

func drawParticles(e *ecs.ECS, screen *ebiten.Image, ox, oy float32) {
	components.Particle.Each(e.World, func(entry *donburi.Entry) {
		p := components.Particle.Get(entry)
		if p.Life <= 0 {
			return
		}
		clr := p.Color
		clr.A = uint8(float64(clr.A) * gamemath.Clamp(p.Life, 0, 1))
		if p.Shockwave {
			vector.StrokeCircle(screen,
				float32(p.X)+ox, float32(p.Y)+oy,
				float32(p.Size), 3, clr, false)
			return
		}
		vector.DrawFilledCircle(screen,
			float32(p.X)+ox, float32(p.Y)+oy,
			float32(p.Size), clr, false)
	})
}

func drawFloatingTexts(e *ecs.ECS, screen *ebiten.Image, ox, oy float32) {
	face := fonts.Small.Get()
	components.FloatingText.Each(e.World, func(entry *donburi.Entry) {
		t := components.FloatingText.Get(entry)
		if t.Life <= 0 {
			return
		}
		text.Draw(screen, t.Text, face, int(t.X)+int(ox), int(t.Y)+int(oy), t.Color)
	})
}
