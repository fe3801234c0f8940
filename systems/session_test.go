package systems

import (
	"testing"

	"github.com/automoto/skystrike/components"
	cfg "github.com/automoto/skystrike/config"
)

func TestResizeViewportReclampsPlayer(t *testing.T) {
	e, session, playerEntry := newTestRun(cfg.Normal)
	session.TimeScale = 1
	obj := components.Object.Get(playerEntry)

	SetPlayerTarget(e, session.Width-1, session.Height-1)
	for i := 0; i < 500; i++ {
		UpdatePlayer(e)
	}

	ResizeViewport(e, session.Width/2, session.Height/2)
	for i := 0; i < 500; i++ {
		UpdatePlayer(e)
	}
	if obj.X+obj.W > session.Width+1 || obj.Y+obj.H > session.Height+1 {
		t.Errorf("player not re-clamped after shrink: (%v, %v) in %vx%v field",
			obj.X, obj.Y, session.Width, session.Height)
	}
}

func TestScreenShakeExtendsNotShorten(t *testing.T) {
	_, session, _ := newTestRun(cfg.Normal)

	TriggerScreenShake(session, 4, 30)
	TriggerScreenShake(session, 2, 10)
	if session.ShakeFrames != 30 || session.ShakeIntensity != 4 {
		t.Errorf("weaker shake overrode a stronger one: frames=%v intensity=%v",
			session.ShakeFrames, session.ShakeIntensity)
	}
	TriggerScreenShake(session, 6, 50)
	if session.ShakeFrames != 50 || session.ShakeIntensity != 6 {
		t.Errorf("stronger shake did not extend: frames=%v intensity=%v",
			session.ShakeFrames, session.ShakeIntensity)
	}
}
