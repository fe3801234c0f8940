package systems

import (
	cfg "github.com/automoto/skystrike/config"
	"github.com/yohamta/donburi/ecs"
)

// AdvanceClock converts the measured wall-clock delta into the normalized
// time scale every per-frame increment is multiplied by. Clamping bounds
// the effect of pathological frame gaps (a stalled or backgrounded host);
// the first frame assumes a 16 ms delta to avoid a degenerate spike.
func AdvanceClock(e *ecs.ECS, deltaMs float64) {
	session := GetSession(e)
	if session == nil {
		return
	}
	if session.FirstFrame {
		deltaMs = cfg.Clock.FirstDeltaMs
		session.FirstFrame = false
	}
	ts := deltaMs / cfg.Clock.BaseFrameMs
	if ts < cfg.Clock.MinTimeScale {
		ts = cfg.Clock.MinTimeScale
	}
	if ts > cfg.Clock.MaxTimeScale {
		ts = cfg.Clock.MaxTimeScale
	}
	session.TimeScale = ts
}
