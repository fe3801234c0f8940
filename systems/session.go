package systems

import (
	"github.com/automoto/skystrike/components"
	"github.com/yohamta/donburi/ecs"
)

// GetSession returns the run's session state, or nil before a run starts.
func GetSession(e *ecs.ECS) *components.SessionData {
	entry, ok := components.Session.First(e.World)
	if !ok {
		return nil
	}
	return components.Session.Get(entry)
}

// AddScore credits points to the run. Score only ever goes up; negative
// amounts are ignored rather than clamped so a bad caller is visible in
// tests.
func AddScore(session *components.SessionData, points int) {
	if points > 0 {
		session.Score += points
	}
}

// TriggerScreenShake starts (or extends) the cosmetic camera shake.
func TriggerScreenShake(session *components.SessionData, intensity, duration float64) {
	if duration > session.ShakeFrames {
		session.ShakeFrames = duration
	}
	if intensity > session.ShakeIntensity {
		session.ShakeIntensity = intensity
	}
}

// ResizeViewport updates the play-field bounds on a host resize. Entity
// state is untouched; the movement systems re-clamp on the next frame.
func ResizeViewport(e *ecs.ECS, width, height float64) {
	session := GetSession(e)
	if session == nil {
		return
	}
	session.Width = width
	session.Height = height
}

// WithGameplayChecks wraps a gameplay system so it only runs while the
// run is live. Effects and cleanup systems stay unwrapped so death VFX
// keep playing after the terminal transition.
func WithGameplayChecks(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		session := GetSession(e)
		if session == nil || session.GameOver {
			return
		}
		system(e)
	}
}
