package tags

import "github.com/yohamta/donburi"

var (
	Player       = donburi.NewTag().SetName("Player")
	Enemy        = donburi.NewTag().SetName("Enemy")
	Boss         = donburi.NewTag().SetName("Boss")
	PlayerBullet = donburi.NewTag().SetName("PlayerBullet")
	EnemyBullet  = donburi.NewTag().SetName("EnemyBullet")
	EnemyMissile = donburi.NewTag().SetName("EnemyMissile")
	EnemyWave    = donburi.NewTag().SetName("EnemyWave")
	Item         = donburi.NewTag().SetName("Item")
	Particle     = donburi.NewTag().SetName("Particle")
	FloatingText = donburi.NewTag().SetName("FloatingText")
)

// Resolv tags for the collision space
const (
	ResolvPlayer       = "player"
	ResolvEnemy        = "enemy"
	ResolvBoss         = "boss"
	ResolvPlayerBullet = "playerBullet"
	ResolvEnemyShot    = "enemyShot"
	ResolvMissile      = "missile"
	ResolvItem         = "item"
)
