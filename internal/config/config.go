// internal/config/config.go
package config

import "image/color"

// Playfield and entity constants. They are fixed at build time; only the
// on-screen placement of surfaces comes from the layout file.
const (
	PlayfieldWidth  = 500
	PlayfieldHeight = 300

	TargetRadius     = 20.0
	ProjectileRadius = 5.0 // also the distance a projectile travels per tick
	FireSpawnOffset  = 7.0 // projectiles appear this far outside the target rim

	ScreenWidth  = 900
	ScreenHeight = 680
	TPS          = 60
	MaxDeltaTime = 0.06

	SurfaceStrokeWidth = 1.0
	HUDLineHeight      = 14
	HUDOffsetY         = 4
)

var (
	BackgroundColor    = color.RGBA{245, 245, 245, 255}
	SurfaceColor       = color.RGBA{255, 255, 255, 255}
	SurfaceStrokeColor = color.RGBA{120, 120, 120, 255}
	TextColor          = color.RGBA{40, 40, 40, 255}

	// rgba(90, 150, 77, 0.8) and rgba(230, 14, 58, 0.8) as non-premultiplied colours.
	TargetColor     = color.NRGBA{90, 150, 77, 204}
	ProjectileColor = color.NRGBA{230, 14, 58, 204}
)
