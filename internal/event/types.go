// internal/event/types.go
package event

const (
	TargetSpawned      EventType = "TargetSpawned"      // Цель появилась
	TargetKilled       EventType = "TargetKilled"       // Цель уничтожена кликом
	ProjectileFired    EventType = "ProjectileFired"    // Выстрел
	ProjectilesExpired EventType = "ProjectilesExpired" // Снаряды вылетели за поле
	ClickUnrouted      EventType = "ClickUnrouted"      // Клик по неизвестной поверхности
	LayoutReloaded     EventType = "LayoutReloaded"
)

// SurfaceData is the payload of every surface-scoped event.
type SurfaceData struct {
	SurfaceID string
	X, Y      float64 // playfield coordinates of the click, if any
	Count     int     // projectiles fired, expired or discarded by a kill
}
