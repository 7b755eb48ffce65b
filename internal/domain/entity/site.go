package entity

import "time"

// ConstructionSite representa una obra de construcción (unidad de alcance del inventario local).
type ConstructionSite struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
