package servicios

import (
	"time"

	"gorm.io/gorm"
)

// Servicio es una entrada del catálogo general de tratamientos.
type Servicio struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Nombre      string  `gorm:"size:255;not null;uniqueIndex" json:"nombre"`
	Valor       float64 `gorm:"not null;default:0" json:"valor"`
	Sesiones    int     `gorm:"not null;default:1" json:"sesiones"`
	Descripcion string  `json:"descripcion"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ServicioEstadio es el catálogo paralelo de la sede Estadio, con sus
// propios precios y número de sesiones.
type ServicioEstadio struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Nombre      string  `gorm:"size:255;not null;uniqueIndex" json:"nombre"`
	Valor       float64 `gorm:"not null;default:0" json:"valor"`
	Sesiones    int     `gorm:"not null;default:1" json:"sesiones"`
	Descripcion string  `json:"descripcion"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Servicio{}, &ServicioEstadio{})
}
