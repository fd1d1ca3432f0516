package sedes

import (
	"time"

	"gorm.io/gorm"
)

// Sede es una sucursal de la clínica. Catálogos y registros se filtran
// por sede.
type Sede struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Nombre    string `gorm:"size:255;not null;uniqueIndex" json:"nombre"`
	Direccion string `gorm:"size:255" json:"direccion"`
	Telefono  string `gorm:"size:50" json:"telefono"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Sede{})
}
