package doctoras

import (
	"time"

	"gorm.io/gorm"
)

// Doctora es una profesional del cuadro médico de la clínica.
type Doctora struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Nombre    string `gorm:"size:255;not null;uniqueIndex" json:"nombre"`
	Documento string `gorm:"size:50" json:"documento"`
	Telefono  string `gorm:"size:50" json:"telefono"`
	Correo    string `gorm:"size:255" json:"correo"`
	SedeID    uint   `gorm:"index" json:"sedeId"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Doctora{})
}
