package auxiliares

import (
	"time"

	"gorm.io/gorm"
)

// Auxiliar es personal de apoyo clínico. Su comisión no usa niveles de
// porcentaje: liquida 20% sobre pacientes propios y 10% sobre pacientes
// de la clínica.
type Auxiliar struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Nombre    string `gorm:"size:255;not null;uniqueIndex" json:"nombre"`
	Documento string `gorm:"size:50" json:"documento"`
	Telefono  string `gorm:"size:50" json:"telefono"`
	SedeID    uint   `gorm:"index" json:"sedeId"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Auxiliar{})
}
