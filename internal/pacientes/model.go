package pacientes

import (
	"time"

	"gorm.io/gorm"
)

// Paciente guarda el saldo a favor ("crédito") acumulado por abonos.
type Paciente struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	Nombre    string  `gorm:"size:255;not null;index" json:"nombre"`
	Documento string  `gorm:"size:50;uniqueIndex" json:"documento"`
	Credito   float64 `gorm:"not null;default:0" json:"credito"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Paciente{})
}
