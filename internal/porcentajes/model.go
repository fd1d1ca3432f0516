package porcentajes

import (
	"time"

	"gorm.io/gorm"
)

// Porcentaje es un nivel de comisión para doctoras. Valor es una fracción
// en [0,1]; por ejemplo el nivel de convenio 50% guarda 0.5.
type Porcentaje struct {
	ID     uint    `gorm:"primaryKey" json:"id"`
	Nombre string  `gorm:"size:100" json:"nombre"`
	Valor  float64 `gorm:"not null;default:0" json:"valor"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Porcentaje{})
}
