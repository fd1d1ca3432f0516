package gastos

import (
	"time"

	"gorm.io/gorm"
)

// Gasto es un egreso de la clínica, independiente de los registros de
// tratamiento.
type Gasto struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Concepto    string    `gorm:"size:255;not null" json:"concepto"`
	Proveedor   string    `gorm:"size:255" json:"proveedor"`
	Tipo        string    `gorm:"size:100" json:"tipo"`
	Valor       float64   `gorm:"not null;default:0" json:"valor"`
	Fecha       time.Time `gorm:"not null;index" json:"fecha"`
	Responsable string    `gorm:"size:255" json:"responsable"`
	Comentario  string    `json:"comentario"`
	SedeID      uint      `gorm:"index" json:"sedeId"`

	CreatedAt time.Time `json:"createdAt"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Gasto{})
}
