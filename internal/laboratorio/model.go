package laboratorio

import (
	"time"

	"gorm.io/gorm"
)

// CostoLaboratorio es el costo de un insumo de laboratorio asociado a un
// servicio. Un servicio puede tener varios insumos registrados; la
// liquidación descuenta la suma de todos.
type CostoLaboratorio struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Servicio    string  `gorm:"size:255;not null;index" json:"servicio"`
	Insumo      string  `gorm:"size:255;not null" json:"insumo"`
	Valor       float64 `gorm:"not null;default:0" json:"valor"`
	Descripcion string  `json:"descripcion"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&CostoLaboratorio{})
}
