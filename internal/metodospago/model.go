package metodospago

import (
	"time"

	"gorm.io/gorm"
)

// MetodoPago es un medio de pago aceptado (Efectivo, Transferencia, etc.).
// El nombre "Efectivo" es especial: los pagos con ese método alimentan el
// cuadre de caja de la sede.
type MetodoPago struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Nombre string `gorm:"size:100;not null;uniqueIndex" json:"nombre"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&MetodoPago{})
}
