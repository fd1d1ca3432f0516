package cuentas

import (
	"time"

	"gorm.io/gorm"
)

// Cuenta es una cuenta bancaria o de recaudo usada en los pagos.
type Cuenta struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Nombre string `gorm:"size:255;not null;uniqueIndex" json:"nombre"`
	Banco  string `gorm:"size:255" json:"banco"`
	Numero string `gorm:"size:100" json:"numero"`
	Tipo   string `gorm:"size:100" json:"tipo"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Cuenta{})
}
