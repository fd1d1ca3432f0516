package caja

import (
	"time"

	"gorm.io/gorm"
)

// CuadreCaja es el total corriente de efectivo de una sede. La base se
// fija manualmente al abrir el día; los pagos en efectivo la incrementan.
type CuadreCaja struct {
	ID     uint    `gorm:"primaryKey" json:"id"`
	SedeID uint    `gorm:"not null;uniqueIndex" json:"sedeId"`
	Base   float64 `gorm:"not null;default:0" json:"base"`

	UpdatedAt time.Time `json:"updatedAt"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&CuadreCaja{})
}
