package usuarios

import (
	"time"

	"gorm.io/gorm"
)

// Usuario es una cuenta de acceso a la consola administrativa.
type Usuario struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Usuario    string `gorm:"size:100;not null;uniqueIndex" json:"usuario"`
	Nombre     string `gorm:"size:255" json:"nombre"`
	Contrasena string `gorm:"size:255;not null" json:"-"`
	EsAdmin    bool   `gorm:"not null;default:false" json:"esAdmin"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Usuario{})
}
