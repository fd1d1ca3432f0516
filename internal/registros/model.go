package registros

import (
	"time"

	"gorm.io/gorm"
)

// RegistroTratamiento es una fila por paciente/servicio/sesión. Las
// sesiones de un mismo tratamiento comparten paciente y servicio; esa
// pareja es la llave natural del grupo que se liquida como unidad.
type RegistroTratamiento struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	Profesional      string     `gorm:"size:255;not null;index" json:"profesional"`
	Paciente         string     `gorm:"size:255;not null;index" json:"paciente"`
	Documento        string     `gorm:"size:50" json:"documento"`
	Servicio         string     `gorm:"size:255;not null;index" json:"servicio"`
	Sesiones         int        `gorm:"not null;default:1" json:"sesiones"`
	Fecha            time.Time  `gorm:"not null;index" json:"fecha"`
	FechaFinal       *time.Time `json:"fechaFinal"`
	Abono            float64    `gorm:"not null;default:0" json:"abono"`
	MetodoPagoAbono  string     `gorm:"size:100" json:"metodoPagoAbono"`
	Descuento        float64    `gorm:"not null;default:0" json:"descuento"`
	Total            float64    `gorm:"not null;default:0" json:"total"`
	ValorLiquidado   float64    `gorm:"not null;default:0" json:"valorLiquidado"`
	ValorPagado      float64    `gorm:"not null;default:0" json:"valorPagado"`
	MetodoPago       string     `gorm:"size:100" json:"metodoPago"`
	EsPacientePropio bool       `gorm:"not null;default:false" json:"esPacientePropio"`
	IDPorcentaje     uint       `json:"idPorcentaje"`
	Observaciones    string     `json:"observaciones"`
	SedeID           uint       `gorm:"index" json:"sedeId"`
	Liquidado        bool       `gorm:"not null;default:false;index" json:"liquidado"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&RegistroTratamiento{})
}
