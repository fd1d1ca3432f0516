package liquidacion

import (
	"time"

	"gorm.io/gorm"
)

// Liquidacion es un lote de comisión ya pagado. Es inmutable: solo se
// crea y se consulta; no hay edición ni borrado.
type Liquidacion struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Referencia       string    `gorm:"size:36;not null;uniqueIndex" json:"referencia"`
	Profesional      string    `gorm:"size:255;not null;index" json:"profesional"`
	EsAuxiliar       bool      `gorm:"not null;default:false" json:"esAuxiliar"`
	FechaInicio      time.Time `gorm:"not null" json:"fechaInicio"`
	FechaFin         time.Time `gorm:"not null" json:"fechaFin"`
	FechaLiquidacion time.Time `gorm:"not null" json:"fechaLiquidacion"`
	Total            float64   `gorm:"not null;default:0" json:"total"`

	Detalles []DetalleLiquidacion `gorm:"foreignKey:LiquidacionID;constraint:OnDelete:CASCADE" json:"detalles"`

	CreatedAt time.Time `json:"createdAt"`
}

// DetalleLiquidacion conserva el desglose por grupo tal como se mostró
// al momento de liquidar, para que el histórico reproduzca los mismos
// números.
type DetalleLiquidacion struct {
	ID               uint    `gorm:"primaryKey" json:"id"`
	LiquidacionID    uint    `gorm:"not null;index" json:"liquidacionId"`
	Paciente         string  `gorm:"size:255;not null" json:"paciente"`
	Servicio         string  `gorm:"size:255;not null" json:"servicio"`
	Sesiones         int     `gorm:"not null;default:0" json:"sesiones"`
	ValorBruto       float64 `gorm:"not null;default:0" json:"valorBruto"`
	CostoLaboratorio float64 `gorm:"not null;default:0" json:"costoLaboratorio"`
	ValorNeto        float64 `gorm:"not null;default:0" json:"valorNeto"`
	Porcentaje       float64 `gorm:"not null;default:0" json:"porcentaje"`
	ValorAPagar      float64 `gorm:"not null;default:0" json:"valorAPagar"`
}

// NuevoLote arma la liquidación persistible a partir del desglose ya
// calculado, con los mismos números que se mostraron en la previa, y
// retorna los ids de los registros que el lote cierra.
func NuevoLote(
	referencia, profesional string,
	esAuxiliar bool,
	inicio, fin, fechaLiquidacion time.Time,
	total float64,
	detalles []Detalle,
) (Liquidacion, []uint) {
	lote := Liquidacion{
		Referencia:       referencia,
		Profesional:      profesional,
		EsAuxiliar:       esAuxiliar,
		FechaInicio:      inicio,
		FechaFin:         fin,
		FechaLiquidacion: fechaLiquidacion,
		Total:            total,
	}
	var ids []uint
	for _, d := range detalles {
		lote.Detalles = append(lote.Detalles, DetalleLiquidacion{
			Paciente:         d.Paciente,
			Servicio:         d.Servicio,
			Sesiones:         d.Sesiones,
			ValorBruto:       d.ValorBruto,
			CostoLaboratorio: d.CostoLaboratorio,
			ValorNeto:        d.ValorNeto,
			Porcentaje:       d.Porcentaje,
			ValorAPagar:      d.ValorAPagar,
		})
		ids = append(ids, d.RegistroIDs...)
	}
	return lote, ids
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Liquidacion{}, &DetalleLiquidacion{})
}
