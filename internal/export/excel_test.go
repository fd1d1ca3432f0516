package export

import (
	"testing"
	"time"

	"github.com/clinicasmiley/api-admin/internal/gastos"
	"github.com/clinicasmiley/api-admin/internal/liquidacion"
	"github.com/stretchr/testify/assert"
)

func TestConstruirLibroLiquidaciones(t *testing.T) {
	lotes := []liquidacion.Liquidacion{
		{
			Referencia:       "ref-123",
			Profesional:      "Dra. Marín",
			FechaLiquidacion: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
			Total:            95000,
			Detalles: []liquidacion.DetalleLiquidacion{
				{
					Paciente:         "Ana Ruiz",
					Servicio:         "Ortodoncia",
					Sesiones:         2,
					ValorBruto:       200000,
					CostoLaboratorio: 10000,
					ValorNeto:        190000,
					Porcentaje:       0.5,
					ValorAPagar:      95000,
				},
			},
		},
	}

	file := construirLibroLiquidaciones(lotes)
	const sheet = "Liquidaciones"

	assert.Equal(t, "Referencia", file.GetCellValue(sheet, "A1"))
	assert.Equal(t, "Valor a Pagar", file.GetCellValue(sheet, "K1"))
	assert.Equal(t, "ref-123", file.GetCellValue(sheet, "A2"))
	assert.Equal(t, "Dra. Marín", file.GetCellValue(sheet, "B2"))
	assert.Equal(t, "2026-03-01", file.GetCellValue(sheet, "C2"))
	assert.Equal(t, "Ana Ruiz", file.GetCellValue(sheet, "D2"))
	assert.Equal(t, "Ortodoncia", file.GetCellValue(sheet, "E2"))
	assert.Equal(t, "2", file.GetCellValue(sheet, "F2"))
	assert.Equal(t, "200000", file.GetCellValue(sheet, "G2"))
	assert.Equal(t, "95000", file.GetCellValue(sheet, "K2"))
}

func TestConstruirLibroGastos(t *testing.T) {
	lista := []gastos.Gasto{
		{
			Concepto:    "Guantes de nitrilo",
			Proveedor:   "Dental Supply",
			Tipo:        "Insumos",
			Valor:       120000,
			Fecha:       time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
			Responsable: "Recepción",
		},
	}

	file := construirLibroGastos(lista)
	const sheet = "Gastos"

	assert.Equal(t, "Fecha", file.GetCellValue(sheet, "A1"))
	assert.Equal(t, "2026-03-02", file.GetCellValue(sheet, "A2"))
	assert.Equal(t, "Guantes de nitrilo", file.GetCellValue(sheet, "B2"))
	assert.Equal(t, "Dental Supply", file.GetCellValue(sheet, "C2"))
	assert.Equal(t, "120000", file.GetCellValue(sheet, "E2"))
}
