package registros

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAplicarTerminacion(t *testing.T) {
	fecha := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	grupo := []RegistroTratamiento{
		{Paciente: "Ana Ruiz", Servicio: "Ortodoncia", ValorLiquidado: 80000, ValorPagado: 20000},
		{Paciente: "Ana Ruiz", Servicio: "Ortodoncia", ValorLiquidado: 50000, ValorPagado: 0},
	}

	delta := aplicarTerminacion(grupo, fecha, MetodoEfectivo)

	assert.Equal(t, 130000.0, delta)
	for _, reg := range grupo {
		require.NotNil(t, reg.FechaFinal)
		assert.Equal(t, fecha, *reg.FechaFinal)
		assert.Zero(t, reg.ValorLiquidado)
		assert.Equal(t, MetodoEfectivo, reg.MetodoPago)
	}
	assert.Equal(t, 100000.0, grupo[0].ValorPagado)
	assert.Equal(t, 50000.0, grupo[1].ValorPagado)
}

func TestAplicarTerminacionSinSaldo(t *testing.T) {
	fecha := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	grupo := []RegistroTratamiento{
		{ValorLiquidado: 0, ValorPagado: 90000},
	}

	delta := aplicarTerminacion(grupo, fecha, "Transferencia")

	assert.Zero(t, delta)
	assert.Equal(t, 90000.0, grupo[0].ValorPagado)
	assert.Equal(t, "Transferencia", grupo[0].MetodoPago)
}
