package liquidacion

import (
	"errors"
	"testing"
	"time"

	"github.com/clinicasmiley/api-admin/internal/registros"
	"github.com/clinicasmiley/api-admin/internal/servicios"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fecha(d int) *time.Time {
	t := time.Date(2026, 2, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestAgruparRegistrosEsParticion(t *testing.T) {
	regs := []registros.RegistroTratamiento{
		{ID: 1, Paciente: "Ana Ruiz", Servicio: "Ortodoncia"},
		{ID: 2, Paciente: "Luis Gil", Servicio: "Resina"},
		{ID: 3, Paciente: "Ana Ruiz", Servicio: "Ortodoncia"},
		{ID: 4, Paciente: "Ana Ruiz", Servicio: "Resina"},
	}

	grupos := AgruparRegistros(regs)

	require.Len(t, grupos, 3)
	assert.Equal(t, "Ana Ruiz-Ortodoncia", grupos[0].Clave)
	assert.Equal(t, "Luis Gil-Resina", grupos[1].Clave)
	assert.Equal(t, "Ana Ruiz-Resina", grupos[2].Clave)

	// Cada registro aparece exactamente una vez entre todos los grupos.
	vistos := map[uint]int{}
	total := 0
	for _, g := range grupos {
		for _, r := range g.Registros {
			vistos[r.ID]++
			total++
		}
	}
	assert.Equal(t, len(regs), total)
	for id, n := range vistos {
		assert.Equalf(t, 1, n, "registro %d repetido", id)
	}
}

func TestGrupoCompletoTodasLasFechasYSaldoCero(t *testing.T) {
	g := Grupo{Registros: []registros.RegistroTratamiento{
		{Sesiones: 2, FechaFinal: fecha(1), ValorLiquidado: 0},
		{Sesiones: 2, FechaFinal: fecha(8), ValorLiquidado: 0},
	}}
	assert.True(t, GrupoCompleto(g))
}

func TestGrupoCompletoMultisesionSinFechasConSaldoCero(t *testing.T) {
	// Dos registros de un servicio de 3 sesiones, ninguno con fecha,
	// saldo en cero: la rama multisesión lo da por completo.
	g := Grupo{Registros: []registros.RegistroTratamiento{
		{Sesiones: 3, ValorLiquidado: 0},
		{Sesiones: 3, ValorLiquidado: 0},
	}}
	assert.True(t, GrupoCompleto(g))
}

func TestGrupoPendientePorSaldo(t *testing.T) {
	g := Grupo{Registros: []registros.RegistroTratamiento{
		{Sesiones: 2, FechaFinal: fecha(1), ValorLiquidado: 50000},
		{Sesiones: 2, FechaFinal: fecha(8), ValorLiquidado: 0},
	}}
	assert.False(t, GrupoCompleto(g))
}

// Comportamiento histórico fijado: una sola sesión, sin fecha final y
// con saldo en cero queda pendiente aunque ya no se deba nada.
func TestGrupoUnaSesionSinFechaSaldoCeroQuedaPendiente(t *testing.T) {
	g := Grupo{Registros: []registros.RegistroTratamiento{
		{Sesiones: 1, ValorLiquidado: 0},
	}}
	assert.False(t, GrupoCompleto(g))
}

func TestCalcularLiquidacionDoctoraNivelConvenio(t *testing.T) {
	// Servicio de 100.000 x 2 sesiones, ambas con fecha, laboratorio
	// 10.000, nivel 2: bruto 200.000, neto 190.000, 50% = 95.000.
	g := Grupo{Registros: []registros.RegistroTratamiento{
		{ID: 1, Paciente: "Ana Ruiz", Servicio: "Ortodoncia", Sesiones: 2, FechaFinal: fecha(1), IDPorcentaje: 2},
		{ID: 2, Paciente: "Ana Ruiz", Servicio: "Ortodoncia", Sesiones: 2, FechaFinal: fecha(8), IDPorcentaje: 2},
	}}
	servicio := servicios.Servicio{Nombre: "Ortodoncia", Valor: 100000, Sesiones: 2}

	fallaResolver := func(nivel uint) (float64, error) {
		return 0, errors.New("sin conexión")
	}
	d := CalcularLiquidacion(g, servicio, 10000, false, false, fallaResolver)

	assert.Equal(t, 2, d.Sesiones)
	assert.Equal(t, 200000.0, d.ValorBruto)
	assert.Equal(t, 190000.0, d.ValorNeto)
	assert.Equal(t, 0.50, d.Porcentaje)
	assert.Equal(t, 95000.0, d.ValorAPagar)
	assert.Equal(t, []uint{1, 2}, d.RegistroIDs)
}

func TestCalcularLiquidacionDoctoraResolverGanaAlRespaldo(t *testing.T) {
	g := Grupo{Registros: []registros.RegistroTratamiento{
		{Paciente: "Ana Ruiz", Servicio: "Resina", Sesiones: 1, FechaFinal: fecha(1), IDPorcentaje: 5},
	}}
	servicio := servicios.Servicio{Nombre: "Resina", Valor: 80000, Sesiones: 1}

	resolver := func(nivel uint) (float64, error) {
		assert.Equal(t, uint(5), nivel)
		return 0.45, nil
	}
	d := CalcularLiquidacion(g, servicio, 0, false, false, resolver)

	assert.Equal(t, 0.45, d.Porcentaje)
	assert.Equal(t, 36000.0, d.ValorAPagar)
}

func TestCalcularLiquidacionDoctoraNivelDesconocidoUsaBase(t *testing.T) {
	g := Grupo{Registros: []registros.RegistroTratamiento{
		{Paciente: "Ana Ruiz", Servicio: "Resina", Sesiones: 1, FechaFinal: fecha(1), IDPorcentaje: 7},
	}}
	servicio := servicios.Servicio{Nombre: "Resina", Valor: 80000, Sesiones: 1}

	d := CalcularLiquidacion(g, servicio, 0, false, false, nil)

	assert.Equal(t, PorcentajeBase, d.Porcentaje)
	assert.Equal(t, 32000.0, d.ValorAPagar)
}

func TestCalcularLiquidacionAuxiliarPacientePropio(t *testing.T) {
	// Una sesión sin fecha final: cuenta una sesión por registro.
	g := Grupo{Registros: []registros.RegistroTratamiento{
		{Paciente: "Luis Gil", Servicio: "Limpieza", Sesiones: 1, EsPacientePropio: true},
	}}
	servicio := servicios.Servicio{Nombre: "Limpieza", Valor: 60000, Sesiones: 4}

	d := CalcularLiquidacion(g, servicio, 0, true, true, nil)

	assert.Equal(t, 1, d.Sesiones)
	assert.Equal(t, 60000.0, d.ValorBruto)
	assert.Equal(t, PorcentajeAuxiliarPropio, d.Porcentaje)
	assert.Equal(t, 12000.0, d.ValorAPagar)
}

func TestCalcularLiquidacionAuxiliarPacienteClinica(t *testing.T) {
	g := Grupo{Registros: []registros.RegistroTratamiento{
		{Paciente: "Luis Gil", Servicio: "Limpieza", Sesiones: 1, FechaFinal: fecha(1)},
	}}
	servicio := servicios.Servicio{Nombre: "Limpieza", Valor: 60000, Sesiones: 1}

	d := CalcularLiquidacion(g, servicio, 0, true, false, nil)

	assert.Equal(t, PorcentajeAuxiliarClinica, d.Porcentaje)
	assert.Equal(t, 6000.0, d.ValorAPagar)
}

func TestCalcularLiquidacionNetoNuncaNegativo(t *testing.T) {
	// Laboratorio más caro que el bruto: neto y pago quedan en cero.
	g := Grupo{Registros: []registros.RegistroTratamiento{
		{Paciente: "Ana Ruiz", Servicio: "Sellante", Sesiones: 1, FechaFinal: fecha(1), IDPorcentaje: 2},
	}}
	servicio := servicios.Servicio{Nombre: "Sellante", Valor: 30000, Sesiones: 1}

	d := CalcularLiquidacion(g, servicio, 45000, false, false, nil)

	assert.Equal(t, 0.0, d.ValorNeto)
	assert.Equal(t, 0.0, d.ValorAPagar)
}

func TestCalcularLiquidacionEsIdempotente(t *testing.T) {
	g := Grupo{Registros: []registros.RegistroTratamiento{
		{Paciente: "Ana Ruiz", Servicio: "Ortodoncia", Sesiones: 2, FechaFinal: fecha(1), IDPorcentaje: 2},
		{Paciente: "Ana Ruiz", Servicio: "Ortodoncia", Sesiones: 2, FechaFinal: fecha(8), IDPorcentaje: 2},
	}}
	servicio := servicios.Servicio{Nombre: "Ortodoncia", Valor: 100000, Sesiones: 2}

	a := CalcularLiquidacion(g, servicio, 10000, false, false, nil)
	b := CalcularLiquidacion(g, servicio, 10000, false, false, nil)

	assert.Equal(t, a, b)
}

func TestLiquidarGruposOmiteGruposPendientes(t *testing.T) {
	// Grupo completo de Ana y grupo de Luis con saldo vivo en el mismo
	// lote: solo el de Ana se liquida, el de Luis queda como pendiente.
	regs := []registros.RegistroTratamiento{
		{ID: 1, Paciente: "Ana Ruiz", Servicio: "Ortodoncia", Sesiones: 2, FechaFinal: fecha(1), IDPorcentaje: 2},
		{ID: 2, Paciente: "Ana Ruiz", Servicio: "Ortodoncia", Sesiones: 2, FechaFinal: fecha(8), IDPorcentaje: 2},
		{ID: 3, Paciente: "Luis Gil", Servicio: "Resina", Sesiones: 2, FechaFinal: fecha(8), ValorLiquidado: 40000},
	}
	catalogo := map[string]servicios.Servicio{
		"Ortodoncia": {Nombre: "Ortodoncia", Valor: 100000, Sesiones: 2},
		"Resina":     {Nombre: "Resina", Valor: 80000, Sesiones: 2},
	}

	detalles, pendientes, total := LiquidarGrupos(
		AgruparRegistros(regs),
		catalogo,
		map[string]float64{"Ortodoncia": 10000},
		false,
		nil,
	)

	require.Len(t, detalles, 1)
	assert.Equal(t, "Ana Ruiz", detalles[0].Paciente)
	assert.Equal(t, []uint{1, 2}, detalles[0].RegistroIDs)
	assert.Equal(t, 95000.0, total)
	assert.Equal(t, []string{"Luis Gil-Resina"}, pendientes)
}

func TestLiquidarGruposSinGruposCompletos(t *testing.T) {
	regs := []registros.RegistroTratamiento{
		{ID: 1, Paciente: "Luis Gil", Servicio: "Resina", Sesiones: 1, ValorLiquidado: 40000},
	}
	catalogo := map[string]servicios.Servicio{
		"Resina": {Nombre: "Resina", Valor: 80000, Sesiones: 1},
	}

	detalles, pendientes, total := LiquidarGrupos(AgruparRegistros(regs), catalogo, nil, false, nil)

	assert.Empty(t, detalles)
	assert.Equal(t, []string{"Luis Gil-Resina"}, pendientes)
	assert.Zero(t, total)
}

func TestNuevoLoteConservaElDesglose(t *testing.T) {
	g := Grupo{Registros: []registros.RegistroTratamiento{
		{ID: 1, Paciente: "Ana Ruiz", Servicio: "Ortodoncia", Sesiones: 2, FechaFinal: fecha(1), IDPorcentaje: 2},
		{ID: 2, Paciente: "Ana Ruiz", Servicio: "Ortodoncia", Sesiones: 2, FechaFinal: fecha(8), IDPorcentaje: 2},
	}}
	servicio := servicios.Servicio{Nombre: "Ortodoncia", Valor: 100000, Sesiones: 2}
	d := CalcularLiquidacion(g, servicio, 10000, false, false, nil)

	inicio := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	fin := time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)
	fechaLiq := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	lote, ids := NuevoLote("ref-123", "Dra. Marín", false, inicio, fin, fechaLiq, d.ValorAPagar, []Detalle{d})

	assert.Equal(t, "ref-123", lote.Referencia)
	assert.Equal(t, "Dra. Marín", lote.Profesional)
	assert.Equal(t, 95000.0, lote.Total)
	assert.Equal(t, []uint{1, 2}, ids)

	// El histórico reproduce los mismos números del desglose calculado.
	require.Len(t, lote.Detalles, 1)
	guardado := lote.Detalles[0]
	assert.Equal(t, d.Paciente, guardado.Paciente)
	assert.Equal(t, d.Servicio, guardado.Servicio)
	assert.Equal(t, d.Sesiones, guardado.Sesiones)
	assert.Equal(t, d.ValorBruto, guardado.ValorBruto)
	assert.Equal(t, d.CostoLaboratorio, guardado.CostoLaboratorio)
	assert.Equal(t, d.ValorNeto, guardado.ValorNeto)
	assert.Equal(t, d.Porcentaje, guardado.Porcentaje)
	assert.Equal(t, d.ValorAPagar, guardado.ValorAPagar)
}

func TestPorcentajePorDefecto(t *testing.T) {
	assert.Equal(t, 0.50, PorcentajePorDefecto(NivelConvenio))
	assert.Equal(t, PorcentajeBase, PorcentajePorDefecto(1))
	assert.Equal(t, PorcentajeBase, PorcentajePorDefecto(99))
}
