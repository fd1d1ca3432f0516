package liquidacion

import (
	"github.com/clinicasmiley/api-admin/internal/registros"
	"github.com/clinicasmiley/api-admin/internal/servicios"
	"github.com/shopspring/decimal"
)

// Porcentajes de comisión. Las auxiliares tienen tarifas fijas según la
// propiedad del paciente; las doctoras usan su nivel de porcentaje, con
// estos valores de respaldo cuando el nivel no se puede resolver.
const (
	PorcentajeAuxiliarPropio  = 0.20
	PorcentajeAuxiliarClinica = 0.10
	PorcentajeBase            = 0.40
)

// NivelConvenio es el nivel histórico del convenio al 50%.
const NivelConvenio = 2

// PorcentajesPorNivel centraliza los valores de respaldo por nivel; todo
// camino que necesite un porcentaje por defecto pasa por aquí.
var PorcentajesPorNivel = map[uint]float64{
	NivelConvenio: 0.50,
}

// PorcentajePorDefecto retorna el respaldo para un nivel de doctora.
func PorcentajePorDefecto(nivel uint) float64 {
	if p, ok := PorcentajesPorNivel[nivel]; ok {
		return p
	}
	return PorcentajeBase
}

// ResolverPorcentaje busca la fracción de un nivel de doctora. Un error
// no detiene la liquidación: se aplica PorcentajePorDefecto.
type ResolverPorcentaje func(nivel uint) (float64, error)

// Grupo reúne los registros de un mismo paciente y servicio; es la
// unidad que se clasifica y se liquida.
type Grupo struct {
	Clave     string
	Registros []registros.RegistroTratamiento
}

// ClaveGrupo arma la llave natural paciente-servicio de un registro.
func ClaveGrupo(r registros.RegistroTratamiento) string {
	return r.Paciente + "-" + r.Servicio
}

// AgruparRegistros particiona los registros por paciente y servicio,
// conservando el orden de llegada de la lista fuente.
func AgruparRegistros(regs []registros.RegistroTratamiento) []Grupo {
	indice := make(map[string]int)
	var grupos []Grupo
	for _, r := range regs {
		clave := ClaveGrupo(r)
		i, ok := indice[clave]
		if !ok {
			i = len(grupos)
			indice[clave] = i
			grupos = append(grupos, Grupo{Clave: clave})
		}
		grupos[i].Registros = append(grupos[i].Registros, r)
	}
	return grupos
}

// SaldoGrupo suma el valor liquidado (saldo pendiente) del grupo.
func SaldoGrupo(g Grupo) float64 {
	var saldo float64
	for _, r := range g.Registros {
		saldo += r.ValorLiquidado
	}
	return saldo
}

func todasConFechaFinal(g Grupo) bool {
	for _, r := range g.Registros {
		if r.FechaFinal == nil {
			return false
		}
	}
	return true
}

// GrupoCompleto decide si un grupo está listo para liquidar:
//   - todas las sesiones con fecha final y saldo en cero, o
//   - tratamiento multisesión sin todas las fechas pero con saldo en cero.
//
// Un grupo de una sola sesión, sin fecha y con saldo en cero queda
// pendiente: ninguna de las dos ramas lo cubre. Es el comportamiento
// histórico y está fijado por prueba; cambiarlo requiere decisión de
// producto.
func GrupoCompleto(g Grupo) bool {
	if len(g.Registros) == 0 {
		return false
	}
	conFechas := todasConFechaFinal(g)
	saldo := SaldoGrupo(g)
	if conFechas && saldo <= 0 {
		return true
	}
	if g.Registros[0].Sesiones > 1 && !conFechas && saldo <= 0 {
		return true
	}
	return false
}

// Detalle es el desglose de la liquidación de un grupo.
type Detalle struct {
	Paciente         string  `json:"paciente"`
	Servicio         string  `json:"servicio"`
	Sesiones         int     `json:"sesiones"`
	ValorBruto       float64 `json:"valorBruto"`
	CostoLaboratorio float64 `json:"costoLaboratorio"`
	ValorNeto        float64 `json:"valorNeto"`
	Porcentaje       float64 `json:"porcentaje"`
	ValorAPagar      float64 `json:"valorAPagar"`
	RegistroIDs      []uint  `json:"registroIds"`
}

// LiquidarGrupos computa el desglose de los grupos completos del lote.
// Los grupos que no pasan GrupoCompleto no se liquidan: sus claves se
// retornan como pendientes y sus registros siguen en el pozo.
func LiquidarGrupos(
	grupos []Grupo,
	catalogo map[string]servicios.Servicio,
	costosLab map[string]float64,
	esAuxiliar bool,
	resolver ResolverPorcentaje,
) ([]Detalle, []string, float64) {
	detalles := make([]Detalle, 0, len(grupos))
	var pendientes []string
	suma := decimal.Zero
	for _, g := range grupos {
		if !GrupoCompleto(g) {
			pendientes = append(pendientes, g.Clave)
			continue
		}
		servicio, ok := catalogo[g.Registros[0].Servicio]
		if !ok {
			// Servicio retirado del catálogo: se liquida con lo que
			// quedó en el registro.
			servicio = servicios.Servicio{
				Nombre:   g.Registros[0].Servicio,
				Valor:    g.Registros[0].Total,
				Sesiones: g.Registros[0].Sesiones,
			}
		}
		d := CalcularLiquidacion(
			g,
			servicio,
			costosLab[servicio.Nombre],
			esAuxiliar,
			g.Registros[0].EsPacientePropio,
			resolver,
		)
		detalles = append(detalles, d)
		suma = suma.Add(decimal.NewFromFloat(d.ValorAPagar))
	}
	return detalles, pendientes, suma.Round(2).InexactFloat64()
}

// CalcularLiquidacion computa el valor a pagar de un grupo completo.
//
// Sesiones cobradas: las del servicio si todo el grupo tiene fecha
// final, si no una por registro. El costo de laboratorio se descuenta
// completo aunque se cobren sesiones parciales; el neto nunca baja de
// cero. El porcentaje de doctora sale del resolutor y, si este falla,
// del respaldo por nivel.
func CalcularLiquidacion(
	g Grupo,
	servicio servicios.Servicio,
	costoLab float64,
	esAuxiliar bool,
	pacientePropio bool,
	resolver ResolverPorcentaje,
) Detalle {
	sesiones := len(g.Registros)
	if todasConFechaFinal(g) {
		sesiones = servicio.Sesiones
	}

	bruto := decimal.NewFromFloat(servicio.Valor).
		Mul(decimal.NewFromInt(int64(sesiones)))
	neto := bruto.Sub(decimal.NewFromFloat(costoLab))
	if neto.IsNegative() {
		neto = decimal.Zero
	}

	var porcentaje float64
	switch {
	case esAuxiliar && pacientePropio:
		porcentaje = PorcentajeAuxiliarPropio
	case esAuxiliar:
		porcentaje = PorcentajeAuxiliarClinica
	default:
		nivel := uint(0)
		if len(g.Registros) > 0 {
			nivel = g.Registros[0].IDPorcentaje
		}
		porcentaje = PorcentajePorDefecto(nivel)
		if resolver != nil {
			if v, err := resolver(nivel); err == nil && v >= 0 && v <= 1 {
				porcentaje = v
			}
		}
	}

	pagar := neto.Mul(decimal.NewFromFloat(porcentaje)).Round(2)

	ids := make([]uint, 0, len(g.Registros))
	var paciente string
	if len(g.Registros) > 0 {
		paciente = g.Registros[0].Paciente
	}
	for _, r := range g.Registros {
		ids = append(ids, r.ID)
	}

	return Detalle{
		Paciente:         paciente,
		Servicio:         servicio.Nombre,
		Sesiones:         sesiones,
		ValorBruto:       bruto.Round(2).InexactFloat64(),
		CostoLaboratorio: costoLab,
		ValorNeto:        neto.Round(2).InexactFloat64(),
		Porcentaje:       porcentaje,
		ValorAPagar:      pagar.InexactFloat64(),
		RegistroIDs:      ids,
	}
}
