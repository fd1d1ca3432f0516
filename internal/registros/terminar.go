package registros

import "time"

// MetodoEfectivo alimenta el cuadre de caja de la sede al cerrar citas.
const MetodoEfectivo = "Efectivo"

// aplicarTerminacion cierra en memoria todas las sesiones de un grupo:
// fija la fecha final, pasa el saldo pendiente a valor pagado, deja el
// saldo en cero y anota el método de pago. Retorna la suma de saldos que
// quedó pagada, que es el delta de caja si el pago fue en efectivo.
func aplicarTerminacion(grupo []RegistroTratamiento, fecha time.Time, metodo string) float64 {
	var saldo float64
	for i := range grupo {
		saldo += grupo[i].ValorLiquidado
		grupo[i].FechaFinal = &fecha
		grupo[i].ValorPagado += grupo[i].ValorLiquidado
		grupo[i].ValorLiquidado = 0
		grupo[i].MetodoPago = metodo
	}
	return saldo
}
