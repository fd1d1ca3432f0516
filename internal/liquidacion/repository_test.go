package liquidacion

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHastaExclusivoIncluyeElDiaDeCorte(t *testing.T) {
	// La fecha de corte llega parseada a medianoche; un lote liquidado
	// esa misma tarde debe quedar dentro del rango.
	hasta := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	liquidadoEsaTarde := time.Date(2026, 3, 1, 16, 45, 0, 0, time.UTC)
	liquidadoAlDiaSiguiente := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	limite := hastaExclusivo(hasta)

	assert.True(t, liquidadoEsaTarde.Before(limite))
	assert.False(t, liquidadoAlDiaSiguiente.Before(limite))
}
