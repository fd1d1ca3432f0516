package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerarYValidarToken(t *testing.T) {
	require.NoError(t, Configurar("secreto-de-prueba"))

	token, err := GenerarToken(7, true)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidarToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.True(t, claims.EsAdmin)
}

func TestValidarTokenRechazaFirmaAjena(t *testing.T) {
	require.NoError(t, Configurar("secreto-de-prueba"))

	otro := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{UserID: 1})
	firmado, err := otro.SignedString([]byte("otro-secreto"))
	require.NoError(t, err)

	_, err = ValidarToken(firmado)
	assert.Error(t, err)
}

func TestRenovarTokenVencido(t *testing.T) {
	require.NoError(t, Configurar("secreto-de-prueba"))

	// Token vencido hace una hora pero emitido dentro de la ventana.
	now := time.Now()
	claims := &Claims{
		UserID: 3,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now.Add(-25 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-1 * time.Hour)),
		},
	}
	vencido, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secreto-de-prueba"))
	require.NoError(t, err)

	_, err = ValidarToken(vencido)
	require.Error(t, err)

	nuevo, err := RenovarToken(vencido)
	require.NoError(t, err)

	renovadas, err := ValidarToken(nuevo)
	require.NoError(t, err)
	assert.Equal(t, uint(3), renovadas.UserID)
}

func TestRenovarTokenFueraDeVentana(t *testing.T) {
	require.NoError(t, Configurar("secreto-de-prueba"))

	claims := &Claims{
		UserID: 3,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-31 * 24 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-30 * 24 * time.Hour)),
		},
	}
	viejo, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secreto-de-prueba"))
	require.NoError(t, err)

	_, err = RenovarToken(viejo)
	assert.Error(t, err)
}
