package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Vida útil del token de acceso y ventana máxima para renovarlo.
const (
	AccessTTL  = 24 * time.Hour
	RefreshTTL = 30 * 24 * time.Hour
)

var jwtSecret []byte

// Configurar fija el secreto de firma. Debe llamarse una vez al arrancar.
func Configurar(secreto string) error {
	if secreto == "" {
		return errors.New("JWT_SECRET no definida")
	}
	jwtSecret = []byte(secreto)
	return nil
}

type Claims struct {
	UserID  uint `json:"userId"`
	EsAdmin bool `json:"esAdmin"`
	jwt.RegisteredClaims
}

// GenerarToken genera un JWT HS256 con validez de 24h.
func GenerarToken(userID uint, esAdmin bool) (string, error) {
	if len(jwtSecret) == 0 {
		return "", errors.New("secreto JWT no configurado")
	}
	now := time.Now()
	claims := &Claims{
		UserID:  userID,
		EsAdmin: esAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprint(userID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(AccessTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// ValidarToken valida firma y vigencia, y retorna las claims.
func ValidarToken(tokenStr string) (*Claims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{"HS256"}))
	token, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("token inválido o expirado: %w", err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, errors.New("no fue posible extraer las claims")
	}
	return claims, nil
}

// RenovarToken emite un token nuevo a partir de uno vencido o por vencer.
// Acepta tokens con firma válida emitidos hace menos de RefreshTTL; más allá
// de esa ventana el usuario debe autenticarse de nuevo.
func RenovarToken(tokenStr string) (string, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithoutClaimsValidation(),
	)
	token, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return "", fmt.Errorf("token inválido: %w", err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return "", errors.New("no fue posible extraer las claims")
	}
	if claims.IssuedAt == nil || time.Since(claims.IssuedAt.Time) > RefreshTTL {
		return "", errors.New("token fuera de la ventana de renovación")
	}
	return GenerarToken(claims.UserID, claims.EsAdmin)
}
