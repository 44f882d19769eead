package auth

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	PerfilFornecedor = "fornecedor"
	PerfilCliente    = "cliente"
)

var jwtSecret []byte

func segredo() []byte {
	if jwtSecret == nil {
		s := os.Getenv("JWT_SECRET")
		if s == "" {
			log.Fatal("JWT_SECRET não definida")
		}
		jwtSecret = []byte(s)
	}
	return jwtSecret
}

type Claims struct {
	UserID uint   `json:"userId"`
	Perfil string `json:"perfil"`
	jwt.RegisteredClaims
}

// GerarToken gera um JWT HS256 com validade de 24h para o perfil informado
func GerarToken(userID uint, perfil string) (string, error) {
	claims := &Claims{
		UserID: userID,
		Perfil: perfil,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(segredo())
}

// ValidarToken valida o token e retorna as claims
func ValidarToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return segredo(), nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("token inválido ou expirado: %w", err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, fmt.Errorf("não foi possível extrair claims")
	}
	return claims, nil
}
