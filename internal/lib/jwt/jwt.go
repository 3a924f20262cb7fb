// Package jwt реализует разбор и проверку сессионных JWT-токенов.
//
// Токены выпускает внешний провайдер аутентификации, сервис их только
// проверяет по общему секрету (HS256) и извлекает имя пользователя и роль.
package jwt

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// CustomClaims описывает пользовательские данные, хранящиеся в JWT.
type CustomClaims struct {
	Username             string `json:"username"` // Имя пользователя
	Role                 string `json:"role"`     // Роль пользователя
	jwt.RegisteredClaims        // Стандартные claims JWT (ExpiresAt, IssuedAt и пр.)
}

// Parser проверяет подпись и срок действия токенов по общему секрету.
type Parser struct {
	secretKey string
}

// NewParser создает Parser с заданным секретом.
func NewParser(secretKey string) *Parser {
	return &Parser{secretKey: secretKey}
}

// ParseToken разбирает JWT-токен, проверяет подпись и валидность,
// возвращает CustomClaims, если токен корректен.
func (p *Parser) ParseToken(tokenStr string) (*CustomClaims, error) {
	const op = "jwt.ParseToken"
	token, err := jwt.ParseWithClaims(tokenStr, &CustomClaims{}, func(_ *jwt.Token) (any, error) {
		return []byte(p.secretKey), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%s: invalid token", op)
	}
	return claims, nil
}
