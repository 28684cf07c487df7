package utils

import (
	"fmt"

	"github.com/golang-jwt/jwt"
	"github.com/spf13/viper"
	"github.com/sustainage/sdg-engine/internal/pkg/constants"
)

// AuthTokenWrapper is the claim set the surrounding platform issues. The
// engine only reads the tenant id out of it; authorization stays upstream.
type AuthTokenWrapper struct {
	TenantID string `json:"tenant_id"`
	Secret   string `json:"secret,omitempty"`
	jwt.StandardClaims
}

func ParseAuthToken(raw string) (*AuthTokenWrapper, error) {
	wrapper := &AuthTokenWrapper{}
	_, err := jwt.ParseWithClaims(raw, wrapper, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(viper.GetString(constants.ViperSecretKey)), nil
	})
	if err != nil {
		return nil, constants.ErrUnauthorized
	}

	return wrapper, nil
}

func GenerateAuthToken(wrapper *AuthTokenWrapper) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, wrapper)
	return token.SignedString([]byte(viper.GetString(constants.ViperSecretKey)))
}
