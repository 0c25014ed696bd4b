package utils

import (
	"github.com/golang-jwt/jwt"
	"github.com/mreiner/compquote/internal/pkg/constants"
	"github.com/spf13/viper"
)

// AuthTokenWrapper is the payload carried inside the admin auth token.
type AuthTokenWrapper struct {
	UserID int64
	Secret string
}

func GenerateAuthToken(wrapper *AuthTokenWrapper) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": wrapper.UserID,
		"secret":  wrapper.Secret,
	})

	return token.SignedString([]byte(viper.GetString(constants.ViperSecretKey)))
}

func ParseAuthToken(tokenString string) (*AuthTokenWrapper, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, constants.ErrUnauthorized
		}
		return []byte(viper.GetString(constants.ViperSecretKey)), nil
	})
	if err != nil {
		return nil, constants.ErrUnauthorized
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, constants.ErrUnauthorized
	}

	wrapper := &AuthTokenWrapper{}
	if userID, ok := claims["user_id"].(float64); ok {
		wrapper.UserID = int64(userID)
	}
	if secret, ok := claims["secret"].(string); ok {
		wrapper.Secret = secret
	}

	return wrapper, nil
}
