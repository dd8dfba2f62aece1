package utils

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/helpdesk-ph/ticketdesk/pkg/types"
)

var GetClaimsFromContext = func(c *gin.Context) (*types.Claims, error) {
	claimsVal, exists := c.Get("claims")
	if !exists {
		return nil, errors.New("user claims not found in context")
	}

	claims, ok := claimsVal.(*types.Claims)
	if !ok {
		return nil, errors.New("invalid user claims type")
	}

	return claims, nil
}

func GetUserNameFromContext(c *gin.Context) (string, error) {
	claims, err := GetClaimsFromContext(c)
	if err != nil {
		return "", err
	}
	return claims.Username, nil
}

func IsAdmin(c *gin.Context) bool {
	claims, err := GetClaimsFromContext(c)
	if err != nil {
		return false
	}
	return claims.Role == "admin"
}
