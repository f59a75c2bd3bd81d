package utils

import (
	"errors"
	"net/http"
	"os"

	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

type AccessToken struct {
	ID uint `json:"ID"`
}

// NewAccessTokenVerifier builds the HS256 verifier for the bearer guard.
// A request without a token is unauthenticated (401); a request with a
// bad or expired token is forbidden (403).
func NewAccessTokenVerifier() *jwt.Verifier {
	verifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("ACCESS_TOKEN_SECRET")))
	verifier.ErrorHandler = func(ctx iris.Context, err error) {
		if errors.Is(err, jwt.ErrMissing) {
			JSONError(ctx, http.StatusUnauthorized, err.Error(), "Access token required")
			return
		}
		JSONError(ctx, http.StatusForbidden, err.Error(), "Invalid token")
	}
	return verifier
}
