package utils

import (
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

// UserIDFromTokenMiddleware extracts the user ID from the verified token
// and stores it in the request context for downstream handlers.
func UserIDFromTokenMiddleware(ctx iris.Context) {
	claims := jwt.Get(ctx).(*AccessToken)
	ctx.Values().Set("userID", claims.ID)
	ctx.Next()
}

// GetUserID reads the authenticated user ID placed by the middleware.
func GetUserID(ctx iris.Context) (uint, bool) {
	v := ctx.Values().Get("userID")
	if v == nil {
		return 0, false
	}
	userID, ok := v.(uint)
	return userID, ok
}
