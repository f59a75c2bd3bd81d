package utils

import (
	"github.com/kataras/iris/v12"
)

// JSONError writes the shared error body shape {error, message}.
func JSONError(ctx iris.Context, status int, errStr, message string) {
	ctx.StatusCode(status)
	ctx.JSON(iris.Map{"error": errStr, "message": message})
}
