package routes

import "github.com/kataras/iris/v12"

func Health(ctx iris.Context) {
	ctx.JSON(iris.Map{"status": "ok"})
}
