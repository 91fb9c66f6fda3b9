package main

import (
	"SchoolSite/internal/bootstrap"
	pkg "SchoolSite/pkg/routes"

	"go.uber.org/fx"
)

func main() {
	bootstrap.Loadenv()
	app := fx.New(
		pkg.EchoModules,
	)

	app.Run()
}
