package main

import (
	"go.uber.org/fx"

	"github.com/zahid1995j/Somahar-Order-Management-App/internal/app"
)

func main() {
	fx.New(app.Module).Run()
}
