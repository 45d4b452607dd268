package controllers_fx

import (
	"go.uber.org/fx"

	"falgoritma/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAuthController),
	fx.Provide(controllers.NewUserController),
	fx.Provide(controllers.NewCreditController),
	fx.Provide(controllers.NewSubscriptionController),
	fx.Provide(controllers.NewFortuneController))
