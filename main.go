package main

import (
	"fmt"

	"budgetbuddy/finance-api/api"
	"budgetbuddy/finance-api/config"
	"budgetbuddy/finance-api/db"
	"budgetbuddy/finance-api/security"
	"budgetbuddy/finance-api/service"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func main() {
	gin.SetMode(gin.ReleaseMode)

	err := config.Setup()
	if err != nil {
		panic(err)
	}

	conn, err := db.New(viper.GetString("db.path"))
	if err != nil {
		panic(err)
	}

	tokens := security.NewTokenService(config.Token())
	dispatch := service.NewDispatcher(service.NewTwilioSender(config.Twilio()))
	host := config.Host()

	a, err := api.NewRouter(conn, tokens, dispatch, host)
	if err != nil {
		panic(err)
	}

	zap.L().Info("Server starting")

	err = a.Router.Run(fmt.Sprintf(":%d", host.Port))
	if err != nil {
		panic(err)
	}
}
