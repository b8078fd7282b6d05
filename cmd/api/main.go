// Package main Room Service API
//
// Room Service is the membership coordinator for a social deduction game
// played through a chat platform. It owns the room, player and profile
// state, with two key responsibilities:
//
//  1. Keeping room membership consistent under concurrent commands
//     relayed by the gateway sidecar.
//
//  2. Tracking in-game player state and awarding lifetime counters when
//     a game finishes.
//
//     Schemes: http, https
//     Host: localhost:8080
//     BasePath: /api/v1
//     Version: 1.0.0
//
//     Consumes:
//     - application/json
//
//     Produces:
//     - application/json
//
//     Security:
//     - bearer
package main

import (
	"context"

	"github.com/lsgame/roomsvc/internal/app"
)

// @title Room Service API
// @version 1.0
// @description Room Service coordinates room membership and game lifecycle for a social deduction game.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	ctx := context.Background()
	application := app.NewApplication(ctx)
	application.Setup()
}
