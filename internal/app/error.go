package app

import (
	"log"
	"os"

	"github.com/lsgame/roomsvc/internal/http/middleware"
)

func (a *application) InitErrorHandler() *middleware.ErrorHandler {
	l := log.New(os.Stdout, "[http] ", log.LstdFlags)
	return middleware.NewErrorHandler(l)
}
