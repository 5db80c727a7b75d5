package main

import (
	"log"

	"github.com/lintang-b-s/campus-route/pkg/di"
)

func main() {
	server, cleanup, err := di.InitializeRouteService()
	if err != nil {
		log.Fatal(err)
	}
	defer cleanup()

	if err := server.Wait(); err != nil {
		server.Log.Error(err.Error())
	}
}
