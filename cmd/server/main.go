package main

import (
	"log"

	"github.com/joho/godotenv"

	"galleria/internal/app"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment as-is")
	}
	app.Run()
}
