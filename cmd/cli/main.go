package main

import (
	"log"

	"github.com/joho/godotenv"

	_ "github.com/yorul/attendance-management/cmd/cli/accounts"
	_ "github.com/yorul/attendance-management/cmd/cli/attendance"
	"github.com/yorul/attendance-management/cmd/cli/root"
)

func main() {
	// Same .env convention as the server so both read one database config.
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	root.Execute()
}
