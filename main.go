package main

import (
	_ "github.com/joho/godotenv/autoload"

	"github.com/jmj2097/portfolio/cmd"
)

func main() {
	cmd.Execute()
}
