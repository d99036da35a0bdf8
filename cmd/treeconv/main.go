package main

import "github.com/joho/godotenv"

// Version can be overridden via -ldflags "-X main.version=1.0.0".
var version = "dev"

func main() {
	_ = godotenv.Load()
	Execute()
}
