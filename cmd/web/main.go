package main

import "iinreg_backend/internal/app"

func main() {
	app.Run()
}
