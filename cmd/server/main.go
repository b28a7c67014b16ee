package main

import "hrsystem/internal/app/server"

func main() {
	server.Run()
}
