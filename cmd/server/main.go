package main

import "plannersystem/internal/app/server"

func main() {
	server.Run()
}
