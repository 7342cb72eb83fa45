package main

import "directa/cotizador/internal/cli"

func main() {
	cli.Execute()
}
