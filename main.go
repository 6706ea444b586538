package main

import "github.com/alexiusacademia/gostral/cmd"

func main() {
	cmd.Execute()
}
