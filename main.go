package main

import "github.com/lavepeguesucesso-png/Lave1/cmd"

func main() {
	cmd.Execute()
}
