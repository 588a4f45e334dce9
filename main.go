package main

import "github.com/Bharu-A/fittronix-cli/cmd/fittronix"

func main() {
	fittronix.Execute()
}
