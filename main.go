package main

import "product-console/cmd"

func main() {
	cmd.Execute()
}
