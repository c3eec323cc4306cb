package main

import "github.com/vuetools/svgswap/cmd"

func main() {
	cmd.Execute()
}
