package main

import "xfetch/cmd"

func main() {
	cmd.ExecuteCortex()
}
