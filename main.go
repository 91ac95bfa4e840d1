package main

import "github.com/jsphweid/pngme/cmd"

func main() {
	cmd.Execute()
}
