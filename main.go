package main

import "anchira/cmd"

func main() {
	cmd.Execute()
}
