package main

import "quotes-lake/cmd"

func main() {
	cmd.Execute()
}
