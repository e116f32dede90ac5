package main

import "wtms.com/wtms/cmd"

func main() {
	cmd.Execute()
}
