package main

import "invoicekeeper/cmd"

func main() {
	cmd.Execute()
}
