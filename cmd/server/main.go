package main

import "github.com/nguyentranbao-ct/product-dashboard/cmd"

func main() {
	cmd.Execute()
}
