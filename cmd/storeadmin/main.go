package main

import "tokokue.com/admin/internal/cli"

func main() {
	cli.Execute()
}
