package main

import (
	"os"

	"github.com/SchoolHub-Admin/SchoolHub-Admin/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
