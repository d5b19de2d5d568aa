// cmd/rnahelix/main.go
package main

import (
	"rnahelix/internal/app"
	"rnahelix/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
