// cmd/seqedit/main.go
package main

import (
	"seqedit/internal/app"
	"seqedit/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
