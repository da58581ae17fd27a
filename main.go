package main

import (
	"context"

	"protonpack-go/internal/platform"
	"protonpack-go/services/config"
	"protonpack-go/services/prop"
	"protonpack-go/x/logx"
)

func main() {
	p := config.Default()

	hw, err := platform.Open(p)
	if err != nil {
		logx.Println("main", "bring-up failed:", err.Error())
		return
	}
	pk, err := prop.Build(p, hw, nil)
	if err != nil {
		logx.Println("main", "build failed:", err.Error())
		return
	}
	logx.Println("main", p.Name, "ready")

	if err := pk.Loop.Run(context.Background()); err != nil {
		logx.Println("main", "loop stopped:", err.Error())
	}
}
