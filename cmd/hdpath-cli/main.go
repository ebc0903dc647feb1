package main

import (
	"hdpath-core/cmd/hdpath-cli/cmd"
	"hdpath-core/pkg/config"
	"hdpath-core/pkg/logger"
)

func main() {
	config.Init()
	logger.Init(config.Global.App.Env)
	defer logger.Sync()

	cmd.Execute()
}
