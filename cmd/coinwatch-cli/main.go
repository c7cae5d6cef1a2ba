package main

import (
	"context"

	"coinwatch/cmd/coinwatch-cli/commands"
	"coinwatch/lib/telemetry"
)

func main() {
	telemetry.SetupFromEnv(context.Background(), "coinwatch-cli")
	telemetry.InitSlog(true)
	commands.ExecuteContext(context.Background())
}
