package app

import (
	"context"
	"log/slog"
	"os"

	"github.com/michaelosthege/hagelkorn/internal/keygen"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.keygen.enabled") {
		closer, err := keygen.New(keygen.Dependency{
			Config:    a.config,
			Router:    a.router,
			Goroutine: a.goroutine,
			Context:   a.ctx,
			ID:        a.uuid,
		})
		if err != nil {
			slog.Error("failed to init module keygen", "error", err)
			os.Exit(1)
		}
		if closer != nil {
			if a.closerFn == nil {
				a.closerFn = map[string]func(context.Context) error{}
			}
			a.closerFn["Keygen"] = closer
		}
	}
}
