// Package ledger is the embedding seam of the personal finance core: it
// composes the configured storage backend with the record repositories and
// use cases. The UI layer built on top of this module calls the use cases
// directly; there is no network protocol or CLI.
package ledger

import (
	"github.com/pocket-ledger/ledger/config"
	"github.com/pocket-ledger/ledger/internal/infra/dependency"
)

// App exposes the wired use cases of one ledger instance.
type App struct {
	*dependency.Injector
}

// Open wires an App against the storage backend selected by cfg.
func Open(cfg *config.Config) (*App, error) {
	injector, err := dependency.NewInjector(cfg)
	if err != nil {
		return nil, err
	}
	return &App{Injector: injector}, nil
}

// OpenDefault wires an App from environment configuration.
func OpenDefault() (*App, error) {
	return Open(config.Load())
}
