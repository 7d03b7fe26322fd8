package main

import (
	"github.com/gutendex/explorer/modules/explorer"
	"github.com/gutendex/explorer/pkg/httpserver"
	"github.com/gutendex/explorer/pkg/resultpanel"
)

type appConfig struct {
	Env     string `env:"APP_ENV" envDefault:"development"`
	Service string `env:"APP_SERVICE" envDefault:"gutendex-explorer"`

	HTTP     httpserver.Config
	Explorer explorer.Config
	Results  resultpanel.Config
}
