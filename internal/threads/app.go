package threads

import (
	"github.com/rs/zerolog"

	"github.com/hay-kot/threads/internal/client"
	"github.com/hay-kot/threads/internal/core/config"
	"github.com/hay-kot/threads/internal/core/logging"
	"github.com/hay-kot/threads/internal/core/render"
)

// App holds the wired client components shared by every command.
type App struct {
	Config      *config.Config
	Client      *client.Client
	Buffer      *render.Buffer
	Coordinator *Coordinator
	Controller  *Controller
	Dispatcher  *Dispatcher
}

// NewApp wires a client for cfg.Server.URL into a controller and dispatcher.
func NewApp(cfg *config.Config, logger zerolog.Logger) (*App, error) {
	c, err := client.New(cfg.Server.URL,
		client.WithTimeout(cfg.Server.Timeout),
		client.WithLogger(logging.Sub(logger, "client")),
	)
	if err != nil {
		return nil, err
	}

	buf := render.NewBuffer()
	coord := NewCoordinator(c, buf, logging.Sub(logger, "sync"))
	ctrl := NewController(c, coord, logging.Sub(logger, "controller"))

	d := NewDispatcher()
	ctrl.Register(d)

	return &App{
		Config:      cfg,
		Client:      c,
		Buffer:      buf,
		Coordinator: coord,
		Controller:  ctrl,
		Dispatcher:  d,
	}, nil
}
