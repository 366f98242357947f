package commands

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/maksimkurb/zte-goform/src/internal/api"
	"github.com/maksimkurb/zte-goform/src/internal/domain"
	"github.com/maksimkurb/zte-goform/src/internal/log"
)

// Version is reported by the REST bridge health check.
var Version = "dev"

func CreateServeCommand() *ServeCommand {
	sc := &ServeCommand{
		fs: flag.NewFlagSet("serve", flag.ExitOnError),
	}
	sc.fs.StringVar(&sc.listenAddr, "listen", "", "Address to bind the REST bridge (overrides api.listen_addr)")
	sc.fs.BoolVar(&sc.allowPublic, "allow-public", false, "Accept requests from non-private client addresses")
	sc.fs.BoolVar(&sc.login, "login", true, "Log in before serving when a password is configured")
	return sc
}

// ServeCommand runs the REST bridge until SIGINT or SIGTERM.
type ServeCommand struct {
	fs   *flag.FlagSet
	ctx  *AppContext
	deps *domain.AppDependencies

	listenAddr  string
	allowPublic bool
	login       bool

	apiRunner *RestartableRunner
}

func (s *ServeCommand) Name() string {
	return s.fs.Name()
}

func (s *ServeCommand) Init(args []string, ctx *AppContext) error {
	s.ctx = ctx

	if err := s.fs.Parse(args); err != nil {
		return err
	}

	deps, cfg, err := initDependencies(ctx)
	if err != nil {
		return err
	}
	s.deps = deps

	if s.listenAddr == "" {
		s.listenAddr = cfg.API.ListenAddr
	}
	return nil
}

func (s *ServeCommand) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return s.run(ctx)
}

func (s *ServeCommand) run(ctx context.Context) error {
	if s.login {
		if err := s.deps.DeviceClient().Login(); err != nil {
			log.Warnf("Initial login failed, private values will be unavailable until it succeeds: %v", err)
		}
	}

	if !s.allowPublic {
		log.Infof("Access restricted to private subnets only:")
		log.Infof("  IPv4: 10.0.0.0/8, 172.16.0.0/12, 192.168.0.0/16, 127.0.0.0/8")
		log.Infof("  IPv6: fc00::/7, fe80::/10, ::1/128")
	}

	router := api.NewRouter(s.deps, api.RouterOptions{
		Version:            Version,
		AllowPublicClients: s.allowPublic,
	})
	server := api.NewServer(s.listenAddr, router)

	s.apiRunner = NewRestartableRunner(RunnerConfig{
		Name:        "API server",
		MaxRestarts: 10,
	}, server.Run)

	if err := s.apiRunner.Start(ctx); err != nil {
		return err
	}

	select {
	case <-ctx.Done():
		log.Infof("Shutting down...")
	case <-s.apiRunner.Done():
		log.Errorf("API server stopped: %v", s.apiRunner.LastError())
	}

	if err := s.apiRunner.Stop(); err != nil {
		return err
	}
	return s.apiRunner.LastError()
}
