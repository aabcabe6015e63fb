package main

import (
	"cmp"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/five82/shelf/internal/catalog"
	"github.com/five82/shelf/internal/config"
	"github.com/five82/shelf/internal/logger"
	"github.com/five82/shelf/internal/web"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override shelf config path (optional)")
	listen := flag.String("listen", "", "listen address (optional)")
	apiURL := flag.String("api", "", "catalog API base URL (optional)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "shelf-web: load config: %v\n", err)
		return 1
	}
	cfg.APIURL = cmp.Or(strings.TrimSpace(*apiURL), cfg.APIURL)
	cfg.Listen = cmp.Or(strings.TrimSpace(*listen), cfg.Listen)

	logger.Setup(os.Stderr, cfg.LogLevel, true)
	if logger.ParseLevel(cfg.LogLevel) < logrus.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}

	client, err := catalog.NewClient(cfg.APIURL, cfg.Timeout)
	if err != nil {
		logrus.WithError(err).Error("init catalog client failed")
		return 1
	}

	srv, err := web.New(web.Options{Catalog: client, Listen: cfg.Listen})
	if err != nil {
		logrus.WithError(err).Error("init web server failed")
		return 1
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	group, gCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return srv.Run(gCtx)
	})
	group.Go(func() error {
		<-gCtx.Done()
		return srv.Shutdown()
	})

	if err := group.Wait(); err != nil {
		logrus.WithError(err).Error("shelf-web stopped")
		return 1
	}
	logrus.WithField("api", client.BaseURL()).Info("shelf-web stopped")
	return 0
}
