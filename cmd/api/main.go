package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hiveden/linver/internal/api"
	"github.com/hiveden/linver/internal/config"
	"github.com/hiveden/linver/internal/hw"
	"github.com/hiveden/linver/internal/logging"
	"github.com/hiveden/linver/internal/ui"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
)

func main() {
	configFile := flag.String("config", "", "config file")
	flag.Parse()

	cfg, err := config.Load(viper.GetViper(), *configFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	gin.SetMode(gin.ReleaseMode)

	collector := hw.NewCollector(log.WithName("collector"), cfg.OSReleasePath)
	assets := ui.NewAssetResolver(cfg.AssetsDir, log.WithName("assets"))
	apiHandler := api.NewAPIHandler(collector, assets, log.WithName("api"))

	r := api.NewRouter(apiHandler)

	log.Info("listening", "addr", cfg.ListenAddr)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Error(err, "failed to run server")
		os.Exit(1)
	}
}
