package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	flag "github.com/spf13/pflag"

	"ProfitPulse/internal/config"
	"ProfitPulse/internal/publisher"
	"ProfitPulse/internal/restclient"
	"ProfitPulse/internal/scheduler"
)

func main() {
	cfgPath := flag.StringP("config", "c", "config.json", "path to configuration file")
	show := flag.Bool("show", false, "list all commands and descriptions, then exit")
	flag.Parse()

	if *show {
		printCommands()
		return
	}

	// A .env file, if present, feeds the env overrides applied by config.Load.
	_ = godotenv.Load()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Warn().Err(err).Str("path", *cfgPath).Msg("could not load config file")
		os.Exit(1)
	}
	initLog(cfg.LogLevel, cfg.Pretty)
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("config validation")
	}

	client := restclient.New(cfg.BaseURL(), cfg.APIServer.Username, cfg.APIServer.Password)

	// One-shot mode: run the named command against the server and exit.
	if args := flag.Args(); len(args) > 0 {
		runCommand(client, args[0], args[1:])
		return
	}

	log.Info().
		Bool("save_to_db", cfg.APIServer.SaveToDB).
		Bool("send_tweet", cfg.APIServer.SendTweet).
		Msg("ProfitPulse starting")

	var pubs []publisher.Publisher
	if cfg.APIServer.SendTweet {
		pubs = append(pubs, publisher.NewTwitterPublisher(
			cfg.APIServer.APIKey, cfg.APIServer.APISecretKey,
			cfg.APIServer.AccessToken, cfg.APIServer.AccessTokenSecret))
	}
	if cfg.APIServer.SaveToDB {
		sp, err := publisher.NewSQLitePublisher(cfg.Database.SQLitePath)
		if err != nil {
			log.Fatal().Err(err).Msg("init history store")
		}
		pubs = append(pubs, sp)
	}
	defer func() {
		for _, p := range pubs {
			if err := p.Close(); err != nil {
				log.Error().Err(err).Str("publisher", p.Name()).Msg("close publisher")
			}
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info().Msg("shutdown signal received, stopping")
		cancel()
	}()

	sched := scheduler.New(client, pubs,
		time.Duration(cfg.APIServer.RunInterval)*time.Second,
		cfg.APIServer.StartingCapital, cfg.APIServer.PositionSize)

	if spec := cfg.APIServer.RunCron; spec != "" {
		if err := sched.RunCron(ctx, spec); err != nil {
			log.Fatal().Err(err).Msg("cron poll")
		}
	} else {
		sched.Run(ctx)
	}
	log.Info().Msg("ProfitPulse stopped")
}

func initLog(level string, pretty bool) {
	l, err := zerolog.ParseLevel(level)
	if err != nil {
		l = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(l)
	if pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

// printCommands lists the command registry. No network I/O.
func printCommands() {
	fmt.Println("Possible commands:")
	fmt.Println()
	for _, cmd := range restclient.Commands() {
		fmt.Printf("%s\n\t%s\n\n", cmd.Name, cmd.Description)
	}
}

func runCommand(client *restclient.Client, name string, args []string) {
	raw, err := client.Invoke(name, args)
	if err != nil {
		log.Fatal().Err(err).Str("command", name).Msg("command failed")
	}
	if raw == nil {
		log.Warn().Str("command", name).Msg("no response from server")
		return
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		fmt.Println(string(raw))
		return
	}
	fmt.Println(buf.String())
}
