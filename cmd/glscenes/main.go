package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"go.uber.org/zap"

	"glscenes/internal/config"
	"glscenes/internal/demo"
	"glscenes/internal/frame"
	"glscenes/internal/gfx"
	"glscenes/internal/input"
	"glscenes/internal/logging"
	"glscenes/internal/window"
)

func main() {
	// GLFW and the GL context live on the main OS thread.
	runtime.LockOSThread()

	sceneName := flag.String("scene", "", "scene to run (see -list)")
	configPath := flag.String("config", "", "path to a YAML config file")
	logLevel := flag.String("log-level", "", "debug, info, warn or error")
	list := flag.Bool("list", false, "list the available scenes and exit")
	flag.Parse()

	if *list {
		for _, name := range demo.Names() {
			fmt.Println(name)
		}
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalln("failed to load config:", err)
	}
	if *sceneName != "" {
		cfg.Scene = *sceneName
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
		if err := cfg.Validate(); err != nil {
			log.Fatalln("invalid flags:", err)
		}
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Encoding)
	if err != nil {
		log.Fatalln("failed to build logger:", err)
	}

	if err := run(cfg, logger); err != nil {
		logger.Error("glscenes failed", zap.String("scene", cfg.Scene), zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}

func run(cfg config.Config, logger *zap.Logger) error {
	scene, err := demo.New(cfg.Scene, cfg)
	if err != nil {
		return err
	}

	win, err := window.Open(cfg.Window, logger)
	if err != nil {
		return err
	}
	defer win.Close()

	renderer, err := gfx.New(logger)
	if err != nil {
		return err
	}
	defer renderer.Close()
	win.Attach(renderer)

	if h, ok := scene.(input.Handler); ok {
		win.OnInput(h.Handle)
	}
	if c, ok := scene.(demo.PointerCapturer); ok {
		win.EnablePointerCapture(c.WantsPointerCapture())
	}
	if s, ok := scene.(demo.Statuser); ok {
		win.OnStatus(s.Status)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			logger.Info("shutting down")
			cancel()
		case <-ctx.Done():
		}
	}()

	driver := frame.NewDriver(scene, renderer, win, logger)
	if err := driver.Start(ctx); err != nil {
		return err
	}
	logger.Info("scene started", zap.String("scene", cfg.Scene))

	if err := win.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	if err := driver.Err(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	logger.Info("scene stopped", zap.Int("frames", driver.Stats().Frames))
	return nil
}
