package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/lk2023060901/ai-gateway-client/internal/conf"
	"github.com/lk2023060901/ai-gateway-client/internal/pkg/aiclient"
	"github.com/lk2023060901/ai-gateway-client/internal/pkg/logger"
	"go.uber.org/zap"
)

var (
	configFile = flag.String("config", "config.yaml", "config file path")
	systemMsg  = flag.String("system", "", "optional system prompt")
)

func main() {
	flag.Parse()

	prompt := strings.TrimSpace(strings.Join(flag.Args(), " "))
	if prompt == "" {
		fmt.Fprintln(os.Stderr, "usage: chat [-config config.yaml] [-system \"...\"] <prompt>")
		os.Exit(2)
	}

	// Load configuration
	config, err := conf.LoadConfig(*configFile)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize logger with config
	log, err := logger.New(&logger.Config{
		Level:  config.Log.Level,
		Format: config.Log.Format,
		Output: config.Log.Output,
		File: logger.FileConfig{
			Filename:   config.Log.File.Filename,
			MaxSize:    config.Log.File.MaxSize,
			MaxAge:     config.Log.File.MaxAge,
			MaxBackups: config.Log.File.MaxBackups,
			Compress:   config.Log.File.Compress,
		},
	})
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer log.Sync()

	client, err := aiclient.New(&aiclient.Config{
		Model:       config.AI.Model,
		APIKey:      config.AI.APIKey,
		APIBaseURL:  config.AI.APIBaseURL,
		Temperature: config.AI.Temperature,
		MaxTokens:   config.AI.MaxTokens,
		Timeout:     config.AI.Timeout,
		NumRetries:  config.AI.NumRetries,
	}, log)
	if err != nil {
		log.Fatal("failed to create ai client", zap.Error(err))
	}
	defer client.Close()

	messages := make([]aiclient.Message, 0, 2)
	if *systemMsg != "" {
		messages = append(messages, aiclient.SystemMessage(*systemMsg))
	}
	messages = append(messages, aiclient.UserMessage(prompt))

	reply, err := client.Chat(context.Background(), messages)
	if err != nil {
		log.Fatal("chat request failed", zap.Error(err))
	}

	fmt.Println(reply)
}
