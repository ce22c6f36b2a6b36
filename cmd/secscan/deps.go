package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"secscan/internal/logger"
	"secscan/internal/repository"
	"secscan/internal/service"
	"secscan/internal/util"
	"secscan/pkg/edgar"
)

type scanOptions struct {
	cacheDir    string
	dbPath      string
	reasoner    string
	reasonerCmd string
	contextFile string
}

type dependencies struct {
	FilingCache   repository.FilingCacheRepository
	ScanHistory   repository.ScanHistoryRepository
	ScanService   service.ScanService
	ReportService service.ReportService
}

func (d *dependencies) Close() {
	if err := d.ScanHistory.Close(); err != nil {
		logger.Warn("failed to close history db: %v", err)
	}
}

func initializeDependencies(opts scanOptions) (*dependencies, error) {
	secrets, err := util.LoadSecrets()
	if err != nil {
		// the secrets file is only required for the openai reasoner
		logger.Debug("no secrets file loaded: %v", err)
		secrets = &util.Secrets{}
	}

	filingCache, err := repository.NewFilingCacheRepository(opts.cacheDir)
	if err != nil {
		return nil, err
	}

	scanHistory, err := repository.NewScanHistoryRepository(opts.dbPath)
	if err != nil {
		return nil, err
	}

	edgarClient := edgar.NewClient(secrets.EdgarUserAgent, 30*time.Second)
	filingRepository := repository.NewFilingRepository(edgarClient, filingCache)

	var reasoner repository.ReasonerRepository
	switch opts.reasoner {
	case "openai":
		if secrets.ChatGPTApiKey == "" {
			return nil, errors.New("the openai reasoner requires a gpt key in secrets.json")
		}
		reasoner, err = repository.NewGptReasonerRepository(secrets.ChatGPTApiKey, 0)
		if err != nil {
			return nil, err
		}
	case "claude", "":
		command := opts.reasonerCmd
		if command == "" {
			command = secrets.ReasonerCommand
		}
		reasoner = repository.NewSubprocessReasonerRepository(command, nil, 0)
	default:
		return nil, fmt.Errorf("unknown reasoner %q (want claude or openai)", opts.reasoner)
	}

	contextBlock := ""
	if opts.contextFile != "" {
		if data, err := os.ReadFile(opts.contextFile); err == nil {
			contextBlock = string(data)
		}
	}

	analysisService := service.NewAnalysisService(filingCache, reasoner, contextBlock)
	scanService := service.NewScanService(filingRepository, analysisService, scanHistory)
	reportService, err := service.NewReportService()
	if err != nil {
		return nil, err
	}

	return &dependencies{
		FilingCache:   filingCache,
		ScanHistory:   scanHistory,
		ScanService:   scanService,
		ReportService: reportService,
	}, nil
}
