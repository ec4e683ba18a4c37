package app

import (
	"context"
	"errors"
	"time"

	"github.com/sportshop-next/internal/config"
	"github.com/sportshop-next/internal/logger"
	"github.com/sportshop-next/internal/provider"
	"github.com/sportshop-next/internal/router"
	"github.com/sportshop-next/internal/worker"
)

// BuildRunner 构建服务运行器
func BuildRunner(ctx context.Context, cfg *config.Config, mode string) (*Runner, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	store, err := provider.OpenStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	container := provider.NewContainer(cfg, store)

	runner, err := buildRunner(cfg, container, mode)
	if err != nil {
		container.Close(context.Background())
		return nil, err
	}
	return runner, nil
}

func buildRunner(cfg *config.Config, container *provider.Container, mode string) (*Runner, error) {
	var services []Service

	// 初始化 HTTP 服务
	if mode == ModeAll || mode == ModeAPI {
		engine := router.SetupRouter(cfg, container)
		httpService := NewHTTPService(cfg.Server.Addr(), engine,
			time.Duration(cfg.Server.ReadTimeoutSeconds)*time.Second,
			time.Duration(cfg.Server.WriteTimeoutSeconds)*time.Second,
		)
		services = append(services, httpService)
	}

	// 初始化 Worker 服务，未启用队列时摘要在请求内写入
	if mode == ModeAll || mode == ModeWorker {
		if cfg.Queue.Enabled {
			consumer := worker.NewConsumer(container.PurchaseService)
			workerService, err := worker.NewService(&cfg.Queue, consumer)
			if err != nil {
				return nil, err
			}
			services = append(services, workerService)
		} else if mode == ModeWorker {
			return nil, errors.New("worker mode requires queue.enabled")
		} else {
			logger.Infow("app_worker_skipped", "reason", "queue_disabled")
		}
	}

	if len(services) == 0 {
		return nil, errors.New("no services initialized (check mode and config)")
	}

	runner := NewRunner(services...)
	runner.onShutdown = container.Close
	return runner, nil
}

// Run 应用启动入口
func Run(opts Options) error {
	opts = normalizeOptions(opts)
	if opts.Config == nil {
		return errors.New("config is nil")
	}

	runner, err := BuildRunner(context.Background(), opts.Config, opts.Mode)
	if err != nil {
		return err
	}

	opts.Logger.Infow("app_start", "addr", opts.Config.Server.Addr(), "mode", opts.Mode)
	return RunWithOptions(runner, opts)
}
