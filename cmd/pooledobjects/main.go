package main

import (
	"fmt"
	"os"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Clpsplug/PooledObjects/pkg/config"
	"github.com/Clpsplug/PooledObjects/pkg/logger"
	"github.com/Clpsplug/PooledObjects/pkg/metrics"
	"github.com/Clpsplug/PooledObjects/pkg/pool"
	"github.com/Clpsplug/PooledObjects/pkg/registry"
)

var version = "0.1.0"

// demoResource stands in for an expensive-to-create resource in the demo
// workload. Construction cost is simulated with a small payload allocation.
type demoResource struct {
	pool.BasePoolable
	id      int64
	payload []byte
}

func main() {
	root := &cobra.Command{
		Use:   "pooledobjects",
		Short: "PooledObjects - reusable object pool toolkit",
		Long: `PooledObjects manages reusable sets of expensive-to-create objects.
This CLI validates pool configurations and runs demo workloads that
exercise checkout, return and exhaustion policies, printing diagnostic
snapshots of every live pool.`,
	}

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("PooledObjects v%s\n", version)
			fmt.Printf("Go version: %s\n", runtime.Version())
			fmt.Printf("OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	})

	var validateConfigFile string
	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a pool configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfg config.PoolConfig
			if err := config.Load(validateConfigFile, &cfg); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			fmt.Printf("Configuration %q is valid (pool %q, %d instances, %s)\n",
				validateConfigFile, cfg.Name, cfg.InitialCount, cfg.ExhaustionBehaviour)
			return nil
		},
	}
	validateCmd.Flags().StringVarP(&validateConfigFile, "config", "c", "pool.yaml", "Pool configuration file")
	root.AddCommand(validateCmd)

	var demoConfigFile string
	var workers, iterations int
	var holdTime time.Duration
	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Run a concurrent spawn/despawn workload against a configured pool",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.NewPoolConfig("demo")
			if demoConfigFile != "" {
				if err := config.Load(demoConfigFile, cfg); err != nil {
					return err
				}
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runDemo(cfg, workers, iterations, holdTime)
		},
	}
	demoCmd.Flags().StringVarP(&demoConfigFile, "config", "c", "", "Pool configuration file (defaults apply when omitted)")
	demoCmd.Flags().IntVarP(&workers, "workers", "w", runtime.NumCPU(), "Concurrent workers spawning from the pool")
	demoCmd.Flags().IntVarP(&iterations, "iterations", "n", 1000, "Spawn/despawn cycles per worker")
	demoCmd.Flags().DurationVar(&holdTime, "hold", 0, "How long each worker holds a spawned instance")
	root.AddCommand(demoCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runDemo(cfg *config.PoolConfig, workers, iterations int, holdTime time.Duration) error {
	if err := logger.Init(logger.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
		Encoding:    cfg.Logging.Format,
	}); err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	log := logger.With(zap.String("component", "demo"))

	var built atomic.Int64
	factory := func() *demoResource {
		return &demoResource{
			id:      built.Add(1),
			payload: make([]byte, 4096),
		}
	}

	hooks := pool.Hooks[*demoResource]{
		OnDespawn: func(r *demoResource) { r.SetInUse(false) },
	}

	opts := []pool.Option[*demoResource]{pool.WithHooks(hooks)}
	if cfg.Metrics.Enabled {
		opts = append(opts, pool.WithCollector[*demoResource](metrics.NewCollector(cfg.Name)))
	}

	p := pool.New[*demoResource](cfg.Name, opts...)
	if err := p.Initialize(factory, cfg.InitialCount, cfg.Behaviour()); err != nil {
		return err
	}
	defer p.Destroy()

	if err := registry.Register(p); err != nil {
		return err
	}
	defer registry.Deregister(cfg.Name)

	log.Info("starting demo workload",
		zap.Int("workers", workers),
		zap.Int("iterations", iterations),
		zap.Duration("hold", holdTime))

	start := time.Now()
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		worker := w
		g.Go(func() error {
			for i := 0; i < iterations; i++ {
				item, err := p.SpawnWith(worker, i)
				if err != nil {
					// Throw-policy exhaustion is an expected outcome under
					// contention; yield and retry.
					i--
					runtime.Gosched()
					continue
				}
				if item == nil {
					// NullOrDefault sentinel
					runtime.Gosched()
					i--
					continue
				}
				if holdTime > 0 {
					time.Sleep(holdTime)
				}
				p.Despawn(item)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	log.Info("demo workload complete",
		zap.Duration("elapsed", time.Since(start)),
		zap.Int64("instances_built", built.Load()),
		zap.Int("final_instance_count", p.InstanceCount()))

	fmt.Println("Live pools:")
	return registry.DumpJSON(os.Stdout)
}
