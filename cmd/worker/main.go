package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"career-match/internal/app"
	"career-match/internal/config"
	"career-match/internal/pipeline"
	"career-match/internal/worker"
)

func main() {
	consume := flag.Bool("consume", true, "consume the jd_analysis queue")
	tagInterval := flag.Duration("tag-interval", 5*time.Minute, "how often to tag postings without skills (0 disables)")
	tagOnce := flag.Bool("tag-once", false, "tag untagged postings once and exit")
	tagWorkers := flag.Int("tag-workers", 5, "tagging pipeline workers")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	c, err := app.NewContainer(cfg, nil)
	if err != nil {
		log.Fatalf("failed to init container: %v", err)
	}
	defer func() {
		_ = c.Close()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	migCtx, migCancel := context.WithTimeout(ctx, 2*time.Minute)
	err = c.Prepare(migCtx)
	migCancel()
	if err != nil {
		log.Printf("failed to prepare database: %v", err)
		return
	}

	params := pipeline.RunParams{Workers: *tagWorkers}
	if *tagOnce {
		if _, err := c.Tagging.Run(ctx, params); err != nil {
			log.Printf("tagging failed: %v", err)
		}
		return
	}

	var wg sync.WaitGroup
	if *tagInterval > 0 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			runTagging(ctx, c.Tagging, params, *tagInterval)
		}()
	}

	if *consume {
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer stop()
			if err := runConsumer(ctx, c, cfg.Queue); err != nil {
				log.Printf("consumer stopped: %v", err)
			}
		}()
	}

	wg.Wait()
}

func runTagging(ctx context.Context, p *pipeline.TaggingPipeline, params pipeline.RunParams, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		if _, err := p.Run(ctx, params); err != nil && ctx.Err() == nil {
			log.Printf("pipeline=posting_tagging status=error err=%v", err)
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func runConsumer(ctx context.Context, c *app.Container, qcfg config.QueueConfig) error {
	conn, err := worker.Dial(qcfg.URL, qcfg.AnalysisQueue)
	if err != nil {
		return err
	}
	defer conn.Close()

	pub, err := worker.NewChannelPublisher(conn)
	if err != nil {
		return err
	}
	defer pub.Close()

	proc := worker.NewProcessor(c.Analysis, c.Cache, pub, c.Logger)
	consumer := worker.NewConsumer(worker.ConsumerConfig{
		Queue:   qcfg.AnalysisQueue,
		Workers: qcfg.Workers,
	}, proc, c.Logger)
	return consumer.Run(ctx, conn)
}
