package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	goToken "github.com/MrEthical07/goToken"
	"github.com/MrEthical07/goToken/metrics/export/prometheus"
	"github.com/google/uuid"
)

func main() {
	var (
		users       = flag.Int("users", 10000, "number of distinct uids to issue for")
		concurrency = flag.Int("concurrency", 256, "number of concurrent workers")
		ops         = flag.Int("ops", 200000, "operations per phase")
		secret      = flag.String("secret", "", "signing secret; if empty, GOTOKEN_SECRET env or a random secret is used")
		payload     = flag.Int("payload", 64, "bytes of extra payload per token")
		ttl         = flag.Duration("ttl", time.Hour, "default token lifetime")
		showMetrics = flag.Bool("metrics", false, "print Prometheus metrics after the run")
	)
	flag.Parse()

	if *users <= 0 || *concurrency <= 0 || *ops <= 0 || *payload < 0 {
		fmt.Fprintln(os.Stderr, "users, concurrency, and ops must be > 0 and payload >= 0")
		os.Exit(2)
	}

	key := *secret
	if key == "" {
		key = os.Getenv("GOTOKEN_SECRET")
	}
	if key == "" {
		key = uuid.NewString()
		fmt.Println("using random secret")
	}

	issuer, err := goToken.New().
		WithSecret(key).
		WithDefaultTTL(*ttl).
		WithMetricsEnabled(true).
		WithLatencyHistograms(true).
		Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build issuer: %v\n", err)
		os.Exit(1)
	}
	defer issuer.Close()

	uids := make([]string, *users)
	for i := range uids {
		uids[i] = uuid.NewString()
	}
	extra := strings.Repeat("x", *payload)

	ctx := context.Background()
	userStats := runPhase(*ops, *concurrency, func(i int) error {
		_, err := issuer.Issue(ctx, map[string]any{"uid": uids[i%len(uids)], "extra": extra}, nil)
		return err
	})
	adminStats := runPhase(*ops, *concurrency, func(i int) error {
		_, err := issuer.Issue(ctx, nil, goToken.Options{goToken.OptionAdmin: true, goToken.OptionDebug: i%2 == 0})
		return err
	})

	fmt.Println("---- results ----")
	printStats("issue", userStats)
	printStats("issue-admin", adminStats)

	if *showMetrics {
		fmt.Println("---- metrics ----")
		fmt.Print(prometheus.NewPrometheusExporter(issuer).Render())
	}
}

func runPhase(ops, concurrency int, op func(i int) error) phaseStats {
	var (
		wg        sync.WaitGroup
		cursor    int64
		failures  int64
		latencies = make([]time.Duration, 0, ops)
		mu        sync.Mutex
	)

	start := time.Now()
	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				i := int(atomic.AddInt64(&cursor, 1)) - 1
				if i >= ops {
					return
				}
				t0 := time.Now()
				err := op(i)
				d := time.Since(t0)
				if err != nil {
					atomic.AddInt64(&failures, 1)
				}
				mu.Lock()
				latencies = append(latencies, d)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	total := time.Since(start)
	return computeStats(total, latencies, failures)
}

type phaseStats struct {
	total    time.Duration
	ops      int
	failures int64
	p50      time.Duration
	p95      time.Duration
	p99      time.Duration
	opsPerS  float64
}

func computeStats(total time.Duration, samples []time.Duration, failures int64) phaseStats {
	if len(samples) == 0 {
		return phaseStats{total: total}
	}
	sort.Slice(samples, func(i, j int) bool { return samples[i] < samples[j] })
	return phaseStats{
		total:    total,
		ops:      len(samples),
		failures: failures,
		p50:      percentile(samples, 50),
		p95:      percentile(samples, 95),
		p99:      percentile(samples, 99),
		opsPerS:  float64(len(samples)) / total.Seconds(),
	}
}

func percentile(samples []time.Duration, p int) time.Duration {
	if len(samples) == 0 {
		return 0
	}
	if p <= 0 {
		return samples[0]
	}
	if p >= 100 {
		return samples[len(samples)-1]
	}
	idx := (len(samples) - 1) * p / 100
	return samples[idx]
}

func printStats(name string, s phaseStats) {
	fmt.Printf("%s: ops=%d failures=%d total=%s ops/sec=%.0f p50=%s p95=%s p99=%s\n",
		name,
		s.ops,
		s.failures,
		s.total.Round(time.Millisecond),
		s.opsPerS,
		s.p50.Round(time.Microsecond),
		s.p95.Round(time.Microsecond),
		s.p99.Round(time.Microsecond),
	)
}
