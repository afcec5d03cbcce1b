package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nulzo/aimind/internal/app"
	"github.com/nulzo/aimind/internal/config"
	"github.com/nulzo/aimind/internal/core/domain"
	"github.com/nulzo/aimind/internal/server"
	"github.com/nulzo/aimind/internal/version"
	vegeta "github.com/tsenart/vegeta/v12/lib"
	"go.uber.org/zap"
)

var unaryResp = []byte(`{"id":"bench-123","choices":[{"message":{"content":"[\"Scope\", \"Risks\", \"Timeline\", \"Budget\"]"}}]}`)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "Duration of the test")
	rate := flag.Int("rate", 50, "Requests per second")
	endpoint := flag.String("endpoint", "expand", "Route to attack: chat, expand or configs")
	latency := flag.Duration("upstream-latency", 10*time.Millisecond, "Simulated provider latency")
	flag.Parse()

	upstream := httptest.NewServer(mockProvider(*latency))
	defer upstream.Close()

	dataDir, err := os.MkdirTemp("", "aimind-bench-*")
	if err != nil {
		log.Fatalf("Failed to create data dir: %v", err)
	}
	defer os.RemoveAll(dataDir)

	cfg := &config.Config{
		Server: config.ServerConfig{Env: "production"},
		Data:   config.DataConfig{Dir: dataDir},
		Files:  config.FilesConfig{MaxRecent: 10},
	}

	gin.SetMode(gin.ReleaseMode)
	a, err := app.Bootstrap(cfg, zap.NewNop())
	if err != nil {
		log.Fatalf("Failed to bootstrap: %v", err)
	}
	defer a.Close()

	err = a.Configs.UpsertProvider(domain.ProviderConfig{
		ID: "bench", Kind: "openai", APIKey: "mock-key", BaseURL: upstream.URL + "/v1", Model: "mock", Enabled: true,
	})
	if err == nil {
		err = a.Configs.SetCurrentProvider("bench")
	}
	if err != nil {
		log.Fatalf("Failed to configure provider: %v", err)
	}

	srv := httptest.NewServer(server.New(cfg, zap.NewNop(), a.Service, version.Version).Handler())
	defer srv.Close()

	target, err := targetFor(srv.URL, *endpoint)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Running %s benchmark: %s duration, %d req/s\n", *endpoint, *duration, *rate)

	attacker := vegeta.NewAttacker(vegeta.KeepAlive(true))
	var metrics vegeta.Metrics
	for res := range attacker.Attack(vegeta.NewStaticTargeter(target), vegeta.Rate{Freq: *rate, Per: time.Second}, *duration, "Benchmark") {
		metrics.Add(res)
	}
	metrics.Close()

	report(&metrics)
}

func targetFor(base, endpoint string) (vegeta.Target, error) {
	header := http.Header{"Content-Type": []string{"application/json"}}
	switch endpoint {
	case "chat":
		return vegeta.Target{Method: http.MethodPost, URL: base + "/api/v1/ai/chat", Body: []byte(`{"prompt":"Hello"}`), Header: header}, nil
	case "expand":
		return vegeta.Target{Method: http.MethodPost, URL: base + "/api/v1/ai/expand", Body: []byte(`{"node_content":"Project plan"}`), Header: header}, nil
	case "configs":
		return vegeta.Target{Method: http.MethodGet, URL: base + "/api/v1/configs", Header: header}, nil
	default:
		return vegeta.Target{}, fmt.Errorf("unknown endpoint %q", endpoint)
	}
}

func mockProvider(latency time.Duration) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/chat/completions", func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(latency)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(unaryResp)
	})
	return mux
}

func report(metrics *vegeta.Metrics) {
	fmt.Println("--------------------------------------------------")
	fmt.Println("99th percentile: ", metrics.Latencies.P99)
	fmt.Println("Mean:            ", metrics.Latencies.Mean)
	fmt.Println("Max:             ", metrics.Latencies.Max)
	fmt.Printf("Success:         %.2f%%\n", metrics.Success*100)
	fmt.Printf("Throughput:      %.2f req/s\n", metrics.Throughput)
	fmt.Println("--------------------------------------------------")

	if len(metrics.Errors) == 0 {
		return
	}

	fmt.Println("Error Set (first 5 unique):")
	seen := make(map[string]bool)
	for _, msg := range metrics.Errors {
		if len(seen) == 5 {
			break
		}
		if !seen[msg] {
			fmt.Println(msg)
			seen[msg] = true
		}
	}
}
