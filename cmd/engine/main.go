package main

import (
	"context"
	"log"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/gofrs/flock"
	"github.com/joho/godotenv"

	"jobscout-engine/internal/config"
	"jobscout-engine/internal/contacts"
	"jobscout-engine/internal/domain"
	"jobscout-engine/internal/events"
	"jobscout-engine/internal/httpapi"
	"jobscout-engine/internal/provider"
	"jobscout-engine/internal/provider/util"
	"jobscout-engine/internal/scheduler"
	"jobscout-engine/internal/search"
	"jobscout-engine/internal/secrets"
	"jobscout-engine/internal/store"
)

func main() {
	// .env is optional, real env always wins
	_ = godotenv.Load()

	dataDir := os.Getenv("JOBSCOUT_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatal(err)
	}

	// one engine per data dir
	lock := flock.New(filepath.Join(dataDir, "engine.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		log.Fatalf("lock %s: %v", lock.Path(), err)
	}
	if !locked {
		log.Fatalf("another engine instance already owns %s", dataDir)
	}
	defer lock.Unlock()

	defaultCfgPath := filepath.Join("config", "config.yml")
	userCfgPath, err := config.EnsureUserConfig(dataDir, defaultCfgPath)
	if err != nil {
		log.Fatalf("config bootstrap failed: %v", err)
	}

	// Load config and keep it reloadable
	var cfgVal atomic.Value // stores config.Config
	loadCfg := func() (config.Config, error) {
		return config.Load(userCfgPath)
	}
	cfg, err := loadCfg()
	if err != nil {
		log.Fatalf("config load failed (%s): %v", userCfgPath, err)
	}
	cfgVal.Store(cfg)

	dbPath := filepath.Join(dataDir, "jobscout.db")
	db, err := store.Open(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()
	if err := store.Migrate(db.Pool); err != nil {
		log.Fatal(err)
	}

	creds := provider.Credentials{
		JSearchAPIKey: secrets.Key("JSEARCH_API_KEY"),
		AdzunaAppID:   secrets.Key("ADZUNA_APP_ID"),
		AdzunaAppKey:  secrets.Key("ADZUNA_APP_KEY"),
		ReedAPIKey:    secrets.Key("REED_API_KEY"),
		IMAPPassword:  secrets.IMAPPassword(cfg),
	}
	limiter := util.NewHostLimiter(2, 4)
	providers := provider.Build(cfg, creds, limiter)
	if len(providers) == 0 {
		log.Fatal("no sources enabled, nothing to search")
	}

	agg := search.New(providers)
	finder := contacts.NewClient(secrets.LookupAPIKeys())
	hub := events.NewHub()

	mux := httpapi.NewMux(httpapi.Deps{
		DB:          db.Pool,
		Hub:         hub,
		Searcher:    agg,
		Contacts:    finder,
		Providers:   providers,
		CfgVal:      &cfgVal,
		UserCfgPath: userCfgPath,
		LoadCfg:     loadCfg,
	})

	rootCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// periodic refresh of the default search keeps stored postings warm
	if cfg.Search.RefreshMinutes > 0 && cfg.Search.DefaultQuery != "" {
		interval := time.Duration(cfg.Search.RefreshMinutes) * time.Minute
		go scheduler.Every(rootCtx, interval, "refresh", func(ctx context.Context) error {
			cur := cfgVal.Load().(config.Config)
			res := agg.Search(ctx, domain.SearchCriteria{
				Query: cur.Search.DefaultQuery,
				City:  cur.Search.DefaultCity,
			})
			hub.Publish(events.TypeRefreshTick, map[string]any{
				"totalCount": res.TotalCount,
			})
			if _, err := store.InsertSearch(db.Pool, domain.SearchCriteria{
				Query: cur.Search.DefaultQuery,
				City:  cur.Search.DefaultCity,
			}, res); err != nil {
				return err
			}
			return store.SavePostings(db.Pool, res.Jobs)
		})
	}

	addr := net.JoinHostPort("127.0.0.1", strconv.Itoa(cfg.App.Port))
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatal(err)
	}

	srv := &http.Server{
		ReadHeaderTimeout: 5 * time.Second,
	}

	token, err := randomToken(16)
	if err != nil {
		log.Fatal(err)
	}
	mux.HandleFunc("/shutdown", shutdownHandler(&token, srv))

	srv.Handler = httpapi.Chain(mux,
		httpapi.RequestID,
		httpapi.Recover,
		httpapi.AccessLog,
		httpapi.Cors,
	)

	log.Printf("[engine] listening on http://%s (db=%s, sources=%d)", addr, dbPath, len(providers))
	log.Printf("[engine] shutdown token: %s", token)

	if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
	log.Print("[engine] bye")
}
