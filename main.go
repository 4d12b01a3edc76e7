package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/HFC06Atyrau/HFC/controller"
	"github.com/HFC06Atyrau/HFC/db"
	"github.com/HFC06Atyrau/HFC/db/sqlitedb"
	"github.com/HFC06Atyrau/HFC/mcpserver"
	"github.com/HFC06Atyrau/HFC/storage"
	"github.com/HFC06Atyrau/HFC/web"
	"github.com/itbasis/go-clock"
	"github.com/joho/godotenv"
)

func main() {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	portNum := 3000 // 3000 is the default
	port := os.Getenv("PORT")
	if port != "" {
		portNum, err = strconv.Atoi(port)
		if err != nil {
			log.Fatalf("error parsing port number: %v", err)
		}
	}

	recomputeInterval := 6 * time.Hour
	if v := os.Getenv("RECOMPUTE_INTERVAL"); v != "" {
		recomputeInterval, err = time.ParseDuration(v)
		if err != nil {
			log.Fatalf("error parsing RECOMPUTE_INTERVAL: %v", err)
		}
	}

	clock := clock.New()
	database, err := openDB(clock)
	if err != nil {
		log.Fatalf("cannot connect to DB: %v", err)
	}

	var photos storage.Client
	if storageURL := os.Getenv("STORAGE_URL"); storageURL != "" {
		bucket := os.Getenv("STORAGE_BUCKET")
		if bucket == "" {
			bucket = storage.DefaultBucket
		}
		photos, err = storage.New(storageURL, os.Getenv("STORAGE_KEY"), bucket)
		if err != nil {
			log.Fatalf("error creating storage client: %v", err)
		}
	} else {
		log.Printf("STORAGE_URL is not set, photo uploads are disabled")
	}

	ctrl, err := controller.New(clock, database, photos)
	if err != nil {
		log.Fatalf("error creating a new controller: %v", err)
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Printf("JWT_SECRET is not set, all changes will be rejected")
	}

	server, err := web.NewServer(portNum, ctrl, web.Config{
		JWTSecret:   []byte(jwtSecret),
		CORSOrigins: splitList(os.Getenv("CORS_ORIGINS")),
		MCPHandler:  mcpserver.Handler(ctrl),
	})
	if err != nil {
		log.Fatalf("error creating new web server: %v", err)
	}

	shutdown := make(chan bool)
	wg := &sync.WaitGroup{}

	// Setup a handler to catch ctrl-c signals and properly shutdown everything.
	intChannel := make(chan os.Signal, 2)
	signal.Notify(intChannel, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-intChannel
		close(shutdown)

		if err := waitTimeout(wg, 10*time.Second); err != nil {
			log.Printf("timed out waiting for proper shutdown")
			os.Exit(255)
		}
	}()

	// Periodically reconcile stored scores of the current season with the stats.
	if recomputeInterval > 0 {
		wg.Add(1)
		go ctrl.RunPeriodicScoreRecompute(recomputeInterval, shutdown, wg)
	}

	// Start the web server
	wg.Add(1)
	go server.ListenAndServe(shutdown, wg)

	// Wait for everything to stop.
	wg.Wait()
	log.Printf("server shutdown")
}

func openDB(clock clock.Clock) (db.DB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	switch driver := os.Getenv("DB_DRIVER"); driver {
	case "", "postgres":
		return db.New(ctx, os.Getenv("POSTGRES_CONN_STR"), clock)
	case "sqlite":
		path := os.Getenv("SQLITE_PATH")
		if path == "" {
			path = "futsal.db"
		}
		return sqlitedb.New(ctx, path, clock)
	default:
		return nil, errors.New("unknown DB_DRIVER " + driver)
	}
}

func splitList(s string) []string {
	var out []string
	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func waitTimeout(wg *sync.WaitGroup, timeout time.Duration) error {
	c := make(chan any)
	go func() {
		defer close(c)
		wg.Wait()
	}()

	select {
	case <-c:
		return nil // completed normally
	case <-time.After(timeout):
		return errors.New("timed out waiting")
	}
}
