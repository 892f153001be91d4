package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/jardellitieri/placar-magico/controller"
	"github.com/jardellitieri/placar-magico/db"
	"github.com/jardellitieri/placar-magico/web"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Fatal().Err(err).Msg("error loading .env file")
	}
	connString := os.Getenv("POSTGRES_CONN_STR")

	portNum := 3000 // 3000 is the default
	port := os.Getenv("PORT")
	if port != "" {
		portNum, err = strconv.Atoi(port)
		if err != nil {
			log.Fatal().Err(err).Msg("error parsing port number")
		}
	}

	authClientID := os.Getenv("AUTH_CLIENT_ID")
	authClientSecret := os.Getenv("AUTH_CLIENT_SECRET")
	authRedirectURL := os.Getenv("AUTH_REDIRECT_URL")

	clock := clock.New()
	db, err := db.New(context.Background(), connString, clock)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to db")
	}

	var authConfig *oauth2.Config

	if authClientID != "" && authClientSecret != "" && authRedirectURL != "" {
		authConfig = &oauth2.Config{
			ClientID:     authClientID,
			ClientSecret: authClientSecret,
			Endpoint: oauth2.Endpoint{
				AuthURL:  "https://accounts.google.com/o/oauth2/auth",
				TokenURL: "https://oauth2.googleapis.com/token",
			},
			RedirectURL: authRedirectURL,
		}
	}

	ctrl, err := controller.New(clock, db, authConfig)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating a new controller")
	}

	server, err := web.NewServer(portNum, ctrl)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating new web server")
	}

	shutdown := make(chan bool)
	wg := &sync.WaitGroup{}

	// Setup a handler to catch ctrl-c signals and properly shutdown everything.
	intChannel := make(chan os.Signal, 2)
	signal.Notify(intChannel, os.Interrupt)
	go func() {
		<-intChannel
		close(shutdown)

		if err := waitTimeout(wg, 10*time.Second); err != nil {
			log.Error().Msg("timed out waiting for proper shutdown")
			os.Exit(255)
		}
	}()

	// Start the web server
	wg.Add(1)
	go server.ListenAndServe(shutdown, wg)

	// Wait for everything to stop.
	wg.Wait()
	log.Info().Msg("server shutdown")
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
