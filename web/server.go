package web

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"sync"
	"time"

	"github.com/jardellitieri/placar-magico/controller"
	"github.com/jardellitieri/placar-magico/model"
	"github.com/rs/zerolog/log"
	"github.com/unrolled/render"
)

//go:embed templates
var templates embed.FS

type Server struct {
	server *http.Server
}

func NewServer(port int, ctrl controller.C) (*Server, error) {
	render := newRender()
	router := getRouter(ctrl, render)

	s := &Server{
		server: &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: router,
		},
	}
	return s, nil
}

func (s *Server) ListenAndServe(shutdown chan bool, wg *sync.WaitGroup) {
	go func() {
		defer wg.Done()

		// Wait for the shutdown signal and safely close the server.
		<-shutdown

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.server.Shutdown(ctx); err != nil {
			log.Fatal().Err(err).Msg("error shutting down server")
		}
	}()

	log.Info().Str("addr", s.server.Addr).Msg("web server is listening")
	err := s.server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("fatal error with server")
	}
}

func newRender() *render.Render {
	return render.New(render.Options{
		Directory: "templates",
		Layout:    "layout",
		FileSystem: &render.EmbedFileSystem{
			FS: templates,
		},
		Funcs: []template.FuncMap{
			{
				"date":   dateFormatter,
				"bucket": bucketFormatter,
				"level":  levelFormatter,
			},
		},
	})
}

func dateFormatter(t time.Time) string {
	if t.IsZero() {
		return "Never"
	}
	return t.Format("2006-01-02")
}

func bucketFormatter(pos model.Position) string {
	switch pos {
	case model.POS_GK:
		return "Goleiro"
	case model.POS_DEF:
		return "Zagueiro"
	case model.POS_MID:
		return "Meio-campo"
	case model.POS_AM:
		return "Meia-atacante"
	case model.POS_PIV:
		return "Pivô"
	}
	return string(pos)
}

func levelFormatter(level int) string {
	switch level {
	case model.LevelBeginner:
		return "Nível 1"
	case model.LevelAdvanced:
		return "Nível 2"
	}
	return fmt.Sprintf("Nível %d", level)
}
