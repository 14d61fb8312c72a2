package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/eps-group/leadgen-cli/internal/model"
	"github.com/eps-group/leadgen-cli/internal/pipeline"
)

var servePort int

// scoreRequest is the webhook payload: raw rows plus optional campaign
// overrides. Omitted campaign fields fall back to config defaults.
type scoreRequest struct {
	Rows     []model.RawRow     `json:"rows"`
	Campaign *pipeline.Campaign `json:"campaign,omitempty"`
}

type scoreResponse struct {
	RunID  string               `json:"run_id"`
	Scored model.LeadTable      `json:"scored"`
	Kept   model.LeadTable      `json:"kept"`
	Export []model.ExportRecord `json:"export"`
}

// newScoreHandler builds the scoring endpoint over a shared pipeline.
func newScoreHandler(p *pipeline.Pipeline, defaults pipeline.Campaign) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req scoreRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}

		campaign := defaults
		if req.Campaign != nil {
			campaign = *req.Campaign
		}

		runID := uuid.NewString()
		res := p.Run(req.Rows, campaign)

		zap.L().Info("serve: batch scored",
			zap.String("run_id", runID),
			zap.Int("rows", len(req.Rows)),
			zap.Int("kept", len(res.Kept)),
		)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(scoreResponse{
			RunID:  runID,
			Scored: res.Scored,
			Kept:   res.Kept,
			Export: res.Export,
		})
	}
}

// newRouter wires the HTTP routes.
func newRouter(p *pipeline.Pipeline, defaults pipeline.Campaign) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})
	r.Post("/v1/score", newScoreHandler(p, defaults))

	return r
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the lead scoring webhook server",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		p := pipeline.New(pipeline.DefaultDictionaries())
		defaults := pipeline.Campaign{
			IndustryFocus: cfg.Campaign.IndustryFocus,
			Regions:       cfg.Campaign.Regions,
			ProductNeeds:  cfg.Campaign.ProductNeeds,
			MinScore:      cfg.Campaign.MinScore,
			LeadSource:    cfg.Campaign.LeadSource,
		}

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           newRouter(p, defaults),
			ReadHeaderTimeout: 10 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			zap.L().Info("serve: listening", zap.Int("port", port))
			errCh <- srv.ListenAndServe()
		}()

		select {
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		case err := <-errCh:
			return err
		}
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "listen port (0 = config default)")
	rootCmd.AddCommand(serveCmd)
}
