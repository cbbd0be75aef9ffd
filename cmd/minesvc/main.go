package main

import (
	"context"
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"trigpeach/internal/config"
	"trigpeach/internal/rng"
	"trigpeach/pkg/peach"
	"trigpeach/pkg/trailer"
	"trigpeach/pkg/trigg"
)

var (
	addr = flag.String("addr", ":8090", "listen address")
)

// trailerRequest carries a hex-encoded 160-byte block trailer.
type trailerRequest struct {
	Trailer string `json:"trailer"`
}

type solveResponse struct {
	Nonce string `json:"nonce,omitempty"`
	Hash  string `json:"hash,omitempty"`
	Found bool   `json:"found"`
}

type checkResponse struct {
	Valid bool   `json:"valid"`
	Hash  string `json:"hash,omitempty"`
}

func decodeTrailer(c *gin.Context) (*trailer.Trailer, bool) {
	var req trailerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return nil, false
	}
	raw, err := hex.DecodeString(req.Trailer)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "trailer must be hex-encoded"})
		return nil, false
	}
	bt, err := trailer.FromBytes(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	return bt, true
}

func handleSolve() gin.HandlerFunc {
	return func(c *gin.Context) {
		bt, ok := decodeTrailer(c)
		if !ok {
			return
		}

		var P peach.Context
		if err := peach.Solve(&P, bt); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
			return
		}
		defer peach.Free(&P)

		var out [32]byte
		found := false
		for attempts := 0; attempts < 1_000_000; attempts++ {
			if peach.Generate(&P, &out) {
				found = true
				break
			}
		}

		resp := solveResponse{Found: found}
		if found {
			resp.Nonce = hex.EncodeToString(out[:])
		}
		c.JSON(http.StatusOK, resp)
	}
}

func handleCheck(c *gin.Context) {
	bt, ok := decodeTrailer(c)
	if !ok {
		return
	}

	var hash [32]byte
	valid := peach.Check(bt, &hash)
	c.JSON(http.StatusOK, checkResponse{Valid: valid, Hash: hex.EncodeToString(hash[:])})
}

func handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func handleTriggCheck(c *gin.Context) {
	bt, ok := decodeTrailer(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"valid": trigg.Check(bt)})
}

func main() {
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	log.Printf("effective mining config: difficulty=%d use_map=%t workers=%d", cfg.Difficulty, cfg.UseMap, cfg.Workers)
	rng.Srand(uint32(time.Now().UnixNano()))

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	api := router.Group("/api/v1")
	{
		api.GET("/health", handleHealth)
		api.POST("/solve", handleSolve())
		api.POST("/check", handleCheck)
		api.POST("/trigg/check", handleTriggCheck)
	}

	srv := &http.Server{
		Addr:    *addr,
		Handler: router,
	}

	go func() {
		log.Printf("minesvc listening on %s", *addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("shutting down minesvc...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
