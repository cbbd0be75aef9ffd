package main

import (
	"encoding/hex"
	"flag"
	"log"
	"time"

	"github.com/atotto/clipboard"

	"trigpeach/internal/config"
	"trigpeach/internal/rng"
	"trigpeach/pkg/peach"
	"trigpeach/pkg/trailer"
)

var (
	phashHex = flag.String("phash", "", "hex-encoded 32-byte previous block hash (defaults to all zero)")
	bnum     = flag.Uint64("bnum", 0, "block number")
	diff     = flag.Uint("diff", 18, "difficulty in leading zero bits")
	copyOut  = flag.Bool("clipboard", true, "copy the solved nonce to the clipboard")
)

func main() {
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if !flagWasSet("diff") {
		*diff = uint(cfg.Difficulty)
	}

	bt := trailer.New()
	if *phashHex != "" {
		raw, err := hex.DecodeString(*phashHex)
		if err != nil || len(raw) != 32 {
			log.Fatalf("phash must be 32 hex-encoded bytes")
		}
		copy(bt.Phash(), raw)
	}
	bnumBytes := bt.BnumBytes()
	for i := 0; i < 8; i++ {
		bnumBytes[i] = byte(*bnum >> (8 * uint(i)))
	}
	bt.SetDifficulty(uint32(*diff))

	rng.Srand(uint32(time.Now().UnixNano()))

	if !cfg.UseMap {
		log.Println("mining config requests use_map=false; solving always allocates the tile map regardless, since this core has no map-less solve path")
	}
	var P peach.Context
	if err := peach.Solve(&P, bt); err != nil {
		log.Fatalf("solve: %v", err)
	}
	defer peach.Free(&P)

	log.Printf("mining at difficulty %d, phash=%x", *diff, bt.Phash())

	start := time.Now()
	var out [32]byte
	var attempts uint64
	for {
		attempts++
		if peach.Generate(&P, &out) {
			break
		}
		if attempts%100000 == 0 {
			elapsed := time.Since(start)
			log.Printf("%d attempts, %.0f h/s", attempts, float64(attempts)/elapsed.Seconds())
		}
	}

	elapsed := time.Since(start)
	nonceHex := hex.EncodeToString(out[:])
	log.Printf("solved in %v (%d attempts): nonce=%s", elapsed, attempts, nonceHex)

	if *copyOut {
		if err := clipboard.WriteAll(nonceHex); err != nil {
			log.Printf("clipboard copy failed: %v", err)
		} else {
			log.Println("nonce copied to clipboard")
		}
	}
}

// flagWasSet reports whether a flag was explicitly passed on the command
// line, so a trailer-independent default (like the mining config's
// difficulty) only applies when the caller didn't override it.
func flagWasSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
