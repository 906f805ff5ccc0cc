package main

import (
	"fmt"
	"log"
	"time"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"

	"vanet-auth/circuits/vanet"
)

func main() {
	fmt.Println("=== VANET Circuit Analysis ===")

	cfg := vanet.DefaultConfig()
	circuit, err := vanet.NewCircuit(cfg)
	if err != nil {
		log.Fatal("Invalid configuration:", err)
	}

	fmt.Printf("\n[1/2] Compiling %s (key %d bits, message %d bytes)...\n", cfg.Name, cfg.KeyBits, cfg.MessageLen)
	startCompile := time.Now()

	ccs, err := frontend.Compile(ecc.BN254.ScalarField(), r1cs.NewBuilder, circuit)
	if err != nil {
		log.Fatal("Compilation failed:", err)
	}

	compileTime := time.Since(startCompile)
	constraints := ccs.GetNbConstraints()

	fmt.Printf("✓ Compilation successful\n")
	fmt.Printf("  Time: %v\n", compileTime)
	fmt.Printf("  Constraints: %d\n", constraints)

	// Rule of thumb: ~10-20ms per 1000 constraints on modern hardware.
	estimatedSeconds := float64(constraints) * 0.015 / 1000

	fmt.Printf("\n[2/2] Public statement size\n")
	fmt.Printf("  Message bytes:    %d\n", cfg.MessageLen)
	fmt.Printf("  Ciphertext words: %d (%d bytes packed 30 per word)\n", cfg.WordCount(), cfg.KeyBytes())
	fmt.Printf("  Randomness bytes: %d (private)\n", cfg.RandomnessLen())

	fmt.Println("\n=== Summary ===")
	fmt.Printf("Constraints: %d\n", constraints)
	fmt.Printf("Compile Time: %v\n", compileTime)
	fmt.Printf("Est. Prove Time: ~%.1fs\n", estimatedSeconds)
}
