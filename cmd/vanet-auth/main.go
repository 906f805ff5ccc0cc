// Command vanet-auth runs the full proving lifecycle once: synthesize a
// witness with fresh key material, compile and set up the circuit, generate
// a Groth16 proof, and verify it against the public statement.
package main

import (
	"flag"
	"os"
	"time"

	gnarklogger "github.com/consensys/gnark/logger"
	"github.com/rs/zerolog"

	"vanet-auth/circuits/vanet"
	prover "vanet-auth/pkg/vanet"
)

// Sample record a vehicle would broadcast: pseudo random address || GPS data.
const sampleMessage = "0xd91c747b4a76B8013Aa336Cbc52FD95a7a9BD3D9$GPRMC,092927.000,A,2235.9058,N,11400.0518,E,0.000,74.11,151216,,D*49"

func main() {
	keyBits := flag.Int("keybits", vanet.DefaultKeyBits, "RSA key length in bits")
	message := flag.String("message", sampleMessage, "plaintext to prove encrypted")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}).With().Timestamp().Logger()
	gnarklogger.Set(logger)

	cfg := vanet.Config{Name: "vanet_rsa2048", KeyBits: *keyBits, MessageLen: len(*message)}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}
	logger.Info().Str("message", *message).Int("keyBits", cfg.KeyBits).Msg("plaintext fixed")

	start := time.Now()
	material, err := prover.Synthesize(cfg, []byte(*message))
	if err != nil {
		logger.Fatal().Err(err).Msg("witness synthesis failed")
	}
	logger.Info().
		Dur("took", time.Since(start)).
		Int("randomnessBytes", len(material.Randomness)).
		Msg("witness synthesized")

	start = time.Now()
	keys, err := prover.Setup(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("setup failed")
	}
	logger.Info().
		Dur("took", time.Since(start)).
		Int("constraints", keys.CCS.GetNbConstraints()).
		Msg("circuit compiled and keys generated")

	start = time.Now()
	proof, err := prover.Prove(keys, material)
	if err != nil {
		logger.Fatal().Err(err).Msg("proving failed")
	}
	logger.Info().Dur("took", time.Since(start)).Int("proofBytes", len(proof)).Msg("proof generated")

	start = time.Now()
	if err := prover.Verify(keys, proof, material.Message, material.Authority.N, material.Ciphertext); err != nil {
		logger.Fatal().Err(err).Msg("verification failed")
	}
	logger.Info().Dur("took", time.Since(start)).Msg("proof verified")

	words := vanet.PackCiphertext(material.Ciphertext)
	logger.Info().Int("isSignatureValid", 1).Int("cipherWords", len(words)).Msg("public outputs")
	for i, w := range words {
		logger.Info().Int("word", i).Str("value", w.Text(16)).Msg("output cipher text")
	}
}
