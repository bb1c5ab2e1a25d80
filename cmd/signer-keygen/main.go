package main

import (
	"encoding/hex"
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/Layr-Labs/bft-signing-go/pkg/config"
	"github.com/Layr-Labs/bft-signing-go/pkg/ed25519"
	"github.com/Layr-Labs/bft-signing-go/pkg/keystore"
	"github.com/Layr-Labs/bft-signing-go/pkg/logger"
)

func main() {
	app := &cli.App{
		Name:  "signer-keygen",
		Usage: "Manage Ed25519 consensus signing keys",
		Description: `Provisions and inspects the encrypted key files used by the consensus
message signer. Keys are Ed25519; files are JSON envelopes encrypted with a
passphrase-derived key (scrypt + NaCl secretbox).`,
		Version: "1.0.0",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "keystore",
				Aliases: []string{"k"},
				Usage:   "Path of the encrypted key file",
				EnvVars: []string{config.EnvSignerKeystorePath},
			},
			&cli.StringFlag{
				Name:    "passphrase",
				Usage:   "Passphrase protecting the key file",
				EnvVars: []string{config.EnvSignerPassphrase},
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Usage:   "Enable verbose logging",
				EnvVars: []string{config.EnvSignerDebug},
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "generate",
				Usage: "Generate a new signing key and write the encrypted key file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "key-name",
						Value:   "consensus-signer",
						Usage:   "Human-readable name recorded for the key",
						EnvVars: []string{config.EnvSignerKeyName},
					},
				},
				Action: runGenerate,
			},
			{
				Name:   "inspect",
				Usage:  "Print the public identity stored in a key file",
				Action: runInspect,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}

func parseConfig(c *cli.Context) (*config.SignerConfig, error) {
	cfg := &config.SignerConfig{
		KeystorePath: c.String("keystore"),
		Passphrase:   c.String("passphrase"),
		KeyName:      c.String("key-name"),
		Debug:        c.Bool("verbose"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}
	return cfg, nil
}

func runGenerate(c *cli.Context) error {
	cfg, err := parseConfig(c)
	if err != nil {
		return err
	}

	l, err := logger.NewLogger(&logger.LoggerConfig{Debug: cfg.Debug})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = l.Sync() }()

	if _, err := os.Stat(cfg.KeystorePath); err == nil {
		return fmt.Errorf("key file %s already exists, refusing to overwrite", cfg.KeystorePath)
	}

	privateKey, err := ed25519.GeneratePrivateKey()
	if err != nil {
		return fmt.Errorf("failed to generate key: %w", err)
	}

	keyId, err := keystore.Save(cfg.KeystorePath, privateKey, cfg.Passphrase, cfg.KeyName)
	if err != nil {
		return fmt.Errorf("failed to write key file: %w", err)
	}

	l.Info("Generated signing key",
		zap.String("keyId", keyId),
		zap.String("keystore", cfg.KeystorePath),
	)

	pub := privateKey.PublicKey()
	fmt.Printf("keyId:     %s\n", keyId)
	fmt.Printf("publicKey: %s\n", pub.String())
	fmt.Printf("address:   %s\n", pub.Address().String())
	return nil
}

func runInspect(c *cli.Context) error {
	path := c.String("keystore")
	if path == "" {
		return fmt.Errorf("configuration error: keystore path is required")
	}

	file, err := keystore.ReadKeyFile(path)
	if err != nil {
		return err
	}

	fmt.Printf("keyId:     %s\n", file.KeyId)
	if file.KeyName != "" {
		fmt.Printf("keyName:   %s\n", file.KeyName)
	}
	fmt.Printf("publicKey: %s\n", file.PublicKey)

	// The address is recoverable from the stored public key without the
	// passphrase.
	pubBytes, err := hex.DecodeString(file.PublicKey)
	if err != nil {
		return fmt.Errorf("invalid public key in key file: %w", err)
	}
	pub, err := ed25519.PublicKeyFromBytes(pubBytes)
	if err != nil {
		return fmt.Errorf("invalid public key in key file: %w", err)
	}
	fmt.Printf("address:   %s\n", pub.Address().String())
	return nil
}
