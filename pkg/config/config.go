package config

import (
	"k8s.io/apimachinery/pkg/util/validation/field"
)

// Environment variable names for signer configuration
const (
	EnvSignerKeystorePath = "SIGNER_KEYSTORE_PATH"
	EnvSignerPassphrase   = "SIGNER_PASSPHRASE"
	EnvSignerKeyName      = "SIGNER_KEY_NAME"
	EnvSignerDebug        = "SIGNER_DEBUG"
)

// SignerConfig is the configuration for provisioning and loading a node's
// signing key
type SignerConfig struct {
	// Path of the encrypted key file
	KeystorePath string `json:"keystore_path"`

	// Passphrase protecting the key file. Supplied through the environment,
	// never on the command line in production.
	Passphrase string `json:"-"`

	// Human-readable name recorded for the key
	KeyName string `json:"key_name"`

	// Operational settings
	Debug bool `json:"debug"`
}

// Validate validates the signer configuration
func (sc *SignerConfig) Validate() error {
	var allErrors field.ErrorList
	if sc.KeystorePath == "" {
		allErrors = append(allErrors, field.Required(field.NewPath("keystorePath"), "keystorePath is required"))
	}
	if sc.Passphrase == "" {
		allErrors = append(allErrors, field.Required(field.NewPath("passphrase"), "passphrase is required"))
	}
	if len(allErrors) > 0 {
		return allErrors.ToAggregate()
	}
	return nil
}
