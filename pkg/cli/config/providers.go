package config

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	providermodel "github.com/voicegw/voicegw/pkg/domain/model/provider"
	"github.com/voicegw/voicegw/pkg/domain/types"
	providersvc "github.com/voicegw/voicegw/pkg/service/provider"
	"gopkg.in/yaml.v3"
)

//go:embed templates/providers.yaml
var defaultProvidersConfig string

// Providers holds voice agent provider configuration: per-provider API keys
// and an optional catalog file
type Providers struct {
	VapiAPIKey   string `masq:"secret"`
	RetellAPIKey string `masq:"secret"`
	CatalogFile  string
}

// Flags returns CLI flags for provider configuration. The API keys are not
// marked required; their absence fails requests at call time, not startup.
func (x *Providers) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "vapi-api-key",
			Category:    "provider",
			Sources:     cli.EnvVars("VAPI_API_KEY"),
			Usage:       "Vapi.ai API key",
			Destination: &x.VapiAPIKey,
		},
		&cli.StringFlag{
			Name:        "retell-api-key",
			Category:    "provider",
			Sources:     cli.EnvVars("RETELL_API_KEY"),
			Usage:       "Retell API key",
			Destination: &x.RetellAPIKey,
		},
		&cli.StringFlag{
			Name:        "providers-config",
			Category:    "provider",
			Sources:     cli.EnvVars("VOICEGW_PROVIDERS_CONFIG"),
			Usage:       "Path to provider catalog file (uses embedded defaults when omitted)",
			Destination: &x.CatalogFile,
		},
	}
}

// LoadCatalog reads the provider catalog, falling back to the embedded
// default template
func (x *Providers) LoadCatalog() (*providermodel.Config, error) {
	var catalog providermodel.Config

	if x.CatalogFile != "" {
		data, err := os.ReadFile(filepath.Clean(x.CatalogFile))
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read provider catalog", goerr.V("file", x.CatalogFile))
		}
		if err := yaml.Unmarshal(data, &catalog); err != nil {
			return nil, goerr.Wrap(err, "failed to parse provider catalog", goerr.V("file", x.CatalogFile))
		}
	} else {
		if err := yaml.Unmarshal([]byte(defaultProvidersConfig), &catalog); err != nil {
			return nil, goerr.Wrap(err, "failed to parse default provider catalog")
		}
	}

	catalog.ApplyDefaults()
	return &catalog, nil
}

// Credentials builds the read-only provider credential map. Keys absent from
// the environment are omitted so that missing credentials can be reported at
// request time.
func (x *Providers) Credentials() map[types.Provider]providersvc.Credential {
	credentials := make(map[types.Provider]providersvc.Credential)
	if x.VapiAPIKey != "" {
		credentials[types.ProviderVapi] = providersvc.Credential{APIKey: x.VapiAPIKey}
	}
	if x.RetellAPIKey != "" {
		credentials[types.ProviderRetell] = providersvc.Credential{APIKey: x.RetellAPIKey}
	}
	return credentials
}

// Configure builds the provider adapter factory
func (x *Providers) Configure() (*providersvc.Factory, error) {
	catalog, err := x.LoadCatalog()
	if err != nil {
		return nil, err
	}

	return providersvc.NewFactory(catalog, x.Credentials())
}

// GetDefaultProvidersConfig returns the default provider catalog template
func GetDefaultProvidersConfig() string {
	return defaultProvidersConfig
}

// GenerateConfigFile writes the default catalog template to a file
func GenerateConfigFile(outputPath string) error {
	dir := filepath.Dir(outputPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return goerr.Wrap(err, "failed to create directory", goerr.V("dir", dir))
	}

	if err := os.WriteFile(outputPath, []byte(defaultProvidersConfig), 0600); err != nil {
		return goerr.Wrap(err, "failed to write config file", goerr.V("path", outputPath))
	}

	return nil
}
