package config

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sethgrid/pester"
	yaml "gopkg.in/yaml.v2"
)

// Config is the yaml document pointing the notifier at branches and builders
type Config struct {
	Configuration Configuration `yaml:"configuration"`
}

// Configuration holds the branches to poll and an optional allowlist of builder names
type Configuration struct {
	Branches      []string `yaml:"branches"`
	BuilderFilter []string `yaml:"builder_filter"`
}

// Validate checks whether the config can drive a polling run
func (c *Config) Validate() (err error) {
	if len(c.Configuration.Branches) == 0 {
		return fmt.Errorf("Config requires at least one branch under configuration.branches")
	}

	return nil
}

// Load reads the config document from a local path or from a http(s) url
func Load(ctx context.Context, location string) (config Config, err error) {

	var data []byte
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		data, err = loadFromURL(ctx, location)
	} else {
		data, err = os.ReadFile(location)
	}
	if err != nil {
		return config, err
	}

	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return config, fmt.Errorf("Failed unmarshalling config from %v: %v", location, err)
	}

	log.Debug().Msgf("Loaded config with %v branches from %v", len(config.Configuration.Branches), location)

	return config, nil
}

func loadFromURL(ctx context.Context, configURL string) (data []byte, err error) {

	// create client, single attempt only
	client := pester.New()
	client.MaxRetries = 1
	client.Backoff = pester.DefaultBackoff
	client.KeepLog = true
	client.Timeout = time.Second * 60

	request, err := http.NewRequest("GET", configURL, nil)
	if err != nil {
		return nil, err
	}
	request = request.WithContext(ctx)

	response, err := client.Do(request)
	if err != nil {
		return nil, fmt.Errorf("Failed retrieving config from %v: %v", configURL, err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Retrieving config from %v responded with status code %v", configURL, response.StatusCode)
	}

	return io.ReadAll(response.Body)
}
