package handler

import (
	"fmt"

	"ifile/internal/cli/output"
	"ifile/internal/core"

	"gopkg.in/yaml.v3"
)

type ConfigCommandHandler struct {
	configRepository core.ConfigRepository
}

func ProvideConfigCommandHandler(configRepository core.ConfigRepository) ConfigCommandHandler {
	return ConfigCommandHandler{
		configRepository: configRepository,
	}
}

// HandleShow prints the effective configuration, defaults included.
func (h *ConfigCommandHandler) HandleShow() error {
	config, err := h.configRepository.LoadConfig()
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	_, err = output.Stdout.Write(data)
	return err
}
