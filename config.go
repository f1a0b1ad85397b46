package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type Config struct {
	SaveDirectory string
	Confirmations bool
	View          ViewKind
	Axis          AxisConfig
}

func defaultConfig() *Config {
	return &Config{
		Confirmations: true,
		View:          ViewSingle,
		Axis:          defaultAxis(),
	}
}

func defaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".axisdroprc")
}

// loadConfig reads key = value lines from path. A missing file yields the
// defaults; an axis that fails validation is replaced by the default axis
// and reported through the returned error.
func loadConfig(path string) (*Config, error) {
	config := defaultConfig()
	if path == "" {
		return config, nil
	}

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return config, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	homeDir, _ := os.UserHomeDir()
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch strings.ToLower(key) {
		case "savedirectory", "save_directory", "savedir":
			if strings.HasPrefix(value, "~") && homeDir != "" {
				value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
			}
			if !filepath.IsAbs(value) {
				if absPath, err := filepath.Abs(value); err == nil {
					value = absPath
				}
			}
			config.SaveDirectory = value
		case "confirmations", "confirm":
			config.Confirmations = strings.ToLower(value) == "true"
		case "view":
			if strings.ToLower(value) == "dual" {
				config.View = ViewDual
			} else {
				config.View = ViewSingle
			}
		case "xmin", "x_min":
			setFloat(&config.Axis.XMin, value)
		case "xmax", "x_max":
			setFloat(&config.Axis.XMax, value)
		case "ymin", "y_min":
			setFloat(&config.Axis.YMin, value)
		case "ymax", "y_max":
			setFloat(&config.Axis.YMax, value)
		case "gridsize", "grid_size", "grid":
			setFloat(&config.Axis.GridSize, value)
		}
	}
	if err := scanner.Err(); err != nil {
		return config, fmt.Errorf("read config: %w", err)
	}

	if err := config.Axis.Validate(); err != nil {
		config.Axis = defaultAxis()
		return config, fmt.Errorf("config %s: %w", path, err)
	}
	return config, nil
}

func setFloat(dst *float64, value string) {
	if v, err := strconv.ParseFloat(value, 64); err == nil {
		*dst = v
	}
}

// GetSavePath resolves filename under the save directory, creating the
// directory when needed.
func (c *Config) GetSavePath(filename string) (string, error) {
	if c.SaveDirectory == "" {
		return filename, nil
	}
	if err := os.MkdirAll(c.SaveDirectory, 0755); err != nil {
		return "", fmt.Errorf("save directory: %w", err)
	}
	return filepath.Join(c.SaveDirectory, filename), nil
}
