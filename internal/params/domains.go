package params

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/qdm12/gdomains-updater/internal/models"
	"go.yaml.in/yaml/v3"
)

// Defaults are applied to the domain entries
// not specifying an interval or a timeout.
type Defaults struct {
	Interval time.Duration
	Timeout  time.Duration
}

type domainsFile struct {
	Settings []domainEntry `json:"settings" yaml:"settings"`
}

type domainEntry struct {
	Domain   string `json:"domain" yaml:"domain"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	// Interval is in minutes.
	Interval uint `json:"interval" yaml:"interval"`
	// Timeout is in seconds.
	Timeout uint `json:"timeout" yaml:"timeout"`
}

var ErrDomainDuplicated = errors.New("domain is duplicated")

// DomainConfigs reads the domains file at filePath, creating it empty
// if it does not exist. Invalid entries are skipped and reported as
// warnings. Files ending with .yaml or .yml are decoded as YAML,
// and as JSON otherwise.
func (r *Reader) DomainConfigs(filePath string, defaults Defaults) (
	configs []models.UpdateConfig, warnings []string, err error) {
	data, err := r.readFile(filePath)
	if errors.Is(err, fs.ErrNotExist) {
		err = r.createEmpty(filePath)
		if err != nil {
			return nil, nil, err
		}
		r.logger.Warn("created empty domains file " + filePath)
		return nil, nil, nil
	} else if err != nil {
		return nil, nil, fmt.Errorf("reading domains file: %w", err)
	}

	file, err := decode(filePath, data)
	if err != nil {
		return nil, nil, fmt.Errorf("decoding domains file: %w", err)
	}

	domainToIndex := make(map[string]int, len(file.Settings))
	configs = make([]models.UpdateConfig, 0, len(file.Settings))
	for i, entry := range file.Settings {
		config := entry.toConfig(defaults)
		config.SetDefaults()
		err = config.Validate()
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("entry %d: %s", i+1, err))
			continue
		}

		config.Domain = strings.ToLower(config.Domain)
		firstIndex, duplicated := domainToIndex[config.Domain]
		if duplicated {
			warnings = append(warnings, fmt.Sprintf("entry %d: %s: %s already defined in entry %d",
				i+1, ErrDomainDuplicated, config.Domain, firstIndex+1))
			continue
		}
		domainToIndex[config.Domain] = i

		configs = append(configs, config)
	}

	return configs, warnings, nil
}

func decode(filePath string, data []byte) (file domainsFile, err error) {
	if isYAML(filePath) {
		err = yaml.Unmarshal(data, &file)
	} else {
		err = json.Unmarshal(data, &file)
	}
	return file, err
}

func (d domainEntry) toConfig(defaults Defaults) models.UpdateConfig {
	config := models.UpdateConfig{
		Domain:   strings.TrimSpace(d.Domain),
		Username: d.Username,
		Password: d.Password,
		Interval: time.Duration(d.Interval) * time.Minute,
		Timeout:  time.Duration(d.Timeout) * time.Second,
	}
	if config.Interval == 0 {
		config.Interval = defaults.Interval
	}
	if config.Timeout == 0 {
		config.Timeout = defaults.Timeout
	}
	return config
}

func (r *Reader) createEmpty(filePath string) (err error) {
	const dirPerm, filePerm = fs.FileMode(0o700), fs.FileMode(0o600)
	err = r.mkdirAll(filepath.Dir(filePath), dirPerm)
	if err != nil {
		return fmt.Errorf("creating domains file directory: %w", err)
	}

	data := []byte(`{"settings":[]}` + "\n")
	if isYAML(filePath) {
		data = []byte("settings: []\n")
	}

	err = r.writeFile(filePath, data, filePerm)
	if err != nil {
		return fmt.Errorf("creating empty domains file: %w", err)
	}
	return nil
}

func isYAML(filePath string) bool {
	extension := strings.ToLower(filepath.Ext(filePath))
	return extension == ".yaml" || extension == ".yml"
}
