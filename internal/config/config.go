package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	DataDir   string
	OutputDir string
	IndexPath string
	DBPath    string

	ExtractCount    int
	OrcidStrict     bool
	SourceKeySuffix string
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cwd, err := os.Getwd()
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		DataDir:   getEnv("DATA_DIR", filepath.Join(cwd, "tag_data")),
		OutputDir: getEnv("OUTPUT_DIR", filepath.Join(cwd, "output")),
		IndexPath: getEnv("INDEX_PATH", filepath.Join(cwd, "index", "index_en.json")),
		DBPath:    getEnv("DB_PATH", filepath.Join(cwd, "output", "profiles.db")),

		ExtractCount:    getEnvInt("EXTRACT_COUNT", 3),
		OrcidStrict:     getEnvBool("ORCID_STRICT", false),
		SourceKeySuffix: getEnv("SOURCE_KEY_SUFFIX", "_tag_data"),
	}

	return cfg, nil
}

// Intermediate and final file locations inside OutputDir. Each stage reads
// the previous stage's default unless overridden on the command line.

func (c Config) ExtractedPath() string { return filepath.Join(c.OutputDir, "extracted_data.json") }
func (c Config) CleanedPath() string   { return filepath.Join(c.OutputDir, "cleaned_data.json") }
func (c Config) ResolvedPath() string  { return filepath.Join(c.OutputDir, "tag_data.json") }
func (c Config) ProductsCSVPath() string {
	return filepath.Join(c.OutputDir, "academic_products.csv")
}
func (c Config) TagsCSVPath() string { return filepath.Join(c.OutputDir, "tags.csv") }

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvBool(key string, fallback bool) bool {
	value := strings.ToLower(strings.TrimSpace(getEnv(key, "")))
	if value == "" {
		return fallback
	}
	if value == "1" || value == "true" || value == "yes" || value == "on" {
		return true
	}
	if value == "0" || value == "false" || value == "no" || value == "off" {
		return false
	}
	return fallback
}
