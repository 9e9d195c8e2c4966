package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// Config holds application configuration.
type Config struct {
	Port             string   `koanf:"port"`
	Env              string   `koanf:"env"`
	CORSAllowOrigins []string `koanf:"cors_allow_origins"`

	// Upload settings.
	UploadDir         string   `koanf:"upload_dir"`
	MaxUploadBytes    int64    `koanf:"max_upload_bytes"`
	AllowedImageTypes []string `koanf:"allowed_image_types"`

	// Analysis settings.
	ModelConfidenceThreshold float64  `koanf:"model_confidence_threshold"`
	FaceDetectionConfidence  float64  `koanf:"face_detection_confidence"`
	FaceCascadeFile          string   `koanf:"face_cascade_file"`
	SkinConditions           []string `koanf:"skin_conditions"`

	// Recommendation settings.
	WeeklyDoubleListing bool `koanf:"weekly_double_listing"`
}

// Default returns the configuration defaults used when no environment
// overrides are present.
func Default() Config {
	return Config{
		Port:              "8080",
		Env:               "dev",
		CORSAllowOrigins:  []string{"*"},
		UploadDir:         "./uploads",
		MaxUploadBytes:    10 << 20, // 10MB
		AllowedImageTypes: []string{"image/jpeg", "image/png", "image/jpg"},

		ModelConfidenceThreshold: 0.7,
		FaceDetectionConfidence:  0.5,
		FaceCascadeFile:          "cascade/facefinder",
		SkinConditions: []string{
			"acne",
			"wrinkles",
			"dark_spots",
			"oiliness",
			"dryness",
			"pores",
			"pigmentation",
		},

		WeeklyDoubleListing: true,
	}
}

// listKeys are config keys whose env values are comma-separated lists.
var listKeys = map[string]bool{
	"cors_allow_origins":  true,
	"allowed_image_types": true,
	"skin_conditions":     true,
}

// Load builds a Config by layering defaults under environment variables
// with the SKINVISION_ prefix (e.g. SKINVISION_PORT, SKINVISION_UPLOAD_DIR).
func Load() (Config, error) {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return Config{}, fmt.Errorf("load defaults: %w", err)
	}

	envProvider := env.ProviderWithValue("SKINVISION_", ".", func(key, value string) (string, interface{}) {
		key = strings.ToLower(strings.TrimPrefix(key, "SKINVISION_"))
		if listKeys[key] {
			return key, splitAndTrim(value)
		}
		return key, value
	})
	if err := k.Load(envProvider, nil); err != nil {
		return Config{}, fmt.Errorf("load env: %w", err)
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.Env = normalizeEnv(cfg.Env)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configurations that cannot serve requests.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Port) == "" {
		return fmt.Errorf("port must not be empty")
	}
	if strings.TrimSpace(c.UploadDir) == "" {
		return fmt.Errorf("upload_dir must not be empty")
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("max_upload_bytes must be positive")
	}
	if len(c.AllowedImageTypes) == 0 {
		return fmt.Errorf("allowed_image_types must not be empty")
	}
	if c.ModelConfidenceThreshold < 0 || c.ModelConfidenceThreshold > 1 {
		return fmt.Errorf("model_confidence_threshold must be in [0,1]")
	}
	if c.FaceDetectionConfidence < 0 || c.FaceDetectionConfidence > 1 {
		return fmt.Errorf("face_detection_confidence must be in [0,1]")
	}
	if len(c.SkinConditions) == 0 {
		return fmt.Errorf("skin_conditions must not be empty")
	}
	return nil
}

// AllowsImageType reports whether the declared content type is accepted.
func (c Config) AllowsImageType(contentType string) bool {
	// Strip media type parameters (e.g. "; charset=binary").
	if idx := strings.Index(contentType, ";"); idx >= 0 {
		contentType = contentType[:idx]
	}
	normalized := strings.ToLower(strings.TrimSpace(contentType))
	for _, allowed := range c.AllowedImageTypes {
		if normalized == strings.ToLower(strings.TrimSpace(allowed)) {
			return true
		}
	}
	return false
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}
