package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Port != "8080" {
		t.Fatalf("port = %q, want 8080", cfg.Port)
	}
	if cfg.MaxUploadBytes != 10<<20 {
		t.Fatalf("max upload bytes = %d, want 10MB", cfg.MaxUploadBytes)
	}
	if len(cfg.SkinConditions) != 7 {
		t.Fatalf("skin conditions = %d, want 7", len(cfg.SkinConditions))
	}
	if !cfg.WeeklyDoubleListing {
		t.Fatal("weekly double listing should default on")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SKINVISION_PORT", "9999")
	t.Setenv("SKINVISION_UPLOAD_DIR", "/tmp/skinvision-test")
	t.Setenv("SKINVISION_ALLOWED_IMAGE_TYPES", "image/png, image/webp")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Port != "9999" {
		t.Fatalf("port = %q, want 9999", cfg.Port)
	}
	if cfg.UploadDir != "/tmp/skinvision-test" {
		t.Fatalf("upload dir = %q", cfg.UploadDir)
	}
	if len(cfg.AllowedImageTypes) != 2 || cfg.AllowedImageTypes[1] != "image/webp" {
		t.Fatalf("allowed types = %v", cfg.AllowedImageTypes)
	}
}

func TestLoadRejectsInvalidThreshold(t *testing.T) {
	t.Setenv("SKINVISION_MODEL_CONFIDENCE_THRESHOLD", "1.5")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for out-of-range threshold")
	}
}

func TestAllowsImageType(t *testing.T) {
	cfg := Default()

	if !cfg.AllowsImageType("image/png") {
		t.Fatal("image/png should be allowed")
	}
	if !cfg.AllowsImageType("image/jpeg; charset=binary") {
		t.Fatal("parameterized content type should match its media type")
	}
	if cfg.AllowsImageType("application/pdf") {
		t.Fatal("application/pdf should be rejected")
	}
}
