package service_test

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	pluginout "inward/internal/modules/plugin/adapter/out"
	"inward/internal/modules/plugin/domain"
	"inward/internal/modules/plugin/service"
)

type fakeStore struct {
	manifests []domain.Manifest
}

func (s fakeStore) Load(context.Context) ([]domain.Manifest, error) {
	return s.manifests, nil
}

type fakeHost struct {
	result domain.InsightResult
}

func (fakeHost) CheckLifecycle(context.Context, domain.Manifest) error { return nil }
func (fakeHost) GetMetadata(context.Context, domain.Manifest) (domain.Metadata, error) {
	return domain.Metadata{Name: "fake", Version: "1"}, nil
}
func (h fakeHost) GenerateInsight(context.Context, domain.Manifest, domain.InsightRequest) (domain.InsightResult, error) {
	return h.result, nil
}

func TestGenerateRejectsDisabledPlugin(t *testing.T) {
	t.Parallel()
	manifest := manifestWithBinary(t, false, []domain.Capability{domain.CapabilityInsight})
	svc := service.NewPluginService(fakeStore{manifests: []domain.Manifest{manifest}}, fakeHost{})
	_, err := svc.Generate(context.Background(), manifest.Name, domain.InsightRequest{ReportJSON: "{}"})
	if !errors.Is(err, domain.ErrPluginDisabled) {
		t.Fatalf("expected ErrPluginDisabled, got %v", err)
	}
}

func TestGenerateRejectsMissingCapability(t *testing.T) {
	t.Parallel()
	manifest := manifestWithBinary(t, true, []domain.Capability{domain.CapabilityExport})
	svc := service.NewPluginService(fakeStore{manifests: []domain.Manifest{manifest}}, fakeHost{})
	_, err := svc.Generate(context.Background(), manifest.Name, domain.InsightRequest{ReportJSON: "{}"})
	if !errors.Is(err, domain.ErrCapabilityMissing) {
		t.Fatalf("expected ErrCapabilityMissing, got %v", err)
	}
}

func TestGenerateRejectsChecksumMismatch(t *testing.T) {
	t.Parallel()
	manifest := manifestWithBinary(t, true, []domain.Capability{domain.CapabilityInsight})
	manifest.SHA256 = strings.Repeat("0", 64)
	svc := service.NewPluginService(fakeStore{manifests: []domain.Manifest{manifest}}, fakeHost{})
	_, err := svc.Generate(context.Background(), manifest.Name, domain.InsightRequest{ReportJSON: "{}"})
	if !errors.Is(err, domain.ErrChecksumMismatch) {
		t.Fatalf("expected ErrChecksumMismatch, got %v", err)
	}
}

func TestGenerateRejectsUnknownPlugin(t *testing.T) {
	t.Parallel()
	svc := service.NewPluginService(fakeStore{}, fakeHost{})
	_, err := svc.Generate(context.Background(), "nope", domain.InsightRequest{ReportJSON: "{}"})
	if err == nil {
		t.Fatalf("expected unknown plugin error")
	}
}

func TestGenerateRejectsInvalidReportJSON(t *testing.T) {
	t.Parallel()
	manifest := manifestWithBinary(t, true, []domain.Capability{domain.CapabilityInsight})
	svc := service.NewPluginService(fakeStore{manifests: []domain.Manifest{manifest}}, fakeHost{})
	_, err := svc.Generate(context.Background(), manifest.Name, domain.InsightRequest{ReportJSON: "{not-json"})
	if err == nil {
		t.Fatalf("expected invalid json error")
	}
}

func TestGenerateSuccess(t *testing.T) {
	t.Parallel()
	manifest := manifestWithBinary(t, true, []domain.Capability{domain.CapabilityInsight})
	want := domain.InsightResult{Title: "Your week", Body: "steady", Suggestions: []string{"keep going"}}
	svc := service.NewPluginService(fakeStore{manifests: []domain.Manifest{manifest}}, fakeHost{result: want})
	got, err := svc.Generate(context.Background(), manifest.Name, domain.InsightRequest{ReportJSON: `{"CheckInCount":3}`, Tone: "gentle"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if got.Title != want.Title || got.Body != want.Body {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestListRejectsDuplicateNames(t *testing.T) {
	t.Parallel()
	a := manifestWithBinary(t, true, []domain.Capability{domain.CapabilityInsight})
	b := manifestWithBinary(t, true, []domain.Capability{domain.CapabilityInsight})
	svc := service.NewPluginService(fakeStore{manifests: []domain.Manifest{a, b}}, fakeHost{})
	if _, err := svc.List(context.Background()); err == nil {
		t.Fatalf("expected duplicate name error")
	}
}

func TestDoctorDetectsChecksumMismatch(t *testing.T) {
	t.Parallel()
	pluginsDir := t.TempDir()
	binPath := filepath.Join(pluginsDir, "dummy-plugin")
	if err := os.WriteFile(binPath, []byte("not-a-real-plugin"), 0o755); err != nil {
		t.Fatalf("write plugin binary: %v", err)
	}
	manifests := []domain.Manifest{{
		Name:         "demo",
		Version:      "1.0.0",
		Binary:       binPath,
		SHA256:       strings.Repeat("0", 64),
		Enabled:      true,
		Capabilities: []domain.Capability{domain.CapabilityInsight},
	}}
	raw, _ := json.Marshal(manifests)
	if err := os.WriteFile(filepath.Join(pluginsDir, "plugins.json"), raw, 0o644); err != nil {
		t.Fatalf("write plugins.json: %v", err)
	}

	svc := service.NewPluginService(pluginout.NewFileManifestStore(pluginsDir), nil)
	results, err := svc.Doctor(context.Background())
	if err != nil {
		t.Fatalf("doctor: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected one result, got %d", len(results))
	}
	if results[0].ChecksumValid {
		t.Fatalf("expected checksum mismatch")
	}
	if !results[0].BinaryReachable {
		t.Fatalf("expected binary to be reachable")
	}
}

func TestDoctorReportsMissingBinary(t *testing.T) {
	t.Parallel()
	manifest := manifestWithBinary(t, true, []domain.Capability{domain.CapabilityInsight})
	manifest.Binary = filepath.Join(t.TempDir(), "gone")
	svc := service.NewPluginService(fakeStore{manifests: []domain.Manifest{manifest}}, fakeHost{})
	results, err := svc.Doctor(context.Background())
	if err != nil {
		t.Fatalf("doctor: %v", err)
	}
	if results[0].BinaryReachable {
		t.Fatalf("expected missing binary")
	}
	if results[0].Error == "" {
		t.Fatalf("expected error message")
	}
}

func manifestWithBinary(t *testing.T, enabled bool, capabilities []domain.Capability) domain.Manifest {
	t.Helper()
	binPath := filepath.Join(t.TempDir(), "plugin-bin")
	if err := os.WriteFile(binPath, []byte("binary"), 0o755); err != nil {
		t.Fatalf("write binary: %v", err)
	}
	hash := sha256.Sum256([]byte("binary"))
	return domain.Manifest{
		Name:         "demo",
		Version:      "1.0.0",
		Binary:       binPath,
		SHA256:       hex.EncodeToString(hash[:]),
		Enabled:      enabled,
		Capabilities: capabilities,
	}
}
