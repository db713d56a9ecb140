package config

import (
	"path/filepath"
	"testing"
)

// --- Fake backend ---

type fakeBackend struct {
	strings map[string]string
	ints    map[string]int
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{strings: make(map[string]string), ints: make(map[string]int)}
}

func (f *fakeBackend) GetString(key string) (string, bool, error) {
	v, ok := f.strings[key]
	return v, ok, nil
}

func (f *fakeBackend) GetInt(key string) (int, bool, error) {
	v, ok := f.ints[key]
	return v, ok, nil
}

func (f *fakeBackend) SetString(key, val string) error {
	f.strings[key] = val
	return nil
}

func (f *fakeBackend) SetInt(key string, val int) error {
	f.ints[key] = val
	return nil
}

func (f *fakeBackend) Delete(key string) error {
	delete(f.strings, key)
	delete(f.ints, key)
	return nil
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := loadWith(newFakeBackend())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 4700 {
		t.Errorf("default port = %d, want 4700", cfg.Server.Port)
	}
	if cfg.Engine.Model != "stub-legendary-model" {
		t.Errorf("default model = %q", cfg.Engine.Model)
	}
	if cfg.Engine.StreamDelayMs != 20 {
		t.Errorf("default stream delay = %d, want 20", cfg.Engine.StreamDelayMs)
	}
	if cfg.Chat.DefaultProfile != "balanced_expert" {
		t.Errorf("default profile = %q", cfg.Chat.DefaultProfile)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("default log level = %q", cfg.Log.Level)
	}
}

func TestLoad_BackendValues(t *testing.T) {
	b := newFakeBackend()
	b.SetInt("server.port", 9999)
	b.SetString("chat.default_profile", "legendary_sage")

	cfg, err := loadWith(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 9999 {
		t.Errorf("backend port not applied: %d", cfg.Server.Port)
	}
	if cfg.Chat.DefaultProfile != "legendary_sage" {
		t.Errorf("backend profile not applied: %q", cfg.Chat.DefaultProfile)
	}
}

func TestLoad_EnvOverridesBackend(t *testing.T) {
	b := newFakeBackend()
	b.SetInt("server.port", 9999)
	t.Setenv("MENTOR_SERVER_PORT", "4242")
	t.Setenv("MENTOR_LOG_LEVEL", "debug")

	cfg, err := loadWith(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 4242 {
		t.Errorf("env override lost: %d", cfg.Server.Port)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("env log level lost: %q", cfg.Log.Level)
	}
}

func TestLoad_InvalidEnvIntIgnored(t *testing.T) {
	t.Setenv("MENTOR_SERVER_PORT", "not-a-number")

	cfg, err := loadWith(newFakeBackend())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 4700 {
		t.Errorf("invalid env value should leave the default, got %d", cfg.Server.Port)
	}
}

func TestSetKey(t *testing.T) {
	b := newFakeBackend()

	if err := setKeyWith(b, "engine.model", "other-model"); err != nil {
		t.Fatalf("setting string key: %v", err)
	}
	if b.strings["engine.model"] != "other-model" {
		t.Error("string key not written")
	}

	if err := setKeyWith(b, "engine.stream_delay_ms", "5"); err != nil {
		t.Fatalf("setting int key: %v", err)
	}
	if b.ints["engine.stream_delay_ms"] != 5 {
		t.Error("int key not written")
	}

	if err := setKeyWith(b, "engine.stream_delay_ms", "fast"); err == nil {
		t.Error("non-integer value for int key should fail")
	}
	if err := setKeyWith(b, "nonsense.key", "x"); err == nil {
		t.Error("unknown key should fail")
	}
}

func TestShowAll_CoversEveryKey(t *testing.T) {
	cfg := defaults()
	infos := ShowAll(cfg)

	if len(infos) != len(ValidKeys()) {
		t.Fatalf("ShowAll returned %d entries, want %d", len(infos), len(ValidKeys()))
	}
	for _, info := range infos {
		if info.Key == "" || info.EnvVar == "" || info.Value == "" {
			t.Errorf("incomplete key info: %+v", info)
		}
	}
}

func TestFileBackend_Roundtrip(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	b := newFileBackend()
	if err := b.SetString("chat.default_profile", "ethical_leader"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := b.SetInt("server.port", 4811); err != nil {
		t.Fatalf("set: %v", err)
	}

	// A fresh backend re-reads the file from disk.
	again := newFileBackend()
	v, ok, err := again.GetString("chat.default_profile")
	if err != nil || !ok || v != "ethical_leader" {
		t.Errorf("string roundtrip failed: %q ok=%v err=%v", v, ok, err)
	}
	n, ok, err := again.GetInt("server.port")
	if err != nil || !ok || n != 4811 {
		t.Errorf("int roundtrip failed: %d ok=%v err=%v", n, ok, err)
	}

	want := filepath.Join(dir, "mentor", "config.json")
	if FilePath() != want {
		t.Errorf("FilePath() = %q, want %q", FilePath(), want)
	}
}
