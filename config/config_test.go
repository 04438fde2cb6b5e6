package config

import (
	"os"
	"path/filepath"
	"testing"
)

const testSecret = "0123456789abcdef"

func TestLoad_SecretFromEnvironment(t *testing.T) {
	t.Setenv("AUDIT_AUTH_JWT_SECRET", testSecret)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Auth.JWTSecret != testSecret {
		t.Errorf("JWTSecret = %q, want the environment value", cfg.Auth.JWTSecret)
	}
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("AUDIT_AUTH_JWT_SECRET", "")

	if _, err := Load(""); err == nil {
		t.Fatal("expected an error without auth.jwt_secret")
	}
}

func TestLoad_DefaultDepartmentCodes(t *testing.T) {
	t.Setenv("AUDIT_AUTH_JWT_SECRET", testSecret)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got := cfg.Identity.DepartmentCodes["Удирдлага"]; got != "DAG" {
		t.Errorf("code for Удирдлага = %q, want DAG", got)
	}
	if got := cfg.Identity.DepartmentCodes["Зайны аудит чанарын баталгаажуулалтын хэлтэс"]; got != "ZAGCHBH" {
		t.Errorf("code for remote audit department = %q, want ZAGCHBH", got)
	}
}

// Department names are Cyrillic map keys; a config file override must
// come back byte-for-byte, not case-folded by the config library.
func TestLoad_FileDepartmentCodesKeepCase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
auth:
  jwt_secret: "` + testSecret + `"
identity:
  department_codes:
    "Удирдлага": "DAG"
    "TestDept": "TST"
`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("writing config file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	codes := cfg.Identity.DepartmentCodes
	if got := codes["Удирдлага"]; got != "DAG" {
		t.Errorf("code for Удирдлага = %q, want DAG (keys: %v)", got, codes)
	}
	if got := codes["TestDept"]; got != "TST" {
		t.Errorf("code for TestDept = %q, want TST (keys: %v)", got, codes)
	}
	if _, ok := codes["testdept"]; ok {
		t.Error("map key was lower-cased on load")
	}
	if len(codes) != 2 {
		t.Errorf("table has %d entries, want the file's 2: %v", len(codes), codes)
	}
}

func TestLoad_FileWithoutCodesKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
auth:
  jwt_secret: "` + testSecret + `"
server:
  port: 4000
`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("writing config file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 4000 {
		t.Errorf("Port = %d, want 4000", cfg.Server.Port)
	}
	if got := cfg.Identity.DepartmentCodes["Дата анализын алба"]; got != "DAA" {
		t.Errorf("code for Дата анализын алба = %q, want the default DAA", got)
	}
}
