package service

import (
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/sevasetu/kavach/pkg/cryptox"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "kavach-test-pepper")
	if err != nil {
		log.Fatal(err)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}
