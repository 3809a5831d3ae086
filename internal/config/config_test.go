package config

import (
	"testing"

	"github.com/lbarnes/chessd/internal/testutil"
)

func TestDefaultIsZeroValue(t *testing.T) {
	cfg := Default()
	testutil.AssertFalse(t, cfg.DebugAudit, "audit should be off by default")
	testutil.AssertEqual(t, cfg.ZobristSeed, int64(0))
	testutil.AssertEqual(t, cfg.Workers, 0)
}
