package version

import (
	"fmt"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	info := Get()

	assert.Equal(t, Version, info.Version)
	assert.Equal(t, CommitHash, info.CommitHash)
	assert.Equal(t, BuildTime, info.BuildTime)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Equal(t, fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH), info.Platform)
}

func TestString(t *testing.T) {
	info := Info{
		Version:    "1.2.0",
		CommitHash: "abc1234",
		BuildTime:  "2026-02-01T10:00:00Z",
		GoVersion:  "go1.23.4",
		Platform:   "linux/amd64",
	}

	s := info.String()
	assert.Contains(t, s, "ts-types-from-strapi 1.2.0")
	assert.Contains(t, s, "commit abc1234")
	assert.Contains(t, s, "built 2026-02-01T10:00:00Z")
	assert.Contains(t, s, "go1.23.4")
	assert.Contains(t, s, "linux/amd64")
}

func TestString_RuntimeFields(t *testing.T) {
	s := Get().String()

	assert.Contains(t, s, runtime.Version())
	assert.Contains(t, s, runtime.GOOS+"/"+runtime.GOARCH)
}
