package buildenv

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptHash(t *testing.T) {
	tests := []struct {
		name           string
		flags          string
		cuda           bool
		withoutContrib bool
		want           string
	}{
		{name: "nothing set", want: ""},
		{name: "cuda only", cuda: true, want: "-39466"},
		{name: "no contrib only", withoutContrib: true, want: "-d9610"},
		{name: "cuda and no contrib", cuda: true, withoutContrib: true, want: "-985e4"},
		{name: "flags", flags: "-DWITH_X=ON", want: "-4c02a"},
		{name: "flags and cuda", flags: "-DWITH_X=ON", cuda: true, want: "-45bef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OptHash(tt.flags, tt.cuda, tt.withoutContrib))
		})
	}
}

func TestOptHash_Deterministic(t *testing.T) {
	e := &BuildEnv{autoBuildFlags: "-DWITH_X=ON"}

	first := e.OptHash()
	assert.Equal(t, first, e.OptHash())
	assert.Len(t, first, 6)
	assert.True(t, strings.HasPrefix(first, "-"))

	e.buildWithCUDA = true
	assert.NotEqual(t, first, e.OptHash())
}

func TestFlagReporter_LogsOnce(t *testing.T) {
	logger, buf := bufferLogger()
	e := &BuildEnv{autoBuildFlags: "-DWITH_X=ON"}
	var r FlagReporter

	r.Report(logger, e)
	r.Report(logger, e)
	e.OptHash()

	assert.Equal(t, 1, strings.Count(buf.String(), "extra build flags are defined"))
}

func TestFlagReporter_NoFlags(t *testing.T) {
	logger, buf := bufferLogger()
	var r FlagReporter

	r.Report(logger, &BuildEnv{})

	assert.Contains(t, buf.String(), "no extra flags will be appended")
}
