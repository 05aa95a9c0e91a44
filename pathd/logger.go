package pathd

import (
	"github.com/katalvlaran/shortpath/internal/lg"
)

func (p *PathD) logf(level lg.LogLevel, f string, args ...interface{}) {
	opts := p.opts
	lg.Logf(opts.Logger, opts.logLevel, level, f, args...)
}
