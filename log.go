package eosecc

import (
	"sync/atomic"

	"go.uber.org/zap"
)

// pkgLog holds the package logger.  It is silent until UseLogger is called
// and may be swapped while other goroutines sign.
var pkgLog atomic.Pointer[zap.Logger]

func init() {
	pkgLog.Store(zap.NewNop())
}

func logger() *zap.Logger {
	return pkgLog.Load()
}

// UseLogger sets the logger used by the package.  Passing nil restores the
// silent default.  It is safe to call concurrently with signing.
func UseLogger(l *zap.Logger) {
	if l == nil {
		pkgLog.Store(zap.NewNop())
		return
	}
	pkgLog.Store(l.Named("eosecc"))
}
