package closure

import (
	"sync/atomic"

	"github.com/cclosures/cclosures-go/pkg/closure/logging"
)

var current atomic.Pointer[logging.Logger]

func init() {
	SetLogger(nil)
}

// SetLogger installs the logger used for diagnostics raised at the C
// boundary. Passing nil restores the slog.Default() backed logger.
func SetLogger(l logging.Logger) {
	if l == nil {
		l = logging.New(nil)
	}
	current.Store(&l)
}

// Logger returns the current bridge logger.
func Logger() logging.Logger {
	return *current.Load()
}
