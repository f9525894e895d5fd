//go:build debug

package pool

import (
	"fmt"
	"log"
	"os"
)

var debugLogger = log.New(os.Stderr, "[THREADPOOL DEBUG] ", log.Ltime|log.Lmicroseconds)

// debugf logs a lifecycle event tagged with the pool, its state and its
// worker count.
func (p *WorkerPool) debugf(format string, args ...any) {
	_ = debugLogger.Output(2, fmt.Sprintf("pool=%p state=%s workers=%d: %s",
		p, stateName(p.state.Load()), p.WorkerCount(), fmt.Sprintf(format, args...)))
}
