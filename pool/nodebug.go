//go:build !debug

package pool

func (*WorkerPool) debugf(string, ...any) {}
