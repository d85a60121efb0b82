package tinylfu

import (
	"log"
	"os"
)

// Logger 当配置中的 `Config.Verbose=true` 时，构建哈希器时记录所选算法与种子
type Logger interface {
	Printf(format string, v ...interface{})
}

var _ Logger = &log.Logger{}

// DefaultLogger writes to stderr with a package prefix.
func DefaultLogger() *log.Logger {
	return log.New(os.Stderr, "tinylfu: ", log.LstdFlags)
}

func newLogger(custom Logger) Logger {
	if custom != nil {
		return custom
	}
	return DefaultLogger()
}
