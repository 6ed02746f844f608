package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EnvVar names the environment variable holding the debug log path.
const EnvVar = "SHIMMER_DEBUG"

var (
	mu     sync.Mutex
	once   sync.Once
	logger = zap.NewNop().Sugar()
	file   *os.File
)

// Init directs debug logging to the file at path, creating parent
// directories as needed. An empty path disables logging.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	once.Do(func() {}) // explicit Init wins over the environment
	return initLocked(path)
}

func initLocked(path string) error {
	closeLocked()
	if path == "" {
		logger = zap.NewNop().Sugar()
		return nil
	}

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	enc := zap.NewDevelopmentEncoderConfig()
	enc.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(f), zapcore.DebugLevel)

	file = f
	logger = zap.New(core).Sugar()
	return nil
}

func closeLocked() {
	if file != nil {
		_ = logger.Sync()
		_ = file.Close()
		file = nil
	}
}

// Close flushes and closes the debug log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	closeLocked()
	logger = zap.NewNop().Sugar()
	return nil
}

// Log writes a formatted message to the debug log.
func Log(format string, args ...any) {
	once.Do(func() {
		mu.Lock()
		defer mu.Unlock()
		if path := os.Getenv(EnvVar); path != "" {
			_ = initLocked(path)
		}
	})

	mu.Lock()
	l := logger
	mu.Unlock()
	l.Debugf(format, args...)
}
