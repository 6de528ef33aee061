// Package logger содержит общий файловый логгер для server и agent.
//
// Сюда пишется журнал HTTP-слоя todo-backend: каждый запрос фиксируется
// с методом, путём, статусом, размером ответа и длительностью обработки.
// Файлы журнала ротируются (lumberjack), формат записи консольный.
package logger

import (
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Параметры файла журнала и его ротации.
const (
	logFileName = "http.log"

	rotateMaxSizeMB  = 100
	rotateMaxBackups = 10
	rotateMaxAgeDays = 30

	// формат времени в записях: "HH:MM:SS DD.MM.YYYY"
	timeLayout = "15:04:05 02.01.2006"
)

// HTTPLogger — обёртка над zap.Logger для журнала HTTP-событий.
//
// Встраивание *zap.Logger позволяет использовать все методы zap напрямую.
type HTTPLogger struct {
	*zap.Logger
}

// NewHTTPLogger создаёт файловый zap-логгер сервера.
// Журнал лежит в runtime/logs/http.log, архивы сжимаются.
func NewHTTPLogger() *HTTPLogger {
	logDir := filepath.Join("runtime", "logs")
	_ = os.MkdirAll(logDir, 0755)

	writer := zapcore.AddSync(&lumberjack.Logger{
		Filename:   filepath.Join(logDir, logFileName),
		MaxSize:    rotateMaxSizeMB,
		MaxBackups: rotateMaxBackups,
		MaxAge:     rotateMaxAgeDays,
		Compress:   true,
	})

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.Format(timeLayout))
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		writer,
		zap.InfoLevel,
	)

	// AddCallerSkip(1): caller должен указывать на middleware, а не на LogRequest
	logger := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))

	return &HTTPLogger{Logger: logger}
}

// LogRequest записывает одну строку журнала об обработанном запросе.
//
// status и responseSize берутся из перехваченного ResponseWriter,
// duration — длительность обработки в миллисекундах.
func (logger *HTTPLogger) LogRequest(method, uri string, status, responseSize int, duration float64) {
	logger.Info("HTTP request",
		zap.String("method", method),
		zap.String("uri", uri),
		zap.Int("status", status),
		zap.Int("response_size", responseSize),
		zap.Float64("duration_ms", duration),
	)
}
