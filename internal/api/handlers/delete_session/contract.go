package delete_session

// SessionService интерфейс хранилища сессий визарда
type SessionService interface {
	Delete(id string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
