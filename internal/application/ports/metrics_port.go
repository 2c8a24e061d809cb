package ports

// Recorder puerto de métricas de negocio. NopRecorder descarta todo.
type Recorder interface {
	LoginAttempt(success bool)
	QuoteSaved()
	QuoteRequestReceived()
	InventoryMutation(op string)
	QuotesExpired(n int)
}

// NopRecorder implementación vacía para tests.
type NopRecorder struct{}

func (NopRecorder) LoginAttempt(bool)        {}
func (NopRecorder) QuoteSaved()              {}
func (NopRecorder) QuoteRequestReceived()    {}
func (NopRecorder) InventoryMutation(string) {}
func (NopRecorder) QuotesExpired(int)        {}
