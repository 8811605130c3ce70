package notify

// NoopClient заглушка для случая, когда шлюз уведомлений отключён
type NoopClient struct{}

// NewNoopClient создает заглушку клиента уведомлений
func NewNoopClient() *NoopClient {
	return &NoopClient{}
}

// Dispatch ничего не делает
func (c *NoopClient) Dispatch(event AppointmentEvent) {}
