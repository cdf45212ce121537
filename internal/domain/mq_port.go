package domain

// ExchangeEventPublisher pushes terminal exchange outcomes to the message
// bus. Publishing is best-effort and never blocks the exchange result.
type ExchangeEventPublisher interface {
	PublishExchange(transaction *Transaction) error
}
