package enum

// PaymentMethod is the payment selector offered at the till. The bill
// calculator stores whatever string it is handed; validating user input
// against the configured set is the job of the collaborator that renders the
// selector.
type PaymentMethod string

const (
	PaymentMethodCash PaymentMethod = "Cash"
	PaymentMethodCard PaymentMethod = "Card"
	PaymentMethodUPI  PaymentMethod = "UPI"
)

func (m PaymentMethod) String() string {
	return string(m)
}

// DefaultPaymentMethods returns the built-in selector entries, used when the
// configuration does not override them.
func DefaultPaymentMethods() []PaymentMethod {
	return []PaymentMethod{PaymentMethodCash, PaymentMethodCard, PaymentMethodUPI}
}
