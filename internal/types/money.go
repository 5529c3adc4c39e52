// README: Money value object for booking fees, minor units plus ISO currency.
package types

type Money struct {
	Amount   int64
	Currency string
}
