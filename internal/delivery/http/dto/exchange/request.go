package exchange

import "encoding/json"

// DecimalString accepts an amount sent either as a JSON string or a JSON
// number and keeps its literal representation for decimal parsing.
type DecimalString string

func (d *DecimalString) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*d = DecimalString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*d = DecimalString(n.String())
	return nil
}

func (d DecimalString) String() string {
	return string(d)
}

type ExchangeRequest struct {
	FromCurrency string        `json:"from_currency"`
	ToCurrency   string        `json:"to_currency"`
	Amount       DecimalString `json:"amount"`
}
