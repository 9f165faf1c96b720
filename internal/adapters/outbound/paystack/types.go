package paystack

// verifyResponse represents the envelope Paystack returns from
// GET /transaction/verify/{reference}.
// Example response:
//
//	{
//	  "status": true,
//	  "message": "Verification successful",
//	  "data": {...}
//	}
type verifyResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    *verifyData `json:"data"`
}

// verifyData represents the transaction payload inside a successful
// verification envelope.
// Example response:
//
//	{
//	  "status": "success",
//	  "amount": 5000,
//	  "currency": "NGN",
//	  "paid_at": "2024-01-15T10:30:00.000Z",
//	  "channel": "card",
//	  "gateway_response": "Successful"
//	}
type verifyData struct {
	Status          string `json:"status"`
	Amount          int64  `json:"amount"`
	Currency        string `json:"currency"`
	PaidAt          string `json:"paid_at"`
	Channel         string `json:"channel"`
	GatewayResponse string `json:"gateway_response"`
}

// apiError represents an error envelope from the Paystack API.
// Example response:
//
//	{
//	  "status": false,
//	  "message": "Transaction reference not found"
//	}
type apiError struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
}
