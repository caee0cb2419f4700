package services

import (
	"fmt"
	"net/url"

	qrcode "github.com/skip2/go-qrcode"
)

// UPILink builds the upi://pay deep link UPI apps understand. Amount is the
// full order total, delivery fee included.
func UPILink(upiID, payee string, amount float64) string {
	v := url.Values{}
	v.Set("pa", upiID)
	v.Set("pn", payee)
	v.Set("am", fmt.Sprintf("%.2f", amount))
	v.Set("cu", "INR")
	return "upi://pay?" + v.Encode()
}

// UPIQRCode renders the deep link as a PNG for the payment step.
func UPIQRCode(upiID, payee string, amount float64) ([]byte, error) {
	return qrcode.Encode(UPILink(upiID, payee, amount), qrcode.Medium, 256)
}
