package state

import (
	"strings"

	"github.com/mdp/qrterminal/v3"
)

// AddressData is a receive address together with its QR rendering.
type AddressData struct {
	text string
	qr   string
}

func NewAddressData(text string) *AddressData {
	var b strings.Builder
	qrterminal.GenerateHalfBlock(text, qrterminal.L, &b)
	return &AddressData{text: text, qr: b.String()}
}

func (a *AddressData) String() string {
	if a == nil {
		return ""
	}
	return a.text
}

// QRCode returns the half-block terminal rendering of the address.
func (a *AddressData) QRCode() string {
	if a == nil {
		return ""
	}
	return a.qr
}
