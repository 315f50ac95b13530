package model

// GiftOrder holds the buyer-entered personalisation data for a gift purchase.
// Sender and recipient names may be empty; rendering substitutes placeholders.
type GiftOrder struct {
	SenderName    string `json:"senderName"`
	RecipientName string `json:"recipientName"`
	Message       string `json:"message"`
	Email         string `json:"email"`
}

// PurchaseRequest represents the request payload for purchasing a gift.
type PurchaseRequest struct {
	ProductID     string `json:"productId"`
	SenderName    string `json:"senderName"`
	RecipientName string `json:"recipientName"`
	Message       string `json:"message"`
	Email         string `json:"email"`
}

// Certificate is an issued gift certificate. It denormalises the product and
// order data it was built from so later catalogue or form changes never alter
// an already-issued certificate. Immutable once constructed.
type Certificate struct {
	Code          string `json:"code"`
	ProductName   string `json:"productName"`
	SenderName    string `json:"senderName"`
	RecipientName string `json:"recipientName"`
	Message       string `json:"message"`
	ExpiryDate    string `json:"expiryDate"`
}

// NewCertificate assembles a certificate from a product, an order, a reserved
// code and an expiry date. Pure: identical inputs always produce an identical
// certificate.
func NewCertificate(product Product, order GiftOrder, code, expiryDate string) Certificate {
	return Certificate{
		Code:          code,
		ProductName:   product.Name,
		SenderName:    order.SenderName,
		RecipientName: order.RecipientName,
		Message:       order.Message,
		ExpiryDate:    expiryDate,
	}
}
