package utils

import (
	"log"

	"lms/config"
	"lms/models"

	"github.com/go-resty/resty/v2"
)

// IssueInvoice notifies the external invoicing provider about a paid
// order. Failures only get logged; invoicing is bookkeeping and must never
// roll back a completed payment.
func IssueInvoice(order models.Order) {
	if config.AppConfig.InvoiceApiURL == "" {
		log.Printf("Invoice API not configured, skipping invoice for order %s", order.OrderNo)
		return
	}

	client := resty.New()
	resp, err := client.R().
		SetHeader("Authorization", "Bearer "+config.AppConfig.InvoiceApiKey).
		SetBody(map[string]interface{}{
			"orderNo":        order.OrderNo,
			"amount":         order.Course.Price,
			"invoiceType":    order.InvoiceType,
			"invoiceCarrier": order.InvoiceCarrier,
		}).
		Post(config.AppConfig.InvoiceApiURL)
	if err != nil {
		log.Printf("Failed to issue invoice for order %s: %v", order.OrderNo, err)
		return
	}
	if resp.StatusCode() >= 400 {
		log.Printf("Invoice provider rejected order %s: %d %s", order.OrderNo, resp.StatusCode(), resp.String())
		return
	}

	log.Printf("Invoice issued for order %s", order.OrderNo)
}
