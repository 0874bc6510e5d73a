// file: internals/features/billing/payments/service/midtrans.go
package service

import (
	"errors"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	invoiceModel "kosku_backend/internals/features/billing/invoices/model"
)

/* =========================================================
   Midtrans Client — payment link (Snap) untuk satu invoice.
   Rekonsiliasi pembayaran gateway ada di luar scope; di sini
   hanya pembuatan link.
========================================================= */

var SnapClient snap.Client

var midtransReady bool

// InitMidtrans harus dipanggil saat bootstrap app.
// useProduction=true untuk Production, false untuk Sandbox.
func InitMidtrans(serverKey string, useProduction bool) {
	if serverKey == "" {
		return
	}
	if useProduction {
		SnapClient.New(serverKey, midtrans.Production)
	} else {
		SnapClient.New(serverKey, midtrans.Sandbox)
	}
	midtransReady = true
}

func MidtransReady() bool { return midtransReady }

// GenerateSnapToken membuat Snap token + redirect URL untuk invoice.
// OrderID = public token invoice supaya callback gampang dipetakan balik.
func GenerateSnapToken(inv invoiceModel.InvoiceModel, tenantName, tenantPhone string) (string, string, error) {
	if !midtransReady {
		return "", "", errors.New("midtrans belum dikonfigurasi (MIDTRANS_SERVER_KEY)")
	}
	gross := int64(inv.InvoiceTotalAmount)
	if gross <= 0 {
		return "", "", errors.New("invoice total must be positive")
	}

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  inv.InvoicePublicToken,
			GrossAmt: gross,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: tenantName,
			Phone: tenantPhone,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:       inv.InvoiceID.String(),
				Price:    gross,
				Qty:      1,
				Name:     "Tagihan kos " + inv.InvoicePeriodStart.Format("2006-01"),
				Category: "KOS",
			},
		},
	}

	res, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", "", err
	}
	return res.Token, res.RedirectURL, nil
}
