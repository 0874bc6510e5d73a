// file: internals/features/billing/notify/service/invoice_message.go
package service

import (
	"fmt"
	"strings"

	invoiceModel "kosku_backend/internals/features/billing/invoices/model"
)

// RenderInvoiceMessage menyusun teks tagihan yang dikirim ke penyewa.
// Link publik memakai token opaque — bukan primary key.
func RenderInvoiceMessage(inv invoiceModel.InvoiceModel, roomNumber, tenantName, publicBaseURL string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Halo %s 👋\n", tenantName)
	fmt.Fprintf(&b, "Tagihan kamar %s periode %s:\n\n", roomNumber, inv.InvoicePeriodStart.Format("January 2006"))
	fmt.Fprintf(&b, "Sewa: %s\n", rupiah(inv.InvoiceRentAmount))
	fmt.Fprintf(&b, "Air: %s\n", rupiah(inv.InvoiceWaterBill))
	fmt.Fprintf(&b, "Listrik: %s\n", rupiah(inv.InvoiceElectricityBill))
	if inv.InvoiceCommonFee > 0 {
		fmt.Fprintf(&b, "Iuran umum: %s\n", rupiah(inv.InvoiceCommonFee))
	}
	if inv.InvoiceAdditionalFeeTotal > 0 {
		fmt.Fprintf(&b, "Biaya tambahan: %s\n", rupiah(inv.InvoiceAdditionalFeeTotal))
	}
	if inv.InvoiceLateFeeAmount > 0 {
		fmt.Fprintf(&b, "Denda: %s\n", rupiah(inv.InvoiceLateFeeAmount))
	}
	if inv.InvoiceDiscountTotal > 0 {
		fmt.Fprintf(&b, "Diskon: -%s\n", rupiah(inv.InvoiceDiscountTotal))
	}
	fmt.Fprintf(&b, "\nTotal: %s\n", rupiah(inv.InvoiceTotalAmount))
	fmt.Fprintf(&b, "Jatuh tempo: %s\n", inv.InvoiceDueDate.Format("02 Jan 2006"))

	if publicBaseURL != "" {
		fmt.Fprintf(&b, "\nDetail & upload bukti transfer:\n%s/invoice/%s\n",
			strings.TrimRight(publicBaseURL, "/"), inv.InvoicePublicToken)
	}
	return b.String()
}

func rupiah(v float64) string {
	return fmt.Sprintf("Rp%.0f", v)
}
