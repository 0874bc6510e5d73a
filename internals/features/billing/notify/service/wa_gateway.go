// file: internals/features/billing/notify/service/wa_gateway.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

/* =========================================================
   WA GATEWAY — kirim tagihan/reminder ke penyewa.
   Gateway chat adalah kolaborator eksternal (HTTP API gaya
   Fonnte); tanggung jawab engine berhenti di invoke +
   surface status provider.
========================================================= */

type WaGateway struct {
	BaseURL string
	Token   string
	HTTP    *http.Client
}

func NewWaGateway(baseURL, token string) *WaGateway {
	return &WaGateway{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Token:   token,
		HTTP:    &http.Client{Timeout: 15 * time.Second},
	}
}

func (g *WaGateway) Enabled() bool { return g != nil && g.Token != "" }

// SendResult: status apa adanya dari provider.
type SendResult struct {
	Delivered      bool   `json:"delivered"`
	ProviderStatus int    `json:"provider_status"`
	ProviderReason string `json:"provider_reason,omitempty"`
}

// SendMessage kirim teks ke satu nomor. Gagal provider ≠ error transport:
// keduanya di-surface lewat SendResult/err supaya pemanggil bisa bedakan.
func (g *WaGateway) SendMessage(ctx context.Context, phone, message string) (SendResult, error) {
	if !g.Enabled() {
		return SendResult{}, errors.New("WA gateway belum dikonfigurasi (WA_GATEWAY_TOKEN)")
	}
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return SendResult{}, errors.New("nomor tujuan kosong")
	}

	form := url.Values{}
	form.Set("target", phone)
	form.Set("message", message)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.BaseURL+"/send", strings.NewReader(form.Encode()))
	if err != nil {
		return SendResult{}, err
	}
	req.Header.Set("Authorization", g.Token)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := g.HTTP.Do(req)
	if err != nil {
		return SendResult{}, fmt.Errorf("WA gateway unreachable: %w", err)
	}
	defer resp.Body.Close()

	out := SendResult{ProviderStatus: resp.StatusCode}

	var body struct {
		Status bool   `json:"status"`
		Reason string `json:"reason"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		out.Delivered = body.Status && resp.StatusCode < 300
		out.ProviderReason = body.Reason
	} else {
		out.Delivered = resp.StatusCode < 300
	}
	return out, nil
}
