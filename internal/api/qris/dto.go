package qrisapi

import (
	"time"

	"github.com/muhamyusuf/uas-paw-kelompok-6/pkg/qris"
)

type CreateQRISRequest struct {
	StaticQRISString string   `json:"static_qris_string" validate:"required,max=500"`
	FeeType          string   `json:"fee_type" validate:"omitempty,oneof=persentase rupiah"`
	FeeValue         *float64 `json:"fee_value" validate:"omitempty,gte=0"`
}

type QRISResponse struct {
	ID                string    `json:"id"`
	StaticQRISString  string    `json:"static_qris_string"`
	DynamicQRISString string    `json:"dynamic_qris_string"`
	FotoQRPath        string    `json:"foto_qr_path"`
	FeeType           *string   `json:"fee_type"`
	FeeValue          *float64  `json:"fee_value"`
	CreatedAt         time.Time `json:"created_at"`
	Message           string    `json:"message,omitempty"`
}

type QRISListResponse struct {
	Data  []QRISResponse `json:"data"`
	Total int            `json:"total"`
}

type PreviewRequest struct {
	StaticQRISString string   `json:"static_qris_string" validate:"required"`
	JumlahBayar      *float64 `json:"jumlah_bayar" validate:"required,gte=0"`
	FeeType          string   `json:"fee_type" validate:"omitempty,oneof=persentase rupiah"`
	FeeValue         *float64 `json:"fee_value" validate:"omitempty,gte=0"`
}

type PreviewResponse struct {
	DynamicQRISString string `json:"dynamic_qris_string"`
	Base64QR          string `json:"base64_qr"`
}

type DecodeRequest struct {
	QRContent string `json:"qr_content" validate:"required"`
}

type DecodeResponse struct {
	qris.Result
	PaymentType string `json:"payment_type"`
}

type GeneratePaymentRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

type GeneratePaymentResponse struct {
	QrisID            string    `json:"qris_id"`
	StaticQRISString  string    `json:"static_qris_string"`
	DynamicQRISString string    `json:"dynamic_qris_string"`
	Amount            float64   `json:"amount"`
	FeeType           *string   `json:"fee_type"`
	FeeValue          *float64  `json:"fee_value"`
	TotalAmount       float64   `json:"total_amount"`
	FotoQRURL         string    `json:"foto_qr_url"`
	CreatedAt         time.Time `json:"created_at"`
	Message           string    `json:"message"`
}

const (
	PaymentTypeStatic  = "STATIC"
	PaymentTypeDynamic = "DYNAMIC"
	PaymentTypeUnknown = "UNKNOWN"
)
