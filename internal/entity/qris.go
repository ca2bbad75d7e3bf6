package entity

import "time"

type FeeType string

const (
	FeeTypePercentage FeeType = "persentase"
	FeeTypeRupiah     FeeType = "rupiah"
)

type Qris struct {
	ID                string    `db:"id" json:"id"`
	FotoQRPath        string    `db:"foto_qr_path" json:"foto_qr_path"`
	StaticQRISString  string    `db:"static_qris_string" json:"static_qris_string"`
	DynamicQRISString string    `db:"dynamic_qris_string" json:"dynamic_qris_string"`
	FeeType           *FeeType  `db:"fee_type" json:"fee_type"`
	FeeValue          *float64  `db:"fee_value" json:"fee_value"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
}
