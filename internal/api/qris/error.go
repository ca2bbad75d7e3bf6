package qrisapi

import "github.com/muhamyusuf/uas-paw-kelompok-6/pkg/response"

var (
	ErrQRISNotFound      = response.NewError(404, "qris not found")
	ErrNoQRISUploaded    = response.NewError(404, "no qris has been uploaded yet")
	ErrQRISAlreadyExists = response.NewError(409, "qris string has already been uploaded")
	ErrInvalidQRIS       = response.NewError(400, "qris string is missing or too short")
	ErrInvalidFee        = response.NewError(400, "fee_value requires a fee_type of persentase or rupiah")
	ErrInvalidAmount     = response.NewError(400, "amount must be a finite number greater than zero")
	ErrCreateQRIS        = response.NewError(500, "failed to create qris")
	ErrDeleteQRIS        = response.NewError(500, "failed to delete qris")
	ErrRenderQRCode      = response.NewError(500, "failed to render qr code")
	ErrFailedToUploadQR  = response.NewError(500, "failed to upload qr code")
	ErrUpdateDynamicQRIS = response.NewError(500, "failed to store dynamic qris")
)
