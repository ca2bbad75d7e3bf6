package catalog

import "github.com/muhamyusuf/uas-paw-kelompok-6/pkg/response"

var (
	ErrDestinationNotFound = response.NewError(404, "destination not found")
	ErrPackageNotFound     = response.NewError(404, "package not found")
	ErrCreateDestination   = response.NewError(500, "failed to create destination")
	ErrCreatePackage       = response.NewError(500, "failed to create package")
	ErrFailedToUpload      = response.NewError(500, "failed to upload file")
)
