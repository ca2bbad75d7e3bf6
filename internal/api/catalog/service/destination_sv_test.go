package catalogService

import (
	"errors"
	"mime/multipart"
	"testing"
	"time"

	"github.com/muhamyusuf/uas-paw-kelompok-6/internal/api/catalog"
	"github.com/muhamyusuf/uas-paw-kelompok-6/internal/entity"
	"github.com/muhamyusuf/uas-paw-kelompok-6/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/context"
)

const (
	bucketPhoto = "https://tour-bucket.s3.amazonaws.com/destinations/bali.jpg"
	baliID      = "5f0b6a3e-8d7c-4b1e-9c2a-1e3d5f7a9b0c"
)

func TestCatalogService_GetDestinations(t *testing.T) {
	t.Run("FiltersAreTrimmedAndPhotosPresigned", func(t *testing.T) {
		f := newFixture(t)

		f.destinations.On("GetDestinations", mock.Anything, catalog.DestinationFilter{Country: "Indonesia"}).
			Return([]entity.Destination{
				{ID: baliID, Name: "Bali", PhotoURL: bucketPhoto, Country: "Indonesia"},
				{ID: "d2", Name: "Lombok", PhotoURL: "https://images.example.com/lombok.jpg", Country: "Indonesia"},
				{ID: "d3", Name: "Flores", Country: "Indonesia"},
			}, nil)
		f.s3.On("PresignUrl", bucketPhoto).Return("https://signed/bali.jpg", nil)

		got, err := f.svc.GetDestinations(context.Background(), catalog.DestinationFilter{Country: "  Indonesia "})
		require.NoError(t, err)
		require.Len(t, got, 3)

		assert.Equal(t, "https://signed/bali.jpg", *got[0].PhotoURL)
		assert.Equal(t, "https://images.example.com/lombok.jpg", *got[1].PhotoURL)
		assert.Nil(t, got[2].PhotoURL)
	})

	t.Run("PresignFailureKeepsStoredURL", func(t *testing.T) {
		f := newFixture(t)

		f.destinations.On("GetDestinations", mock.Anything, catalog.DestinationFilter{}).
			Return([]entity.Destination{{ID: baliID, PhotoURL: bucketPhoto}}, nil)
		f.s3.On("PresignUrl", bucketPhoto).Return("", errors.New("no credentials"))

		got, err := f.svc.GetDestinations(context.Background(), catalog.DestinationFilter{})
		require.NoError(t, err)
		assert.Equal(t, bucketPhoto, *got[0].PhotoURL)
	})

	t.Run("Empty", func(t *testing.T) {
		f := newFixture(t)

		f.destinations.On("GetDestinations", mock.Anything, catalog.DestinationFilter{}).Return([]entity.Destination{}, nil)

		got, err := f.svc.GetDestinations(context.Background(), catalog.DestinationFilter{})
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestCatalogService_GetDestinationByID(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		f := newFixture(t)

		f.destinations.On("GetDestinationByID", mock.Anything, baliID).
			Return(entity.Destination{ID: baliID, Name: "Bali"}, nil)

		got, err := f.svc.GetDestinationByID(context.Background(), baliID)
		require.NoError(t, err)
		assert.Equal(t, "Bali", got.Name)
	})

	t.Run("NotFound", func(t *testing.T) {
		f := newFixture(t)

		f.destinations.On("GetDestinationByID", mock.Anything, baliID).
			Return(entity.Destination{}, catalog.ErrDestinationNotFound)

		_, err := f.svc.GetDestinationByID(context.Background(), baliID)
		assert.ErrorIs(t, err, catalog.ErrDestinationNotFound)
	})
}

func TestCatalogService_CreateDestination(t *testing.T) {
	req := catalog.CreateDestinationRequest{
		Name:        " Bali ",
		Description: "Island of the gods",
		Country:     "Indonesia",
	}

	t.Run("JSONWithPhotoURL", func(t *testing.T) {
		f := newFixture(t)

		withURL := req
		withURL.PhotoURL = "https://images.example.com/bali.jpg"

		f.destinations.On("CreateDestination", mock.Anything, mock.MatchedBy(func(d entity.Destination) bool {
			return d.Name == "Bali" && d.PhotoURL == withURL.PhotoURL && len(d.ID) == 36
		})).Return(nil)

		got, err := f.svc.CreateDestination(context.Background(), withURL, nil)
		require.NoError(t, err)
		assert.Equal(t, "Bali", got.Name)
		assert.Equal(t, withURL.PhotoURL, *got.PhotoURL)
		assert.WithinDuration(t, time.Now(), got.CreatedAt, time.Minute)
	})

	t.Run("UploadedPhoto", func(t *testing.T) {
		f := newFixture(t)
		photo := imageHeader("bali.JPG", "image/jpeg", 1024)

		f.s3.On("UploadFile", destinationPhotoFolder, photo).Return(bucketPhoto, nil)
		f.destinations.On("CreateDestination", mock.Anything, mock.MatchedBy(func(d entity.Destination) bool {
			return d.PhotoURL == bucketPhoto
		})).Return(nil)
		f.s3.On("PresignUrl", bucketPhoto).Return("https://signed/bali.jpg", nil)

		got, err := f.svc.CreateDestination(context.Background(), req, photo)
		require.NoError(t, err)
		assert.Equal(t, "https://signed/bali.jpg", *got.PhotoURL)
	})

	t.Run("RejectedPhoto", func(t *testing.T) {
		tests := []struct {
			name  string
			photo *multipart.FileHeader
			want  error
		}{
			{"TooLarge", imageHeader("bali.png", "image/png", 6*1024*1024), utils.ErrFileTooLarge},
			{"NotAnImage", imageHeader("bali.pdf", "application/pdf", 1024), utils.ErrNotAnImage},
			{"BadExtension", imageHeader("bali.bmp", "image/bmp", 1024), utils.ErrInvalidImageExt},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				f := newFixture(t)

				_, err := f.svc.CreateDestination(context.Background(), req, tt.photo)
				assert.ErrorIs(t, err, tt.want)
			})
		}
	})

	t.Run("UploadFails", func(t *testing.T) {
		f := newFixture(t)
		photo := imageHeader("bali.png", "image/png", 1024)

		f.s3.On("UploadFile", destinationPhotoFolder, photo).Return("", errors.New("access denied"))

		_, err := f.svc.CreateDestination(context.Background(), req, photo)
		assert.ErrorIs(t, err, catalog.ErrFailedToUpload)
	})

	t.Run("InsertFailsRemovesPhoto", func(t *testing.T) {
		f := newFixture(t)
		photo := imageHeader("bali.png", "image/png", 1024)

		f.s3.On("UploadFile", destinationPhotoFolder, photo).Return(bucketPhoto, nil)
		f.destinations.On("CreateDestination", mock.Anything, mock.Anything).Return(errors.New("db down"))
		f.s3.On("DeleteFile", bucketPhoto).Return(nil)

		_, err := f.svc.CreateDestination(context.Background(), req, photo)
		assert.ErrorIs(t, err, catalog.ErrCreateDestination)
	})
}
