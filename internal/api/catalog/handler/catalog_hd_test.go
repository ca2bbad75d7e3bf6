package catalogHandler

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/muhamyusuf/uas-paw-kelompok-6/internal/api/catalog"
	"github.com/muhamyusuf/uas-paw-kelompok-6/internal/entity"
	jwtPkg "github.com/muhamyusuf/uas-paw-kelompok-6/pkg/jwt"
	"github.com/muhamyusuf/uas-paw-kelompok-6/pkg/utils"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/context"
)

const (
	baliID    = "5f0b6a3e-8d7c-4b1e-9c2a-1e3d5f7a9b0c"
	packageID = "9a8b7c6d-5e4f-4a3b-8c2d-1e0f9a8b7c6d"
)

type mockCatalogService struct {
	mock.Mock
}

func (m *mockCatalogService) GetDestinations(ctx context.Context, filter catalog.DestinationFilter) ([]catalog.DestinationResponse, error) {
	args := m.Called(ctx, filter)
	res, _ := args.Get(0).([]catalog.DestinationResponse)
	return res, args.Error(1)
}

func (m *mockCatalogService) GetDestinationByID(ctx context.Context, id string) (*catalog.DestinationResponse, error) {
	args := m.Called(ctx, id)
	res, _ := args.Get(0).(*catalog.DestinationResponse)
	return res, args.Error(1)
}

func (m *mockCatalogService) CreateDestination(ctx context.Context, req catalog.CreateDestinationRequest, photo *multipart.FileHeader) (*catalog.DestinationResponse, error) {
	args := m.Called(ctx, req, photo)
	res, _ := args.Get(0).(*catalog.DestinationResponse)
	return res, args.Error(1)
}

func (m *mockCatalogService) GetPackages(ctx context.Context, destinationID string) ([]catalog.PackageResponse, error) {
	args := m.Called(ctx, destinationID)
	res, _ := args.Get(0).([]catalog.PackageResponse)
	return res, args.Error(1)
}

func (m *mockCatalogService) GetPackageByID(ctx context.Context, id string) (*catalog.PackageResponse, error) {
	args := m.Called(ctx, id)
	res, _ := args.Get(0).(*catalog.PackageResponse)
	return res, args.Error(1)
}

func (m *mockCatalogService) GetPackagesByAgent(ctx context.Context, agentID string) ([]catalog.PackageResponse, error) {
	args := m.Called(ctx, agentID)
	res, _ := args.Get(0).([]catalog.PackageResponse)
	return res, args.Error(1)
}

func (m *mockCatalogService) CreatePackage(ctx context.Context, req catalog.CreatePackageRequest, agentID string) (*catalog.PackageResponse, error) {
	args := m.Called(ctx, req, agentID)
	res, _ := args.Get(0).(*catalog.PackageResponse)
	return res, args.Error(1)
}

type stubMiddleware struct{}

func (stubMiddleware) NewRateLimiter(ctx *fiber.Ctx) error { return ctx.Next() }

func (stubMiddleware) NewTokenMiddleware(ctx *fiber.Ctx) error {
	if ctx.Get(fiber.HeaderAuthorization) == "" {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}
	ctx.Locals(jwtPkg.UserLocalsKey, entity.UserLoginData{ID: "agent-1", Email: "agent@example.com", Role: entity.RoleAgent})
	return ctx.Next()
}

func (stubMiddleware) NewRequestIDMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error { return ctx.Next() }
}

func (stubMiddleware) NewLoggingMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error { return ctx.Next() }
}

func (stubMiddleware) GetRequestID(*fiber.Ctx) string { return "test-request" }

func newTestApp(t *testing.T) (*fiber.App, *mockCatalogService) {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	svc := &mockCatalogService{}
	t.Cleanup(func() { svc.AssertExpectations(t) })

	app := fiber.New()
	New(logger, validator.New(), stubMiddleware{}, svc).Start(app.Group("/api/v1"))

	return app, svc
}

func send(t *testing.T, app *fiber.App, req *http.Request, authed bool) (*http.Response, []byte) {
	t.Helper()

	if authed {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer token")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func jsonRequest(method, path, body string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return req
}

func TestCatalogHandler_GetDestinations(t *testing.T) {
	app, svc := newTestApp(t)

	svc.On("GetDestinations", mock.Anything, catalog.DestinationFilter{Country: "Indonesia", Name: "Bali"}).
		Return([]catalog.DestinationResponse{{ID: baliID, Name: "Bali"}}, nil)

	resp, body := send(t, app, jsonRequest(http.MethodGet, "/api/v1/destinations?country=Indonesia&name=Bali", ""), false)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var got []catalog.DestinationResponse
	require.NoError(t, jsoniter.Unmarshal(body, &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Bali", got[0].Name)
}

func TestCatalogHandler_GetDestinationByID(t *testing.T) {
	t.Run("NotFound", func(t *testing.T) {
		app, svc := newTestApp(t)

		svc.On("GetDestinationByID", mock.Anything, baliID).Return(nil, catalog.ErrDestinationNotFound)

		resp, _ := send(t, app, jsonRequest(http.MethodGet, "/api/v1/destinations/"+baliID, ""), false)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("InvalidID", func(t *testing.T) {
		app, _ := newTestApp(t)

		resp, _ := send(t, app, jsonRequest(http.MethodGet, "/api/v1/destinations/not-a-uuid", ""), false)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestCatalogHandler_CreateDestination(t *testing.T) {
	t.Run("JSON", func(t *testing.T) {
		app, svc := newTestApp(t)

		svc.On("CreateDestination", mock.Anything, catalog.CreateDestinationRequest{
			Name: "Bali", Description: "Island", Country: "Indonesia",
		}, (*multipart.FileHeader)(nil)).Return(&catalog.DestinationResponse{ID: baliID, Name: "Bali"}, nil)

		resp, body := send(t, app, jsonRequest(http.MethodPost, "/api/v1/destinations",
			`{"name":"Bali","description":"Island","country":"Indonesia"}`), true)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Contains(t, string(body), baliID)
	})

	t.Run("MultipartWithPhoto", func(t *testing.T) {
		app, svc := newTestApp(t)

		var buf bytes.Buffer
		w := multipart.NewWriter(&buf)
		require.NoError(t, w.WriteField("name", "Bali"))
		require.NoError(t, w.WriteField("description", "Island"))
		require.NoError(t, w.WriteField("country", "Indonesia"))
		part, err := w.CreateFormFile("photo", "bali.png")
		require.NoError(t, err)
		_, err = part.Write([]byte("\x89PNG\r\n\x1a\n"))
		require.NoError(t, err)
		require.NoError(t, w.Close())

		svc.On("CreateDestination", mock.Anything, catalog.CreateDestinationRequest{
			Name: "Bali", Description: "Island", Country: "Indonesia",
		}, mock.MatchedBy(func(fh *multipart.FileHeader) bool {
			return fh != nil && fh.Filename == "bali.png"
		})).Return(&catalog.DestinationResponse{ID: baliID}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/destinations", &buf)
		req.Header.Set(fiber.HeaderContentType, w.FormDataContentType())

		resp, _ := send(t, app, req, true)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("RejectedPhoto", func(t *testing.T) {
		app, svc := newTestApp(t)

		svc.On("CreateDestination", mock.Anything, mock.Anything, mock.Anything).Return(nil, utils.ErrInvalidImageExt)

		resp, body := send(t, app, jsonRequest(http.MethodPost, "/api/v1/destinations",
			`{"name":"Bali","description":"Island","country":"Indonesia"}`), true)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, string(body), "INVALID_FILE")
	})

	t.Run("MissingFields", func(t *testing.T) {
		app, _ := newTestApp(t)

		resp, _ := send(t, app, jsonRequest(http.MethodPost, "/api/v1/destinations", `{"name":"Bali"}`), true)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("RequiresToken", func(t *testing.T) {
		app, _ := newTestApp(t)

		resp, _ := send(t, app, jsonRequest(http.MethodPost, "/api/v1/destinations", `{}`), false)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestCatalogHandler_Packages(t *testing.T) {
	t.Run("ListByDestination", func(t *testing.T) {
		app, svc := newTestApp(t)

		svc.On("GetPackages", mock.Anything, baliID).Return([]catalog.PackageResponse{{ID: packageID}}, nil)

		resp, body := send(t, app, jsonRequest(http.MethodGet, "/api/v1/packages?destination_id="+baliID, ""), false)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, string(body), packageID)
	})

	t.Run("ListRejectsBadDestination", func(t *testing.T) {
		app, _ := newTestApp(t)

		resp, _ := send(t, app, jsonRequest(http.MethodGet, "/api/v1/packages?destination_id=bali", ""), false)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("ByAgent", func(t *testing.T) {
		app, svc := newTestApp(t)

		svc.On("GetPackagesByAgent", mock.Anything, "agent-1").Return([]catalog.PackageResponse{}, nil)

		resp, body := send(t, app, jsonRequest(http.MethodGet, "/api/v1/packages/agent/agent-1", ""), false)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "[]", string(body))
	})

	t.Run("ByID", func(t *testing.T) {
		app, svc := newTestApp(t)

		svc.On("GetPackageByID", mock.Anything, packageID).Return(nil, catalog.ErrPackageNotFound)

		resp, _ := send(t, app, jsonRequest(http.MethodGet, "/api/v1/packages/"+packageID, ""), false)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestCatalogHandler_CreatePackage(t *testing.T) {
	body := `{"destinationId":"` + baliID + `","name":"Bali 5D4N","duration":5,"price":2500000,` +
		`"itinerary":"Day 1","maxTravelers":8,"contactPhone":"0812","images":["https://cdn.example.com/a.jpg"]}`

	t.Run("AgentFromToken", func(t *testing.T) {
		app, svc := newTestApp(t)

		svc.On("CreatePackage", mock.Anything, mock.MatchedBy(func(req catalog.CreatePackageRequest) bool {
			return req.DestinationID == baliID && req.MaxTravelers == 8 && len(req.Images) == 1
		}), "agent-1").Return(&catalog.PackageResponse{ID: packageID, AgentID: "agent-1"}, nil)

		resp, out := send(t, app, jsonRequest(http.MethodPost, "/api/v1/packages", body), true)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Contains(t, string(out), `"agentId":"agent-1"`)
	})

	t.Run("InvalidValues", func(t *testing.T) {
		app, _ := newTestApp(t)

		for _, bad := range []string{
			strings.Replace(body, `"duration":5`, `"duration":0`, 1),
			strings.Replace(body, `"price":2500000`, `"price":-1`, 1),
			strings.Replace(body, `"maxTravelers":8`, `"maxTravelers":0`, 1),
			strings.Replace(body, baliID, "bali", 1),
			strings.Replace(body, `https://cdn.example.com/a.jpg`, `not a url`, 1),
		} {
			resp, _ := send(t, app, jsonRequest(http.MethodPost, "/api/v1/packages", bad), true)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode, bad)
		}
	})

	t.Run("UnknownDestination", func(t *testing.T) {
		app, svc := newTestApp(t)

		svc.On("CreatePackage", mock.Anything, mock.Anything, "agent-1").Return(nil, catalog.ErrDestinationNotFound)

		resp, _ := send(t, app, jsonRequest(http.MethodPost, "/api/v1/packages", body), true)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
