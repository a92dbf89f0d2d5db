package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"account-manager-api/internal/application/ports"
	domain "account-manager-api/internal/domain/changelog"
	jwtSvc "account-manager-api/internal/infrastructure/jwt"
	"account-manager-api/internal/interface/api/rest/dto/changelog"
	"account-manager-api/internal/interface/api/rest/middleware"
)

type FakeChangelogService struct {
	FindEntriesFunc func(ctx context.Context) (domain.Entries, error)
}

func (f *FakeChangelogService) FindEntries(ctx context.Context) (domain.Entries, error) {
	if f.FindEntriesFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FindEntriesFunc(ctx)
}

func setupChangelogRouter(t *testing.T, cs ports.ChangelogService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	cc := &ChangelogController{
		changelogService: cs,
		logger:           zap.NewNop(),
	}
	r.GET("/changelog", middleware.AuthMiddleware(jwtSvc.New(testSecret)), cc.GetEntriesHandler)
	return r
}

func TestChangelogController_GetEntriesHandler(t *testing.T) {
	actor := uuid.New()
	ts := time.Date(2026, 8, 28, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name       string
		headers    map[string]string
		mockCS     func() ports.ChangelogService
		wantStatus int
		check      func(t *testing.T, body []byte)
	}{
		{
			name:       "401 missing auth header",
			headers:    nil,
			mockCS:     func() ports.ChangelogService { return &FakeChangelogService{} },
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:    "500 when service fails",
			headers: authHeaderFor(t, actor),
			mockCS: func() ports.ChangelogService {
				return &FakeChangelogService{
					FindEntriesFunc: func(ctx context.Context) (domain.Entries, error) {
						return nil, errors.New("db error")
					},
				}
			},
			wantStatus: http.StatusInternalServerError,
			check: func(t *testing.T, body []byte) {
				var resp map[string]any
				require.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, "failed to get changelog", resp["error"])
			},
		},
		{
			name:    "200 entries with action labels",
			headers: authHeaderFor(t, actor),
			mockCS: func() ports.ChangelogService {
				return &FakeChangelogService{
					FindEntriesFunc: func(ctx context.Context) (domain.Entries, error) {
						return domain.Entries{
							{
								Datetime:            ts,
								ChangeType:          domain.ChangeCreate,
								ModificatedName:     "John",
								ModificatedLastname: "Doe",
								ModificatorName:     "Jane",
								ModificatorLastname: "Admin",
							},
							{
								Datetime:            ts.Add(time.Minute),
								ChangeType:          domain.ChangePassword,
								ModificatedName:     "John",
								ModificatedLastname: "Doe",
								ModificatorName:     "John",
								ModificatorLastname: "Doe",
							},
						}, nil
					},
				}
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				var resp changelog.ResponseData
				require.NoError(t, json.Unmarshal(body, &resp))
				require.Len(t, resp.Data, 2)

				assert.Equal(t, int(domain.ChangeCreate), resp.Data[0].ChangeType)
				assert.Equal(t, "created", resp.Data[0].Action)
				assert.Equal(t, "Jane", resp.Data[0].ModificatorName)
				assert.Equal(t, "John", resp.Data[0].ModificatedName)
				assert.True(t, ts.Equal(resp.Data[0].Datetime))

				assert.Equal(t, "password_changed", resp.Data[1].Action)
			},
		},
		{
			name:    "200 empty log",
			headers: authHeaderFor(t, actor),
			mockCS: func() ports.ChangelogService {
				return &FakeChangelogService{
					FindEntriesFunc: func(ctx context.Context) (domain.Entries, error) {
						return domain.Entries{}, nil
					},
				}
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				var resp changelog.ResponseData
				require.NoError(t, json.Unmarshal(body, &resp))
				assert.Empty(t, resp.Data)
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := setupChangelogRouter(t, tt.mockCS())
			rr := doReq(t, r, http.MethodGet, "/changelog", nil, tt.headers)
			require.Equal(t, tt.wantStatus, rr.Code)

			if tt.check != nil {
				tt.check(t, rr.Body.Bytes())
			}
		})
	}
}
